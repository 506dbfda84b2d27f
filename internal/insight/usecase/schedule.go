package usecase

import (
	"context"
	"fmt"
	"strings"

	"meeting-insights/internal/insight"
	"meeting-insights/internal/model"
	"meeting-insights/pkg/gcalendar"
	"meeting-insights/pkg/metrics"
)

// Schedule creates an all-day event on the due date of every dated task.
// Tasks without a date, or already present that day with the same summary, are skipped.
// A failed event does not stop the remaining tasks.
func (uc *implUseCase) Schedule(ctx context.Context, input insight.ScheduleInput) (insight.ScheduleOutput, error) {
	if uc.calendar.Client == nil || uc.calendar.DateMath == nil {
		return insight.ScheduleOutput{}, insight.ErrCalendarDisabled
	}

	a, err := uc.Detail(ctx, input.ID)
	if err != nil {
		return insight.ScheduleOutput{}, err
	}

	out := insight.ScheduleOutput{Tasks: make([]insight.ScheduledTask, 0, len(a.Record.Tasks))}
	for _, t := range a.Record.Tasks {
		res := uc.scheduleTask(ctx, a.ID, t)
		switch res.Status {
		case insight.StatusCreated:
			out.Created++
			uc.metrics.IncCalendarEvent(metrics.CalendarCreated)
		case insight.StatusSkipped:
			out.Skipped++
			uc.metrics.IncCalendarEvent(metrics.CalendarSkipped)
		default:
			out.Failed++
			uc.metrics.IncCalendarEvent(metrics.CalendarFailed)
		}
		out.Tasks = append(out.Tasks, res)
	}

	uc.l.Infof(ctx, "Schedule: id=%s created=%d skipped=%d failed=%d", a.ID, out.Created, out.Skipped, out.Failed)
	return out, nil
}

func (uc *implUseCase) scheduleTask(ctx context.Context, analysisID string, t model.Task) insight.ScheduledTask {
	res := insight.ScheduledTask{Task: t}

	day, err := uc.calendar.DateMath.ParseDueDate(t.DueDate)
	if err != nil {
		res.Status = insight.StatusSkipped
		res.Reason = "no due date"
		return res
	}
	next := uc.calendar.DateMath.NextDay(day)

	existing, err := uc.calendar.Client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calendar.CalendarID,
		TimeMin:    day,
		TimeMax:    next,
		Query:      t.Text,
	})
	if err != nil {
		uc.l.Warnf(ctx, "Schedule: listing events for %s failed (creating anyway): %v", t.DueDate, err)
	}
	for _, ev := range existing {
		if ev.Summary == t.Text {
			res.Status = insight.StatusSkipped
			res.Reason = "already scheduled"
			res.EventID = ev.ID
			res.Link = ev.HtmlLink
			return res
		}
	}

	event, err := uc.calendar.Client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendar.CalendarID,
		Summary:     t.Text,
		Description: eventDescription(analysisID, t),
		StartTime:   day,
		EndTime:     next,
		AllDay:      true,
		Timezone:    uc.calendar.Timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "Schedule: calendar event creation failed for %q (non-fatal): %v", t.Text, err)
		res.Status = insight.StatusFailed
		res.Reason = err.Error()
		return res
	}

	res.Status = insight.StatusCreated
	res.EventID = event.ID
	res.Link = event.HtmlLink
	return res
}

func eventDescription(analysisID string, t model.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Responsable: %s\n", t.Responsible)
	fmt.Fprintf(&b, "Fecha: %s\n", t.DueDate)
	fmt.Fprintf(&b, "Analysis: %s", analysisID)
	return b.String()
}
