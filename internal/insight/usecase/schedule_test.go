package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-insights/internal/insight"
	"meeting-insights/pkg/gcalendar"
)

const datedMinutes = `Juan: Revisar el informe. Responsable: Juan – 2024-05-10
Ana: Actualizar el roadmap – 2024-05-12
Luis: Documentar la API.
Marta: Validar el despliegue. Responsable: Marta – 2024-05-12
`

func TestScheduleDisabled(t *testing.T) {
	uc, _ := newTestUseCase(t, nil, 0)

	_, err := uc.Schedule(context.Background(), insight.ScheduleInput{ID: "any"})
	assert.ErrorIs(t, err, insight.ErrCalendarDisabled)
}

func TestSchedule(t *testing.T) {
	ctx := context.Background()
	cal := &mockCalendar{
		existing: []gcalendar.Event{
			{ID: "old", Summary: "Ana: Actualizar el roadmap", StartTime: time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC), AllDay: true},
		},
		createErr: map[string]error{"Marta: Validar el despliegue.": errors.New("quota exceeded")},
	}
	uc, _ := newTestUseCase(t, cal, 0)

	analyzed, err := uc.Analyze(ctx, insight.AnalyzeInput{Text: datedMinutes})
	require.NoError(t, err)
	require.Len(t, analyzed.Analysis.Record.Tasks, 4)

	out, err := uc.Schedule(ctx, insight.ScheduleInput{ID: analyzed.Analysis.ID})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Created)
	assert.Equal(t, 2, out.Skipped)
	assert.Equal(t, 1, out.Failed)
	require.Len(t, out.Tasks, 4)

	assert.Equal(t, insight.StatusCreated, out.Tasks[0].Status)
	assert.Equal(t, "evt-2024-05-10", out.Tasks[0].EventID)
	assert.Equal(t, insight.StatusSkipped, out.Tasks[1].Status)
	assert.Equal(t, "already scheduled", out.Tasks[1].Reason)
	assert.Equal(t, "old", out.Tasks[1].EventID)
	assert.Equal(t, insight.StatusSkipped, out.Tasks[2].Status)
	assert.Equal(t, "no due date", out.Tasks[2].Reason)
	assert.Equal(t, insight.StatusFailed, out.Tasks[3].Status)
	assert.Contains(t, out.Tasks[3].Reason, "quota exceeded")

	require.Len(t, cal.created, 1)
	req := cal.created[0]
	assert.True(t, req.AllDay)
	assert.Equal(t, "team", req.CalendarID)
	assert.Equal(t, "Juan: Revisar el informe.", req.Summary)
	assert.True(t, req.StartTime.Equal(time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, req.EndTime.Equal(time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)))
	assert.Contains(t, req.Description, "Responsable: Juan")
	assert.Contains(t, req.Description, analyzed.Analysis.ID)
}

func TestScheduleListFailureStillCreates(t *testing.T) {
	ctx := context.Background()
	cal := &mockCalendar{listErr: errors.New("unavailable")}
	uc, _ := newTestUseCase(t, cal, 0)

	analyzed, err := uc.Analyze(ctx, insight.AnalyzeInput{Text: "Juan: Revisar el informe. Responsable: Juan – 2024-05-10"})
	require.NoError(t, err)

	out, err := uc.Schedule(ctx, insight.ScheduleInput{ID: analyzed.Analysis.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Created)
}

func TestScheduleUnknownAnalysis(t *testing.T) {
	uc, _ := newTestUseCase(t, &mockCalendar{}, 0)

	_, err := uc.Schedule(context.Background(), insight.ScheduleInput{ID: "missing"})
	assert.ErrorIs(t, err, insight.ErrAnalysisNotFound)
}
