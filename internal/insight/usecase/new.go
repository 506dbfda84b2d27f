package usecase

import (
	"context"

	"meeting-insights/internal/insight"
	"meeting-insights/internal/insight/classifier"
	"meeting-insights/internal/insight/repository"
	"meeting-insights/pkg/datemath"
	"meeting-insights/pkg/gcalendar"
	pkgLog "meeting-insights/pkg/log"
	"meeting-insights/pkg/metrics"
)

// Calendar is the subset of gcalendar.Client used to schedule tasks.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// CalendarOptions configures task scheduling. A nil Client disables Schedule.
type CalendarOptions struct {
	Client     Calendar
	DateMath   *datemath.Parser
	CalendarID string
	Timezone   string
}

type implUseCase struct {
	l              pkgLog.Logger
	classifier     *classifier.Classifier
	repo           repository.Repository
	metrics        *metrics.Recorder
	calendar       CalendarOptions
	maxUploadBytes int64
}

// New creates a new insight UseCase instance.
func New(
	l pkgLog.Logger,
	cls *classifier.Classifier,
	repo repository.Repository,
	recorder *metrics.Recorder,
	calendar CalendarOptions,
	maxUploadBytes int64,
) insight.UseCase {
	if cls == nil {
		cls = classifier.Default()
	}
	return &implUseCase{
		l:              l,
		classifier:     cls,
		repo:           repo,
		metrics:        recorder,
		calendar:       calendar,
		maxUploadBytes: maxUploadBytes,
	}
}
