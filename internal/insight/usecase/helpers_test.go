package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"meeting-insights/internal/insight"
	"meeting-insights/internal/insight/repository/memory"
	"meeting-insights/pkg/datemath"
	"meeting-insights/pkg/gcalendar"
	"meeting-insights/pkg/metrics"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock calendar recording created events
type mockCalendar struct {
	mu        sync.Mutex
	existing  []gcalendar.Event
	created   []gcalendar.CreateEventRequest
	listErr   error
	createErr map[string]error // by summary
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.createErr[req.Summary]; err != nil {
		return nil, err
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{ID: "evt-" + req.StartTime.Format(gcalendar.DateLayout), Summary: req.Summary, HtmlLink: "https://calendar.example/evt"}, nil
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []gcalendar.Event
	for _, ev := range m.existing {
		if !ev.StartTime.Before(req.TimeMin) && ev.StartTime.Before(req.TimeMax) {
			out = append(out, ev)
		}
	}
	return out, nil
}

// Repository whose writes always fail
type failingRepo struct{}

func (failingRepo) Save(ctx context.Context, a insight.Analysis) error { return errors.New("disk full") }
func (failingRepo) Get(ctx context.Context, id string) (insight.Analysis, error) {
	return insight.Analysis{}, errors.New("disk full")
}
func (failingRepo) Len() int { return 0 }

func newTestUseCase(t *testing.T, cal Calendar, maxUpload int64) (*implUseCase, *metrics.Recorder) {
	t.Helper()
	rec, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)

	opts := CalendarOptions{}
	if cal != nil {
		dm, err := datemath.NewParser("UTC")
		require.NoError(t, err)
		opts = CalendarOptions{Client: cal, DateMath: dm, CalendarID: "team", Timezone: "UTC"}
	}

	uc := New(&mockLogger{}, nil, memory.New(16, 0), rec, opts, maxUpload)
	return uc.(*implUseCase), rec
}
