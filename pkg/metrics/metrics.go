// Package metrics exports analysis counters to Prometheus.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "insights"

// Source labels for analyses.
const (
	SourceUpload = "upload"
	SourceText   = "text"
)

// Calendar result labels.
const (
	CalendarCreated = "created"
	CalendarSkipped = "skipped"
	CalendarFailed  = "failed"
)

// Recorder holds the insight collectors. A nil *Recorder records nothing.
type Recorder struct {
	analyses       *prometheus.CounterVec
	lines          *prometheus.CounterVec
	duration       prometheus.Histogram
	exports        *prometheus.CounterVec
	calendarEvents *prometheus.CounterVec
}

// New registers the collectors on reg, reusing ones already registered.
// A nil reg means prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	var err error
	r := &Recorder{}
	if r.analyses, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analyses_total",
		Help:      "Documents analysed, by text source.",
	}, []string{"source"})); err != nil {
		return nil, err
	}
	if r.lines, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lines_classified_total",
		Help:      "Lines that matched a rule, by outcome.",
	}, []string{"kind"})); err != nil {
		return nil, err
	}
	if r.duration, err = register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "analyze_duration_seconds",
		Help:      "Time spent decoding and classifying one document.",
		Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
	})); err != nil {
		return nil, err
	}
	if r.exports, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Rendered exports, by format.",
	}, []string{"format"})); err != nil {
		return nil, err
	}
	if r.calendarEvents, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "calendar_events_total",
		Help:      "Calendar events for dated tasks, by result.",
	}, []string{"result"})); err != nil {
		return nil, err
	}
	return r, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, fmt.Errorf("register collector: %w", err)
	}
	return c, nil
}

// ObserveAnalysis records one analysis with its per-kind line counts.
func (r *Recorder) ObserveAnalysis(source string, elapsed time.Duration, lines map[string]int) {
	if r == nil {
		return
	}
	r.analyses.WithLabelValues(source).Inc()
	r.duration.Observe(elapsed.Seconds())
	for kind, n := range lines {
		r.lines.WithLabelValues(kind).Add(float64(n))
	}
}

func (r *Recorder) IncExport(format string) {
	if r == nil {
		return
	}
	r.exports.WithLabelValues(format).Inc()
}

func (r *Recorder) IncCalendarEvent(result string) {
	if r == nil {
		return
	}
	r.calendarEvents.WithLabelValues(result).Inc()
}
