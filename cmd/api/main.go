package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"meeting-insights/config"
	_ "meeting-insights/docs" // Swagger docs
	"meeting-insights/internal/httpserver"
	"meeting-insights/internal/insight/classifier"
	insightHTTP "meeting-insights/internal/insight/delivery/http"
	"meeting-insights/internal/insight/repository/memory"
	"meeting-insights/internal/insight/usecase"
	"meeting-insights/internal/middleware"
	"meeting-insights/pkg/datemath"
	"meeting-insights/pkg/gcalendar"
	"meeting-insights/pkg/log"
	"meeting-insights/pkg/metrics"
)

var version = "dev"

// multipart framing and the text field on top of the upload itself
const bodyOverhead = 1 << 20

// @title       Meeting Insights API
// @description Extracts participation, action items and decisions from Spanish/English meeting minutes.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof(ctx, "Starting meeting-insights %s...", version)
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Classifier vocabulary
	vocab, err := classifier.LoadVocabulary(cfg.Insights.VocabularyPath)
	if err != nil {
		logger.Errorf(ctx, "Failed to load vocabulary: %v", err)
		os.Exit(1)
	}
	cls, err := classifier.New(vocab)
	if err != nil {
		logger.Errorf(ctx, "Failed to compile vocabulary: %v", err)
		os.Exit(1)
	}
	if cfg.Insights.VocabularyPath != "" {
		logger.Infof(ctx, "Vocabulary loaded from %s (languages: %v)", cfg.Insights.VocabularyPath, vocab.Languages())
	}

	// 4. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder, err := metrics.New(registry)
	if err != nil {
		logger.Errorf(ctx, "Failed to register metrics: %v", err)
		os.Exit(1)
	}

	// 5. Google Calendar (optional)
	calendarOpts := usecase.CalendarOptions{
		CalendarID: cfg.GoogleCalendar.CalendarID,
		Timezone:   cfg.GoogleCalendar.Timezone,
	}
	if cfg.GoogleCalendar.Enabled() {
		calendarClient, calErr := gcalendar.NewClient(ctx, gcalendar.Credentials{
			Path:      cfg.GoogleCalendar.CredentialsPath,
			TokenPath: cfg.GoogleCalendar.TokenPath,
		})
		dateMath, dmErr := datemath.NewParser(cfg.GoogleCalendar.Timezone)
		switch {
		case calErr != nil:
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `insights calendar-auth` to generate a token")
		case dmErr != nil:
			logger.Warnf(ctx, "Google Calendar disabled: %v", dmErr)
		default:
			calendarOpts.Client = calendarClient
			calendarOpts.DateMath = dateMath
			logger.Infof(ctx, "Google Calendar initialized (calendar=%s tz=%s)", cfg.GoogleCalendar.CalendarID, cfg.GoogleCalendar.Timezone)
		}
	}

	// 6. Insight domain
	repo := memory.New(cfg.Insights.CacheSize, cfg.Insights.CacheTTL)
	insightUC := usecase.New(logger, cls, repo, recorder, calendarOpts, cfg.Insights.MaxUploadBytes)
	insightHandler := insightHTTP.New(logger, insightUC, cfg.Insights.MaxUploadBytes+bodyOverhead)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Version:     version,
		Middleware: middleware.New(logger, middleware.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		}),
		MetricsHandler:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
		InsightHandler:  insightHandler,
		CalendarEnabled: calendarOpts.Client != nil,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
