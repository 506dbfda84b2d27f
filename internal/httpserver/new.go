package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	insightHTTP "meeting-insights/internal/insight/delivery/http"
	"meeting-insights/internal/middleware"
	"meeting-insights/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	version     string

	// Cross-cutting
	middleware     middleware.Middleware
	metricsHandler http.Handler

	// Insight domain
	insightHandler  insightHTTP.Handler
	calendarEnabled bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	Version     string

	Middleware     middleware.Middleware
	MetricsHandler http.Handler // served on /metrics when set

	InsightHandler  insightHTTP.Handler
	CalendarEnabled bool
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		version:         cfg.Version,
		middleware:      cfg.Middleware,
		metricsHandler:  cfg.MetricsHandler,
		insightHandler:  cfg.InsightHandler,
		calendarEnabled: cfg.CalendarEnabled,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.insightHandler == nil {
		return errors.New("insight handler is required")
	}
	return nil
}

// Handler exposes the engine, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}
