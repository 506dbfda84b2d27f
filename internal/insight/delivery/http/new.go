package http

import (
	"github.com/gin-gonic/gin"

	"meeting-insights/internal/insight"
	"meeting-insights/pkg/log"
)

// Handler is the public interface for the insight HTTP delivery layer.
type Handler interface {
	Analyze(c *gin.Context)
	Detail(c *gin.Context)
	Export(c *gin.Context)
	Schedule(c *gin.Context)
}

type handler struct {
	l            log.Logger
	uc           insight.UseCase
	maxBodyBytes int64
}

// New creates a new HTTP handler for the insight domain.
// maxBodyBytes caps request bodies; 0 disables the cap.
func New(l log.Logger, uc insight.UseCase, maxBodyBytes int64) *handler {
	return &handler{
		l:            l,
		uc:           uc,
		maxBodyBytes: maxBodyBytes,
	}
}
