package http

import (
	"github.com/gin-gonic/gin"

	"meeting-insights/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Analysis and calendar calls are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	insights := rg.Group("/insights")
	{
		insights.POST("", mw.RateLimit(), h.Analyze)
		insights.GET("/:id", h.Detail)
		insights.GET("/:id/export", h.Export)
		insights.POST("/:id/calendar", mw.RateLimit(), h.Schedule)
	}
}
