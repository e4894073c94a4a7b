package http

import (
	"monitor-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the monitor endpoints. Reads are public, the manual
// trigger requires auth.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	m := r.Group("/monitor")
	{
		m.GET("/runs", h.ListRuns)
		m.GET("/status", h.SchedulerStatus)
		m.POST("/trigger", mw.Auth(), h.TriggerRun)
	}
}
