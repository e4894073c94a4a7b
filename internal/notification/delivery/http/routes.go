package http

import (
	"monitor-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the notification endpoints. All of them mutate
// customer-facing state and require auth.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	n := r.Group("/notifications", mw.Auth())
	{
		n.POST("/delay-warning", h.SendDelayWarning)
		n.POST("/status-update", h.SendStatusUpdate)
		n.POST("/bulk", h.SendBulkStatusUpdates)
	}
}
