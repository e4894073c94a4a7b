package http

import (
	"monitor-srv/internal/monitor"
	"monitor-srv/pkg/paginator"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processListRunsRequest(c *gin.Context) (monitor.GetRunsInput, error) {
	var q paginator.PaginateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.logger.Warnf(c.Request.Context(), "invalid pagination query: %v", err)
		return monitor.GetRunsInput{}, errWrongPaginateQuery
	}
	q.Adjust()

	return monitor.GetRunsInput{PaginateQuery: q}, nil
}
