package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"monitor-srv/internal/monitor"
	"monitor-srv/pkg/response"
	"monitor-srv/pkg/scope"
)

// ListRuns returns the recorded monitoring cycles, newest first.
// @Summary List monitoring runs
// @Description Paginated audit history of completed monitoring cycles.
// @Tags Monitor
// @Produce json
// @Param page query int false "Page number (1-indexed)"
// @Param limit query int false "Items per page (max 100)"
// @Success 200 {object} response.Resp{data=listRunsResp}
// @Failure 400 {object} response.Resp "Invalid pagination query"
// @Router /api/v1/monitor/runs [GET]
func (h *Handler) ListRuns(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListRunsRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.GetRuns(ctx, input)
	if err != nil {
		h.logger.Errorf(ctx, "list runs failed: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, newListRunsResp(out))
}

// SchedulerStatus reports the scheduler state.
// @Summary Scheduler status
// @Description Current scheduler state: running flag, active cycle, counters.
// @Tags Monitor
// @Produce json
// @Success 200 {object} response.Resp{data=schedulerStatusResp}
// @Router /api/v1/monitor/status [GET]
func (h *Handler) SchedulerStatus(c *gin.Context) {
	response.OK(c, newSchedulerStatusResp(h.scheduler.Status()))
}

// TriggerRun executes one monitoring cycle on demand.
// @Summary Trigger a monitoring run
// @Description Runs a single monitoring cycle immediately. Rejected while another cycle is in flight.
// @Tags Monitor
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} response.Resp{data=runItemResp}
// @Failure 401 {object} response.Resp "Unauthorized"
// @Failure 409 {object} response.Resp "A cycle is already in progress"
// @Router /api/v1/monitor/trigger [POST]
func (h *Handler) TriggerRun(c *gin.Context) {
	ctx := c.Request.Context()

	if actor, ok := scope.GetUsernameFromContext(ctx); ok {
		h.logger.Infof(ctx, "manual run triggered by %s", actor)
	}

	rec, err := h.scheduler.TriggerRun(ctx)
	if err != nil {
		if errors.Is(err, monitor.ErrRunInProgress) {
			h.logger.Warnf(ctx, "manual trigger rejected, cycle in flight")
		} else {
			h.logger.Errorf(ctx, "manual trigger failed: %v", err)
		}
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, newRunItemResp(rec))
}
