package http

import (
	"github.com/gin-gonic/gin"

	"monitor-srv/pkg/response"
)

// SendDelayWarning runs the proactive delay check for one shipment.
// @Summary Send a proactive delay warning
// @Description Runs the delay classifier and notifies the customer when the predicted confidence exceeds the threshold. Reports why nothing was sent otherwise.
// @Tags Notification
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body delayWarningReq true "Warning request"
// @Success 200 {object} response.Resp{data=delayWarningResp}
// @Failure 400 {object} response.Resp "Invalid request body"
// @Failure 401 {object} response.Resp "Unauthorized"
// @Failure 404 {object} response.Resp "Shipment not found"
// @Router /api/v1/notifications/delay-warning [POST]
func (h *Handler) SendDelayWarning(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processDelayWarningRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.ProactiveDelayWarning(ctx, input)
	if err != nil {
		h.logger.Errorf(ctx, "delay warning failed: %v", err)
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, newDelayWarningResp(out))
}

// SendStatusUpdate sends one customer status notification.
// @Summary Send a status update
// @Description Renders the localized template for the notification type and delivers it over the configured channels.
// @Tags Notification
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body statusUpdateReq true "Status update request"
// @Success 200 {object} response.Resp{data=statusUpdateResp}
// @Failure 400 {object} response.Resp "Invalid request body or notification type"
// @Failure 401 {object} response.Resp "Unauthorized"
// @Router /api/v1/notifications/status-update [POST]
func (h *Handler) SendStatusUpdate(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processStatusUpdateRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.SendStatusUpdate(ctx, input)
	if err != nil {
		h.logger.Errorf(ctx, "status update failed: %v", err)
		response.ErrorWithMap(c, err, errMapping)
		return
	}

	response.OK(c, newStatusUpdateResp(out))
}

// SendBulkStatusUpdates sends the same status notification to many shipments.
// @Summary Send bulk status updates
// @Description Sends one notification type to a list of shipments and reports per-shipment results.
// @Tags Notification
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body bulkStatusUpdateReq true "Bulk update request"
// @Success 200 {object} response.Resp{data=bulkStatusUpdateResp}
// @Failure 400 {object} response.Resp "Invalid request body"
// @Failure 401 {object} response.Resp "Unauthorized"
// @Router /api/v1/notifications/bulk [POST]
func (h *Handler) SendBulkStatusUpdates(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processBulkStatusUpdateRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.SendBulkStatusUpdates(ctx, input)
	if err != nil {
		h.logger.Errorf(ctx, "bulk update failed: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, newBulkStatusUpdateResp(out))
}
