package http

import (
	"monitor-srv/internal/notification"
	"monitor-srv/pkg/locale"

	"github.com/gin-gonic/gin"
)

// requestLang picks the explicit body language when given, otherwise the
// locale the middleware resolved from the lang header.
func requestLang(c *gin.Context, bodyLang string) string {
	if bodyLang != "" {
		return bodyLang
	}
	return locale.GetLang(c.Request.Context())
}

func (h *Handler) processDelayWarningRequest(c *gin.Context) (notification.DelayWarningInput, error) {
	var req delayWarningReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnf(c.Request.Context(), "invalid delay warning body: %v", err)
		return notification.DelayWarningInput{}, errWrongBody
	}
	if err := req.validate(); err != nil {
		return notification.DelayWarningInput{}, err
	}

	return req.toInput(requestLang(c, req.Language)), nil
}

func (h *Handler) processStatusUpdateRequest(c *gin.Context) (notification.SendStatusUpdateInput, error) {
	var req statusUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnf(c.Request.Context(), "invalid status update body: %v", err)
		return notification.SendStatusUpdateInput{}, errWrongBody
	}
	if err := req.validate(); err != nil {
		return notification.SendStatusUpdateInput{}, err
	}

	return req.toInput(requestLang(c, req.Language)), nil
}

func (h *Handler) processBulkStatusUpdateRequest(c *gin.Context) (notification.BulkStatusUpdateInput, error) {
	var req bulkStatusUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnf(c.Request.Context(), "invalid bulk update body: %v", err)
		return notification.BulkStatusUpdateInput{}, errWrongBody
	}
	if err := req.validate(); err != nil {
		return notification.BulkStatusUpdateInput{}, err
	}

	return req.toInput(requestLang(c, req.Language)), nil
}
