package http

import (
	"monitor-srv/internal/notification"
	"monitor-srv/pkg/log"
)

type Handler struct {
	logger log.Logger
	uc     notification.UseCase
}

func New(logger log.Logger, uc notification.UseCase) *Handler {
	return &Handler{
		logger: logger,
		uc:     uc,
	}
}
