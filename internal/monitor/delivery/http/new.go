package http

import (
	"monitor-srv/internal/monitor"
	"monitor-srv/pkg/log"
)

type Handler struct {
	logger    log.Logger
	uc        monitor.UseCase
	scheduler monitor.Scheduler
}

func New(logger log.Logger, uc monitor.UseCase, scheduler monitor.Scheduler) *Handler {
	return &Handler{
		logger:    logger,
		uc:        uc,
		scheduler: scheduler,
	}
}
