package usecase

import (
	"time"

	"monitor-srv/internal/alert"
	"monitor-srv/internal/monitor"
	"monitor-srv/internal/monitor/repository"
	"monitor-srv/internal/notification"
	"monitor-srv/internal/shipment"
	pkgLog "monitor-srv/pkg/log"
)

const defaultWorkers = 4

type implUseCase struct {
	l         pkgLog.Logger
	cfg       monitor.Config
	shipments shipment.UseCase
	notifier  notification.UseCase
	alerts    alert.UseCase
	repo      repository.Repository
	rules     []Rule
	now       func() time.Time
}

func New(l pkgLog.Logger, cfg monitor.Config, shipments shipment.UseCase, notifier notification.UseCase, alerts alert.UseCase, repo repository.Repository) monitor.UseCase {
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	return &implUseCase{
		l:         l,
		cfg:       cfg,
		shipments: shipments,
		notifier:  notifier,
		alerts:    alerts,
		repo:      repo,
		rules:     buildRules(cfg),
		now:       time.Now,
	}
}
