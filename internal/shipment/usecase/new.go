package usecase

import (
	"monitor-srv/internal/shipment"
	"monitor-srv/internal/shipment/repository"
	pkgLog "monitor-srv/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	telemetry repository.TelemetryRepository
}

func New(l pkgLog.Logger, repo repository.Repository, telemetry repository.TelemetryRepository) shipment.UseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		telemetry: telemetry,
	}
}
