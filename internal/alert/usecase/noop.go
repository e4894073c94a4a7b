package usecase

import (
	"context"

	"monitor-srv/internal/alert"
	"monitor-srv/pkg/log"
)

type noopUseCase struct {
	logger log.Logger
}

// NewNoop returns an alert usecase that drops every alert. Deployments
// without a Discord webhook run on this implementation.
func NewNoop(logger log.Logger) alert.UseCase {
	return &noopUseCase{logger: logger}
}

func (uc *noopUseCase) CycleFailure(ctx context.Context, input alert.CycleFailureInput) error {
	uc.logger.Debug(ctx, "internal.alert.usecase.CycleFailure: webhook not configured, alert dropped")
	return nil
}

func (uc *noopUseCase) HighSeverityFindings(ctx context.Context, input alert.HighSeverityFindingsInput) error {
	uc.logger.Debug(ctx, "internal.alert.usecase.HighSeverityFindings: webhook not configured, alert dropped")
	return nil
}
