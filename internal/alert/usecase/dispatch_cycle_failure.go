package usecase

import (
	"context"
	"fmt"
	"time"

	"monitor-srv/internal/alert"
)

func (uc *implUseCase) CycleFailure(ctx context.Context, input alert.CycleFailureInput) error {
	stage := input.Stage
	if stage == "" {
		stage = "run"
	}

	description := fmt.Sprintf("Monitoring cycle started at %s aborted during %s.",
		input.RunTimestamp.UTC().Format(time.RFC3339), stage)

	if err := uc.discord.SendError(ctx, "Monitoring cycle failed", description, input.Err); err != nil {
		uc.logger.Errorf(ctx, "internal.alert.usecase.CycleFailure: %v", err)
		return err
	}
	return nil
}
