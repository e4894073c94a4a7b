package usecase

import (
	"context"
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/internal/shipment"
	"monitor-srv/internal/shipment/repository"
)

// ListActiveShipments loads the base rows from postgres and overlays the
// live telemetry cache. A cache failure degrades the snapshots to their base
// rows; only the base read itself is fatal.
func (uc *implUseCase) ListActiveShipments(ctx context.Context, asOf time.Time) ([]model.ShipmentSnapshot, error) {
	snapshots, err := uc.repo.ListActive(ctx, repository.ListActiveOptions{AsOf: asOf})
	if err != nil {
		uc.l.Errorf(ctx, "internal.shipment.usecase.ListActiveShipments: %v", err)
		return nil, shipment.ErrSnapshotUnavailable
	}
	if len(snapshots) == 0 {
		return snapshots, nil
	}

	ids := make([]string, len(snapshots))
	for i, s := range snapshots {
		ids[i] = s.ShipmentID
	}

	live, err := uc.telemetry.GetLiveTelemetry(ctx, ids)
	if err != nil {
		uc.l.Warnf(ctx, "internal.shipment.usecase.ListActiveShipments.GetLiveTelemetry: %v", err)
		return snapshots, nil
	}

	for i := range snapshots {
		t, ok := live[snapshots[i].ShipmentID]
		if !ok {
			continue
		}
		if t.Position != nil {
			snapshots[i].Position = t.Position
		}
		if t.Reefer != nil {
			snapshots[i].Reefer = t.Reefer
		}
	}

	return snapshots, nil
}
