package usecase

import (
	"context"
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/internal/shipment"
	"monitor-srv/internal/shipment/repository"
)

func (uc *implUseCase) Detail(ctx context.Context, shipmentID string) (model.ShipmentSnapshot, error) {
	snapshot, err := uc.repo.GetOne(ctx, repository.GetOneOptions{
		ShipmentID: shipmentID,
		AsOf:       time.Now(),
	})
	if err != nil {
		if err == repository.ErrNotFound {
			return model.ShipmentSnapshot{}, shipment.ErrShipmentNotFound
		}
		uc.l.Errorf(ctx, "internal.shipment.usecase.Detail: %v", err)
		return model.ShipmentSnapshot{}, err
	}

	live, err := uc.telemetry.GetLiveTelemetry(ctx, []string{snapshot.ShipmentID})
	if err != nil {
		uc.l.Warnf(ctx, "internal.shipment.usecase.Detail.GetLiveTelemetry: %v", err)
		return snapshot, nil
	}

	if t, ok := live[snapshot.ShipmentID]; ok {
		if t.Position != nil {
			snapshot.Position = t.Position
		}
		if t.Reefer != nil {
			snapshot.Reefer = t.Reefer
		}
	}

	return snapshot, nil
}
