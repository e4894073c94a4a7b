package repository

import (
	"context"

	"monitor-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	ListActive(ctx context.Context, opts ListActiveOptions) ([]model.ShipmentSnapshot, error)
	GetOne(ctx context.Context, opts GetOneOptions) (model.ShipmentSnapshot, error)
}

// TelemetryRepository serves the live sensor overlay for a set of shipments.
// Shipments without cached telemetry are simply absent from the result.
//
//go:generate mockery --name TelemetryRepository
type TelemetryRepository interface {
	GetLiveTelemetry(ctx context.Context, shipmentIDs []string) (map[string]model.LiveTelemetry, error)
}
