package shipment

import (
	"context"
	"time"

	"monitor-srv/internal/model"
)

// UseCase provides point-in-time snapshots of the in-flight fleet. The
// returned sequence reflects a single consistent asOf instant; callers may
// invoke it repeatedly without side effects.
type UseCase interface {
	ListActiveShipments(ctx context.Context, asOf time.Time) ([]model.ShipmentSnapshot, error)

	// Detail returns the current snapshot of one shipment regardless of its
	// status. Unknown ids map to ErrShipmentNotFound.
	Detail(ctx context.Context, shipmentID string) (model.ShipmentSnapshot, error)
}
