package shipment

import "errors"

var (
	ErrSnapshotUnavailable = errors.New("shipment snapshot unavailable")
	ErrShipmentNotFound    = errors.New("shipment not found")
)
