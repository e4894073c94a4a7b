package repository

import "time"

// ListActiveOptions contains options for listing active shipments.
type ListActiveOptions struct {
	AsOf time.Time
}

// GetOneOptions contains options for loading a single shipment.
type GetOneOptions struct {
	ShipmentID string
	AsOf       time.Time
}
