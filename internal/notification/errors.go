package notification

import "errors"

var (
	ErrInvalidNotificationType = errors.New("invalid notification type")
	ErrShipmentNotFound        = errors.New("shipment not found")
)
