package model

import "time"

// Channel is a delivery channel for a notification.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// NotificationType keys the per-language template used for a notification.
type NotificationType string

const (
	NotificationTypeDeparted       NotificationType = "departed"
	NotificationTypeInTransit      NotificationType = "in_transit"
	NotificationTypeArrived        NotificationType = "arrived"
	NotificationTypeCustomsCleared NotificationType = "customs_cleared"
	NotificationTypeDelivered      NotificationType = "delivered"
	NotificationTypeDelayed        NotificationType = "delayed"
	NotificationTypeException      NotificationType = "exception"
)

// IsValid reports whether t names a known template type.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeDeparted,
		NotificationTypeInTransit,
		NotificationTypeArrived,
		NotificationTypeCustomsCleared,
		NotificationTypeDelivered,
		NotificationTypeDelayed,
		NotificationTypeException:
		return true
	}
	return false
}

// NotificationRecord describes one notification handed to the external
// transport. Created by the dispatcher, never mutated afterward.
type NotificationRecord struct {
	NotificationID string           `json:"notification_id"`
	ShipmentID     string           `json:"shipment_id"`
	Type           NotificationType `json:"type"`
	SentAt         time.Time        `json:"sent_at"`
	Channels       []Channel        `json:"channels"`
	Language       string           `json:"language"`
}
