package notification

import (
	"time"

	"monitor-srv/internal/model"
)

// Config tunes the notification paths. ConfidenceThreshold is the same value
// the periodic monitor evaluates rule findings against; both paths must read
// it from one configuration source.
type Config struct {
	ConfidenceThreshold float64
	TrackingBaseURL     string
}

// DispatchOutcome records what happened to a single finding.
type DispatchOutcome struct {
	Finding        model.Finding
	NotificationID string
	Sent           bool
	Attempted      bool
	Err            error
}

// DispatchOutput summarizes one dispatch pass over an aggregated finding set.
type DispatchOutput struct {
	Outcomes []DispatchOutcome
	Sent     int
}

// RecipientContact carries the customer's reachable addresses. Empty fields
// disable the corresponding channel.
type RecipientContact struct {
	Email string
	Phone string
}

// SendStatusUpdateInput describes one customer status notification.
type SendStatusUpdateInput struct {
	ShipmentID     string
	Type           model.NotificationType
	Recipient      RecipientContact
	Language       string
	TrackingURL    string
	AdditionalData map[string]string
}

// SendStatusUpdateOutput reports the delivered notification.
type SendStatusUpdateOutput struct {
	NotificationID string
	ShipmentID     string
	Type           model.NotificationType
	SentAt         time.Time
	Channels       []model.Channel
	Language       string
	MessagePreview string
	TrackingURL    string
}

// BulkStatusUpdateInput sends the same status notification to many shipments.
type BulkStatusUpdateInput struct {
	ShipmentIDs []string
	Type        model.NotificationType
	Language    string
}

// BulkStatusUpdateResult is the per-shipment slice of a bulk send.
type BulkStatusUpdateResult struct {
	ShipmentID     string
	NotificationID string
	Err            error
}

// BulkStatusUpdateOutput summarizes a bulk send.
type BulkStatusUpdateOutput struct {
	Total      int
	Successful int
	Failed     int
	Results    []BulkStatusUpdateResult
}

// DelayWarningInput asks for a proactive delay check on one shipment.
type DelayWarningInput struct {
	ShipmentID string
	Recipient  RecipientContact
	Language   string
}

// DelayWarningOutput reports whether a warning went out, and if not, why.
type DelayWarningOutput struct {
	ShipmentID          string
	WarningSent         bool
	Reason              string
	Confidence          float64
	Threshold           float64
	RiskFactors         []string
	PredictedDelayHours float64
	NotificationID      string
}

// TransportSendInput is one channel-specific delivery. The notification id is
// generated by the caller before the send so failed deliveries stay
// correlatable in logs.
type TransportSendInput struct {
	NotificationID string
	Channel        model.Channel
	Recipient      string
	Language       string
	TemplateKey    model.NotificationType
	Subject        string
	Body           string
}

// TransportSendResult reports a channel delivery.
type TransportSendResult struct {
	Sent bool
}
