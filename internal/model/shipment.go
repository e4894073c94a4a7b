package model

import (
	"time"

	"monitor-srv/pkg/geo"
)

// Shipment statuses as reported by the tracking pipeline.
const (
	ShipmentStatusPending     = "pending"
	ShipmentStatusDeparted    = "departed"
	ShipmentStatusInTransit   = "in_transit"
	ShipmentStatusArrived     = "arrived"
	ShipmentStatusCustomsHold = "customs_hold"
	ShipmentStatusDelivered   = "delivered"
)

// ReeferTelemetry is the latest temperature reading of a refrigerated container.
type ReeferTelemetry struct {
	ContainerID        string  `json:"container_id"`
	TemperatureCelsius float64 `json:"temperature_celsius"`
	SetpointCelsius    float64 `json:"setpoint_celsius"`
}

// LiveTelemetry is the most recent sensor state pushed by the tracking
// pipeline, cached out-of-band from the shipment rows.
type LiveTelemetry struct {
	Position *geo.Point       `json:"position,omitempty"`
	Reefer   *ReeferTelemetry `json:"reefer,omitempty"`
}

// ShipmentSnapshot is the point-in-time view of one shipment consumed by
// every detection rule. A snapshot is immutable once produced; rules must
// never mutate it.
type ShipmentSnapshot struct {
	ShipmentID         string    `json:"shipment_id"`
	Status             string    `json:"status"`
	OriginPort         string    `json:"origin_port,omitempty"`
	DestinationPort    string    `json:"destination_port,omitempty"`
	ScheduledDeparture time.Time `json:"scheduled_departure"`
	ScheduledETA       time.Time `json:"scheduled_eta"`
	CurrentETAEstimate time.Time `json:"current_eta_estimate"`

	// Carrier descriptors; zero values mean unknown and the classifier
	// substitutes its fleet-wide defaults.
	TransitDays        int     `json:"transit_days,omitempty"`
	CarrierReliability float64 `json:"carrier_reliability,omitempty"`
	RiskFlagged        bool    `json:"risk_flagged,omitempty"`

	// Prediction signals from the delay classifier.
	MLDelayConfidence     float64  `json:"ml_delay_confidence"`
	MLPredictedDelayHours float64  `json:"ml_predicted_delay_hours,omitempty"`
	MLRiskFactors         []string `json:"ml_risk_factors,omitempty"`

	// Sensor telemetry; nil when the shipment carries no reefer container.
	Reefer *ReeferTelemetry `json:"reefer_telemetry,omitempty"`

	// Route state; Position is nil when no recent fix exists.
	Position      *geo.Point  `json:"current_position,omitempty"`
	RouteCorridor geo.Polygon `json:"expected_route_corridor,omitempty"`

	// Milestone history.
	LastMilestoneAt           time.Time     `json:"last_milestone_at"`
	ExpectedMilestoneInterval time.Duration `json:"expected_milestone_interval"`
}

// Delay returns the current schedule slip. Negative values mean the shipment
// is running ahead of schedule.
func (s ShipmentSnapshot) Delay() time.Duration {
	return s.CurrentETAEstimate.Sub(s.ScheduledETA)
}
