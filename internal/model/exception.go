package model

import (
	"time"

	"monitor-srv/pkg/geo"
)

// ExceptionType identifies which detection rule produced a finding.
type ExceptionType string

const (
	ExceptionTypeDelay             ExceptionType = "delay"
	ExceptionTypeMLPrediction      ExceptionType = "ml_prediction"
	ExceptionTypeTempDeviation     ExceptionType = "temperature_deviation"
	ExceptionTypeGeofenceViolation ExceptionType = "geofence_violation"
	ExceptionTypeMissingMilestone  ExceptionType = "missing_milestone"
)

// ExceptionTypeCount is the number of detection rule types.
const ExceptionTypeCount = 5

// AllExceptionTypes lists every exception type in rule declaration order.
var AllExceptionTypes = []ExceptionType{
	ExceptionTypeDelay,
	ExceptionTypeMLPrediction,
	ExceptionTypeTempDeviation,
	ExceptionTypeGeofenceViolation,
	ExceptionTypeMissingMilestone,
}

// IsValid checks if the exception type is a known rule type.
func (t ExceptionType) IsValid() bool {
	switch t {
	case ExceptionTypeDelay, ExceptionTypeMLPrediction, ExceptionTypeTempDeviation,
		ExceptionTypeGeofenceViolation, ExceptionTypeMissingMilestone:
		return true
	}
	return false
}

// Severity is the ordinal priority of a finding, high > medium > low.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Rank returns the ordering value of the severity; higher means more severe.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 0
	}
	return -1
}

// FindingDetails carries the human-readable evidence for a finding.
// Only the fields relevant to the producing rule are populated.
type FindingDetails struct {
	Message string `json:"message"`

	// Delay rule evidence.
	DelayHours float64 `json:"delay_hours,omitempty"`

	// ML prediction rule evidence.
	MLConfidence        float64  `json:"ml_confidence,omitempty"`
	PredictedDelayHours float64  `json:"predicted_delay_hours,omitempty"`
	RiskFactors         []string `json:"risk_factors,omitempty"`

	// Temperature rule evidence. Temps are pointers so a 0 °C reading survives
	// the omitempty marshaling.
	ContainerID      string   `json:"container_id,omitempty"`
	CurrentTemp      *float64 `json:"current_temp,omitempty"`
	TargetTemp       *float64 `json:"target_temp,omitempty"`
	DeviationCelsius float64  `json:"deviation,omitempty"`

	// Geofence rule evidence.
	CurrentLocation *geo.Point `json:"current_location,omitempty"`

	// Milestone rule evidence.
	HoursOverdue float64 `json:"hours_overdue,omitempty"`
}

// FindingKey uniquely identifies a finding within one run.
type FindingKey struct {
	ShipmentID string
	Type       ExceptionType
}

// Finding is one rule's detected exception for one shipment in one run.
type Finding struct {
	ShipmentID string         `json:"shipment_id"`
	Type       ExceptionType  `json:"type"`
	Severity   Severity       `json:"severity"`
	Details    FindingDetails `json:"details"`
	DetectedAt time.Time      `json:"detected_at"`
}

// Key returns the dedup key of the finding.
func (f Finding) Key() FindingKey {
	return FindingKey{ShipmentID: f.ShipmentID, Type: f.Type}
}
