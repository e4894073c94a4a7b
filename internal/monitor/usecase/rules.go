package usecase

import (
	"fmt"
	"math"
	"slices"
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/internal/monitor"
)

const (
	// highSeverityFactor escalates a finding once the measured value passes
	// twice its base threshold.
	highSeverityFactor = 2

	// mlHighConfidence is the confidence above which an ML prediction
	// finding is escalated to high severity.
	mlHighConfidence = 0.85

	// defaultPredictedDelayHours stands in when a prediction carries no
	// delay magnitude.
	defaultPredictedDelayHours = 24.0
)

// EvaluateFunc inspects one shipment snapshot at the cycle's fixed instant
// and returns at most one finding, or nil when the rule does not apply.
// Evaluators are pure: same snapshot and instant, same result.
type EvaluateFunc func(snapshot model.ShipmentSnapshot, now time.Time) *model.Finding

// Rule pairs an exception type with its evaluator. Declaration order in
// buildRules doubles as the tie-break order when duplicate findings for the
// same shipment and type carry equal severity.
type Rule struct {
	Type     model.ExceptionType
	Evaluate EvaluateFunc
}

func buildRules(cfg monitor.Config) []Rule {
	return []Rule{
		{Type: model.ExceptionTypeDelay, Evaluate: delayRule(cfg.DelayThreshold)},
		{Type: model.ExceptionTypeMLPrediction, Evaluate: mlPredictionRule(cfg.ConfidenceThreshold)},
		{Type: model.ExceptionTypeTempDeviation, Evaluate: temperatureRule(cfg.TempDeviationThreshold)},
		{Type: model.ExceptionTypeGeofenceViolation, Evaluate: geofenceRule()},
		{Type: model.ExceptionTypeMissingMilestone, Evaluate: missingMilestoneRule(cfg.MilestoneThreshold)},
	}
}

// delayRule fires when the current ETA estimate slips past the scheduled ETA
// by strictly more than the threshold.
func delayRule(threshold time.Duration) EvaluateFunc {
	return func(s model.ShipmentSnapshot, now time.Time) *model.Finding {
		delay := s.Delay()
		if delay <= threshold {
			return nil
		}

		severity := model.SeverityMedium
		if delay > highSeverityFactor*threshold {
			severity = model.SeverityHigh
		}

		hours := delay.Hours()
		return &model.Finding{
			ShipmentID: s.ShipmentID,
			Type:       model.ExceptionTypeDelay,
			Severity:   severity,
			Details: model.FindingDetails{
				Message:    fmt.Sprintf("Shipment delayed by %.0f hours (threshold: %.0fh)", hours, threshold.Hours()),
				DelayHours: hours,
			},
			DetectedAt: now,
		}
	}
}

// mlPredictionRule fires when the stored delay confidence is strictly above
// the threshold. A confidence exactly at the threshold does not fire.
func mlPredictionRule(threshold float64) EvaluateFunc {
	return func(s model.ShipmentSnapshot, now time.Time) *model.Finding {
		confidence := s.MLDelayConfidence
		if confidence <= threshold {
			return nil
		}

		severity := model.SeverityMedium
		if confidence > mlHighConfidence {
			severity = model.SeverityHigh
		}

		predicted := s.MLPredictedDelayHours
		if predicted <= 0 {
			predicted = defaultPredictedDelayHours
		}

		return &model.Finding{
			ShipmentID: s.ShipmentID,
			Type:       model.ExceptionTypeMLPrediction,
			Severity:   severity,
			Details: model.FindingDetails{
				Message:             fmt.Sprintf("ML predicts delay with %.0f%% confidence", confidence*100),
				MLConfidence:        confidence,
				PredictedDelayHours: predicted,
				RiskFactors:         slices.Clone(s.MLRiskFactors),
			},
			DetectedAt: now,
		}
	}
}

// temperatureRule fires when the worst reefer container on the shipment
// reads strictly more than the threshold away from its setpoint, in either
// direction.
func temperatureRule(threshold float64) EvaluateFunc {
	return func(s model.ShipmentSnapshot, now time.Time) *model.Finding {
		if s.Reefer == nil {
			return nil
		}

		current := s.Reefer.TemperatureCelsius
		target := s.Reefer.SetpointCelsius
		deviation := math.Abs(current - target)
		if deviation <= threshold {
			return nil
		}

		severity := model.SeverityMedium
		if deviation > highSeverityFactor*threshold {
			severity = model.SeverityHigh
		}

		return &model.Finding{
			ShipmentID: s.ShipmentID,
			Type:       model.ExceptionTypeTempDeviation,
			Severity:   severity,
			Details: model.FindingDetails{
				Message:          fmt.Sprintf("Container %s temperature deviation: %.1f°C", s.Reefer.ContainerID, deviation),
				ContainerID:      s.Reefer.ContainerID,
				CurrentTemp:      &current,
				TargetTemp:       &target,
				DeviationCelsius: deviation,
			},
			DetectedAt: now,
		}
	}
}

// geofenceRule fires when a shipment with a known position sits outside its
// route corridor. Shipments without a position or without a usable corridor
// are skipped, never flagged.
func geofenceRule() EvaluateFunc {
	return func(s model.ShipmentSnapshot, now time.Time) *model.Finding {
		if s.Position == nil || !s.RouteCorridor.IsValid() {
			return nil
		}
		if s.RouteCorridor.Contains(*s.Position) {
			return nil
		}

		position := *s.Position
		return &model.Finding{
			ShipmentID: s.ShipmentID,
			Type:       model.ExceptionTypeGeofenceViolation,
			Severity:   model.SeverityHigh,
			Details: model.FindingDetails{
				Message:         "Shipment outside expected route",
				CurrentLocation: &position,
			},
			DetectedAt: now,
		}
	}
}

// missingMilestoneRule fires when a shipment that has reported at least one
// milestone goes quiet for strictly longer than the threshold.
func missingMilestoneRule(threshold time.Duration) EvaluateFunc {
	return func(s model.ShipmentSnapshot, now time.Time) *model.Finding {
		if s.LastMilestoneAt.IsZero() {
			return nil
		}

		quiet := now.Sub(s.LastMilestoneAt)
		if quiet <= threshold {
			return nil
		}

		hours := quiet.Hours()
		return &model.Finding{
			ShipmentID: s.ShipmentID,
			Type:       model.ExceptionTypeMissingMilestone,
			Severity:   model.SeverityLow,
			Details: model.FindingDetails{
				Message:      fmt.Sprintf("No milestone update for %.0f hours (threshold: %.0fh)", hours, threshold.Hours()),
				HoursOverdue: hours,
			},
			DetectedAt: now,
		}
	}
}
