package usecase

import (
	"reflect"
	"testing"
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/internal/monitor"
	"monitor-srv/pkg/geo"
)

func testConfig() monitor.Config {
	return monitor.Config{
		DelayThreshold:         24 * time.Hour,
		ConfidenceThreshold:    0.70,
		TempDeviationThreshold: 5.0,
		MilestoneThreshold:     72 * time.Hour,
		Workers:                2,
	}
}

func testCorridor() geo.Polygon {
	return geo.Polygon{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 10},
		{Lat: 10, Lon: 10},
		{Lat: 10, Lon: 0},
	}
}

func ruleByType(t *testing.T, typ model.ExceptionType) Rule {
	t.Helper()
	for _, r := range buildRules(testConfig()) {
		if r.Type == typ {
			return r
		}
	}
	t.Fatalf("no rule for type %s", typ)
	return Rule{}
}

func TestDelayRuleBoundaries(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	scheduled := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	rule := ruleByType(t, model.ExceptionTypeDelay)

	tests := []struct {
		name     string
		slip     time.Duration
		severity model.Severity
		fires    bool
	}{
		{name: "ahead of schedule", slip: -6 * time.Hour, fires: false},
		{name: "exactly at threshold", slip: 24 * time.Hour, fires: false},
		{name: "just past threshold", slip: 24*time.Hour + time.Minute, severity: model.SeverityMedium, fires: true},
		{name: "exactly at high cutoff", slip: 48 * time.Hour, severity: model.SeverityMedium, fires: true},
		{name: "past high cutoff", slip: 49 * time.Hour, severity: model.SeverityHigh, fires: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snapshot := model.ShipmentSnapshot{
				ShipmentID:         "SHIP-001",
				ScheduledETA:       scheduled,
				CurrentETAEstimate: scheduled.Add(tc.slip),
			}

			finding := rule.Evaluate(snapshot, now)
			if !tc.fires {
				if finding != nil {
					t.Fatalf("expected no finding, got %+v", finding)
				}
				return
			}
			if finding == nil {
				t.Fatal("expected a finding, got nil")
			}
			if finding.Severity != tc.severity {
				t.Errorf("severity = %s, want %s", finding.Severity, tc.severity)
			}
			if finding.Type != model.ExceptionTypeDelay {
				t.Errorf("type = %s, want %s", finding.Type, model.ExceptionTypeDelay)
			}
			if !finding.DetectedAt.Equal(now) {
				t.Errorf("detected at = %s, want %s", finding.DetectedAt, now)
			}
		})
	}
}

func TestDelayRuleMessage(t *testing.T) {
	scheduled := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	snapshot := model.ShipmentSnapshot{
		ShipmentID:         "SHIP-001",
		ScheduledETA:       scheduled,
		CurrentETAEstimate: scheduled.Add(25 * time.Hour),
	}

	finding := ruleByType(t, model.ExceptionTypeDelay).Evaluate(snapshot, time.Now())
	if finding == nil {
		t.Fatal("expected a finding, got nil")
	}
	if want := "Shipment delayed by 25 hours (threshold: 24h)"; finding.Details.Message != want {
		t.Errorf("message = %q, want %q", finding.Details.Message, want)
	}
	if finding.Details.DelayHours != 25 {
		t.Errorf("delay hours = %v, want 25", finding.Details.DelayHours)
	}
}

func TestMLPredictionRuleBoundaries(t *testing.T) {
	rule := ruleByType(t, model.ExceptionTypeMLPrediction)

	tests := []struct {
		name       string
		confidence float64
		severity   model.Severity
		fires      bool
	}{
		{name: "no prediction", confidence: 0, fires: false},
		{name: "exactly at threshold", confidence: 0.70, fires: false},
		{name: "just above threshold", confidence: 0.71, severity: model.SeverityMedium, fires: true},
		{name: "at high cutoff", confidence: 0.85, severity: model.SeverityMedium, fires: true},
		{name: "above high cutoff", confidence: 0.86, severity: model.SeverityHigh, fires: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snapshot := model.ShipmentSnapshot{
				ShipmentID:        "SHIP-002",
				MLDelayConfidence: tc.confidence,
			}

			finding := rule.Evaluate(snapshot, time.Now())
			if !tc.fires {
				if finding != nil {
					t.Fatalf("expected no finding, got %+v", finding)
				}
				return
			}
			if finding == nil {
				t.Fatal("expected a finding, got nil")
			}
			if finding.Severity != tc.severity {
				t.Errorf("severity = %s, want %s", finding.Severity, tc.severity)
			}
		})
	}
}

func TestMLPredictionRuleDetails(t *testing.T) {
	factors := []string{"Port congestion at destination", "Carrier with lower reliability score"}
	snapshot := model.ShipmentSnapshot{
		ShipmentID:        "SHIP-002",
		MLDelayConfidence: 0.86,
		MLRiskFactors:     factors,
	}

	finding := ruleByType(t, model.ExceptionTypeMLPrediction).Evaluate(snapshot, time.Now())
	if finding == nil {
		t.Fatal("expected a finding, got nil")
	}
	if want := "ML predicts delay with 86% confidence"; finding.Details.Message != want {
		t.Errorf("message = %q, want %q", finding.Details.Message, want)
	}
	if finding.Details.PredictedDelayHours != 24 {
		t.Errorf("predicted delay = %v, want the 24h fallback", finding.Details.PredictedDelayHours)
	}
	if !reflect.DeepEqual(finding.Details.RiskFactors, factors) {
		t.Errorf("risk factors = %v, want %v", finding.Details.RiskFactors, factors)
	}

	// The finding must hold its own copy of the factor list.
	factors[0] = "mutated"
	if finding.Details.RiskFactors[0] == "mutated" {
		t.Error("risk factors alias the snapshot slice")
	}

	snapshot.MLPredictedDelayHours = 36
	finding = ruleByType(t, model.ExceptionTypeMLPrediction).Evaluate(snapshot, time.Now())
	if finding.Details.PredictedDelayHours != 36 {
		t.Errorf("predicted delay = %v, want 36", finding.Details.PredictedDelayHours)
	}
}

func TestTemperatureRuleBoundaries(t *testing.T) {
	rule := ruleByType(t, model.ExceptionTypeTempDeviation)

	if finding := rule.Evaluate(model.ShipmentSnapshot{ShipmentID: "SHIP-003"}, time.Now()); finding != nil {
		t.Fatalf("dry shipment should not fire, got %+v", finding)
	}

	tests := []struct {
		name     string
		current  float64
		setpoint float64
		severity model.Severity
		fires    bool
	}{
		{name: "on setpoint", current: -18, setpoint: -18, fires: false},
		{name: "exactly at threshold", current: -13, setpoint: -18, fires: false},
		{name: "warm side past threshold", current: -12.5, setpoint: -18, severity: model.SeverityMedium, fires: true},
		{name: "cold side past threshold", current: -23.5, setpoint: -18, severity: model.SeverityMedium, fires: true},
		{name: "exactly at high cutoff", current: -8, setpoint: -18, severity: model.SeverityMedium, fires: true},
		{name: "past high cutoff", current: -7.5, setpoint: -18, severity: model.SeverityHigh, fires: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snapshot := model.ShipmentSnapshot{
				ShipmentID: "SHIP-003",
				Reefer: &model.ReeferTelemetry{
					ContainerID:        "CONT-42",
					TemperatureCelsius: tc.current,
					SetpointCelsius:    tc.setpoint,
				},
			}

			finding := rule.Evaluate(snapshot, time.Now())
			if !tc.fires {
				if finding != nil {
					t.Fatalf("expected no finding, got %+v", finding)
				}
				return
			}
			if finding == nil {
				t.Fatal("expected a finding, got nil")
			}
			if finding.Severity != tc.severity {
				t.Errorf("severity = %s, want %s", finding.Severity, tc.severity)
			}
		})
	}
}

func TestTemperatureRuleDetails(t *testing.T) {
	snapshot := model.ShipmentSnapshot{
		ShipmentID: "SHIP-003",
		Reefer: &model.ReeferTelemetry{
			ContainerID:        "CONT-42",
			TemperatureCelsius: -9.5,
			SetpointCelsius:    -18,
		},
	}

	finding := ruleByType(t, model.ExceptionTypeTempDeviation).Evaluate(snapshot, time.Now())
	if finding == nil {
		t.Fatal("expected a finding, got nil")
	}
	if want := "Container CONT-42 temperature deviation: 8.5°C"; finding.Details.Message != want {
		t.Errorf("message = %q, want %q", finding.Details.Message, want)
	}
	if finding.Details.CurrentTemp == nil || *finding.Details.CurrentTemp != -9.5 {
		t.Errorf("current temp = %v, want -9.5", finding.Details.CurrentTemp)
	}
	if finding.Details.TargetTemp == nil || *finding.Details.TargetTemp != -18 {
		t.Errorf("target temp = %v, want -18", finding.Details.TargetTemp)
	}
	if finding.Details.DeviationCelsius != 8.5 {
		t.Errorf("deviation = %v, want 8.5", finding.Details.DeviationCelsius)
	}
}

func TestGeofenceRule(t *testing.T) {
	rule := ruleByType(t, model.ExceptionTypeGeofenceViolation)
	corridor := testCorridor()

	t.Run("no position fix", func(t *testing.T) {
		snapshot := model.ShipmentSnapshot{ShipmentID: "SHIP-004", RouteCorridor: corridor}
		if finding := rule.Evaluate(snapshot, time.Now()); finding != nil {
			t.Fatalf("expected no finding, got %+v", finding)
		}
	})

	t.Run("unusable corridor", func(t *testing.T) {
		snapshot := model.ShipmentSnapshot{
			ShipmentID:    "SHIP-004",
			Position:      &geo.Point{Lat: 50, Lon: 50},
			RouteCorridor: geo.Polygon{{Lat: 0, Lon: 0}, {Lat: 1, Lon: 1}},
		}
		if finding := rule.Evaluate(snapshot, time.Now()); finding != nil {
			t.Fatalf("expected no finding, got %+v", finding)
		}
	})

	t.Run("inside corridor", func(t *testing.T) {
		snapshot := model.ShipmentSnapshot{
			ShipmentID:    "SHIP-004",
			Position:      &geo.Point{Lat: 5, Lon: 5},
			RouteCorridor: corridor,
		}
		if finding := rule.Evaluate(snapshot, time.Now()); finding != nil {
			t.Fatalf("expected no finding, got %+v", finding)
		}
	})

	t.Run("outside corridor", func(t *testing.T) {
		now := time.Now()
		snapshot := model.ShipmentSnapshot{
			ShipmentID:    "SHIP-004",
			Position:      &geo.Point{Lat: 20, Lon: 20},
			RouteCorridor: corridor,
		}

		finding := rule.Evaluate(snapshot, now)
		if finding == nil {
			t.Fatal("expected a finding, got nil")
		}
		if finding.Severity != model.SeverityHigh {
			t.Errorf("severity = %s, want %s", finding.Severity, model.SeverityHigh)
		}
		if want := "Shipment outside expected route"; finding.Details.Message != want {
			t.Errorf("message = %q, want %q", finding.Details.Message, want)
		}
		if finding.Details.CurrentLocation == nil || *finding.Details.CurrentLocation != *snapshot.Position {
			t.Errorf("current location = %v, want %v", finding.Details.CurrentLocation, snapshot.Position)
		}
	})
}

func TestMissingMilestoneRule(t *testing.T) {
	rule := ruleByType(t, model.ExceptionTypeMissingMilestone)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("no milestones yet", func(t *testing.T) {
		snapshot := model.ShipmentSnapshot{ShipmentID: "SHIP-005"}
		if finding := rule.Evaluate(snapshot, now); finding != nil {
			t.Fatalf("expected no finding, got %+v", finding)
		}
	})

	t.Run("exactly at threshold", func(t *testing.T) {
		snapshot := model.ShipmentSnapshot{
			ShipmentID:      "SHIP-005",
			LastMilestoneAt: now.Add(-72 * time.Hour),
		}
		if finding := rule.Evaluate(snapshot, now); finding != nil {
			t.Fatalf("expected no finding, got %+v", finding)
		}
	})

	t.Run("past threshold", func(t *testing.T) {
		snapshot := model.ShipmentSnapshot{
			ShipmentID:      "SHIP-005",
			LastMilestoneAt: now.Add(-73 * time.Hour),
		}

		finding := rule.Evaluate(snapshot, now)
		if finding == nil {
			t.Fatal("expected a finding, got nil")
		}
		if finding.Severity != model.SeverityLow {
			t.Errorf("severity = %s, want %s", finding.Severity, model.SeverityLow)
		}
		if want := "No milestone update for 73 hours (threshold: 72h)"; finding.Details.Message != want {
			t.Errorf("message = %q, want %q", finding.Details.Message, want)
		}
		if finding.Details.HoursOverdue != 73 {
			t.Errorf("hours overdue = %v, want 73", finding.Details.HoursOverdue)
		}
	})
}

func TestRulesAreDeterministic(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	scheduled := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	snapshot := model.ShipmentSnapshot{
		ShipmentID:         "SHIP-006",
		ScheduledETA:       scheduled,
		CurrentETAEstimate: scheduled.Add(60 * time.Hour),
		MLDelayConfidence:  0.91,
		MLRiskFactors:      []string{"Peak shipping season (higher congestion)"},
		Reefer: &model.ReeferTelemetry{
			ContainerID:        "CONT-7",
			TemperatureCelsius: 4,
			SetpointCelsius:    -18,
		},
		Position:        &geo.Point{Lat: 40, Lon: 40},
		RouteCorridor:   testCorridor(),
		LastMilestoneAt: now.Add(-100 * time.Hour),
	}

	for _, rule := range buildRules(testConfig()) {
		first := rule.Evaluate(snapshot, now)
		second := rule.Evaluate(snapshot, now)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("rule %s is not deterministic: %+v vs %+v", rule.Type, first, second)
		}
		if first == nil {
			t.Errorf("rule %s expected to fire on the loaded snapshot", rule.Type)
		}
	}
}
