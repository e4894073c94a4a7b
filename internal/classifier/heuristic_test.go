package classifier

import (
	"context"
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"monitor-srv/internal/model"
)

// testLogger implements log.Logger for testing
type testLogger struct{}

func (m *testLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *testLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *testLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *testLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *testLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *testLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPredictDelayQuietLane(t *testing.T) {
	c := NewHeuristic(&testLogger{})

	// Mid-week May departure carries no seasonal or weekday penalty.
	snapshot := model.ShipmentSnapshot{
		ShipmentID:         "SHIP-001",
		ScheduledDeparture: time.Date(2026, time.May, 6, 12, 0, 0, 0, time.UTC),
	}

	got, err := c.PredictDelay(context.Background(), snapshot)
	if err != nil {
		t.Fatalf("PredictDelay returned error: %v", err)
	}

	if got.WillDelay {
		t.Error("expected on-time prediction for quiet lane")
	}
	if !almostEqual(got.Confidence, 0.8) {
		t.Errorf("confidence = %v, want 0.8", got.Confidence)
	}
	if got.PredictedDelayHours != 0 {
		t.Errorf("predicted delay hours = %v, want 0", got.PredictedDelayHours)
	}
	wantFactors := []string{"Historical route performance analysis"}
	if !reflect.DeepEqual(got.RiskFactors, wantFactors) {
		t.Errorf("risk factors = %v, want %v", got.RiskFactors, wantFactors)
	}
	if !strings.HasPrefix(got.Recommendation, "Moderate confidence") {
		t.Errorf("unexpected recommendation: %q", got.Recommendation)
	}
}

func TestPredictDelayFlaggedPeakSeason(t *testing.T) {
	c := NewHeuristic(&testLogger{})

	// Risk-flagged Saturday departure in February stacks the flag, seasonal
	// and weekend factors on the base rate: 0.20+0.15+0.05+0.35 = 0.75.
	snapshot := model.ShipmentSnapshot{
		ShipmentID:         "SHIP-002",
		ScheduledDeparture: time.Date(2026, time.February, 14, 8, 0, 0, 0, time.UTC),
		RiskFlagged:        true,
	}

	got, err := c.PredictDelay(context.Background(), snapshot)
	if err != nil {
		t.Fatalf("PredictDelay returned error: %v", err)
	}

	if !got.WillDelay {
		t.Fatal("expected delay prediction")
	}
	if !almostEqual(got.Confidence, 0.75) {
		t.Errorf("confidence = %v, want 0.75", got.Confidence)
	}
	if got.PredictedDelayHours != defaultPredictedDelayHrs {
		t.Errorf("predicted delay hours = %v, want %v", got.PredictedDelayHours, defaultPredictedDelayHrs)
	}
	if !strings.HasPrefix(got.Recommendation, "MODERATE RISK") {
		t.Errorf("unexpected recommendation: %q", got.Recommendation)
	}

	wantFactors := []string{
		"High-risk shipment flagged",
		"Peak shipping season (higher congestion)",
		"Weekend port operations (slower processing)",
	}
	if !reflect.DeepEqual(got.RiskFactors, wantFactors) {
		t.Errorf("risk factors = %v, want %v", got.RiskFactors, wantFactors)
	}
}

func TestPredictDelayLongHaulUnreliableCarrier(t *testing.T) {
	c := NewHeuristic(&testLogger{})

	snapshot := model.ShipmentSnapshot{
		ShipmentID:         "SHIP-003",
		ScheduledDeparture: time.Date(2026, time.February, 14, 8, 0, 0, 0, time.UTC),
		RiskFlagged:        true,
		TransitDays:        36,
		CarrierReliability: 0.78,
	}

	got, err := c.PredictDelay(context.Background(), snapshot)
	if err != nil {
		t.Fatalf("PredictDelay returned error: %v", err)
	}

	if !got.WillDelay {
		t.Fatal("expected delay prediction")
	}
	if got.Confidence <= 0.80 {
		t.Errorf("confidence = %v, want > 0.80", got.Confidence)
	}
	if !strings.HasPrefix(got.Recommendation, "HIGH RISK") {
		t.Errorf("unexpected recommendation: %q", got.Recommendation)
	}
	if len(got.RiskFactors) != 5 {
		t.Errorf("risk factors = %v, want all 5", got.RiskFactors)
	}
}

func TestPredictDelayHoursFallbacks(t *testing.T) {
	c := NewHeuristic(&testLogger{})
	ctx := context.Background()

	base := model.ShipmentSnapshot{
		ShipmentID:         "SHIP-004",
		ScheduledDeparture: time.Date(2026, time.February, 14, 8, 0, 0, 0, time.UTC),
		RiskFlagged:        true,
	}

	t.Run("prefers classifier hours from snapshot", func(t *testing.T) {
		snapshot := base
		snapshot.MLPredictedDelayHours = 36.5

		got, err := c.PredictDelay(ctx, snapshot)
		if err != nil {
			t.Fatalf("PredictDelay returned error: %v", err)
		}
		if got.PredictedDelayHours != 36.5 {
			t.Errorf("predicted delay hours = %v, want 36.5", got.PredictedDelayHours)
		}
	})

	t.Run("falls back to schedule slip", func(t *testing.T) {
		snapshot := base
		snapshot.ScheduledETA = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
		snapshot.CurrentETAEstimate = snapshot.ScheduledETA.Add(30 * time.Hour)

		got, err := c.PredictDelay(ctx, snapshot)
		if err != nil {
			t.Fatalf("PredictDelay returned error: %v", err)
		}
		if got.PredictedDelayHours != 30 {
			t.Errorf("predicted delay hours = %v, want 30", got.PredictedDelayHours)
		}
	})
}

func TestPredictDelayMissingShipmentID(t *testing.T) {
	c := NewHeuristic(&testLogger{})

	_, err := c.PredictDelay(context.Background(), model.ShipmentSnapshot{})
	if err != ErrMissingShipmentID {
		t.Errorf("err = %v, want ErrMissingShipmentID", err)
	}
}

func TestPredictDelayDeterministic(t *testing.T) {
	c := NewHeuristic(&testLogger{})
	ctx := context.Background()

	snapshot := model.ShipmentSnapshot{
		ShipmentID:         "SHIP-005",
		ScheduledDeparture: time.Date(2026, time.October, 5, 0, 0, 0, 0, time.UTC),
		TransitDays:        14,
		CarrierReliability: 0.91,
	}

	first, err := c.PredictDelay(ctx, snapshot)
	if err != nil {
		t.Fatalf("PredictDelay returned error: %v", err)
	}
	second, err := c.PredictDelay(ctx, snapshot)
	if err != nil {
		t.Fatalf("PredictDelay returned error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("predictions differ: %+v vs %+v", first, second)
	}
}
