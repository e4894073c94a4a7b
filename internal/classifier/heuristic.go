package classifier

import (
	"context"
	"fmt"
	"math"
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/pkg/log"
)

// Fleet-wide defaults substituted when a snapshot does not carry its own
// carrier descriptors.
const (
	defaultCarrierReliability = 0.88
	defaultTransitDays        = 20
	defaultPredictedDelayHrs  = 24.0

	baseDelayRate = 0.20

	riskFlagWeight = 0.35
	longHaulWeight = 0.10

	longHaulTransitDays   = 30
	lowReliabilityScore   = 0.85
	peakSeasonFactor      = 0.08
	weekendOperationsRate = 0.03

	minDelayProbability = 0.02
	maxDelayProbability = 0.98
)

// Congestion factor by departure month. Peaks around Lunar New Year and the
// pre-holiday rush.
var seasonalFactors = map[time.Month]float64{
	time.January:   0.05,
	time.February:  0.15,
	time.March:     0.10,
	time.April:     0.02,
	time.May:       0.00,
	time.June:      0.00,
	time.July:      0.03,
	time.August:    0.05,
	time.September: 0.08,
	time.October:   0.12,
	time.November:  0.10,
	time.December:  0.08,
}

// Slowdown factor by departure weekday. Port operations thin out over the
// weekend.
var weekdayFactors = map[time.Weekday]float64{
	time.Monday:    0.02,
	time.Tuesday:   0.01,
	time.Wednesday: 0.00,
	time.Thursday:  0.01,
	time.Friday:    0.03,
	time.Saturday:  0.05,
	time.Sunday:    0.05,
}

type heuristicClassifier struct {
	l   log.Logger
	now func() time.Time
}

// NewHeuristic returns the rule-based classifier used until the trained model
// is served over the wire. It scores a shipment from its departure window,
// carrier profile and risk flag.
func NewHeuristic(l log.Logger) Classifier {
	return &heuristicClassifier{
		l:   l,
		now: time.Now,
	}
}

func (c *heuristicClassifier) PredictDelay(ctx context.Context, snapshot model.ShipmentSnapshot) (model.Prediction, error) {
	if snapshot.ShipmentID == "" {
		return model.Prediction{}, ErrMissingShipmentID
	}

	// The departure window drives the temporal factors. Snapshots without a
	// scheduled departure fall back to the evaluation time.
	departure := snapshot.ScheduledDeparture
	if departure.IsZero() {
		departure = c.now()
	}

	reliability := snapshot.CarrierReliability
	if reliability <= 0 {
		reliability = defaultCarrierReliability
	}
	transitDays := snapshot.TransitDays
	if transitDays <= 0 {
		transitDays = defaultTransitDays
	}

	seasonal := seasonalFactors[departure.Month()]
	weekday := weekdayFactors[departure.Weekday()]

	probability := baseDelayRate + seasonal + weekday
	if snapshot.RiskFlagged {
		probability += riskFlagWeight
	}
	if transitDays > longHaulTransitDays {
		probability += longHaulWeight
	}
	if reliability < lowReliabilityScore {
		probability += lowReliabilityScore - reliability
	}
	probability = clamp(probability, minDelayProbability, maxDelayProbability)

	willDelay := probability >= 0.5
	confidence := probability
	if !willDelay {
		confidence = 1 - probability
	}

	prediction := model.Prediction{
		WillDelay:           willDelay,
		Confidence:          round3(confidence),
		PredictedDelayHours: predictedDelayHours(snapshot, willDelay),
		RiskFactors:         riskFactors(snapshot, seasonal, weekday, transitDays, reliability),
		Recommendation:      recommendation(willDelay, confidence, probability),
	}

	c.l.Debugf(ctx, "internal.classifier.PredictDelay: %s will_delay=%t confidence=%.3f", snapshot.ShipmentID, willDelay, prediction.Confidence)

	return prediction, nil
}

func predictedDelayHours(snapshot model.ShipmentSnapshot, willDelay bool) float64 {
	if !willDelay {
		return 0
	}
	if snapshot.MLPredictedDelayHours > 0 {
		return snapshot.MLPredictedDelayHours
	}
	if slip := snapshot.Delay(); slip > 0 {
		return round1(slip.Hours())
	}
	return defaultPredictedDelayHrs
}

func riskFactors(snapshot model.ShipmentSnapshot, seasonal, weekday float64, transitDays int, reliability float64) []string {
	var factors []string
	if snapshot.RiskFlagged {
		factors = append(factors, "High-risk shipment flagged")
	}
	if seasonal > peakSeasonFactor {
		factors = append(factors, "Peak shipping season (higher congestion)")
	}
	if weekday > weekendOperationsRate {
		factors = append(factors, "Weekend port operations (slower processing)")
	}
	if transitDays > longHaulTransitDays {
		factors = append(factors, "Long-haul route (higher delay risk)")
	}
	if reliability < lowReliabilityScore {
		factors = append(factors, "Carrier with lower reliability score")
	}
	if len(factors) == 0 {
		factors = append(factors, "Historical route performance analysis")
	}
	return factors
}

func recommendation(willDelay bool, confidence, probability float64) string {
	pct := probability * 100
	if willDelay {
		switch {
		case confidence > 0.80:
			return fmt.Sprintf("HIGH RISK: %.0f%% chance of delay. Consider: (1) Notify customer proactively, (2) Explore alternative routing, (3) Monitor closely for early intervention.", pct)
		case confidence > 0.60:
			return fmt.Sprintf("MODERATE RISK: %.0f%% chance of delay. Recommend increased monitoring and customer communication.", pct)
		default:
			return fmt.Sprintf("POSSIBLE DELAY: %.0f%% chance. Continue normal monitoring.", pct)
		}
	}
	if confidence > 0.90 {
		return "Low delay risk - shipment on track for on-time delivery."
	}
	return "Moderate confidence in on-time delivery - continue monitoring."
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
