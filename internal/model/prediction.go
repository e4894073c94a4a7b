package model

// Prediction is the delay classifier output for a single shipment.
type Prediction struct {
	WillDelay           bool     `json:"will_delay"`
	Confidence          float64  `json:"confidence"`
	PredictedDelayHours float64  `json:"predicted_delay_hours"`
	RiskFactors         []string `json:"risk_factors"`
	Recommendation      string   `json:"recommendation"`
}
