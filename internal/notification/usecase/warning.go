package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"monitor-srv/internal/model"
	"monitor-srv/internal/notification"
	"monitor-srv/internal/shipment"
)

func (uc *implUseCase) ProactiveDelayWarning(ctx context.Context, input notification.DelayWarningInput) (notification.DelayWarningOutput, error) {
	out := notification.DelayWarningOutput{
		ShipmentID: input.ShipmentID,
		Threshold:  uc.cfg.ConfidenceThreshold,
	}

	snapshot, err := uc.shipments.Detail(ctx, input.ShipmentID)
	if err != nil {
		if errors.Is(err, shipment.ErrShipmentNotFound) {
			return notification.DelayWarningOutput{}, notification.ErrShipmentNotFound
		}
		uc.l.Errorf(ctx, "internal.notification.usecase.ProactiveDelayWarning: %v", err)
		return notification.DelayWarningOutput{}, err
	}

	prediction, err := uc.classifier.PredictDelay(ctx, snapshot)
	if err != nil {
		uc.l.Warnf(ctx, "internal.notification.usecase.ProactiveDelayWarning: no prediction for %s: %v", input.ShipmentID, err)
		out.Reason = "No ML prediction data available"
		return out, nil
	}

	out.Confidence = prediction.Confidence
	if !prediction.WillDelay || prediction.Confidence <= uc.cfg.ConfidenceThreshold {
		uc.l.Infof(ctx, "internal.notification.usecase.ProactiveDelayWarning: no warning needed for %s: will_delay=%t confidence=%.2f",
			input.ShipmentID, prediction.WillDelay, prediction.Confidence)
		out.Reason = fmt.Sprintf("Confidence %.1f%% below threshold %.0f%%",
			prediction.Confidence*100, uc.cfg.ConfidenceThreshold*100)
		return out, nil
	}

	riskMsg := "Multiple factors"
	if len(prediction.RiskFactors) > 0 {
		riskMsg = strings.Join(prediction.RiskFactors, ", ")
	}
	delayMsg := "significant delay"
	if prediction.PredictedDelayHours > 0 {
		delayMsg = fmt.Sprintf("%g hours", prediction.PredictedDelayHours)
	}
	confMsg := fmt.Sprintf("%.1f%%", prediction.Confidence*100)

	sent, err := uc.SendStatusUpdate(ctx, notification.SendStatusUpdateInput{
		ShipmentID: input.ShipmentID,
		Type:       model.NotificationTypeDelayed,
		Recipient:  input.Recipient,
		Language:   input.Language,
		AdditionalData: map[string]string{
			"delay_reason":       fmt.Sprintf("Predicted %s (%s confidence)", delayMsg, confMsg),
			"ml_confidence":      confMsg,
			"risk_factors":       riskMsg,
			"predicted_delay":    delayMsg,
			"action_recommended": "Please contact your logistics coordinator for alternative routing options",
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.ProactiveDelayWarning.SendStatusUpdate: %v", err)
		return notification.DelayWarningOutput{}, err
	}

	uc.l.Infof(ctx, "internal.notification.usecase.ProactiveDelayWarning: warning sent for %s with confidence %s", input.ShipmentID, confMsg)

	out.WarningSent = true
	out.RiskFactors = prediction.RiskFactors
	out.PredictedDelayHours = prediction.PredictedDelayHours
	out.NotificationID = sent.NotificationID
	return out, nil
}
