package http

import (
	"monitor-srv/internal/model"
	"monitor-srv/internal/notification"
	"monitor-srv/pkg/errors"
	"monitor-srv/pkg/response"
)

// --- Request DTOs ---

type delayWarningReq struct {
	ShipmentID     string `json:"shipment_id"`
	RecipientEmail string `json:"recipient_email"`
	RecipientPhone string `json:"recipient_phone"`
	Language       string `json:"language"`
}

func (r delayWarningReq) validate() error {
	if r.ShipmentID == "" {
		return errors.NewValidationError(response.ValidationErrorCode, "shipment_id", "is required")
	}
	return nil
}

func (r delayWarningReq) toInput(lang string) notification.DelayWarningInput {
	return notification.DelayWarningInput{
		ShipmentID: r.ShipmentID,
		Recipient: notification.RecipientContact{
			Email: r.RecipientEmail,
			Phone: r.RecipientPhone,
		},
		Language: lang,
	}
}

type statusUpdateReq struct {
	ShipmentID     string            `json:"shipment_id"`
	Type           string            `json:"notification_type"`
	RecipientEmail string            `json:"recipient_email"`
	RecipientPhone string            `json:"recipient_phone"`
	Language       string            `json:"language"`
	TrackingURL    string            `json:"tracking_url"`
	AdditionalData map[string]string `json:"additional_data"`
}

func (r statusUpdateReq) validate() error {
	if r.ShipmentID == "" {
		return errors.NewValidationError(response.ValidationErrorCode, "shipment_id", "is required")
	}
	if r.Type == "" {
		return errors.NewValidationError(response.ValidationErrorCode, "notification_type", "is required")
	}
	return nil
}

func (r statusUpdateReq) toInput(lang string) notification.SendStatusUpdateInput {
	return notification.SendStatusUpdateInput{
		ShipmentID: r.ShipmentID,
		Type:       model.NotificationType(r.Type),
		Recipient: notification.RecipientContact{
			Email: r.RecipientEmail,
			Phone: r.RecipientPhone,
		},
		Language:       lang,
		TrackingURL:    r.TrackingURL,
		AdditionalData: r.AdditionalData,
	}
}

type bulkStatusUpdateReq struct {
	ShipmentIDs []string `json:"shipment_ids"`
	Type        string   `json:"notification_type"`
	Language    string   `json:"language"`
}

func (r bulkStatusUpdateReq) validate() error {
	if len(r.ShipmentIDs) == 0 {
		return errors.NewValidationError(response.ValidationErrorCode, "shipment_ids", "is required")
	}
	if r.Type == "" {
		return errors.NewValidationError(response.ValidationErrorCode, "notification_type", "is required")
	}
	return nil
}

func (r bulkStatusUpdateReq) toInput(lang string) notification.BulkStatusUpdateInput {
	return notification.BulkStatusUpdateInput{
		ShipmentIDs: r.ShipmentIDs,
		Type:        model.NotificationType(r.Type),
		Language:    lang,
	}
}

// --- Response DTOs ---

type delayWarningResp struct {
	ShipmentID          string   `json:"shipment_id"`
	WarningSent         bool     `json:"warning_sent"`
	Reason              string   `json:"reason,omitempty"`
	Confidence          float64  `json:"ml_confidence"`
	Threshold           float64  `json:"threshold"`
	RiskFactors         []string `json:"risk_factors,omitempty"`
	PredictedDelayHours float64  `json:"predicted_delay_hours,omitempty"`
	NotificationID      string   `json:"notification_id,omitempty"`
}

func newDelayWarningResp(out notification.DelayWarningOutput) delayWarningResp {
	return delayWarningResp{
		ShipmentID:          out.ShipmentID,
		WarningSent:         out.WarningSent,
		Reason:              out.Reason,
		Confidence:          out.Confidence,
		Threshold:           out.Threshold,
		RiskFactors:         out.RiskFactors,
		PredictedDelayHours: out.PredictedDelayHours,
		NotificationID:      out.NotificationID,
	}
}

type statusUpdateResp struct {
	NotificationID string   `json:"notification_id"`
	ShipmentID     string   `json:"shipment_id"`
	Type           string   `json:"notification_type"`
	SentAt         string   `json:"sent_at"`
	Channels       []string `json:"channels"`
	Language       string   `json:"language"`
	MessagePreview string   `json:"message_preview"`
	TrackingURL    string   `json:"tracking_url"`
}

func newStatusUpdateResp(out notification.SendStatusUpdateOutput) statusUpdateResp {
	channels := make([]string, 0, len(out.Channels))
	for _, ch := range out.Channels {
		channels = append(channels, string(ch))
	}
	return statusUpdateResp{
		NotificationID: out.NotificationID,
		ShipmentID:     out.ShipmentID,
		Type:           string(out.Type),
		SentAt:         out.SentAt.UTC().Format(response.DateTimeFormat),
		Channels:       channels,
		Language:       out.Language,
		MessagePreview: out.MessagePreview,
		TrackingURL:    out.TrackingURL,
	}
}

type bulkResultResp struct {
	ShipmentID     string `json:"shipment_id"`
	NotificationID string `json:"notification_id,omitempty"`
	Error          string `json:"error,omitempty"`
}

type bulkStatusUpdateResp struct {
	Total      int              `json:"total"`
	Successful int              `json:"successful"`
	Failed     int              `json:"failed"`
	Results    []bulkResultResp `json:"results"`
}

func newBulkStatusUpdateResp(out notification.BulkStatusUpdateOutput) bulkStatusUpdateResp {
	results := make([]bulkResultResp, 0, len(out.Results))
	for _, res := range out.Results {
		item := bulkResultResp{
			ShipmentID:     res.ShipmentID,
			NotificationID: res.NotificationID,
		}
		if res.Err != nil {
			item.Error = res.Err.Error()
		}
		results = append(results, item)
	}
	return bulkStatusUpdateResp{
		Total:      out.Total,
		Successful: out.Successful,
		Failed:     out.Failed,
		Results:    results,
	}
}
