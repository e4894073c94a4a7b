package usecase

import (
	"context"
	"fmt"

	"monitor-srv/internal/model"
	"monitor-srv/internal/notification"
	"monitor-srv/pkg/locale"
)

// smsTypeLabels are the human-readable type names used in the short SMS form.
var smsTypeLabels = map[model.NotificationType]string{
	model.NotificationTypeDeparted:       "Departed",
	model.NotificationTypeInTransit:      "In Transit",
	model.NotificationTypeArrived:        "Arrived",
	model.NotificationTypeCustomsCleared: "Customs Cleared",
	model.NotificationTypeDelivered:      "Delivered",
	model.NotificationTypeDelayed:        "Delayed",
	model.NotificationTypeException:      "Exception",
}

func smsMessage(shipmentID string, typ model.NotificationType, trackingURL string) string {
	return fmt.Sprintf("CW Logistics: Shipment %s - %s. Track: %s", shipmentID, smsTypeLabels[typ], trackingURL)
}

func (uc *implUseCase) SendStatusUpdate(ctx context.Context, input notification.SendStatusUpdateInput) (notification.SendStatusUpdateOutput, error) {
	if !input.Type.IsValid() {
		return notification.SendStatusUpdateOutput{}, notification.ErrInvalidNotificationType
	}

	lang := input.Language
	if !locale.IsValidLang(lang) {
		if lang != "" {
			uc.l.Warnf(ctx, "internal.notification.usecase.SendStatusUpdate: unsupported language %q, falling back to %s", lang, locale.DefaultLang)
		}
		lang = locale.DefaultLang
	}

	data := uc.shipmentTemplateData(ctx, input.ShipmentID)
	if input.TrackingURL != "" {
		data.TrackingURL = input.TrackingURL
	}
	data.Extra = input.AdditionalData

	tmpl, ok := resolveTemplate(input.Type, lang)
	if !ok {
		return notification.SendStatusUpdateOutput{}, notification.ErrInvalidNotificationType
	}
	subject, body := renderTemplate(tmpl, data)

	id := uc.newNotificationID()

	var channels []model.Channel
	if input.Recipient.Email != "" {
		res, err := uc.transport.Send(ctx, notification.TransportSendInput{
			NotificationID: id,
			Channel:        model.ChannelEmail,
			Recipient:      input.Recipient.Email,
			Language:       lang,
			TemplateKey:    input.Type,
			Subject:        subject,
			Body:           body,
		})
		if err != nil {
			uc.l.Errorf(ctx, "internal.notification.usecase.SendStatusUpdate.Send: email for %s: %v", input.ShipmentID, err)
		} else if res.Sent {
			channels = append(channels, model.ChannelEmail)
		}
	}

	if input.Recipient.Phone != "" {
		sms := smsMessage(input.ShipmentID, input.Type, data.TrackingURL)
		res, err := uc.transport.Send(ctx, notification.TransportSendInput{
			NotificationID: id,
			Channel:        model.ChannelSMS,
			Recipient:      input.Recipient.Phone,
			Language:       lang,
			TemplateKey:    input.Type,
			Body:           sms,
		})
		if err != nil {
			uc.l.Errorf(ctx, "internal.notification.usecase.SendStatusUpdate.Send: sms for %s: %v", input.ShipmentID, err)
		} else if res.Sent {
			channels = append(channels, model.ChannelSMS)
		}
	}

	return notification.SendStatusUpdateOutput{
		NotificationID: id,
		ShipmentID:     input.ShipmentID,
		Type:           input.Type,
		SentAt:         uc.now().UTC(),
		Channels:       channels,
		Language:       lang,
		MessagePreview: subject,
		TrackingURL:    data.TrackingURL,
	}, nil
}

func (uc *implUseCase) SendBulkStatusUpdates(ctx context.Context, input notification.BulkStatusUpdateInput) (notification.BulkStatusUpdateOutput, error) {
	out := notification.BulkStatusUpdateOutput{
		Total:   len(input.ShipmentIDs),
		Results: make([]notification.BulkStatusUpdateResult, 0, len(input.ShipmentIDs)),
	}

	for _, shipmentID := range input.ShipmentIDs {
		sent, err := uc.SendStatusUpdate(ctx, notification.SendStatusUpdateInput{
			ShipmentID: shipmentID,
			Type:       input.Type,
			Language:   input.Language,
		})
		if err != nil {
			uc.l.Errorf(ctx, "internal.notification.usecase.SendBulkStatusUpdates: %s: %v", shipmentID, err)
			out.Failed++
			out.Results = append(out.Results, notification.BulkStatusUpdateResult{ShipmentID: shipmentID, Err: err})
			continue
		}

		out.Successful++
		out.Results = append(out.Results, notification.BulkStatusUpdateResult{
			ShipmentID:     shipmentID,
			NotificationID: sent.NotificationID,
		})
	}

	return out, nil
}

// shipmentTemplateData loads the route fields the templates refer to. Any
// lookup failure degrades to placeholder values; a broken shipment read must
// never block a customer notification.
func (uc *implUseCase) shipmentTemplateData(ctx context.Context, shipmentID string) templateData {
	data := placeholderTemplateData(shipmentID, uc.trackingURL(shipmentID))

	snapshot, err := uc.shipments.Detail(ctx, shipmentID)
	if err != nil {
		uc.l.Warnf(ctx, "internal.notification.usecase.shipmentTemplateData: %s: %v", shipmentID, err)
		return data
	}

	if snapshot.OriginPort != "" {
		data.Origin = snapshot.OriginPort
	}
	if snapshot.DestinationPort != "" {
		data.Destination = snapshot.DestinationPort
	}
	if snapshot.Reefer != nil && snapshot.Reefer.ContainerID != "" {
		data.Container = snapshot.Reefer.ContainerID
	}
	return data
}
