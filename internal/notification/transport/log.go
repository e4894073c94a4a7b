package transport

import (
	"context"

	"monitor-srv/internal/model"
	"monitor-srv/internal/notification"
	pkgLog "monitor-srv/pkg/log"
)

const bodyPreviewLen = 200

type logTransport struct {
	l pkgLog.Logger
}

// NewLog returns a Transport that records deliveries in the service log
// instead of calling a provider. Environments without email/SMS credentials
// run on this implementation.
func NewLog(l pkgLog.Logger) notification.Transport {
	return &logTransport{l: l}
}

func (t *logTransport) Send(ctx context.Context, input notification.TransportSendInput) (notification.TransportSendResult, error) {
	preview := input.Body
	if len(preview) > bodyPreviewLen {
		preview = preview[:bodyPreviewLen] + "..."
	}

	switch input.Channel {
	case model.ChannelEmail:
		t.l.Infof(ctx, "internal.notification.transport.Send: [%s] email to %s: %s", input.NotificationID, input.Recipient, input.Subject)
		t.l.Debugf(ctx, "internal.notification.transport.Send: [%s] body: %s", input.NotificationID, preview)
	default:
		t.l.Infof(ctx, "internal.notification.transport.Send: [%s] %s to %s: %s", input.NotificationID, input.Channel, input.Recipient, preview)
	}

	return notification.TransportSendResult{Sent: true}, nil
}
