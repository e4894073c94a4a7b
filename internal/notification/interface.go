package notification

import (
	"context"

	"monitor-srv/internal/model"
)

// UseCase dispatches exception findings to the handling agent and sends
// customer-facing status notifications.
type UseCase interface {
	// DispatchFindings forwards findings to the exception-handling agent in
	// the order given. Transport failures are reflected in the per-finding
	// outcomes, never as an error; a cancelled context stops new dispatches
	// but keeps the outcomes gathered so far.
	DispatchFindings(ctx context.Context, findings []model.Finding) (DispatchOutput, error)

	SendStatusUpdate(ctx context.Context, input SendStatusUpdateInput) (SendStatusUpdateOutput, error)
	SendBulkStatusUpdates(ctx context.Context, input BulkStatusUpdateInput) (BulkStatusUpdateOutput, error)

	// ProactiveDelayWarning runs the classifier for one shipment and sends a
	// delay warning only when the predicted confidence strictly exceeds the
	// configured threshold. Below the threshold it reports why nothing was
	// sent instead of failing.
	ProactiveDelayWarning(ctx context.Context, input DelayWarningInput) (DelayWarningOutput, error)
}

// Transport delivers one rendered notification over a concrete channel.
// Implementations (SendGrid, Twilio) live outside this module; the usecase
// only consumes the capability.
type Transport interface {
	Send(ctx context.Context, input TransportSendInput) (TransportSendResult, error)
}
