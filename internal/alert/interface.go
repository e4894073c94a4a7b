package alert

import "context"

// UseCase posts operational alerts to the ops Discord channel. Callers treat
// failures as non-fatal; alerting must never block a monitoring cycle.
type UseCase interface {
	CycleFailure(ctx context.Context, input CycleFailureInput) error
	HighSeverityFindings(ctx context.Context, input HighSeverityFindingsInput) error
}
