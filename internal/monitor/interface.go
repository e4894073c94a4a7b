package monitor

import (
	"context"

	"monitor-srv/internal/model"
)

// UseCase executes monitoring cycles and serves the run history. RunOnce
// itself carries no concurrency guard; the Scheduler is the only production
// caller and enforces the single-flight invariant for every entry point.
type UseCase interface {
	// RunOnce executes one full cycle: snapshot, evaluate, dispatch, record.
	// It always returns the run record that was persisted, including the
	// zero-shipment record written when the snapshot provider is down.
	RunOnce(ctx context.Context) (model.MonitorRunRecord, error)

	GetRuns(ctx context.Context, input GetRunsInput) (GetRunsOutput, error)
}

// Scheduler owns the repeating timer around the UseCase. At most one cycle is
// in flight at any instant; overlapping ticks are dropped, never queued.
type Scheduler interface {
	Start()
	// Stop cancels the active cycle, waits for it to drain within the
	// configured shutdown budget and stops the timer.
	Stop(ctx context.Context) error
	// TriggerRun executes a cycle on demand. It returns ErrRunInProgress
	// when a cycle is already active instead of queuing behind it.
	TriggerRun(ctx context.Context) (model.MonitorRunRecord, error)
	Status() Status
}
