package monitor

import (
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/pkg/paginator"
)

// Config carries the detection thresholds and cycle tuning. Severity cutoffs
// derive from the base thresholds: a delay or temperature reading past twice
// its threshold escalates the finding to high.
type Config struct {
	Interval               time.Duration
	DelayThreshold         time.Duration
	ConfidenceThreshold    float64
	TempDeviationThreshold float64
	MilestoneThreshold     time.Duration
	CycleTimeout           time.Duration
	ShutdownTimeout        time.Duration
	Workers                int
}

// GetRunsInput requests a page of the run history.
type GetRunsInput struct {
	PaginateQuery paginator.PaginateQuery
}

// GetRunsOutput is one page of run records, newest first.
type GetRunsOutput struct {
	Runs      []model.MonitorRunRecord
	Paginator paginator.Paginator
}

// Status reports the scheduler state. Ticks counts every scheduled launch
// attempt; SkippedTicks is the subset dropped because a cycle was still
// running. Manual triggers count toward TotalRuns only.
type Status struct {
	Running      bool          `json:"running"`
	CycleActive  bool          `json:"cycle_active"`
	Interval     time.Duration `json:"interval"`
	LastRunAt    time.Time     `json:"last_run_at"`
	Ticks        int64         `json:"ticks"`
	TotalRuns    int64         `json:"total_runs"`
	SkippedTicks int64         `json:"skipped_ticks"`
}
