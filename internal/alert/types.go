package alert

import (
	"time"

	"monitor-srv/internal/model"
)

// CycleFailureInput describes a monitoring cycle that aborted before completion.
type CycleFailureInput struct {
	RunTimestamp time.Time
	Stage        string
	Err          error
}

// HighSeverityFindingsInput carries the high severity findings of a completed
// cycle. Findings holds only the high severity subset, TotalFindings counts
// every finding the cycle produced.
type HighSeverityFindingsInput struct {
	RunTimestamp  time.Time
	TotalFindings int
	Findings      []model.Finding
}
