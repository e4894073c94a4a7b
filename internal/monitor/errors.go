package monitor

import "errors"

var (
	ErrRunInProgress   = errors.New("monitoring run already in progress")
	ErrNotRunning      = errors.New("scheduler is not running")
	ErrShutdownTimeout = errors.New("scheduler shutdown timed out with a cycle still in flight")
)
