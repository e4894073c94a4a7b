package a2a

import (
	"errors"
	"fmt"
)

var (
	// ErrBaseURLRequired is returned when no agent endpoint is configured.
	ErrBaseURLRequired = errors.New("a2a: base URL is required")
)

// rejectedError marks a well-formed rejection (4xx) that must not be retried.
type rejectedError struct {
	status int
	body   string
}

func (e *rejectedError) Error() string {
	return fmt.Sprintf("a2a: request rejected with status %d: %s", e.status, e.body)
}

// IsRejected reports whether err is a non-retryable agent rejection.
func IsRejected(err error) bool {
	var re *rejectedError
	return errors.As(err, &re)
}
