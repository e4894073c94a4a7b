package alert

import "errors"

var (
	ErrNoFindings = errors.New("no findings to alert on")
)
