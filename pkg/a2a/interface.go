package a2a

import (
	"context"
	"strings"

	"monitor-srv/pkg/log"
)

// IA2A is the client for the downstream exception-handling agent.
// SendMessage applies the bounded retry policy: one retry on transport
// failure or 5xx, none on a well-formed rejection (4xx).
type IA2A interface {
	SendMessage(ctx context.Context, msg Message) error
	Endpoint() string
	Close() error
}

// DefaultConfig returns the default agent client config.
func DefaultConfig() Config {
	return Config{
		Timeout:    DefaultTimeout,
		RetryCount: DefaultRetryCount,
		RetryDelay: DefaultRetryDelay,
	}
}

// New creates an agent client for the given base URL. Zero-valued config
// fields fall back to defaults.
func New(l log.Logger, cfg Config) (IA2A, error) {
	base := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, ErrBaseURLRequired
	}

	def := DefaultConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.RetryCount < 0 {
		cfg.RetryCount = def.RetryCount
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = def.RetryDelay
	}

	return &a2aImpl{
		l:       l,
		baseURL: base,
		config:  cfg,
		client:  newHTTPClient(cfg.Timeout),
	}, nil
}
