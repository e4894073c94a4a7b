package a2a

import (
	"net/http"
	"time"

	"monitor-srv/pkg/log"
)

// Config holds the outbound agent client configuration.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
	RetryDelay time.Duration
}

// Message is the body of a message:send call to the exception-handling agent.
type Message struct {
	Skill      string `json:"skill"`
	Type       string `json:"type"`
	Severity   string `json:"severity"`
	ShipmentID string `json:"shipment_id"`
	Details    any    `json:"details"`
}

type a2aImpl struct {
	l       log.Logger
	baseURL string
	config  Config
	client  *http.Client
}
