package a2a

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

// Endpoint returns the full message:send URL.
func (a *a2aImpl) Endpoint() string {
	return a.baseURL + messageSendPath
}

func (a *a2aImpl) Close() error {
	if a.client != nil {
		a.client.CloseIdleConnections()
	}
	return nil
}

// SendMessage posts msg to the agent endpoint with bounded retry.
// A rejection (4xx) aborts immediately; transport errors and 5xx are
// retried up to RetryCount times with RetryDelay between attempts.
func (a *a2aImpl) SendMessage(ctx context.Context, msg Message) error {
	var lastErr error
	for attempt := 0; attempt <= a.config.RetryCount; attempt++ {
		if attempt > 0 {
			if a.l != nil {
				a.l.Infof(ctx, "pkg.a2a.SendMessage: retrying attempt %d/%d", attempt, a.config.RetryCount)
			}
			select {
			case <-ctx.Done():
				return fmt.Errorf("a2a: cancelled before retry: %w", ctx.Err())
			case <-time.After(a.config.RetryDelay):
			}
		}

		err := a.sendRequest(ctx, msg)
		if err == nil {
			return nil
		}
		if IsRejected(err) {
			return err
		}
		lastErr = err
		if a.l != nil {
			a.l.Warnf(ctx, "pkg.a2a.SendMessage: attempt %d failed: %v", attempt+1, err)
		}
	}
	return fmt.Errorf("a2a: failed after %d attempts, last error: %w", a.config.RetryCount+1, lastErr)
}

func (a *a2aImpl) sendRequest(ctx context.Context, msg Message) error {
	jsonData, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("a2a: failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.Endpoint(), bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("a2a: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("a2a: failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return &rejectedError{status: resp.StatusCode, body: string(body)}
	default:
		return fmt.Errorf("a2a: agent returned status %d: %s", resp.StatusCode, string(body))
	}
}
