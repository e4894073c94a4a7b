package discord

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

// testLogger implements log.Logger for testing
type testLogger struct{}

func (m *testLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *testLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *testLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *testLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *testLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *testLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func fakeResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

// newTestClient swaps the HTTP transport so no request leaves the process.
func newTestClient(t *testing.T, rt roundTripFunc) *discordImpl {
	t.Helper()

	client, err := New(&testLogger{}, "https://discord.com/api/webhooks/123456/tok-abc")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	impl := client.(*discordImpl)
	impl.client = &http.Client{Transport: rt}
	impl.config.RetryDelay = 0
	return impl
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		webhookURL string
		wantErr    bool
	}{
		{name: "valid webhook", webhookURL: "https://discord.com/api/webhooks/123456/tok-abc"},
		{name: "empty webhook", webhookURL: "", wantErr: true},
		{name: "not a discord URL", webhookURL: "https://example.com/hooks/1/t", wantErr: true},
		{name: "missing token", webhookURL: "https://discord.com/api/webhooks/123456", wantErr: true},
		{name: "missing id", webhookURL: "https://discord.com/api/webhooks//tok-abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(&testLogger{}, tt.webhookURL)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("New(%q) expected error, got nil", tt.webhookURL)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%q) error = %v", tt.webhookURL, err)
			}
			if got := client.GetWebhookURL(); got != tt.webhookURL {
				t.Errorf("GetWebhookURL() = %q, want %q", got, tt.webhookURL)
			}
		})
	}
}

func TestSendMessage(t *testing.T) {
	var got []*WebhookPayload
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		if req.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", req.Method)
		}
		if req.URL.String() != "https://discord.com/api/webhooks/123456/tok-abc" {
			t.Errorf("url = %s", req.URL)
		}
		if ct := req.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if ua := req.Header.Get("User-Agent"); ua != UserAgent {
			t.Errorf("User-Agent = %q, want %q", ua, UserAgent)
		}
		var payload WebhookPayload
		if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		got = append(got, &payload)
		return fakeResponse(http.StatusNoContent, ""), nil
	})

	if err := client.SendMessage(context.Background(), "cycle finished"); err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("requests = %d, want 1", len(got))
	}
	if got[0].Content != "cycle finished" {
		t.Errorf("content = %q", got[0].Content)
	}
	if got[0].Username != DefaultUsername {
		t.Errorf("username = %q, want %q", got[0].Username, DefaultUsername)
	}
}

func TestSendMessageTooLong(t *testing.T) {
	requests := 0
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		requests++
		return fakeResponse(http.StatusNoContent, ""), nil
	})

	err := client.SendMessage(context.Background(), strings.Repeat("x", MaxMessageLength+1))
	if err == nil {
		t.Fatal("expected length error, got nil")
	}
	if requests != 0 {
		t.Errorf("requests = %d, want 0", requests)
	}
}

func TestSendEmbed(t *testing.T) {
	var got *WebhookPayload
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		var payload WebhookPayload
		if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		got = &payload
		return fakeResponse(http.StatusNoContent, ""), nil
	})

	sent := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	err := client.SendEmbed(context.Background(), MessageOptions{
		Type:        MessageTypeWarning,
		Title:       strings.Repeat("t", MaxTitleLen+10),
		Description: "8 high severity exceptions",
		Fields: []EmbedField{
			{Name: "Run Timestamp", Value: "2024-03-15T10:30:00Z", Inline: true},
		},
		Footer:    &EmbedFooter{Text: "Exception Monitor"},
		Timestamp: sent,
	})
	if err != nil {
		t.Fatalf("SendEmbed() error = %v", err)
	}
	if got == nil || len(got.Embeds) != 1 {
		t.Fatal("expected one embed")
	}

	embed := got.Embeds[0]
	if len(embed.Title) != MaxTitleLen || !strings.HasSuffix(embed.Title, "...") {
		t.Errorf("title not truncated: len = %d", len(embed.Title))
	}
	if embed.Color != ColorWarning {
		t.Errorf("color = %d, want %d", embed.Color, ColorWarning)
	}
	if embed.Timestamp != "2024-03-15T10:30:00Z" {
		t.Errorf("timestamp = %q", embed.Timestamp)
	}
	if embed.Footer == nil || embed.Footer.Text != "Exception Monitor" {
		t.Errorf("footer = %+v", embed.Footer)
	}
	if got.Username != DefaultUsername {
		t.Errorf("username = %q, want default", got.Username)
	}
}

func TestSendErrorAttachesErrorField(t *testing.T) {
	var got *WebhookPayload
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		var payload WebhookPayload
		if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		got = &payload
		return fakeResponse(http.StatusNoContent, ""), nil
	})

	err := client.SendError(context.Background(), "Monitoring cycle failed", "snapshot unavailable", errors.New("pq: connection refused"))
	if err != nil {
		t.Fatalf("SendError() error = %v", err)
	}

	embed := got.Embeds[0]
	if embed.Color != ColorError {
		t.Errorf("color = %d, want %d", embed.Color, ColorError)
	}
	if len(embed.Fields) != 1 || embed.Fields[0].Name != "Error" {
		t.Fatalf("fields = %+v", embed.Fields)
	}
	if embed.Fields[0].Value != "pq: connection refused" {
		t.Errorf("error field = %q", embed.Fields[0].Value)
	}
}

func TestSendRetriesOnServerError(t *testing.T) {
	requests := 0
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		requests++
		if requests == 1 {
			return fakeResponse(http.StatusInternalServerError, `{"message":"upstream"}`), nil
		}
		return fakeResponse(http.StatusNoContent, ""), nil
	})

	if err := client.SendMessage(context.Background(), "retry me"); err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if requests != 2 {
		t.Errorf("requests = %d, want 2", requests)
	}
}

func TestSendExhaustsRetries(t *testing.T) {
	requests := 0
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		requests++
		return fakeResponse(http.StatusBadRequest, `{"message":"invalid"}`), nil
	})
	client.config.RetryCount = 1

	err := client.SendMessage(context.Background(), "never lands")
	if err == nil {
		t.Fatal("expected error after retries, got nil")
	}
	if requests != 2 {
		t.Errorf("requests = %d, want 2", requests)
	}
	if !strings.Contains(err.Error(), "status 400") {
		t.Errorf("error = %v, want status 400 mention", err)
	}
}
