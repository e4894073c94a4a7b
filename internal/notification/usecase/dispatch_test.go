package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"monitor-srv/internal/classifier"
	"monitor-srv/internal/model"
	"monitor-srv/internal/notification"
	"monitor-srv/internal/shipment"
	"monitor-srv/pkg/a2a"
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

type fakeAgent struct {
	messages []a2a.Message
	failFor  map[string]error
}

func (a *fakeAgent) SendMessage(ctx context.Context, msg a2a.Message) error {
	a.messages = append(a.messages, msg)
	if err, ok := a.failFor[msg.ShipmentID]; ok {
		return err
	}
	return nil
}

func (a *fakeAgent) Endpoint() string { return "http://agent.test" }
func (a *fakeAgent) Close() error     { return nil }

func newNotifyUseCase(agent a2a.IA2A, transport notification.Transport, shipments shipment.UseCase, cls classifier.Classifier) *implUseCase {
	uc := New(&testLogger{}, notification.Config{ConfidenceThreshold: 0.70}, agent, transport, shipments, cls).(*implUseCase)
	uc.now = func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) }
	return uc
}

var notificationIDPattern = regexp.MustCompile(`^NOTIF-20240315-[0-9a-f]{8}$`)

func TestDispatchFindingsOrderAndPayload(t *testing.T) {
	agent := &fakeAgent{}
	uc := newNotifyUseCase(agent, nil, nil, nil)

	detectedAt := time.Date(2024, 3, 15, 9, 55, 0, 0, time.UTC)
	findings := []model.Finding{
		{
			ShipmentID: "SHIP-2",
			Type:       model.ExceptionTypeDelay,
			Severity:   model.SeverityHigh,
			Details:    model.FindingDetails{Message: "Shipment delayed by 60 hours (threshold: 24h)", DelayHours: 60},
			DetectedAt: detectedAt,
		},
		{
			ShipmentID: "SHIP-1",
			Type:       model.ExceptionTypeTempDeviation,
			Severity:   model.SeverityMedium,
			Details:    model.FindingDetails{Message: "Container CONT-5 temperature deviation: 6.0°C", ContainerID: "CONT-5"},
			DetectedAt: detectedAt,
		},
	}

	out, err := uc.DispatchFindings(context.Background(), findings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Sent != 2 {
		t.Errorf("Sent = %d, want 2", out.Sent)
	}
	if len(out.Outcomes) != 2 || len(agent.messages) != 2 {
		t.Fatalf("got %d outcomes and %d messages, want 2 and 2", len(out.Outcomes), len(agent.messages))
	}

	first := agent.messages[0]
	if first.Skill != a2a.SkillHandleException || first.ShipmentID != "SHIP-2" ||
		first.Type != "delay" || first.Severity != "high" {
		t.Errorf("unexpected first message: %+v", first)
	}

	det, ok := first.Details.(dispatchDetails)
	if !ok {
		t.Fatalf("details have type %T", first.Details)
	}
	if det.NotificationID != out.Outcomes[0].NotificationID {
		t.Errorf("payload id %q does not match outcome id %q", det.NotificationID, out.Outcomes[0].NotificationID)
	}
	if !notificationIDPattern.MatchString(det.NotificationID) {
		t.Errorf("notification id %q has the wrong shape", det.NotificationID)
	}
	if !det.DetectedAt.Equal(detectedAt) {
		t.Errorf("DetectedAt = %v, want %v", det.DetectedAt, detectedAt)
	}
	if det.Language != "en" {
		t.Errorf("Language = %q, want en", det.Language)
	}
	if want := "Important: Shipment SHIP-2 may be delayed"; det.Subject != want {
		t.Errorf("delay finding subject = %q, want %q", det.Subject, want)
	}
	if !strings.Contains(det.Body, "Reason: Shipment delayed by 60 hours (threshold: 24h)") {
		t.Errorf("delay body is missing the reason line:\n%s", det.Body)
	}

	second, ok := agent.messages[1].Details.(dispatchDetails)
	if !ok {
		t.Fatalf("details have type %T", agent.messages[1].Details)
	}
	if want := "Attention: Exception for shipment SHIP-1"; second.Subject != want {
		t.Errorf("exception subject = %q, want %q", second.Subject, want)
	}
	if !strings.Contains(second.Body, "- Container: CONT-5") {
		t.Errorf("exception body is missing the container:\n%s", second.Body)
	}
	if !strings.Contains(second.Body, "Issue: Container CONT-5 temperature deviation: 6.0°C") {
		t.Errorf("exception body is missing the issue line:\n%s", second.Body)
	}

	for i, o := range out.Outcomes {
		if !o.Attempted || !o.Sent || o.Err != nil {
			t.Errorf("outcome %d = %+v, want attempted and sent", i, o)
		}
	}
}

func TestDispatchFindingsPartialFailure(t *testing.T) {
	errAgentDown := errors.New("agent unavailable")
	agent := &fakeAgent{failFor: map[string]error{"SHIP-B": errAgentDown}}
	uc := newNotifyUseCase(agent, nil, nil, nil)

	findings := []model.Finding{
		{ShipmentID: "SHIP-A", Type: model.ExceptionTypeDelay, Severity: model.SeverityHigh, Details: model.FindingDetails{Message: "m"}},
		{ShipmentID: "SHIP-B", Type: model.ExceptionTypeGeofenceViolation, Severity: model.SeverityHigh, Details: model.FindingDetails{Message: "m"}},
		{ShipmentID: "SHIP-C", Type: model.ExceptionTypeMissingMilestone, Severity: model.SeverityLow, Details: model.FindingDetails{Message: "m"}},
	}

	out, err := uc.DispatchFindings(context.Background(), findings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(agent.messages) != 3 {
		t.Fatalf("got %d messages, want all 3 attempted", len(agent.messages))
	}
	if out.Sent != 2 {
		t.Errorf("Sent = %d, want 2", out.Sent)
	}

	failed := out.Outcomes[1]
	if failed.Sent || !failed.Attempted || !errors.Is(failed.Err, errAgentDown) {
		t.Errorf("failed outcome = %+v", failed)
	}
	if failed.NotificationID == "" {
		t.Error("failed outcome should still carry the minted id")
	}
	if !out.Outcomes[0].Sent || !out.Outcomes[2].Sent {
		t.Error("surrounding findings should have been dispatched")
	}
}

func TestDispatchFindingsCancellation(t *testing.T) {
	findings := []model.Finding{
		{ShipmentID: "SHIP-1", Type: model.ExceptionTypeDelay, Severity: model.SeverityMedium, Details: model.FindingDetails{Message: "m"}},
		{ShipmentID: "SHIP-2", Type: model.ExceptionTypeMLPrediction, Severity: model.SeverityMedium, Details: model.FindingDetails{Message: "m"}},
	}

	t.Run("already cancelled", func(t *testing.T) {
		agent := &fakeAgent{}
		uc := newNotifyUseCase(agent, nil, nil, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		out, err := uc.DispatchFindings(ctx, findings)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(agent.messages) != 0 {
			t.Errorf("no message should go out on a dead context, got %d", len(agent.messages))
		}
		if len(out.Outcomes) != len(findings) {
			t.Fatalf("got %d outcomes, want one per finding", len(out.Outcomes))
		}
		for i, o := range out.Outcomes {
			if o.Attempted || o.Sent || !errors.Is(o.Err, context.Canceled) {
				t.Errorf("outcome %d = %+v, want unattempted with context error", i, o)
			}
		}
	})

	t.Run("cancelled mid-batch", func(t *testing.T) {
		agent := &cancellingAgent{}
		uc := newNotifyUseCase(agent, nil, nil, nil)

		ctx, cancel := context.WithCancel(context.Background())
		agent.cancel = cancel
		defer cancel()

		out, err := uc.DispatchFindings(ctx, findings)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(agent.messages) != 1 {
			t.Fatalf("got %d messages, want only the first attempted", len(agent.messages))
		}
		if out.Sent != 1 {
			t.Errorf("Sent = %d, want 1", out.Sent)
		}
		if len(out.Outcomes) != 2 {
			t.Fatalf("got %d outcomes, want 2", len(out.Outcomes))
		}
		if !out.Outcomes[0].Sent {
			t.Errorf("first outcome = %+v, want sent", out.Outcomes[0])
		}
		if out.Outcomes[1].Attempted || !errors.Is(out.Outcomes[1].Err, context.Canceled) {
			t.Errorf("second outcome = %+v, want unattempted with context error", out.Outcomes[1])
		}
	})
}

// cancellingAgent cancels the dispatch context as a side effect of the first
// send, simulating a shutdown racing a batch.
type cancellingAgent struct {
	fakeAgent
	cancel context.CancelFunc
}

func (a *cancellingAgent) SendMessage(ctx context.Context, msg a2a.Message) error {
	a.cancel()
	return a.fakeAgent.SendMessage(ctx, msg)
}
