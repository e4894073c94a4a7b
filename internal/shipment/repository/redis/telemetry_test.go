package redis

import (
	"context"
	"errors"
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

type mockRedis struct {
	values  []any
	err     error
	gotKeys []string
}

func (m *mockRedis) Get(ctx context.Context, key string) (string, error) { return "", nil }

func (m *mockRedis) MGet(ctx context.Context, keys ...string) ([]any, error) {
	m.gotKeys = keys
	return m.values, m.err
}

func (m *mockRedis) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return nil
}
func (m *mockRedis) Delete(ctx context.Context, keys ...string) error { return nil }
func (m *mockRedis) Ping(ctx context.Context) error                   { return nil }
func (m *mockRedis) Close() error                                     { return nil }

func TestGetLiveTelemetry(t *testing.T) {
	rd := &mockRedis{
		values: []any{
			`{"position":{"lat":31.23,"lon":121.47},"reefer":{"container_id":"CONT-1","temperature_celsius":-11,"setpoint_celsius":-18}}`,
			nil,
			`{broken json`,
		},
	}

	repo := New(&testLogger{}, rd)

	got, err := repo.GetLiveTelemetry(context.Background(), []string{"SHIP-001", "SHIP-002", "SHIP-003"})
	if err != nil {
		t.Fatalf("GetLiveTelemetry returned error: %v", err)
	}

	wantKeys := []string{
		"shipment:telemetry:SHIP-001",
		"shipment:telemetry:SHIP-002",
		"shipment:telemetry:SHIP-003",
	}
	for i, k := range wantKeys {
		if rd.gotKeys[i] != k {
			t.Errorf("key[%d] = %s, want %s", i, rd.gotKeys[i], k)
		}
	}

	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1 (miss and malformed entry skipped)", len(got))
	}

	entry, ok := got["SHIP-001"]
	if !ok {
		t.Fatal("SHIP-001 telemetry missing")
	}
	if entry.Position == nil || entry.Position.Lat != 31.23 {
		t.Errorf("position = %+v", entry.Position)
	}
	if entry.Reefer == nil || entry.Reefer.ContainerID != "CONT-1" {
		t.Errorf("reefer = %+v", entry.Reefer)
	}
}

func TestGetLiveTelemetryError(t *testing.T) {
	rd := &mockRedis{err: errors.New("connection reset")}
	repo := New(&testLogger{}, rd)

	if _, err := repo.GetLiveTelemetry(context.Background(), []string{"SHIP-001"}); err == nil {
		t.Fatal("expected error from MGet failure")
	}
}

func TestGetLiveTelemetryNoIDs(t *testing.T) {
	rd := &mockRedis{}
	repo := New(&testLogger{}, rd)

	got, err := repo.GetLiveTelemetry(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetLiveTelemetry returned error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty map", got)
	}
	if rd.gotKeys != nil {
		t.Error("MGet called for empty id list")
	}
}
