package http

import (
	"testing"
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/internal/monitor"
	"monitor-srv/pkg/paginator"
)

func TestNewRunItemResp(t *testing.T) {
	rec := model.MonitorRunRecord{
		ID:                7,
		RunTimestamp:      time.Date(2024, 3, 15, 10, 30, 0, 0, time.FixedZone("ICT", 7*3600)),
		ShipmentsChecked:  12,
		ExceptionsFound:   3,
		NotificationsSent: 2,
		RunDurationMS:     840,
	}

	resp := newRunItemResp(rec)
	if resp.ID != 7 || resp.ShipmentsChecked != 12 || resp.ExceptionsFound != 3 ||
		resp.NotificationsSent != 2 || resp.RunDurationMS != 840 {
		t.Errorf("unexpected counters: %+v", resp)
	}
	if want := "2024-03-15 03:30:00"; resp.RunTimestamp != want {
		t.Errorf("RunTimestamp = %q, want %q in UTC", resp.RunTimestamp, want)
	}
}

func TestNewListRunsResp(t *testing.T) {
	out := monitor.GetRunsOutput{
		Runs: []model.MonitorRunRecord{
			{ID: 2, RunTimestamp: time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC)},
			{ID: 1, RunTimestamp: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)},
		},
		Paginator: paginator.Paginator{Total: 42, Count: 2, PerPage: 20, CurrentPage: 1},
	}

	resp := newListRunsResp(out)
	if len(resp.Items) != 2 || resp.Items[0].ID != 2 || resp.Items[1].ID != 1 {
		t.Errorf("unexpected items: %+v", resp.Items)
	}
	if resp.Meta.Total != 42 || resp.Meta.TotalPages != 3 || !resp.Meta.HasNext {
		t.Errorf("unexpected meta: %+v", resp.Meta)
	}
}

func TestNewSchedulerStatusResp(t *testing.T) {
	t.Run("never ran", func(t *testing.T) {
		resp := newSchedulerStatusResp(monitor.Status{
			Running:  true,
			Interval: 5 * time.Minute,
		})
		if resp.LastRunAt != "" {
			t.Errorf("LastRunAt = %q, want empty before the first run", resp.LastRunAt)
		}
		if resp.Interval != "5m0s" {
			t.Errorf("Interval = %q, want 5m0s", resp.Interval)
		}
	})

	t.Run("after runs", func(t *testing.T) {
		resp := newSchedulerStatusResp(monitor.Status{
			Running:      true,
			CycleActive:  true,
			Interval:     time.Minute,
			LastRunAt:    time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
			Ticks:        10,
			TotalRuns:    9,
			SkippedTicks: 1,
		})
		if resp.LastRunAt != "2024-03-15 10:00:00" {
			t.Errorf("LastRunAt = %q", resp.LastRunAt)
		}
		if !resp.CycleActive || resp.Ticks != 10 || resp.TotalRuns != 9 || resp.SkippedTicks != 1 {
			t.Errorf("unexpected status: %+v", resp)
		}
	})
}
