package http

import (
	"monitor-srv/internal/model"
	"monitor-srv/internal/monitor"
	"monitor-srv/pkg/paginator"
	"monitor-srv/pkg/response"
)

// --- Response DTOs ---

type runItemResp struct {
	ID                int64  `json:"id"`
	RunTimestamp      string `json:"run_timestamp"`
	ShipmentsChecked  int    `json:"shipments_checked"`
	ExceptionsFound   int    `json:"exceptions_found"`
	NotificationsSent int    `json:"notifications_sent"`
	RunDurationMS     int64  `json:"run_duration_ms"`
}

func newRunItemResp(r model.MonitorRunRecord) runItemResp {
	return runItemResp{
		ID:                r.ID,
		RunTimestamp:      r.RunTimestamp.UTC().Format(response.DateTimeFormat),
		ShipmentsChecked:  r.ShipmentsChecked,
		ExceptionsFound:   r.ExceptionsFound,
		NotificationsSent: r.NotificationsSent,
		RunDurationMS:     r.RunDurationMS,
	}
}

type listRunsResp struct {
	Items []runItemResp               `json:"items"`
	Meta  paginator.PaginatorResponse `json:"meta"`
}

func newListRunsResp(out monitor.GetRunsOutput) listRunsResp {
	items := make([]runItemResp, 0, len(out.Runs))
	for _, r := range out.Runs {
		items = append(items, newRunItemResp(r))
	}
	return listRunsResp{
		Items: items,
		Meta:  out.Paginator.ToResponse(),
	}
}

type schedulerStatusResp struct {
	Running      bool   `json:"running"`
	CycleActive  bool   `json:"cycle_active"`
	Interval     string `json:"interval"`
	LastRunAt    string `json:"last_run_at,omitempty"`
	Ticks        int64  `json:"ticks"`
	TotalRuns    int64  `json:"total_runs"`
	SkippedTicks int64  `json:"skipped_ticks"`
}

func newSchedulerStatusResp(s monitor.Status) schedulerStatusResp {
	resp := schedulerStatusResp{
		Running:      s.Running,
		CycleActive:  s.CycleActive,
		Interval:     s.Interval.String(),
		Ticks:        s.Ticks,
		TotalRuns:    s.TotalRuns,
		SkippedTicks: s.SkippedTicks,
	}
	if !s.LastRunAt.IsZero() {
		resp.LastRunAt = s.LastRunAt.UTC().Format(response.DateTimeFormat)
	}
	return resp
}
