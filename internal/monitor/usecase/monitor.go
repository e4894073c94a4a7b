package usecase

import (
	"context"
	"time"

	"monitor-srv/internal/alert"
	"monitor-srv/internal/model"
	"monitor-srv/internal/monitor"
	"monitor-srv/internal/monitor/repository"
)

// recordWriteTimeout bounds the audit insert so a slow database cannot hold
// a finished cycle open.
const recordWriteTimeout = 5 * time.Second

// alertTimeout bounds ops alert delivery so a slow webhook cannot hold a
// finished cycle open.
const alertTimeout = 10 * time.Second

func (uc *implUseCase) RunOnce(ctx context.Context) (model.MonitorRunRecord, error) {
	started := uc.now()

	if uc.cfg.CycleTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.cfg.CycleTimeout)
		defer cancel()
	}

	snapshots, err := uc.shipments.ListActiveShipments(ctx, started)
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.RunOnce: %v", err)
		uc.alertCycleFailure(ctx, started, "snapshot", err)
		// The fleet is invisible this cycle. Record the attempt as a
		// zero-shipment run and abort.
		return uc.record(ctx, started, 0, 0, 0), err
	}

	findings := uc.evaluateAll(ctx, snapshots, started)
	findings = dedupFindings(findings)
	sortFindings(findings)

	uc.l.Infof(ctx, "internal.monitor.usecase.RunOnce: %d exceptions across %d shipments", len(findings), len(snapshots))

	sent := 0
	if len(findings) > 0 {
		out, err := uc.notifier.DispatchFindings(ctx, findings)
		if err != nil {
			uc.l.Errorf(ctx, "internal.monitor.usecase.RunOnce.DispatchFindings: %v", err)
		}
		sent = out.Sent
		uc.alertHighSeverity(ctx, started, findings)
	}

	return uc.record(ctx, started, len(snapshots), len(findings), sent), nil
}

// alertCycleFailure reports an aborted cycle to the ops channel. Delivery is
// detached from the cycle context, and a webhook failure is logged and
// swallowed: alerting must never take the monitor down with it.
func (uc *implUseCase) alertCycleFailure(ctx context.Context, started time.Time, stage string, cause error) {
	alertCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), alertTimeout)
	defer cancel()

	input := alert.CycleFailureInput{RunTimestamp: started, Stage: stage, Err: cause}
	if err := uc.alerts.CycleFailure(alertCtx, input); err != nil {
		uc.l.Warnf(ctx, "internal.monitor.usecase.alertCycleFailure: %v", err)
	}
}

// alertHighSeverity pages the ops channel when a cycle produced high severity
// findings. Same delivery rules as alertCycleFailure.
func (uc *implUseCase) alertHighSeverity(ctx context.Context, started time.Time, findings []model.Finding) {
	high := make([]model.Finding, 0, len(findings))
	for _, f := range findings {
		if f.Severity == model.SeverityHigh {
			high = append(high, f)
		}
	}
	if len(high) == 0 {
		return
	}

	alertCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), alertTimeout)
	defer cancel()

	input := alert.HighSeverityFindingsInput{
		RunTimestamp:  started,
		TotalFindings: len(findings),
		Findings:      high,
	}
	if err := uc.alerts.HighSeverityFindings(alertCtx, input); err != nil {
		uc.l.Warnf(ctx, "internal.monitor.usecase.alertHighSeverity: %v", err)
	}
}

// record persists the run outcome. The write is detached from the cycle
// context so a cycle that ran out its deadline still leaves an audit row,
// and an insert failure is logged and swallowed: history must never take a
// completed cycle down with it.
func (uc *implUseCase) record(ctx context.Context, started time.Time, checked, found, sent int) model.MonitorRunRecord {
	rec := model.MonitorRunRecord{
		RunTimestamp:      started,
		ShipmentsChecked:  checked,
		ExceptionsFound:   found,
		NotificationsSent: sent,
		RunDurationMS:     uc.now().Sub(started).Milliseconds(),
	}

	insertCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordWriteTimeout)
	defer cancel()

	persisted, err := uc.repo.InsertRun(insertCtx, repository.InsertRunOptions{Record: rec})
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.record: %v", err)
		return rec
	}
	return persisted
}

func (uc *implUseCase) GetRuns(ctx context.Context, input monitor.GetRunsInput) (monitor.GetRunsOutput, error) {
	runs, pag, err := uc.repo.ListRuns(ctx, repository.ListRunsOptions{PaginateQuery: input.PaginateQuery})
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.GetRuns: %v", err)
		return monitor.GetRunsOutput{}, err
	}

	return monitor.GetRunsOutput{
		Runs:      runs,
		Paginator: pag,
	}, nil
}
