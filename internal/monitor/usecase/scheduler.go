package usecase

import (
	"context"
	"sync"
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/internal/monitor"
	pkgLog "monitor-srv/pkg/log"
)

const (
	defaultInterval        = 5 * time.Minute
	defaultShutdownTimeout = 30 * time.Second
)

type scheduler struct {
	l  pkgLog.Logger
	uc monitor.UseCase

	interval        time.Duration
	shutdownTimeout time.Duration

	baseCtx context.Context
	cancel  context.CancelFunc

	mu           sync.Mutex
	running      bool
	cycleDone    chan struct{} // non-nil exactly while a cycle is in flight
	lastRunAt    time.Time
	ticks        int64
	totalRuns    int64
	skippedTicks int64

	loopDone chan struct{}
}

func NewScheduler(l pkgLog.Logger, uc monitor.UseCase, cfg monitor.Config) monitor.Scheduler {
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}
	return &scheduler{
		l:               l,
		uc:              uc,
		interval:        interval,
		shutdownTimeout: shutdownTimeout,
	}
}

// acquire claims the single-flight slot. It is the only gate on cycle
// execution: scheduled ticks and manual triggers both pass through it. The
// returned release must be called exactly once when the cycle finishes.
func (s *scheduler) acquire() (release func(), ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cycleDone != nil {
		return nil, false
	}

	done := make(chan struct{})
	s.cycleDone = done
	return func() {
		s.mu.Lock()
		s.cycleDone = nil
		s.mu.Unlock()
		close(done)
	}, true
}

func (s *scheduler) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.baseCtx, s.cancel = context.WithCancel(context.Background())
	s.loopDone = make(chan struct{})
	ctx, loopDone := s.baseCtx, s.loopDone
	s.mu.Unlock()

	s.l.Infof(ctx, "internal.monitor.usecase.scheduler: started, interval %s", s.interval)

	go s.loop(ctx, loopDone)
}

func (s *scheduler) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// The first cycle fires immediately rather than a full interval after
	// startup.
	s.launch(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.launch(ctx)
		}
	}
}

// launch starts a cycle in the background unless one is still running. A
// dropped tick is the near-miss signal that cycles are running longer than
// the interval, so it is counted and logged, never queued.
func (s *scheduler) launch(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	s.mu.Lock()
	s.ticks++
	s.mu.Unlock()

	release, ok := s.acquire()
	if !ok {
		s.mu.Lock()
		s.skippedTicks++
		skipped := s.skippedTicks
		s.mu.Unlock()
		s.l.Warnf(ctx, "internal.monitor.usecase.scheduler: tick dropped, previous cycle still running (%d dropped so far)", skipped)
		return
	}

	go func() {
		defer release()
		s.runCycle(ctx)
	}()
}

func (s *scheduler) runCycle(ctx context.Context) {
	record, err := s.uc.RunOnce(ctx)
	if err != nil {
		s.l.Errorf(ctx, "internal.monitor.usecase.scheduler.runCycle: %v", err)
		return
	}

	s.mu.Lock()
	s.lastRunAt = record.RunTimestamp
	s.totalRuns++
	s.mu.Unlock()
}

func (s *scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return monitor.ErrNotRunning
	}
	s.running = false
	cancel, loopDone, cycleDone := s.cancel, s.loopDone, s.cycleDone
	s.mu.Unlock()

	cancel()
	<-loopDone

	if cycleDone != nil {
		timer := time.NewTimer(s.shutdownTimeout)
		defer timer.Stop()

		select {
		case <-cycleDone:
		case <-timer.C:
			s.l.Warnf(ctx, "internal.monitor.usecase.scheduler: shutdown budget %s spent, abandoning in-flight cycle", s.shutdownTimeout)
			return monitor.ErrShutdownTimeout
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	s.l.Infof(ctx, "internal.monitor.usecase.scheduler: stopped")
	return nil
}

// TriggerRun executes a cycle synchronously under the caller's context. It
// competes for the same single-flight slot as the timer, so a busy scheduler
// rejects the trigger instead of queuing it.
func (s *scheduler) TriggerRun(ctx context.Context) (model.MonitorRunRecord, error) {
	release, ok := s.acquire()
	if !ok {
		return model.MonitorRunRecord{}, monitor.ErrRunInProgress
	}
	defer release()

	record, err := s.uc.RunOnce(ctx)
	if err != nil {
		return record, err
	}

	s.mu.Lock()
	s.lastRunAt = record.RunTimestamp
	s.totalRuns++
	s.mu.Unlock()

	return record, nil
}

func (s *scheduler) Status() monitor.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return monitor.Status{
		Running:      s.running,
		CycleActive:  s.cycleDone != nil,
		Interval:     s.interval,
		LastRunAt:    s.lastRunAt,
		Ticks:        s.ticks,
		TotalRuns:    s.totalRuns,
		SkippedTicks: s.skippedTicks,
	}
}
