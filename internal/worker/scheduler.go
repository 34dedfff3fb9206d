package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/common/logger"
)

// Scheduler runs maintenance once at startup and then on every interval.
type Scheduler struct {
	maintainer Maintainer
	interval   time.Duration

	stopCh    chan struct{}
	stoppedCh chan struct{}
}

func NewScheduler(maintainer Maintainer, interval time.Duration) *Scheduler {
	return &Scheduler{
		maintainer: maintainer,
		interval:   interval,
		stopCh:     make(chan struct{}),
		stoppedCh:  make(chan struct{}),
	}
}

func (s *Scheduler) Run(ctx context.Context) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "sprint.worker.maintenance"})
	defer close(s.stoppedCh)

	slog.InfoContext(ctx, "maintenance scheduler started", "interval", s.interval)
	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			slog.InfoContext(ctx, "maintenance scheduler stopping")
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) Stop() {
	close(s.stopCh)
	<-s.stoppedCh
}

func (s *Scheduler) runOnce(ctx context.Context) {
	sc := logger.StartSpan(ctx, "worker.maintenance")
	defer sc.End()

	if _, err := s.maintainer.RunMaintenance(sc.Context()); err != nil {
		sc.RecordError(err)
		slog.ErrorContext(ctx, "maintenance run failed", "error", err)
	}
}
