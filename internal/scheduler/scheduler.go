package scheduler

import (
	"context"
	"log/slog"
	"time"

	"clip_collector/internal/domain"
)

// Syncer runs one incremental catalog scan.
type Syncer interface {
	SyncAll(ctx context.Context) (*domain.SyncStats, error)
}

// Scheduler drives periodic syncs when the deployment runs as a long-lived
// process instead of relying on the cron endpoints.
type Scheduler struct {
	syncer   Syncer
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

func NewScheduler(syncer Syncer, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:   syncer,
		interval: interval,
		timeout:  30 * time.Minute,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runSync(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx)
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	syncCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.syncer.SyncAll(syncCtx); err != nil {
		s.logger.Error("scheduled sync failed", "error", err)
	}
}
