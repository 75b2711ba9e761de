// Package scheduler drives the periodic issue sync.
package scheduler

import (
	"context"
	"time"

	"github.com/domi413/worklog/internal/logging"
	"github.com/domi413/worklog/internal/service"
)

// Scheduler runs SyncAll on a fixed interval until stopped. It holds no
// package-level state; construct one, Start it, Stop it on shutdown.
type Scheduler struct {
	sync     service.SyncService
	interval time.Duration
	logger   logging.Logger
	cancel   context.CancelFunc
	done     chan struct{}
}

func New(sync service.SyncService, interval time.Duration, logger logging.Logger) *Scheduler {
	return &Scheduler{
		sync:     sync,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the ticker loop. The first sync happens one interval after
// start; a sync at boot is the caller's call.
func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx)
	s.logger.Info(ctx, "scheduler started", "interval", s.interval.String())
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			results := s.sync.SyncAll(ctx, nil)
			for _, result := range results {
				if result.Failed() {
					s.logger.Warn(ctx, "scheduled sync failed", "repo", result.Repo, "error", result.Err.Error())
				}
			}
		}
	}
}

// Stop cancels the loop and waits for an in-flight sync to return.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info(context.Background(), "scheduler stopped")
}
