package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/rmrg-tec/sigesla-hub/internal/hub/session"
	"github.com/rmrg-tec/sigesla-hub/internal/hub/store"
)

// HousekeepingService periodically drops idle browser sessions and prunes old
// launch audit records to prevent unbounded growth.
type HousekeepingService struct {
	Sessions  *session.Manager
	Store     store.Store
	Logger    *slog.Logger
	Interval  time.Duration
	Retention time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given
// interval and audit retention. If interval is 0 or negative, defaults to
// 1 hour; retention defaults to 90 days.
func NewHousekeepingService(
	sessions *session.Manager,
	st store.Store,
	logger *slog.Logger,
	interval, retention time.Duration,
) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}
	if retention <= 0 {
		retention = 90 * 24 * time.Hour
	}

	return &HousekeepingService{
		Sessions:  sessions,
		Store:     st,
		Logger:    logger,
		Interval:  interval,
		Retention: retention,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start begins the background worker that periodically runs cleanup.
// This is non-blocking and should be called after the database is ready.
// Call Stop() to gracefully shutdown the worker.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop gracefully shuts down the background worker.
// Blocks until the worker has finished any in-progress cleanup.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup performs the sweep and audit pruning. The two steps are
// independent; a failure in one does not stop the other.
func (s *HousekeepingService) cleanup() {
	ctx := context.Background()

	swept := s.Sessions.Sweep()
	if swept > 0 {
		s.Logger.Info("idle sessions dropped", "count", swept)
	}

	cutoff := time.Now().Add(-s.Retention)
	removed, err := s.Store.LaunchEvents().DeleteOlderThan(ctx, cutoff)
	if err != nil {
		s.Logger.Error("failed to prune launch events", "error", err)
		return
	}
	if removed > 0 {
		s.Logger.Info("launch events pruned", "count", removed)
	}
}
