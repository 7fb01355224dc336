package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// SweepConfig configures scheduled retention sweeps.
type SweepConfig struct {
	// Schedule is a standard cron expression (e.g., "0 3 * * *" for
	// daily at 3 AM). If empty, no sweeps run.
	Schedule string

	// Retention is how long cached datasets are kept before a sweep
	// removes them.
	Retention time.Duration
}

// Sweeper removes stale cache entries on a cron schedule.
type Sweeper struct {
	backend Backend
	config  SweepConfig
	cron    *cron.Cron
	mu      sync.Mutex
	logger  *slog.Logger
	running bool
}

// NewSweeper creates a sweeper for the given backend.
func NewSweeper(backend Backend, config SweepConfig) *Sweeper {
	return &Sweeper{
		backend: backend,
		config:  config,
		cron:    cron.New(),
		logger:  slog.Default().With("component", "cache.sweeper"),
	}
}

// Start begins scheduled sweeping. If no schedule is configured the
// sweeper does nothing. The sweeper stops when ctx is cancelled.
func (s *Sweeper) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.config.Schedule == "" {
		s.logger.Info("sweep schedule not configured, skipping sweeper")
		return nil
	}

	if _, err := cron.ParseStandard(s.config.Schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.config.Schedule, err)
	}

	_, err := s.cron.AddFunc(s.config.Schedule, func() {
		s.runSweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule sweep: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info("cache sweeper started",
		"schedule", s.config.Schedule,
		"retention", s.config.Retention,
	)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

func (s *Sweeper) runSweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.Retention)

	removed, err := s.backend.Cleanup(ctx, cutoff)
	if err != nil {
		s.logger.Error("scheduled cache sweep failed",
			"error", err,
		)
		return
	}

	if removed > 0 {
		s.logger.Info("scheduled cache sweep completed",
			"removed_count", removed,
		)
	} else {
		s.logger.Debug("scheduled cache sweep completed, no entries removed")
	}
}

// Stop stops the sweeper and waits for a running sweep to complete.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil && s.running {
		ctx := s.cron.Stop()
		<-ctx.Done()
		s.running = false
		s.logger.Info("cache sweeper stopped")
	}
}

// IsRunning reports whether the sweeper is active.
func (s *Sweeper) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
