package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"pix-withdrawal-service/internal/core/domain"
	"pix-withdrawal-service/internal/core/ports"

	"github.com/rs/zerolog"
)

// SweepConfig tunes the scheduled-withdrawal sweep.
type SweepConfig struct {
	Interval time.Duration
	LockKey  string
	LockTTL  time.Duration
}

// SweepService periodically settles due scheduled withdrawals. A Redis
// lock ensures at most one instance runs a sweep at a time; instances that
// lose the race skip the tick and try again on the next one.
type SweepService struct {
	withdrawals ports.WithdrawalRepository
	engine      ports.WithdrawalService
	lock        ports.DistributedLock
	cfg         SweepConfig
	holder      string
	log         zerolog.Logger
}

// NewSweepService creates a SweepService identified by hostname and pid.
func NewSweepService(
	withdrawals ports.WithdrawalRepository,
	engine ports.WithdrawalService,
	lock ports.DistributedLock,
	cfg SweepConfig,
	log zerolog.Logger,
) *SweepService {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	return &SweepService{
		withdrawals: withdrawals,
		engine:      engine,
		lock:        lock,
		cfg:         cfg,
		holder:      fmt.Sprintf("%s:%d", hostname, os.Getpid()),
		log:         log.With().Str("component", "sweep").Logger(),
	}
}

// SweepStats summarizes one sweep run. Processed counts withdrawals that
// reached a terminal state, including recorded business failures; Errors
// counts withdrawals left pending for the next run.
type SweepStats struct {
	Acquired  bool
	Found     int
	Processed int
	Errors    int
	Duration  time.Duration
}

// Start runs the sweep loop until ctx is cancelled. One sweep runs
// immediately so a restart does not wait a full interval to catch up.
func (s *SweepService) Start(ctx context.Context) {
	s.log.Info().
		Dur("interval", s.cfg.Interval).
		Str("lock_key", s.cfg.LockKey).
		Str("holder", s.holder).
		Msg("sweep loop started")

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	s.Run(ctx)
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("sweep loop stopped")
			return
		case <-ticker.C:
			s.Run(ctx)
		}
	}
}

// Run executes a single sweep: acquire the lock, settle everything due,
// release. Safe to call concurrently across instances; the lock serializes.
func (s *SweepService) Run(ctx context.Context) SweepStats {
	start := time.Now()
	stats := SweepStats{}

	acquired, err := s.lock.TryAcquire(ctx, s.cfg.LockKey, s.cfg.LockTTL, s.holder)
	if err != nil {
		s.log.Error().Err(err).Msg("sweep lock acquisition failed")
		return stats
	}
	if !acquired {
		s.log.Debug().Str("lock_key", s.cfg.LockKey).Msg("sweep lock held elsewhere, skipping tick")
		return stats
	}
	stats.Acquired = true
	defer func() {
		if err := s.lock.Release(ctx, s.cfg.LockKey); err != nil {
			s.log.Warn().Err(err).Msg("sweep lock release failed, TTL will expire it")
		}
	}()

	due, err := s.withdrawals.ListDue(ctx, time.Now().UTC())
	if err != nil {
		s.log.Error().Err(err).Msg("listing due withdrawals failed")
		return stats
	}
	stats.Found = len(due)
	if len(due) == 0 {
		return stats
	}

	s.log.Info().Int("found", len(due)).Msg("settling due withdrawals")

	for i := range due {
		w := &due[i]
		if err := s.settleOne(ctx, w); err != nil {
			stats.Errors++
			s.log.Error().Err(err).Str("withdrawal_id", w.ID).Msg("settlement failed, will retry next sweep")
			continue
		}
		stats.Processed++
	}

	stats.Duration = time.Since(start)
	s.log.Info().
		Int("found", stats.Found).
		Int("processed", stats.Processed).
		Int("errors", stats.Errors).
		Dur("duration", stats.Duration).
		Msg("sweep finished")
	return stats
}

// settleOne isolates a panic in a single settlement so one poisoned row
// cannot kill the whole sweep.
func (s *SweepService) settleOne(ctx context.Context, w *domain.Withdrawal) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("settlement panic: %v", r)
		}
	}()
	return s.engine.SettleScheduled(ctx, w)
}
