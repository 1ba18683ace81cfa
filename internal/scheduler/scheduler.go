package scheduler

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"feedsync/internal/domain"
)

// Syncer is the slice of the orchestrator contract the scheduler drives.
type Syncer interface {
	Sync(ctx context.Context, scope domain.Scope) domain.Outcome
}

const (
	syncTimeout    = 5 * time.Minute
	maxRetries     = 3
	initialBackoff = 30 * time.Second
)

type job struct {
	account *domain.Account
	syncer  Syncer
}

// Scheduler runs periodic account-wide sync passes, one ticker per account.
// A Retry outcome re-runs the pass with doubling backoff; a Failure waits for
// the next tick.
type Scheduler struct {
	jobs            []job
	defaultInterval time.Duration
	backoff         time.Duration
	logger          *slog.Logger
}

func NewScheduler(defaultInterval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		defaultInterval: defaultInterval,
		backoff:         initialBackoff,
		logger:          logger.With("component", "scheduler"),
	}
}

func (s *Scheduler) Add(account *domain.Account, syncer Syncer) {
	s.jobs = append(s.jobs, job{account: account, syncer: syncer})
}

// Start blocks until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "accounts", len(s.jobs))

	g, gctx := errgroup.WithContext(ctx)
	for _, j := range s.jobs {
		g.Go(func() error {
			s.runAccount(gctx, j)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info("scheduler stopped")
	return ctx.Err()
}

func (s *Scheduler) runAccount(ctx context.Context, j job) {
	interval := j.account.Policy.Interval
	if interval <= 0 {
		interval = s.defaultInterval
	}
	logger := s.logger.With("account", j.account.ID, "interval", interval)

	if j.account.Policy.SyncOnStart {
		s.runSync(ctx, j, logger)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runSync(ctx, j, logger)
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context, j job, logger *slog.Logger) {
	backoff := s.backoff

	for attempt := 0; ; attempt++ {
		syncCtx, cancel := context.WithTimeout(ctx, syncTimeout)
		outcome := j.syncer.Sync(syncCtx, domain.Scope{})
		cancel()

		switch outcome {
		case domain.OutcomeSuccess:
			return
		case domain.OutcomeFailure:
			logger.Error("sync failed, waiting for next tick")
			return
		}

		if attempt == maxRetries {
			logger.Warn("sync retries exhausted", "attempts", attempt+1)
			return
		}
		logger.Warn("sync outcome retry", "attempt", attempt+1, "backoff", backoff)

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}
