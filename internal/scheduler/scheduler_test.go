package scheduler

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"feedsync/internal/domain"
)

type stubSyncer struct {
	calls    atomic.Int32
	outcomes []domain.Outcome
}

func (s *stubSyncer) Sync(ctx context.Context, scope domain.Scope) domain.Outcome {
	n := int(s.calls.Add(1)) - 1
	if n >= len(s.outcomes) {
		return domain.OutcomeSuccess
	}
	return s.outcomes[n]
}

type SchedulerTestSuite struct {
	suite.Suite
	logger *slog.Logger
}

func (s *SchedulerTestSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (s *SchedulerTestSuite) account(syncOnStart bool) *domain.Account {
	return &domain.Account{
		ID:     1,
		Policy: domain.SyncPolicy{Interval: time.Hour, SyncOnStart: syncOnStart},
	}
}

func (s *SchedulerTestSuite) TestStart_SyncOnStartRunsImmediately() {
	syncer := &stubSyncer{}
	sched := NewScheduler(time.Hour, s.logger)
	sched.Add(s.account(true), syncer)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = sched.Start(ctx)

	s.Equal(int32(1), syncer.calls.Load())
}

func (s *SchedulerTestSuite) TestStart_NoSyncOnStartWaitsForTick() {
	syncer := &stubSyncer{}
	sched := NewScheduler(time.Hour, s.logger)
	sched.Add(s.account(false), syncer)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = sched.Start(ctx)

	s.Equal(int32(0), syncer.calls.Load())
}

func (s *SchedulerTestSuite) TestRunSync_RetriesWithBackoffUntilSuccess() {
	syncer := &stubSyncer{outcomes: []domain.Outcome{domain.OutcomeRetry, domain.OutcomeRetry, domain.OutcomeSuccess}}
	sched := NewScheduler(time.Hour, s.logger)
	sched.backoff = time.Millisecond
	sched.Add(s.account(true), syncer)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_ = sched.Start(ctx)

	s.Equal(int32(3), syncer.calls.Load())
}

func (s *SchedulerTestSuite) TestRunSync_FailureDoesNotRetry() {
	syncer := &stubSyncer{outcomes: []domain.Outcome{domain.OutcomeFailure}}
	sched := NewScheduler(time.Hour, s.logger)
	sched.backoff = time.Millisecond
	sched.Add(s.account(true), syncer)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = sched.Start(ctx)

	s.Equal(int32(1), syncer.calls.Load())
}

func (s *SchedulerTestSuite) TestRunSync_RetriesAreBounded() {
	syncer := &stubSyncer{outcomes: []domain.Outcome{
		domain.OutcomeRetry, domain.OutcomeRetry, domain.OutcomeRetry,
		domain.OutcomeRetry, domain.OutcomeRetry, domain.OutcomeRetry,
	}}
	sched := NewScheduler(time.Hour, s.logger)
	sched.backoff = time.Millisecond
	sched.Add(s.account(true), syncer)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_ = sched.Start(ctx)

	// Initial attempt plus maxRetries re-runs.
	s.Equal(int32(maxRetries+1), syncer.calls.Load())
}
