package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"feedsync/internal/domain"
	"feedsync/internal/service/mocks"
)

type SweeperTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	articles  *mocks.MockArticleStore
	archive   *mocks.MockArchiveStore
	txManager *mocks.MockTransactionManager

	sweeper *Sweeper
	now     time.Time
}

func (s *SweeperTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.articles = mocks.NewMockArticleStore(s.ctrl)
	s.archive = mocks.NewMockArchiveStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	s.sweeper = NewSweeper(s.articles, s.archive, s.txManager, logger)
	s.sweeper.now = func() time.Time { return s.now }
}

func (s *SweeperTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSweeperTestSuite(t *testing.T) {
	suite.Run(t, new(SweeperTestSuite))
}

func (s *SweeperTestSuite) account(keepDays int) *domain.Account {
	return &domain.Account{
		ID:       7,
		Provider: domain.ProviderLocal,
		Policy:   domain.SyncPolicy{KeepDays: keepDays},
	}
}

func (s *SweeperTestSuite) expectTransaction() {
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *SweeperTestSuite) TestSweep_NegativeKeepDaysMeansForever() {
	err := s.sweeper.Sweep(context.Background(), s.account(-1))
	s.NoError(err)
}

func (s *SweeperTestSuite) TestSweep_PurgesAgedAndRecordsTombstones() {
	ctx := context.Background()
	cutoff := s.now.AddDate(0, 0, -30)

	aged := []domain.Article{
		{ID: "7$a", FeedID: "7$feed1", Link: "https://example.com/a"},
		{ID: "7$b", FeedID: "7$feed2", Link: "https://example.com/b"},
	}
	s.articles.EXPECT().ListOlderThan(ctx, int64(7), cutoff).Return(aged, nil)

	s.expectTransaction()
	s.articles.EXPECT().DeleteByIDs(gomock.Any(), []string{"7$a", "7$b"}).Return(nil)
	s.archive.EXPECT().Add(gomock.Any(), []domain.ArchivedArticle{
		{FeedID: "7$feed1", Link: "https://example.com/a"},
		{FeedID: "7$feed2", Link: "https://example.com/b"},
	}).Return(nil)

	err := s.sweeper.Sweep(ctx, s.account(30))
	s.NoError(err)
}

func (s *SweeperTestSuite) TestSweep_StarredExemptEvenAtZeroKeepDays() {
	ctx := context.Background()

	// KeepDays 0 purges everything aged, cutoff is now.
	aged := []domain.Article{
		{ID: "7$plain", FeedID: "7$feed", Link: "https://example.com/plain"},
		{ID: "7$starred", FeedID: "7$feed", Link: "https://example.com/starred", IsStarred: true},
	}
	s.articles.EXPECT().ListOlderThan(ctx, int64(7), s.now).Return(aged, nil)

	s.expectTransaction()
	s.articles.EXPECT().DeleteByIDs(gomock.Any(), []string{"7$plain"}).Return(nil)
	s.archive.EXPECT().Add(gomock.Any(), []domain.ArchivedArticle{
		{FeedID: "7$feed", Link: "https://example.com/plain"},
	}).Return(nil)

	err := s.sweeper.Sweep(ctx, s.account(0))
	s.NoError(err)
}

func (s *SweeperTestSuite) TestSweep_NothingToPurgeSkipsTransaction() {
	ctx := context.Background()

	aged := []domain.Article{
		{ID: "7$starred", FeedID: "7$feed", Link: "https://example.com/starred", IsStarred: true},
	}
	s.articles.EXPECT().ListOlderThan(ctx, int64(7), gomock.Any()).Return(aged, nil)

	err := s.sweeper.Sweep(ctx, s.account(7))
	s.NoError(err)
}

func (s *SweeperTestSuite) TestSweep_StorageErrorIsTerminal() {
	ctx := context.Background()

	s.articles.EXPECT().ListOlderThan(ctx, int64(7), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	err := s.sweeper.Sweep(ctx, s.account(30))
	s.Error(err)
	s.ErrorIs(err, errStorage)
	s.Equal(domain.OutcomeFailure, outcomeFor(err))
}

func (s *SweeperTestSuite) TestSweep_RolledBackPurgeSurfacesError() {
	ctx := context.Background()

	aged := []domain.Article{
		{ID: "7$a", FeedID: "7$feed", Link: "https://example.com/a"},
	}
	s.articles.EXPECT().ListOlderThan(ctx, int64(7), gomock.Any()).Return(aged, nil)
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		Return(errors.New("deadlock detected"))

	err := s.sweeper.Sweep(ctx, s.account(30))
	s.Error(err)
	s.ErrorIs(err, errStorage)
}
