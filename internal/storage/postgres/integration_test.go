//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"feedsync/internal/domain"
	"feedsync/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
	accountID int64
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_init.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM archived_articles")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM articles")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM feeds")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM groups")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM accounts")

	err := s.db.GetContext(s.ctx, &s.accountID,
		"INSERT INTO accounts (name, provider) VALUES ('test', 'local') RETURNING id")
	s.Require().NoError(err)
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) article(id, feedID string, date time.Time) domain.Article {
	return domain.Article{
		ID:        id,
		FeedID:    feedID,
		AccountID: s.accountID,
		Date:      date,
		Title:     "Article " + id,
		Link:      "https://example.com/" + id,
		IsUnread:  true,
		UpdatedAt: date,
	}
}

func (s *PostgresIntegrationSuite) TestArticleStore_InsertIfAbsent_ReturnsOnlyNew() {
	store := NewArticleStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	first := []domain.Article{
		s.article("1$a", "1$feed", now),
		s.article("1$b", "1$feed", now),
	}
	inserted, err := store.InsertIfAbsent(s.ctx, first)
	s.NoError(err)
	s.Len(inserted, 2)

	second := []domain.Article{
		s.article("1$b", "1$feed", now),
		s.article("1$c", "1$feed", now),
	}
	inserted, err = store.InsertIfAbsent(s.ctx, second)
	s.NoError(err)
	s.Len(inserted, 1)
	s.Equal("1$c", inserted[0].ID)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM articles")
	s.NoError(err)
	s.Equal(3, count)
}

func (s *PostgresIntegrationSuite) TestArticleStore_InsertIfAbsent_PreservesLocalFlags() {
	store := NewArticleStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	_, err := store.InsertIfAbsent(s.ctx, []domain.Article{s.article("1$a", "1$feed", now)})
	s.Require().NoError(err)

	err = store.SetUnread(s.ctx, []string{"1$a"}, false)
	s.Require().NoError(err)

	// Re-syncing the same remote item must not flip it back to unread.
	inserted, err := store.InsertIfAbsent(s.ctx, []domain.Article{s.article("1$a", "1$feed", now)})
	s.NoError(err)
	s.Empty(inserted)

	var unread bool
	err = s.db.GetContext(s.ctx, &unread, "SELECT is_unread FROM articles WHERE id = '1$a'")
	s.NoError(err)
	s.False(unread)
}

func (s *PostgresIntegrationSuite) TestArticleStore_MarkRead_Scopes() {
	store := NewArticleStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	_, err := store.InsertIfAbsent(s.ctx, []domain.Article{
		s.article("1$a", "1$feed1", now),
		s.article("1$b", "1$feed1", now),
		s.article("1$c", "1$feed2", now),
	})
	s.Require().NoError(err)

	scope := domain.MarkScope{AccountID: s.accountID, FeedID: "1$feed1", Before: domain.MaxBefore}
	err = store.MarkRead(s.ctx, scope, false)
	s.NoError(err)

	ids, err := store.ListIDs(s.ctx, domain.MarkScope{AccountID: s.accountID, Before: domain.MaxBefore}, true)
	s.NoError(err)
	s.Equal([]string{"1$c"}, ids)
}

func (s *PostgresIntegrationSuite) TestArticleStore_MarkRead_BeforeCutoff() {
	store := NewArticleStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	_, err := store.InsertIfAbsent(s.ctx, []domain.Article{
		s.article("1$old", "1$feed", now.Add(-48*time.Hour)),
		s.article("1$new", "1$feed", now),
	})
	s.Require().NoError(err)

	scope := domain.MarkScope{AccountID: s.accountID, Before: now.Add(-24 * time.Hour)}
	err = store.MarkRead(s.ctx, scope, false)
	s.NoError(err)

	ids, err := store.ListIDs(s.ctx, domain.MarkScope{AccountID: s.accountID, Before: domain.MaxBefore}, true)
	s.NoError(err)
	s.Equal([]string{"1$new"}, ids)
}

func (s *PostgresIntegrationSuite) TestArticleStore_ListOlderThan() {
	store := NewArticleStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	_, err := store.InsertIfAbsent(s.ctx, []domain.Article{
		s.article("1$old", "1$feed", now.Add(-72*time.Hour)),
		s.article("1$new", "1$feed", now),
	})
	s.Require().NoError(err)

	aged, err := store.ListOlderThan(s.ctx, s.accountID, now.Add(-24*time.Hour))
	s.NoError(err)
	s.Len(aged, 1)
	s.Equal("1$old", aged[0].ID)
}

func (s *PostgresIntegrationSuite) TestFeedStore_UpsertBatch_PreservesUserToggles() {
	store := NewFeedStore(s.db)

	feed := domain.Feed{
		ID:        "1$feed",
		Name:      "Original",
		URL:       "https://example.com/rss",
		GroupID:   "1$group",
		AccountID: s.accountID,
		Icon:      utils.Ptr("https://example.com/icon.png"),
		Notify:    true,
	}
	s.Require().NoError(store.UpsertBatch(s.ctx, []domain.Feed{feed}))

	// A later sync carries no icon and no user toggles.
	feed.Name = "Renamed"
	feed.Icon = nil
	feed.Notify = false
	s.Require().NoError(store.UpsertBatch(s.ctx, []domain.Feed{feed}))

	got, err := store.Get(s.ctx, "1$feed")
	s.NoError(err)
	s.Equal("Renamed", got.Name)
	s.True(got.Notify)
	s.Require().NotNil(got.Icon)
	s.Equal("https://example.com/icon.png", *got.Icon)
}

func (s *PostgresIntegrationSuite) TestGroupStore_DeleteBatch_KeepsStarredArticles() {
	groups := NewGroupStore(s.db)
	feeds := NewFeedStore(s.db)
	articles := NewArticleStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	s.Require().NoError(groups.UpsertBatch(s.ctx, []domain.Group{
		{ID: "1$group", Name: "News", AccountID: s.accountID},
	}))
	s.Require().NoError(feeds.UpsertBatch(s.ctx, []domain.Feed{
		{ID: "1$feed", Name: "Feed", URL: "https://example.com/rss", GroupID: "1$group", AccountID: s.accountID},
	}))
	_, err := articles.InsertIfAbsent(s.ctx, []domain.Article{
		s.article("1$plain", "1$feed", now),
		s.article("1$starred", "1$feed", now),
	})
	s.Require().NoError(err)
	s.Require().NoError(articles.SetStarred(s.ctx, []string{"1$starred"}, true))

	s.Require().NoError(groups.DeleteBatch(s.ctx, []string{"1$group"}))

	var remaining []string
	err = s.db.SelectContext(s.ctx, &remaining, "SELECT id FROM articles ORDER BY id")
	s.NoError(err)
	s.Equal([]string{"1$starred"}, remaining)

	var feedCount int
	err = s.db.GetContext(s.ctx, &feedCount, "SELECT COUNT(*) FROM feeds")
	s.NoError(err)
	s.Equal(0, feedCount)
}

func (s *PostgresIntegrationSuite) TestArchiveStore_AddAndLinks() {
	store := NewArchiveStore(s.db)

	refs := []domain.ArchivedArticle{
		{FeedID: "1$feed", Link: "https://example.com/a"},
		{FeedID: "1$feed", Link: "https://example.com/b"},
	}
	s.Require().NoError(store.Add(s.ctx, refs))
	// Re-adding the same refs is a no-op.
	s.Require().NoError(store.Add(s.ctx, refs))

	links, err := store.Links(s.ctx, "1$feed")
	s.NoError(err)
	s.Len(links, 2)
	s.Contains(links, "https://example.com/a")

	other, err := store.Links(s.ctx, "1$other")
	s.NoError(err)
	s.Empty(other)
}

func (s *PostgresIntegrationSuite) TestAccountStore_Update_WritesCursor() {
	store := NewAccountStore(s.db)

	account, err := store.Get(s.ctx, s.accountID)
	s.Require().NoError(err)

	account.LastArticleID = "1$12345"
	account.UpdatedAt = time.Now().Truncate(time.Microsecond)
	s.Require().NoError(store.Update(s.ctx, account))

	got, err := store.Get(s.ctx, s.accountID)
	s.NoError(err)
	s.Equal("1$12345", got.LastArticleID)
}

func (s *PostgresIntegrationSuite) TestTransactionManager_RollsBackOnError() {
	tm := NewTransactionManager(s.db)
	articles := NewArticleStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	_, err := articles.InsertIfAbsent(s.ctx, []domain.Article{s.article("1$a", "1$feed", now)})
	s.Require().NoError(err)

	err = tm.WithTransaction(s.ctx, func(txCtx context.Context) error {
		if err := articles.DeleteByIDs(txCtx, []string{"1$a"}); err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM articles WHERE id = '1$a'")
	s.NoError(err)
	s.Equal(1, count)
}
