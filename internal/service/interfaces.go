package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/mmcdole/gofeed"

	"feedsync/internal/domain"
	"feedsync/internal/provider/fever"
	"feedsync/internal/provider/greader"
)

type AccountStore interface {
	Get(ctx context.Context, id int64) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
}

type GroupStore interface {
	UpsertBatch(ctx context.Context, groups []domain.Group) error
	ListByAccount(ctx context.Context, accountID int64) ([]domain.Group, error)
	Rename(ctx context.Context, id, name string) error
	// DeleteBatch removes groups and their feeds, keeping starred articles.
	DeleteBatch(ctx context.Context, ids []string) error
}

type FeedStore interface {
	Get(ctx context.Context, id string) (*domain.Feed, error)
	UpsertBatch(ctx context.Context, feeds []domain.Feed) error
	ListByAccount(ctx context.Context, accountID int64) ([]domain.Feed, error)
	ListByGroup(ctx context.Context, groupID string) ([]domain.Feed, error)
	UpdateIcon(ctx context.Context, feedID, icon string) error
	// DeleteBatch removes feeds and their articles, keeping starred articles.
	DeleteBatch(ctx context.Context, ids []string) error
}

type ArticleStore interface {
	// InsertIfAbsent writes articles whose ID does not exist yet and returns
	// the subset actually inserted. Existing rows are never touched.
	InsertIfAbsent(ctx context.Context, articles []domain.Article) ([]domain.Article, error)
	ListMeta(ctx context.Context, accountID int64) ([]domain.ArticleMeta, error)
	ListMetaByFeed(ctx context.Context, feedID string) ([]domain.ArticleMeta, error)
	// ListIDs returns IDs of articles in scope whose unread flag currently
	// equals isUnread.
	ListIDs(ctx context.Context, scope domain.MarkScope, isUnread bool) ([]string, error)
	MarkRead(ctx context.Context, scope domain.MarkScope, isUnread bool) error
	SetUnread(ctx context.Context, ids []string, unread bool) error
	SetStarred(ctx context.Context, ids []string, starred bool) error
	ListOlderThan(ctx context.Context, accountID int64, cutoff time.Time) ([]domain.Article, error)
	DeleteByIDs(ctx context.Context, ids []string) error
}

type ArchiveStore interface {
	Links(ctx context.Context, feedID string) (map[string]struct{}, error)
	Add(ctx context.Context, refs []domain.ArchivedArticle) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier delivers new-article events for feeds with notifications enabled.
type Notifier interface {
	NotifyNewArticles(ctx context.Context, feed *domain.Feed, articles []domain.Article) error
}

// FeedFetcher downloads and parses plain RSS/Atom feeds.
type FeedFetcher interface {
	Fetch(ctx context.Context, feedURL string) (*gofeed.Feed, error)
	DiscoverIcon(ctx context.Context, siteURL string) (string, error)
}

// FeverClient exposes the Fever refresh API operations the orchestrator uses.
type FeverClient interface {
	Validate(ctx context.Context) error
	Groups(ctx context.Context) ([]fever.Group, []fever.FeedsGroup, error)
	Feeds(ctx context.Context) ([]fever.Feed, []fever.FeedsGroup, error)
	Favicons(ctx context.Context) (map[int64]string, error)
	ItemsSince(ctx context.Context, sinceID int64) ([]fever.Item, error)
	UnreadItemIDs(ctx context.Context) ([]int64, error)
	SavedItemIDs(ctx context.Context) ([]int64, error)
	MarkItem(ctx context.Context, itemID int64, action string) error
	MarkFeed(ctx context.Context, feedID int64, before int64) error
	MarkGroup(ctx context.Context, groupID int64, before int64) error
}

// GReaderClient exposes the Google-Reader-compatible API operations the
// orchestrator uses.
type GReaderClient interface {
	Validate(ctx context.Context) error
	TagList(ctx context.Context) ([]greader.Category, error)
	SubscriptionList(ctx context.Context) ([]greader.Subscription, error)
	StreamItemIDs(ctx context.Context, filter greader.StreamFilter, continuation string) ([]string, string, error)
	ItemContents(ctx context.Context, ids []string) ([]greader.Item, error)
	EditTags(ctx context.Context, ids []string, add, remove string) error
}

// Stores bundles the entity-store dependencies every orchestrator needs.
type Stores struct {
	Accounts AccountStore
	Groups   GroupStore
	Feeds    FeedStore
	Articles ArticleStore
	Archive  ArchiveStore
}
