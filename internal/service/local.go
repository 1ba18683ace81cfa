package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"feedsync/internal/config"
	"feedsync/internal/domain"
	"feedsync/internal/ident"
)

const shortDescriptionLimit = 280

// LocalSyncer polls plain RSS/Atom feeds. It is the only provider with no
// remote authority: articles are insert-if-absent and never mutated after
// creation, and read/starred state lives purely in the local store.
type LocalSyncer struct {
	account  *domain.Account
	fetcher  FeedFetcher
	stores   Stores
	notifier Notifier
	sweeper  *Sweeper
	cfg      config.SyncConfig
	logger   *slog.Logger
	now      func() time.Time
}

func NewLocalSyncer(account *domain.Account, deps Deps) *LocalSyncer {
	return &LocalSyncer{
		account:  account,
		fetcher:  deps.Fetcher,
		stores:   deps.Stores,
		notifier: deps.Notifier,
		sweeper:  deps.Sweeper,
		cfg:      deps.Sync,
		logger:   deps.Logger.With("provider", "local", "account", account.ID),
		now:      time.Now,
	}
}

func (s *LocalSyncer) Capabilities() Capabilities {
	return Capabilities{
		NarrowSync:  true,
		AddGroup:    true,
		RenameGroup: true,
	}
}

func (s *LocalSyncer) Sync(ctx context.Context, scope domain.Scope) domain.Outcome {
	start := s.now()

	feeds, err := s.feedsInScope(ctx, scope)
	if err != nil {
		s.logger.Error("sync failed", "stage", "list feeds", "error", err)
		return outcomeFor(err)
	}

	stats := domain.SyncStats{AccountID: s.account.ID, Provider: domain.ProviderLocal}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.FeedWorkers)

	results := make([]int, len(feeds))
	errCount := make([]bool, len(feeds))

	for i := range feeds {
		g.Go(func() error {
			inserted, err := s.syncFeed(gctx, &feeds[i])
			if err != nil {
				// Per-feed failures are isolated; the batch continues.
				s.logger.Warn("feed sync failed",
					"feed", feeds[i].ID,
					"url", feeds[i].URL,
					"error", err,
				)
				errCount[i] = true
				return nil
			}
			results[i] = inserted
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("sync failed", "stage", "feed loop", "error", err)
		return outcomeFor(err)
	}

	for i := range feeds {
		stats.FeedsSynced++
		stats.NewArticles += results[i]
		if errCount[i] {
			stats.Errors++
		}
	}

	s.account.UpdatedAt = s.now()
	if err := s.stores.Accounts.Update(ctx, s.account); err != nil {
		s.logger.Error("sync failed", "stage", "stamp account", "error", err)
		return outcomeFor(storeErr("update account", err))
	}

	if err := s.sweeper.Sweep(ctx, s.account); err != nil {
		s.logger.Warn("retention sweep failed", "error", err)
	}

	stats.Duration = s.now().Sub(start)
	s.logger.Info("sync completed",
		"feeds", stats.FeedsSynced,
		"new", stats.NewArticles,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)
	return domain.OutcomeSuccess
}

func (s *LocalSyncer) feedsInScope(ctx context.Context, scope domain.Scope) ([]domain.Feed, error) {
	switch {
	case scope.FeedID != "":
		feed, err := s.stores.Feeds.Get(ctx, scope.FeedID)
		if err != nil {
			return nil, storeErr("get feed", err)
		}
		return []domain.Feed{*feed}, nil
	case scope.GroupID != "":
		feeds, err := s.stores.Feeds.ListByGroup(ctx, scope.GroupID)
		if err != nil {
			return nil, storeErr("list group feeds", err)
		}
		return feeds, nil
	default:
		feeds, err := s.stores.Feeds.ListByAccount(ctx, s.account.ID)
		if err != nil {
			return nil, storeErr("list feeds", err)
		}
		return feeds, nil
	}
}

func (s *LocalSyncer) syncFeed(ctx context.Context, feed *domain.Feed) (int, error) {
	parsed, err := s.fetcher.Fetch(ctx, feed.URL)
	if err != nil {
		return 0, err
	}

	tombstones, err := s.stores.Archive.Links(ctx, feed.ID)
	if err != nil {
		return 0, storeErr("load tombstones", err)
	}

	articles := s.buildArticles(feed, parsed, tombstones)
	if len(articles) == 0 {
		return 0, nil
	}

	inserted, err := s.stores.Articles.InsertIfAbsent(ctx, articles)
	if err != nil {
		return 0, storeErr("insert articles", err)
	}

	if feed.Icon == nil {
		s.backfillIcon(ctx, feed, parsed)
	}

	if len(inserted) > 0 && feed.Notify && s.notifier != nil {
		if err := s.notifier.NotifyNewArticles(ctx, feed, inserted); err != nil {
			s.logger.Warn("notify failed", "feed", feed.ID, "error", err)
		}
	}

	return len(inserted), nil
}

func (s *LocalSyncer) buildArticles(feed *domain.Feed, parsed *gofeed.Feed, tombstones map[string]struct{}) []domain.Article {
	now := s.now()
	seen := make(map[string]struct{}, len(parsed.Items))
	articles := make([]domain.Article, 0, len(parsed.Items))

	for _, item := range parsed.Items {
		remoteID := item.GUID
		if remoteID == "" {
			remoteID = item.Link
		}
		if remoteID == "" {
			continue
		}

		id := ident.Compose(s.account.ID, remoteID)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if _, dead := tombstones[item.Link]; dead {
			continue
		}
		if s.blocked(item.Link) {
			continue
		}

		published := now
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		}

		body := item.Content
		if body == "" {
			body = item.Description
		}

		article := domain.Article{
			ID:               id,
			FeedID:           feed.ID,
			AccountID:        s.account.ID,
			Date:             published,
			Title:            item.Title,
			RawDescription:   body,
			ShortDescription: shortDescription(body),
			Link:             item.Link,
			IsUnread:         true,
			UpdatedAt:        now,
		}
		if len(item.Authors) > 0 {
			article.Author = &item.Authors[0].Name
		}
		if item.Image != nil && item.Image.URL != "" {
			article.Img = &item.Image.URL
		}

		articles = append(articles, article)
	}

	return articles
}

func (s *LocalSyncer) blocked(link string) bool {
	for _, pattern := range s.account.Policy.BlockList {
		if pattern != "" && strings.Contains(link, pattern) {
			return true
		}
	}
	return false
}

// backfillIcon is best effort: a missing icon never fails the feed sync.
func (s *LocalSyncer) backfillIcon(ctx context.Context, feed *domain.Feed, parsed *gofeed.Feed) {
	icon := ""
	if parsed.Image != nil {
		icon = parsed.Image.URL
	}
	if icon == "" {
		site := parsed.Link
		if site == "" {
			site = feed.URL
		}
		discovered, err := s.fetcher.DiscoverIcon(ctx, site)
		if err != nil {
			s.logger.Debug("icon discovery failed", "feed", feed.ID, "error", err)
			return
		}
		icon = discovered
	}

	if err := s.stores.Feeds.UpdateIcon(ctx, feed.ID, icon); err != nil {
		s.logger.Warn("icon update failed", "feed", feed.ID, "error", err)
	}
}

func (s *LocalSyncer) MarkAsRead(ctx context.Context, scope domain.MarkScope, isUnread bool) error {
	if err := scope.Validate(); err != nil {
		return err
	}
	scope.AccountID = s.account.ID

	if err := s.stores.Articles.MarkRead(ctx, scope, isUnread); err != nil {
		return storeErr("mark read", err)
	}
	return nil
}

func (s *LocalSyncer) MarkAsStarred(ctx context.Context, articleID string, starred bool) error {
	if err := s.stores.Articles.SetStarred(ctx, []string{articleID}, starred); err != nil {
		return storeErr("set starred", err)
	}
	return nil
}

func (s *LocalSyncer) AddGroup(ctx context.Context, name string) (*domain.Group, error) {
	group := domain.Group{
		ID:        ident.NewLocal(s.account.ID),
		Name:      name,
		AccountID: s.account.ID,
	}
	if err := s.stores.Groups.UpsertBatch(ctx, []domain.Group{group}); err != nil {
		return nil, storeErr("add group", err)
	}
	return &group, nil
}

func (s *LocalSyncer) RenameGroup(ctx context.Context, groupID, name string) error {
	if err := s.stores.Groups.Rename(ctx, groupID, name); err != nil {
		return storeErr("rename group", err)
	}
	return nil
}

func shortDescription(html string) string {
	text := stripTags(html)
	text = strings.Join(strings.Fields(text), " ")
	if runes := []rune(text); len(runes) > shortDescriptionLimit {
		text = string(runes[:shortDescriptionLimit])
	}
	return text
}

func stripTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}
