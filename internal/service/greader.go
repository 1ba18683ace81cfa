package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"feedsync/internal/config"
	"feedsync/internal/domain"
	"feedsync/internal/ident"
	"feedsync/internal/provider/greader"
)

// greaderDefaultGroupRemoteID backs subscriptions the server reports without
// any category. Exempt from orphan removal.
const greaderDefaultGroupRemoteID = "user/-/state/com.google/reading-list"

// GReaderSyncer reconciles with a Google-Reader-compatible server. The
// protocol exposes three independent ID sets (unread, starred, read-since)
// rather than one ground truth, and both sides may have changed since the
// last pass, so this is a genuine bidirectional merge: the local replica wins
// for user actions taken here since last sync, the remote wins for actions
// taken on other devices.
type GReaderSyncer struct {
	account   *domain.Account
	client    GReaderClient
	stores    Stores
	sweeper   *Sweeper
	cfg       config.SyncConfig
	readSince time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

func NewGReaderSyncer(account *domain.Account, deps Deps) *GReaderSyncer {
	readSince := deps.ReadSince
	if readSince == 0 {
		readSince = 30 * 24 * time.Hour
	}
	return &GReaderSyncer{
		account:   account,
		client:    deps.GReader,
		stores:    deps.Stores,
		sweeper:   deps.Sweeper,
		cfg:       deps.Sync,
		readSince: readSince,
		logger:    deps.Logger.With("provider", "greader", "account", account.ID),
		now:       time.Now,
	}
}

func (s *GReaderSyncer) Capabilities() Capabilities {
	return Capabilities{NarrowSync: true, RemoteMutation: true}
}

// Sync runs the full-account reconciliation, or the narrowed single-feed
// top-up when the scope names a feed. Group narrowing has no protocol
// equivalent and falls back to a full pass.
func (s *GReaderSyncer) Sync(ctx context.Context, scope domain.Scope) domain.Outcome {
	start := s.now()

	var err error
	if scope.FeedID != "" {
		err = s.syncFeed(ctx, scope.FeedID)
	} else {
		err = s.run(ctx)
	}
	if err != nil {
		s.logger.Error("sync failed", "error", err)
		return outcomeFor(err)
	}

	if err := s.sweeper.Sweep(ctx, s.account); err != nil {
		s.logger.Warn("retention sweep failed", "error", err)
	}

	s.logger.Info("sync completed", "duration", s.now().Sub(start))
	return domain.OutcomeSuccess
}

func (s *GReaderSyncer) run(ctx context.Context) error {
	folders, err := s.client.TagList(ctx)
	if err != nil {
		return err
	}
	subs, err := s.client.SubscriptionList(ctx)
	if err != nil {
		return err
	}
	if err := s.syncMetadata(ctx, folders, subs); err != nil {
		return err
	}

	// The three remote ID sets are independent streams; fetch them
	// concurrently. Each is short-form decimal IDs.
	var remoteUnread, remoteStarred, remoteRead map[string]struct{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		remoteUnread, err = s.followStream(gctx, greader.StreamFilter{
			Stream:  greader.StreamReadingList,
			Exclude: greader.StreamRead,
		})
		return err
	})
	g.Go(func() error {
		var err error
		remoteStarred, err = s.followStream(gctx, greader.StreamFilter{
			Stream: greader.StreamStarred,
		})
		return err
	})
	g.Go(func() error {
		var err error
		remoteRead, err = s.followStream(gctx, greader.StreamFilter{
			Stream: greader.StreamRead,
			Since:  s.now().Add(-s.readSince),
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	meta, err := s.stores.Articles.ListMeta(ctx, s.account.ID)
	if err != nil {
		return storeErr("list article meta", err)
	}

	if err := s.reconcile(ctx, meta, remoteUnread, remoteStarred, remoteRead); err != nil {
		return err
	}

	if err := s.fetchMissing(ctx, meta, remoteUnread, remoteStarred, remoteRead); err != nil {
		return err
	}

	// Orphan removal only runs once every diff task has committed and all
	// article inserts are done, so a feed whose content just arrived in this
	// pass cannot be deleted out from under it.
	if err := s.removeOrphans(ctx, folders, subs); err != nil {
		return err
	}

	s.account.UpdatedAt = s.now()
	if err := s.stores.Accounts.Update(ctx, s.account); err != nil {
		return storeErr("update account", err)
	}
	return nil
}

// reconcile applies the four symmetric merge rules. They touch disjoint
// local/remote set pairs, so they run concurrently behind one barrier; the
// caller must not proceed to orphan removal until all four have committed.
func (s *GReaderSyncer) reconcile(ctx context.Context, meta []domain.ArticleMeta, remoteUnread, remoteStarred, remoteRead map[string]struct{}) error {
	var (
		markLocalRead    []string // composite IDs: locally unread, remotely read
		markLocalStarred []string // composite IDs: locally not starred, remotely starred
		pushUnstar       []string // short IDs: locally unstarred since last sync
		pushRead         []string // short IDs: locally read, remote still unread
	)

	for _, m := range meta {
		short := ident.Remote(m.ID)

		if _, read := remoteRead[short]; read && m.IsUnread {
			markLocalRead = append(markLocalRead, m.ID)
		}
		if _, starred := remoteStarred[short]; starred && !m.IsStarred {
			markLocalStarred = append(markLocalStarred, m.ID)
		}
		if _, starred := remoteStarred[short]; m.IsStarred && !starred {
			pushUnstar = append(pushUnstar, short)
		}
		if _, unread := remoteUnread[short]; unread && !m.IsUnread {
			pushRead = append(pushRead, short)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if len(markLocalRead) == 0 {
			return nil
		}
		// Remote wins: the user read these elsewhere.
		if err := s.stores.Articles.SetUnread(gctx, markLocalRead, false); err != nil {
			return storeErr("set read", err)
		}
		return nil
	})
	g.Go(func() error {
		if len(markLocalStarred) == 0 {
			return nil
		}
		// Remote wins: a positive starred signal the local copy lacks.
		if err := s.stores.Articles.SetStarred(gctx, markLocalStarred, true); err != nil {
			return storeErr("set starred", err)
		}
		return nil
	})
	g.Go(func() error {
		// Local wins: the local starred toggle is the newer signal.
		return s.pushEditTags(gctx, pushUnstar, "", greader.StreamStarred)
	})
	g.Go(func() error {
		// Local wins: the local read action is the newer signal.
		return s.pushEditTags(gctx, pushRead, greader.StreamRead, "")
	})
	return g.Wait()
}

// fetchMissing pulls bodies for every remote ID the local store has never
// seen, in chunks, capped by a counting semaphore. The cap is a courtesy
// limit for rate-limited servers, not a correctness requirement.
func (s *GReaderSyncer) fetchMissing(ctx context.Context, meta []domain.ArticleMeta, remoteUnread, remoteStarred, remoteRead map[string]struct{}) error {
	known := make(map[string]struct{}, len(meta))
	for _, m := range meta {
		known[ident.Remote(m.ID)] = struct{}{}
	}

	var toFetch []string
	for _, set := range []map[string]struct{}{remoteUnread, remoteStarred, remoteRead} {
		for short := range set {
			if _, ok := known[short]; ok {
				continue
			}
			known[short] = struct{}{}
			toFetch = append(toFetch, short)
		}
	}
	if len(toFetch) == 0 {
		return nil
	}

	sem := semaphore.NewWeighted(int64(s.cfg.ContentWorkers))
	g, gctx := errgroup.WithContext(ctx)

	for start := 0; start < len(toFetch); start += s.cfg.ContentChunk {
		chunk := toFetch[start:min(start+s.cfg.ContentChunk, len(toFetch))]
		g.Go(func() error {
			if err := sem.Acquire(gctx, 1); err != nil {
				return err
			}
			items, err := s.client.ItemContents(gctx, chunk)
			sem.Release(1)
			if err != nil {
				return err
			}

			articles := make([]domain.Article, 0, len(items))
			for _, item := range items {
				articles = append(articles, s.toArticle(item, remoteUnread, remoteStarred))
			}
			if _, err := s.stores.Articles.InsertIfAbsent(gctx, articles); err != nil {
				return storeErr("insert articles", err)
			}
			return nil
		})
	}
	return g.Wait()
}

// toArticle maps a fetched item; flags come from membership in the already
// fetched remote sets, never from a further remote call.
func (s *GReaderSyncer) toArticle(item greader.Item, remoteUnread, remoteStarred map[string]struct{}) domain.Article {
	short := greader.ShortItemID(item.ID)
	_, unread := remoteUnread[short]
	_, starred := remoteStarred[short]

	link := ""
	if len(item.Canonical) > 0 {
		link = item.Canonical[0].Href
	} else if len(item.Alternate) > 0 {
		link = item.Alternate[0].Href
	}

	article := domain.Article{
		ID:               ident.Compose(s.account.ID, short),
		FeedID:           ident.Compose(s.account.ID, item.Origin.StreamID),
		AccountID:        s.account.ID,
		Date:             time.Unix(item.Published, 0),
		Title:            item.Title,
		RawDescription:   item.Summary.Content,
		ShortDescription: shortDescription(item.Summary.Content),
		Link:             link,
		IsUnread:         unread,
		IsStarred:        starred,
		UpdatedAt:        s.now(),
	}
	if item.Author != "" {
		article.Author = &item.Author
	}
	return article
}

func (s *GReaderSyncer) syncMetadata(ctx context.Context, folders []greader.Category, subs []greader.Subscription) error {
	groups := make([]domain.Group, 0, len(folders)+1)
	groups = append(groups, domain.Group{
		ID:        ident.Compose(s.account.ID, greaderDefaultGroupRemoteID),
		Name:      "Default",
		AccountID: s.account.ID,
	})
	for _, f := range folders {
		groups = append(groups, domain.Group{
			ID:        ident.Compose(s.account.ID, f.ID),
			Name:      f.Label,
			AccountID: s.account.ID,
		})
	}
	if err := s.stores.Groups.UpsertBatch(ctx, groups); err != nil {
		return storeErr("upsert groups", err)
	}

	existing, err := s.stores.Feeds.ListByAccount(ctx, s.account.ID)
	if err != nil {
		return storeErr("list feeds", err)
	}
	existingIcon := make(map[string]*string, len(existing))
	for _, f := range existing {
		existingIcon[f.ID] = f.Icon
	}

	feeds := make([]domain.Feed, 0, len(subs))
	for _, sub := range subs {
		id := ident.Compose(s.account.ID, sub.ID)
		groupRemote := greaderDefaultGroupRemoteID
		if len(sub.Categories) > 0 {
			groupRemote = sub.Categories[0].ID
		}

		feed := domain.Feed{
			ID:        id,
			Name:      sub.Title,
			URL:       sub.URL,
			GroupID:   ident.Compose(s.account.ID, groupRemote),
			AccountID: s.account.ID,
			Icon:      existingIcon[id],
		}
		if feed.Icon == nil && sub.IconURL != "" {
			icon := sub.IconURL
			feed.Icon = &icon
		}
		feeds = append(feeds, feed)
	}
	if err := s.stores.Feeds.UpsertBatch(ctx, feeds); err != nil {
		return storeErr("upsert feeds", err)
	}
	return nil
}

func (s *GReaderSyncer) removeOrphans(ctx context.Context, folders []greader.Category, subs []greader.Subscription) error {
	remoteGroupSet := make(map[string]struct{}, len(folders)+1)
	remoteGroupSet[ident.Compose(s.account.ID, greaderDefaultGroupRemoteID)] = struct{}{}
	for _, f := range folders {
		remoteGroupSet[ident.Compose(s.account.ID, f.ID)] = struct{}{}
	}

	remoteFeedSet := make(map[string]struct{}, len(subs))
	for _, sub := range subs {
		remoteFeedSet[ident.Compose(s.account.ID, sub.ID)] = struct{}{}
	}

	localGroups, err := s.stores.Groups.ListByAccount(ctx, s.account.ID)
	if err != nil {
		return storeErr("list groups", err)
	}
	var orphanGroups []string
	for _, g := range localGroups {
		if _, ok := remoteGroupSet[g.ID]; !ok {
			orphanGroups = append(orphanGroups, g.ID)
		}
	}
	if len(orphanGroups) > 0 {
		if err := s.stores.Groups.DeleteBatch(ctx, orphanGroups); err != nil {
			return storeErr("delete orphan groups", err)
		}
	}

	localFeeds, err := s.stores.Feeds.ListByAccount(ctx, s.account.ID)
	if err != nil {
		return storeErr("list feeds", err)
	}
	var orphanFeeds []string
	for _, f := range localFeeds {
		if _, ok := remoteFeedSet[f.ID]; !ok {
			orphanFeeds = append(orphanFeeds, f.ID)
		}
	}
	if len(orphanFeeds) > 0 {
		if err := s.stores.Feeds.DeleteBatch(ctx, orphanFeeds); err != nil {
			return storeErr("delete orphan feeds", err)
		}
	}
	return nil
}

// syncFeed is the narrowed single-feed top-up: it fills in this feed's
// missing articles without touching account-wide flag state.
func (s *GReaderSyncer) syncFeed(ctx context.Context, feedID string) error {
	feed, err := s.stores.Feeds.Get(ctx, feedID)
	if err != nil {
		return storeErr("get feed", err)
	}
	stream := ident.Remote(feed.ID)

	var allIDs, unreadIDs, starredIDs map[string]struct{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		allIDs, err = s.followStream(gctx, greader.StreamFilter{
			Stream: stream,
			Since:  s.now().Add(-s.readSince),
		})
		return err
	})
	g.Go(func() error {
		var err error
		unreadIDs, err = s.followStream(gctx, greader.StreamFilter{
			Stream:  stream,
			Exclude: greader.StreamRead,
		})
		return err
	})
	g.Go(func() error {
		var err error
		starredIDs, err = s.followStream(gctx, greader.StreamFilter{
			Stream: greader.StreamStarred,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	// The starred stream is account-wide; keep only this feed's items so the
	// top-up never pulls in articles belonging to other feeds.
	for id := range starredIDs {
		if _, ok := allIDs[id]; !ok {
			delete(starredIDs, id)
		}
	}

	meta, err := s.stores.Articles.ListMetaByFeed(ctx, feed.ID)
	if err != nil {
		return storeErr("list article meta", err)
	}

	if err := s.fetchMissing(ctx, meta, unreadIDs, starredIDs, allIDs); err != nil {
		return err
	}

	s.account.UpdatedAt = s.now()
	if err := s.stores.Accounts.Update(ctx, s.account); err != nil {
		return storeErr("update account", err)
	}
	return nil
}

// followStream pages an ID stream until the server stops returning a
// continuation token.
func (s *GReaderSyncer) followStream(ctx context.Context, filter greader.StreamFilter) (map[string]struct{}, error) {
	set := make(map[string]struct{})
	continuation := ""
	for {
		ids, next, err := s.client.StreamItemIDs(ctx, filter, continuation)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			set[id] = struct{}{}
		}
		if next == "" {
			return set, nil
		}
		continuation = next
	}
}

func (s *GReaderSyncer) pushEditTags(ctx context.Context, shortIDs []string, add, remove string) error {
	for start := 0; start < len(shortIDs); start += s.cfg.ContentChunk {
		chunk := shortIDs[start:min(start+s.cfg.ContentChunk, len(shortIDs))]
		if err := s.client.EditTags(ctx, chunk, add, remove); err != nil {
			return err
		}
	}
	return nil
}

// MarkAsRead mutates locally first, then pushes the same change via edit-tag.
// A failed push keeps the local state; the next reconciliation pass heals it.
func (s *GReaderSyncer) MarkAsRead(ctx context.Context, scope domain.MarkScope, isUnread bool) error {
	if err := scope.Validate(); err != nil {
		return err
	}
	scope.AccountID = s.account.ID

	// Affected IDs are collected before the local flip so the push set
	// matches what actually changed.
	affected, err := s.stores.Articles.ListIDs(ctx, scope, !isUnread)
	if err != nil {
		return storeErr("list affected articles", err)
	}

	if err := s.stores.Articles.MarkRead(ctx, scope, isUnread); err != nil {
		return storeErr("mark read", err)
	}

	shorts := make([]string, len(affected))
	for i, id := range affected {
		shorts[i] = ident.Remote(id)
	}

	var pushErr error
	if isUnread {
		pushErr = s.pushEditTags(ctx, shorts, "", greader.StreamRead)
	} else {
		pushErr = s.pushEditTags(ctx, shorts, greader.StreamRead, "")
	}
	if pushErr != nil {
		s.logger.Warn("remote mark push failed, keeping local state", "error", pushErr)
	}
	return nil
}

func (s *GReaderSyncer) MarkAsStarred(ctx context.Context, articleID string, starred bool) error {
	if err := s.stores.Articles.SetStarred(ctx, []string{articleID}, starred); err != nil {
		return storeErr("set starred", err)
	}

	short := ident.Remote(articleID)
	var err error
	if starred {
		err = s.client.EditTags(ctx, []string{short}, greader.StreamStarred, "")
	} else {
		err = s.client.EditTags(ctx, []string{short}, "", greader.StreamStarred)
	}
	if err != nil {
		s.logger.Warn("remote star push failed, keeping local state", "error", err)
	}
	return nil
}

func (s *GReaderSyncer) AddGroup(ctx context.Context, name string) (*domain.Group, error) {
	return nil, ErrUnsupported
}

func (s *GReaderSyncer) RenameGroup(ctx context.Context, groupID, name string) error {
	return ErrUnsupported
}
