package service

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"feedsync/internal/domain"
	"feedsync/internal/ident"
	"feedsync/internal/provider/fever"
)

// feverDefaultGroupRemoteID is the synthetic group backing feeds the server
// maps to no group. Exempt from orphan removal.
const feverDefaultGroupRemoteID = "0"

// FeverSyncer reconciles with a Fever-protocol server. Fever exposes one
// monotonically increasing item cursor and full unread/saved ID sets; the
// remote is authoritative for both flags, so flag sync is a pure local
// overwrite.
type FeverSyncer struct {
	account *domain.Account
	client  FeverClient
	stores  Stores
	sweeper *Sweeper
	logger  *slog.Logger
	now     func() time.Time
}

func NewFeverSyncer(account *domain.Account, deps Deps) *FeverSyncer {
	return &FeverSyncer{
		account: account,
		client:  deps.Fever,
		stores:  deps.Stores,
		sweeper: deps.Sweeper,
		logger:  deps.Logger.With("provider", "fever", "account", account.ID),
		now:     time.Now,
	}
}

func (s *FeverSyncer) Capabilities() Capabilities {
	return Capabilities{RemoteMutation: true}
}

// Sync always runs account-wide: the Fever protocol has no server-side
// narrowing.
func (s *FeverSyncer) Sync(ctx context.Context, scope domain.Scope) domain.Outcome {
	if !scope.IsAccountWide() {
		s.logger.Debug("scope narrowing unsupported, running full sync")
	}

	start := s.now()
	newItems, err := s.run(ctx)
	if err != nil {
		s.logger.Error("sync failed", "error", err)
		return outcomeFor(err)
	}

	if err := s.sweeper.Sweep(ctx, s.account); err != nil {
		s.logger.Warn("retention sweep failed", "error", err)
	}

	s.logger.Info("sync completed",
		"new", newItems,
		"cursor", s.account.LastArticleID,
		"duration", s.now().Sub(start),
	)
	return domain.OutcomeSuccess
}

func (s *FeverSyncer) run(ctx context.Context) (int, error) {
	remoteGroups, _, err := s.client.Groups(ctx)
	if err != nil {
		return 0, err
	}
	remoteFeeds, feedsGroups, err := s.client.Feeds(ctx)
	if err != nil {
		return 0, err
	}

	if err := s.syncMetadata(ctx, remoteGroups, remoteFeeds, feedsGroups); err != nil {
		return 0, err
	}

	newItems, maxID, err := s.syncItems(ctx)
	if err != nil {
		return 0, err
	}

	if err := s.syncFlags(ctx); err != nil {
		return 0, err
	}

	// Orphan removal runs after flag sync so starred detection is accurate
	// before any deletion.
	if err := s.removeOrphans(ctx, remoteGroups, remoteFeeds); err != nil {
		return 0, err
	}

	// The cursor advances only when at least one new item was observed; the
	// account stamp always does.
	if newItems > 0 {
		s.account.LastArticleID = ident.Compose(s.account.ID, strconv.FormatInt(maxID, 10))
	}
	s.account.UpdatedAt = s.now()
	if err := s.stores.Accounts.Update(ctx, s.account); err != nil {
		return 0, storeErr("update account", err)
	}

	return newItems, nil
}

func (s *FeverSyncer) syncMetadata(ctx context.Context, remoteGroups []fever.Group, remoteFeeds []fever.Feed, feedsGroups []fever.FeedsGroup) error {
	groups := make([]domain.Group, 0, len(remoteGroups)+1)
	groups = append(groups, domain.Group{
		ID:        ident.Compose(s.account.ID, feverDefaultGroupRemoteID),
		Name:      "Default",
		AccountID: s.account.ID,
	})
	for _, g := range remoteGroups {
		groups = append(groups, domain.Group{
			ID:        ident.Compose(s.account.ID, strconv.FormatInt(g.ID, 10)),
			Name:      g.Title,
			AccountID: s.account.ID,
		})
	}
	if err := s.stores.Groups.UpsertBatch(ctx, groups); err != nil {
		return storeErr("upsert groups", err)
	}

	groupOfFeed := make(map[int64]int64)
	for _, fg := range feedsGroups {
		feedIDs, err := fever.SplitFeedIDs(fg)
		if err != nil {
			return err
		}
		for _, id := range feedIDs {
			groupOfFeed[id] = fg.GroupID
		}
	}

	existing, err := s.stores.Feeds.ListByAccount(ctx, s.account.ID)
	if err != nil {
		return storeErr("list feeds", err)
	}
	existingIcon := make(map[string]*string, len(existing))
	for _, f := range existing {
		existingIcon[f.ID] = f.Icon
	}

	// Favicons are fetched once, only when some feed lacks an icon. A
	// favicon failure never fails the sync.
	var favicons map[int64]string
	needIcons := false
	for _, rf := range remoteFeeds {
		if existingIcon[ident.Compose(s.account.ID, strconv.FormatInt(rf.ID, 10))] == nil {
			needIcons = true
			break
		}
	}
	if needIcons {
		favicons, err = s.client.Favicons(ctx)
		if err != nil {
			s.logger.Warn("favicon fetch failed", "error", err)
		}
	}

	feeds := make([]domain.Feed, 0, len(remoteFeeds))
	for _, rf := range remoteFeeds {
		id := ident.Compose(s.account.ID, strconv.FormatInt(rf.ID, 10))
		groupRemote := feverDefaultGroupRemoteID
		if gid, ok := groupOfFeed[rf.ID]; ok {
			groupRemote = strconv.FormatInt(gid, 10)
		}

		feed := domain.Feed{
			ID:        id,
			Name:      rf.Title,
			URL:       rf.URL,
			GroupID:   ident.Compose(s.account.ID, groupRemote),
			AccountID: s.account.ID,
			Icon:      existingIcon[id],
		}
		if feed.Icon == nil {
			if data, ok := favicons[rf.FaviconID]; ok && data != "" {
				feed.Icon = &data
			}
		}
		feeds = append(feeds, feed)
	}
	if err := s.stores.Feeds.UpsertBatch(ctx, feeds); err != nil {
		return storeErr("upsert feeds", err)
	}

	return nil
}

// syncItems pages through items since the stored cursor. A page shorter than
// fever.PageSize signals end-of-stream; the protocol does not guarantee this,
// so an exact-size final page costs one extra empty request, tolerated as a
// no-op.
func (s *FeverSyncer) syncItems(ctx context.Context) (int, int64, error) {
	sinceID := s.cursor()
	maxID := sinceID
	observed := 0

	for {
		items, err := s.client.ItemsSince(ctx, sinceID)
		if err != nil {
			return 0, 0, err
		}
		if len(items) == 0 {
			break
		}

		articles := make([]domain.Article, 0, len(items))
		for _, item := range items {
			articles = append(articles, s.toArticle(item))
			if item.ID > maxID {
				maxID = item.ID
			}
		}
		if _, err := s.stores.Articles.InsertIfAbsent(ctx, articles); err != nil {
			return 0, 0, storeErr("insert articles", err)
		}

		observed += len(items)
		sinceID = items[len(items)-1].ID

		if len(items) < fever.PageSize {
			break
		}
	}

	return observed, maxID, nil
}

func (s *FeverSyncer) toArticle(item fever.Item) domain.Article {
	now := s.now()

	published := time.Unix(item.CreatedOn, 0)
	// Server clock skew: a future publish date would distort sort order.
	if published.After(now) {
		published = now
	}

	article := domain.Article{
		ID:               ident.Compose(s.account.ID, strconv.FormatInt(item.ID, 10)),
		FeedID:           ident.Compose(s.account.ID, strconv.FormatInt(item.FeedID, 10)),
		AccountID:        s.account.ID,
		Date:             published,
		Title:            item.Title,
		RawDescription:   item.HTML,
		ShortDescription: shortDescription(item.HTML),
		Link:             item.URL,
		IsUnread:         item.IsRead == 0,
		IsStarred:        item.IsSaved == 1,
		UpdatedAt:        now,
	}
	if item.Author != "" {
		article.Author = &item.Author
	}
	return article
}

// syncFlags overwrites local unread/starred flags from the remote full sets.
// Fever is authoritative for both flags; only mismatches are written.
func (s *FeverSyncer) syncFlags(ctx context.Context) error {
	unreadIDs, err := s.client.UnreadItemIDs(ctx)
	if err != nil {
		return err
	}
	savedIDs, err := s.client.SavedItemIDs(ctx)
	if err != nil {
		return err
	}

	remoteUnread := s.composeSet(unreadIDs)
	remoteSaved := s.composeSet(savedIDs)

	meta, err := s.stores.Articles.ListMeta(ctx, s.account.ID)
	if err != nil {
		return storeErr("list article meta", err)
	}

	var toUnread, toRead, toStar, toUnstar []string
	for _, m := range meta {
		_, unread := remoteUnread[m.ID]
		if unread != m.IsUnread {
			if unread {
				toUnread = append(toUnread, m.ID)
			} else {
				toRead = append(toRead, m.ID)
			}
		}

		_, starred := remoteSaved[m.ID]
		if starred != m.IsStarred {
			if starred {
				toStar = append(toStar, m.ID)
			} else {
				toUnstar = append(toUnstar, m.ID)
			}
		}
	}

	if len(toUnread) > 0 {
		if err := s.stores.Articles.SetUnread(ctx, toUnread, true); err != nil {
			return storeErr("set unread", err)
		}
	}
	if len(toRead) > 0 {
		if err := s.stores.Articles.SetUnread(ctx, toRead, false); err != nil {
			return storeErr("set read", err)
		}
	}
	if len(toStar) > 0 {
		if err := s.stores.Articles.SetStarred(ctx, toStar, true); err != nil {
			return storeErr("set starred", err)
		}
	}
	if len(toUnstar) > 0 {
		if err := s.stores.Articles.SetStarred(ctx, toUnstar, false); err != nil {
			return storeErr("set unstarred", err)
		}
	}

	return nil
}

// removeOrphans deletes local groups and feeds absent from the freshly
// fetched remote sets. The store delete paths keep starred articles.
func (s *FeverSyncer) removeOrphans(ctx context.Context, remoteGroups []fever.Group, remoteFeeds []fever.Feed) error {
	remoteGroupSet := make(map[string]struct{}, len(remoteGroups)+1)
	remoteGroupSet[ident.Compose(s.account.ID, feverDefaultGroupRemoteID)] = struct{}{}
	for _, g := range remoteGroups {
		remoteGroupSet[ident.Compose(s.account.ID, strconv.FormatInt(g.ID, 10))] = struct{}{}
	}

	remoteFeedSet := make(map[string]struct{}, len(remoteFeeds))
	for _, f := range remoteFeeds {
		remoteFeedSet[ident.Compose(s.account.ID, strconv.FormatInt(f.ID, 10))] = struct{}{}
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

func (s *FeverSyncer) composeSet(ids []int64) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[ident.Compose(s.account.ID, strconv.FormatInt(id, 10))] = struct{}{}
	}
	return set
}

func (s *FeverSyncer) cursor() int64 {
	remote := ident.Remote(s.account.LastArticleID)
	id, err := strconv.ParseInt(remote, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// MarkAsRead mutates locally first, then pushes the equivalent remote
// mutation. A failed push is logged and left for the next sync pass to
// reconcile.
func (s *FeverSyncer) MarkAsRead(ctx context.Context, scope domain.MarkScope, isUnread bool) error {
	if err := scope.Validate(); err != nil {
		return err
	}
	scope.AccountID = s.account.ID

	if err := s.stores.Articles.MarkRead(ctx, scope, isUnread); err != nil {
		return storeErr("mark read", err)
	}

	if err := s.pushMarkRead(ctx, scope, isUnread); err != nil {
		s.logger.Warn("remote mark push failed, keeping local state", "error", err)
	}
	return nil
}

func (s *FeverSyncer) pushMarkRead(ctx context.Context, scope domain.MarkScope, isUnread bool) error {
	before := scope.EffectiveBefore()
	if before.Equal(domain.MaxBefore) {
		before = s.now()
	}

	switch {
	case scope.ArticleID != "":
		action := "read"
		if isUnread {
			action = "unread"
		}
		id, err := strconv.ParseInt(ident.Remote(scope.ArticleID), 10, 64)
		if err != nil {
			return err
		}
		return s.client.MarkItem(ctx, id, action)
	case isUnread:
		// Fever has no bulk mark-unread; the next sync pass would overwrite
		// it from the remote sets anyway.
		return ErrUnsupported
	case scope.FeedID != "":
		id, err := strconv.ParseInt(ident.Remote(scope.FeedID), 10, 64)
		if err != nil {
			return err
		}
		return s.client.MarkFeed(ctx, id, before.Unix())
	case scope.GroupID != "":
		id, err := strconv.ParseInt(ident.Remote(scope.GroupID), 10, 64)
		if err != nil {
			return err
		}
		return s.client.MarkGroup(ctx, id, before.Unix())
	default:
		return s.client.MarkGroup(ctx, 0, before.Unix())
	}
}

func (s *FeverSyncer) MarkAsStarred(ctx context.Context, articleID string, starred bool) error {
	if err := s.stores.Articles.SetStarred(ctx, []string{articleID}, starred); err != nil {
		return storeErr("set starred", err)
	}

	action := "saved"
	if !starred {
		action = "unsaved"
	}
	id, err := strconv.ParseInt(ident.Remote(articleID), 10, 64)
	if err != nil {
		return err
	}
	if err := s.client.MarkItem(ctx, id, action); err != nil {
		s.logger.Warn("remote star push failed, keeping local state", "error", err)
	}
	return nil
}

func (s *FeverSyncer) AddGroup(ctx context.Context, name string) (*domain.Group, error) {
	return nil, ErrUnsupported
}

func (s *FeverSyncer) RenameGroup(ctx context.Context, groupID, name string) error {
	return ErrUnsupported
}
