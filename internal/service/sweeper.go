package service

import (
	"context"
	"log/slog"
	"time"

	"feedsync/internal/domain"
)

// Sweeper purges archived articles past the account's retention window and
// records a (feed, link) tombstone for each so the generic provider never
// re-imports them. Starred articles are always exempt.
type Sweeper struct {
	articles  ArticleStore
	archive   ArchiveStore
	txManager TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

func NewSweeper(articles ArticleStore, archive ArchiveStore, txManager TransactionManager, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		articles:  articles,
		archive:   archive,
		txManager: txManager,
		logger:    logger.With("component", "sweeper"),
		now:       time.Now,
	}
}

// Sweep runs after every successful sync pass for the account.
func (s *Sweeper) Sweep(ctx context.Context, account *domain.Account) error {
	if account.Policy.KeepForever() {
		return nil
	}

	cutoff := s.now().AddDate(0, 0, -account.Policy.KeepDays)

	aged, err := s.articles.ListOlderThan(ctx, account.ID, cutoff)
	if err != nil {
		return storeErr("list aged articles", err)
	}

	ids := make([]string, 0, len(aged))
	refs := make([]domain.ArchivedArticle, 0, len(aged))
	for _, a := range aged {
		if a.IsStarred {
			continue
		}
		ids = append(ids, a.ID)
		refs = append(refs, domain.ArchivedArticle{FeedID: a.FeedID, Link: a.Link})
	}

	if len(ids) == 0 {
		return nil
	}

	// Delete and tombstone commit together: a purge without its tombstone
	// would let the next generic-feed poll resurrect the article.
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.articles.DeleteByIDs(txCtx, ids); err != nil {
			return err
		}
		return s.archive.Add(txCtx, refs)
	})
	if err != nil {
		return storeErr("purge aged articles", err)
	}

	s.logger.Info("swept archived articles",
		"account", account.ID,
		"deleted", len(ids),
		"cutoff", cutoff,
	)
	return nil
}
