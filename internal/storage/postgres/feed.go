package postgres

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"feedsync/internal/domain"
)

type FeedStore struct {
	db *sqlx.DB
}

func NewFeedStore(db *sqlx.DB) *FeedStore {
	return &FeedStore{db: db}
}

const feedColumns = `id, name, url, group_id, account_id, icon, notify, full_content, open_in_browser`

func (s *FeedStore) Get(ctx context.Context, id string) (*domain.Feed, error) {
	var feed domain.Feed
	query := `SELECT ` + feedColumns + ` FROM feeds WHERE id = $1`

	if err := s.db.GetContext(ctx, &feed, query, id); err != nil {
		return nil, err
	}
	return &feed, nil
}

// UpsertBatch writes feeds by identity. The three user toggles are preserved
// on conflict: sync passes never reset what the user configured.
func (s *FeedStore) UpsertBatch(ctx context.Context, feeds []domain.Feed) error {
	if len(feeds) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO feeds (" + feedColumns + ") VALUES ")
	args := make([]interface{}, 0, len(feeds)*9)

	for i, f := range feeds {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(placeholders(i*9+1, 9))
		args = append(args,
			f.ID, f.Name, f.URL, f.GroupID, f.AccountID,
			f.Icon, f.Notify, f.FullContent, f.OpenInBrowser,
		)
	}
	sb.WriteString(`
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			url = EXCLUDED.url,
			group_id = EXCLUDED.group_id,
			icon = COALESCE(EXCLUDED.icon, feeds.icon)`)

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), args...)
	return err
}

func (s *FeedStore) ListByAccount(ctx context.Context, accountID int64) ([]domain.Feed, error) {
	var feeds []domain.Feed
	query := `SELECT ` + feedColumns + ` FROM feeds WHERE account_id = $1 ORDER BY id`

	err := s.db.SelectContext(ctx, &feeds, query, accountID)
	return feeds, err
}

func (s *FeedStore) ListByGroup(ctx context.Context, groupID string) ([]domain.Feed, error) {
	var feeds []domain.Feed
	query := `SELECT ` + feedColumns + ` FROM feeds WHERE group_id = $1 ORDER BY id`

	err := s.db.SelectContext(ctx, &feeds, query, groupID)
	return feeds, err
}

func (s *FeedStore) UpdateIcon(ctx context.Context, feedID, icon string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE feeds SET icon = $2 WHERE id = $1`, feedID, icon)
	return err
}

// DeleteBatch removes feeds and their articles, except starred articles.
func (s *FeedStore) DeleteBatch(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	ex := GetExecutor(ctx, s.db)

	_, err := ex.ExecContext(ctx,
		`DELETE FROM articles WHERE NOT is_starred AND feed_id = ANY($1)`,
		pq.Array(ids),
	)
	if err != nil {
		return err
	}

	_, err = ex.ExecContext(ctx, `DELETE FROM feeds WHERE id = ANY($1)`, pq.Array(ids))
	return err
}
