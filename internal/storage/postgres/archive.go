package postgres

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"feedsync/internal/domain"
)

// ArchiveStore persists the (feed, link) tombstones the retention sweeper
// leaves behind.
type ArchiveStore struct {
	db *sqlx.DB
}

func NewArchiveStore(db *sqlx.DB) *ArchiveStore {
	return &ArchiveStore{db: db}
}

func (s *ArchiveStore) Links(ctx context.Context, feedID string) (map[string]struct{}, error) {
	var links []string
	query := `SELECT link FROM archived_articles WHERE feed_id = $1`

	if err := s.db.SelectContext(ctx, &links, query, feedID); err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(links))
	for _, l := range links {
		set[l] = struct{}{}
	}
	return set, nil
}

func (s *ArchiveStore) Add(ctx context.Context, refs []domain.ArchivedArticle) error {
	if len(refs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO archived_articles (feed_id, link) VALUES ")
	args := make([]interface{}, 0, len(refs)*2)

	for i, r := range refs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(placeholders(i*2+1, 2))
		args = append(args, r.FeedID, r.Link)
	}
	sb.WriteString(" ON CONFLICT DO NOTHING")

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), args...)
	return err
}
