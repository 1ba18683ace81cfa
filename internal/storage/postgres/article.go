package postgres

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"feedsync/internal/domain"
)

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

const articleColumns = `
	id, feed_id, account_id, date, title, author, raw_description,
	short_description, full_content, img, link, is_unread, is_starred, updated_at`

// InsertIfAbsent writes articles whose ID is new and reports which rows were
// actually inserted. Existing rows are never overwritten, which is what makes
// a sync pass safely repeatable.
func (s *ArticleStore) InsertIfAbsent(ctx context.Context, articles []domain.Article) ([]domain.Article, error) {
	if len(articles) == 0 {
		return nil, nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO articles (" + articleColumns + ") VALUES ")
	args := make([]interface{}, 0, len(articles)*14)

	for i, a := range articles {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(placeholders(i*14+1, 14))
		args = append(args,
			a.ID, a.FeedID, a.AccountID, a.Date, a.Title, a.Author,
			a.RawDescription, a.ShortDescription, a.FullContent, a.Img,
			a.Link, a.IsUnread, a.IsStarred, a.UpdatedAt,
		)
	}
	sb.WriteString(" ON CONFLICT (id) DO NOTHING RETURNING id")

	rows, err := GetExecutor(ctx, s.db).QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	insertedIDs := make(map[string]struct{}, len(articles))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		insertedIDs[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	inserted := make([]domain.Article, 0, len(insertedIDs))
	for _, a := range articles {
		if _, ok := insertedIDs[a.ID]; ok {
			inserted = append(inserted, a)
		}
	}
	return inserted, nil
}

func (s *ArticleStore) ListMeta(ctx context.Context, accountID int64) ([]domain.ArticleMeta, error) {
	var meta []domain.ArticleMeta
	query := `SELECT id, is_unread, is_starred FROM articles WHERE account_id = $1`

	err := s.db.SelectContext(ctx, &meta, query, accountID)
	return meta, err
}

func (s *ArticleStore) ListMetaByFeed(ctx context.Context, feedID string) ([]domain.ArticleMeta, error) {
	var meta []domain.ArticleMeta
	query := `SELECT id, is_unread, is_starred FROM articles WHERE feed_id = $1`

	err := s.db.SelectContext(ctx, &meta, query, feedID)
	return meta, err
}

func (s *ArticleStore) ListIDs(ctx context.Context, scope domain.MarkScope, isUnread bool) ([]string, error) {
	query, args := scopeQuery(`SELECT a.id FROM articles a`, scope, isUnread)

	var ids []string
	err := s.db.SelectContext(ctx, &ids, query, args...)
	return ids, err
}

func (s *ArticleStore) MarkRead(ctx context.Context, scope domain.MarkScope, isUnread bool) error {
	query, args := scopeQuery(`UPDATE articles a SET is_unread = `+boolLiteral(isUnread), scope, !isUnread)

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, args...)
	return err
}

func (s *ArticleStore) SetUnread(ctx context.Context, ids []string, unread bool) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE articles SET is_unread = $2 WHERE id = ANY($1)`,
		pq.Array(ids), unread)
	return err
}

func (s *ArticleStore) SetStarred(ctx context.Context, ids []string, starred bool) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE articles SET is_starred = $2 WHERE id = ANY($1)`,
		pq.Array(ids), starred)
	return err
}

func (s *ArticleStore) ListOlderThan(ctx context.Context, accountID int64, cutoff time.Time) ([]domain.Article, error) {
	var articles []domain.Article
	query := `SELECT ` + articleColumns + ` FROM articles WHERE account_id = $1 AND date < $2`

	err := s.db.SelectContext(ctx, &articles, query, accountID, cutoff)
	return articles, err
}

func (s *ArticleStore) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM articles WHERE id = ANY($1)`, pq.Array(ids))
	return err
}

// scopeQuery appends the MarkScope conditions shared by ListIDs and MarkRead.
func scopeQuery(prefix string, scope domain.MarkScope, isUnread bool) (string, []interface{}) {
	conds := []string{"a.account_id = $1", "a.is_unread = " + boolLiteral(isUnread)}
	args := []interface{}{scope.AccountID}

	switch {
	case scope.ArticleID != "":
		args = append(args, scope.ArticleID)
		conds = append(conds, "a.id = $2")
	case scope.FeedID != "":
		args = append(args, scope.FeedID)
		conds = append(conds, "a.feed_id = $2")
	case scope.GroupID != "":
		args = append(args, scope.GroupID)
		conds = append(conds, "a.feed_id IN (SELECT id FROM feeds WHERE group_id = $2)")
	}

	before := scope.EffectiveBefore()
	if !before.Equal(domain.MaxBefore) {
		args = append(args, before)
		conds = append(conds, "a.date <= $"+strconv.Itoa(len(args)))
	}

	return prefix + " WHERE " + strings.Join(conds, " AND "), args
}

func boolLiteral(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
