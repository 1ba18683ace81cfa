package postgres

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"feedsync/internal/domain"
)

type GroupStore struct {
	db *sqlx.DB
}

func NewGroupStore(db *sqlx.DB) *GroupStore {
	return &GroupStore{db: db}
}

func (s *GroupStore) UpsertBatch(ctx context.Context, groups []domain.Group) error {
	if len(groups) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO groups (id, name, account_id) VALUES ")
	args := make([]interface{}, 0, len(groups)*3)

	for i, g := range groups {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(placeholders(i*3+1, 3))
		args = append(args, g.ID, g.Name, g.AccountID)
	}
	sb.WriteString(" ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name")

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), args...)
	return err
}

func (s *GroupStore) ListByAccount(ctx context.Context, accountID int64) ([]domain.Group, error) {
	var groups []domain.Group
	query := `SELECT id, name, account_id FROM groups WHERE account_id = $1 ORDER BY id`

	err := s.db.SelectContext(ctx, &groups, query, accountID)
	return groups, err
}

func (s *GroupStore) Rename(ctx context.Context, id, name string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE groups SET name = $2 WHERE id = $1`, id, name)
	return err
}

// DeleteBatch removes groups, their feeds, and those feeds' articles, except
// starred articles which survive with their feed reference intact.
func (s *GroupStore) DeleteBatch(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	ex := GetExecutor(ctx, s.db)

	_, err := ex.ExecContext(ctx, `
		DELETE FROM articles
		WHERE NOT is_starred
		  AND feed_id IN (SELECT id FROM feeds WHERE group_id = ANY($1))`,
		pq.Array(ids),
	)
	if err != nil {
		return err
	}

	_, err = ex.ExecContext(ctx, `DELETE FROM feeds WHERE group_id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return err
	}

	_, err = ex.ExecContext(ctx, `DELETE FROM groups WHERE id = ANY($1)`, pq.Array(ids))
	return err
}
