package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"feedsync/internal/domain"
)

type AccountStore struct {
	db *sqlx.DB
}

func NewAccountStore(db *sqlx.DB) *AccountStore {
	return &AccountStore{db: db}
}

type accountRow struct {
	ID              int64          `db:"id"`
	Name            string         `db:"name"`
	Provider        string         `db:"provider"`
	ServerURL       string         `db:"server_url"`
	Username        string         `db:"username"`
	Password        string         `db:"password"`
	APIKey          string         `db:"api_key"`
	ClientCert      string         `db:"client_cert"`
	LastArticleID   string         `db:"last_article_id"`
	UpdatedAt       time.Time      `db:"updated_at"`
	IntervalMinutes int            `db:"interval_minutes"`
	SyncOnStart     bool           `db:"sync_on_start"`
	RequireWiFi     bool           `db:"require_wifi"`
	RequireCharging bool           `db:"require_charging"`
	KeepDays        int            `db:"keep_days"`
	BlockList       pq.StringArray `db:"block_list"`
}

func (r accountRow) toDomain() *domain.Account {
	return &domain.Account{
		ID:       r.ID,
		Name:     r.Name,
		Provider: domain.Provider(r.Provider),
		Credentials: domain.Credentials{
			ServerURL:  r.ServerURL,
			Username:   r.Username,
			Password:   r.Password,
			APIKey:     r.APIKey,
			ClientCert: r.ClientCert,
		},
		LastArticleID: r.LastArticleID,
		UpdatedAt:     r.UpdatedAt,
		Policy: domain.SyncPolicy{
			Interval:        time.Duration(r.IntervalMinutes) * time.Minute,
			SyncOnStart:     r.SyncOnStart,
			RequireWiFi:     r.RequireWiFi,
			RequireCharging: r.RequireCharging,
			KeepDays:        r.KeepDays,
			BlockList:       r.BlockList,
		},
	}
}

const accountColumns = `
	id, name, provider, server_url, username, password, api_key, client_cert,
	last_article_id, updated_at, interval_minutes, sync_on_start, require_wifi,
	require_charging, keep_days, block_list`

func (s *AccountStore) Get(ctx context.Context, id int64) (*domain.Account, error) {
	var row accountRow
	query := `SELECT` + accountColumns + ` FROM accounts WHERE id = $1`

	if err := s.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

func (s *AccountStore) List(ctx context.Context) ([]domain.Account, error) {
	var rows []accountRow
	query := `SELECT` + accountColumns + ` FROM accounts ORDER BY id`

	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(rows))
	for _, r := range rows {
		accounts = append(accounts, *r.toDomain())
	}
	return accounts, nil
}

// Update persists the mutable sync fields: the cursor and the completion
// stamp. Credentials and policy change only through account management.
func (s *AccountStore) Update(ctx context.Context, account *domain.Account) error {
	query := `
		UPDATE accounts
		SET last_article_id = $2, updated_at = $3
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		account.ID,
		account.LastArticleID,
		account.UpdatedAt,
	)
	return err
}
