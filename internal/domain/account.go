package domain

import "time"

// Provider identifies which sync protocol an account speaks.
type Provider string

const (
	ProviderLocal   Provider = "local"
	ProviderFever   Provider = "fever"
	ProviderGReader Provider = "greader"
)

// Credentials is opaque to the sync engine; each provider client picks the
// fields it needs.
type Credentials struct {
	ServerURL  string
	Username   string
	Password   string
	APIKey     string
	ClientCert string
}

// SyncPolicy controls when and how much an account synchronizes.
// KeepDays < 0 means archived articles are kept forever.
type SyncPolicy struct {
	Interval        time.Duration
	SyncOnStart     bool
	RequireWiFi     bool
	RequireCharging bool
	KeepDays        int
	BlockList       []string
}

// Account is one configured provider binding.
type Account struct {
	ID            int64       `db:"id"`
	Name          string      `db:"name"`
	Provider      Provider    `db:"provider"`
	Credentials   Credentials `db:"-"`
	LastArticleID string      `db:"last_article_id"`
	UpdatedAt     time.Time   `db:"updated_at"`
	Policy        SyncPolicy  `db:"-"`
}

func (p SyncPolicy) KeepForever() bool {
	return p.KeepDays < 0
}
