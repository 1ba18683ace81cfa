// Package service contains the per-provider sync orchestrators: the
// reconciliation engine between the local entity store and each remote
// feed-sync provider.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"feedsync/internal/config"
	"feedsync/internal/domain"
)

// Capabilities describes what a provider variant supports. Callers check the
// flags before invoking a gated operation; calling anyway yields
// ErrUnsupported.
type Capabilities struct {
	NarrowSync     bool
	RemoteMutation bool
	AddGroup       bool
	RenameGroup    bool
}

// Syncer is the common orchestrator contract implemented once per provider.
// A Syncer is bound to a single account at construction; there is no ambient
// current-account state.
type Syncer interface {
	// Sync reconciles the account with its remote provider. Scope narrows
	// the pass for providers that support it. Errors never escape: they are
	// logged and folded into the Outcome.
	Sync(ctx context.Context, scope domain.Scope) domain.Outcome

	// MarkAsRead flips the unread flag for the scoped articles locally and,
	// when the provider supports remote mutation, pushes the same change
	// upstream. A failed remote push keeps the local change; the next sync
	// pass reconciles the difference.
	MarkAsRead(ctx context.Context, scope domain.MarkScope, isUnread bool) error

	// MarkAsStarred flips the starred flag for one article, local-first like
	// MarkAsRead.
	MarkAsStarred(ctx context.Context, articleID string, starred bool) error

	AddGroup(ctx context.Context, name string) (*domain.Group, error)
	RenameGroup(ctx context.Context, groupID, name string) error

	Capabilities() Capabilities
}

// Deps carries the collaborators a syncer may need. Only the client matching
// the account's provider has to be non-nil.
type Deps struct {
	Stores   Stores
	Fetcher  FeedFetcher
	Fever    FeverClient
	GReader  GReaderClient
	Notifier Notifier
	Sweeper  *Sweeper
	Logger   *slog.Logger
	Sync     config.SyncConfig
	// ReadSince bounds the remote read-set fetch for the greader provider.
	// Zero means the 30 day default.
	ReadSince time.Duration
}

// ForAccount selects the orchestrator variant for the account's provider.
// Selection happens once per account per session.
func ForAccount(account *domain.Account, deps Deps) (Syncer, error) {
	switch account.Provider {
	case domain.ProviderLocal:
		if deps.Fetcher == nil {
			return nil, fmt.Errorf("local account %d: no feed fetcher", account.ID)
		}
		return NewLocalSyncer(account, deps), nil
	case domain.ProviderFever:
		if deps.Fever == nil {
			return nil, fmt.Errorf("fever account %d: no client", account.ID)
		}
		return NewFeverSyncer(account, deps), nil
	case domain.ProviderGReader:
		if deps.GReader == nil {
			return nil, fmt.Errorf("greader account %d: no client", account.ID)
		}
		return NewGReaderSyncer(account, deps), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", account.Provider)
	}
}

// ValidateCredentials checks the account's provider credentials without
// mutating anything. Local accounts have no credentials to check.
func ValidateCredentials(ctx context.Context, account *domain.Account, deps Deps) error {
	switch account.Provider {
	case domain.ProviderLocal:
		return nil
	case domain.ProviderFever:
		return deps.Fever.Validate(ctx)
	case domain.ProviderGReader:
		return deps.GReader.Validate(ctx)
	default:
		return fmt.Errorf("unknown provider %q", account.Provider)
	}
}
