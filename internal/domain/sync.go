package domain

import (
	"errors"
	"time"
)

// Outcome is the terminal result of a sync pass, consumed by the scheduler.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeRetry
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeRetry:
		return "retry"
	case OutcomeFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Scope narrows a sync pass to one feed or one group. Zero value means the
// whole account. Providers without server-side narrowing ignore it and run a
// full-account pass.
type Scope struct {
	FeedID  string
	GroupID string
}

func (s Scope) IsAccountWide() bool {
	return s.FeedID == "" && s.GroupID == ""
}

// MaxBefore is the unbounded sentinel for MarkScope.Before: every article
// dates at or before it.
var MaxBefore = time.Unix(1<<62, 0)

// MarkScope selects the articles a read/star mutation applies to. At most one
// of GroupID, FeedID, ArticleID is set; none means account-wide. Before
// bounds the mutation to articles published at or before that instant.
type MarkScope struct {
	AccountID int64
	GroupID   string
	FeedID    string
	ArticleID string
	Before    time.Time
}

// Validate rejects scopes with more than one narrowing parameter set.
func (s MarkScope) Validate() error {
	set := 0
	for _, v := range []string{s.GroupID, s.FeedID, s.ArticleID} {
		if v != "" {
			set++
		}
	}
	if set > 1 {
		return errors.New("mark scope: at most one of group, feed, article may be set")
	}
	return nil
}

// EffectiveBefore returns the bound timestamp, defaulting to the unbounded
// sentinel.
func (s MarkScope) EffectiveBefore() time.Time {
	if s.Before.IsZero() {
		return MaxBefore
	}
	return s.Before
}

// SyncStats holds statistics about a sync pass.
type SyncStats struct {
	AccountID   int64
	Provider    Provider
	FeedsSynced int
	NewArticles int
	Errors      int
	Duration    time.Duration
}
