package domain

import "time"

// Group is a folder of feeds. Its ID is namespaced under the owning account.
type Group struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	AccountID int64  `db:"account_id"`
}

// Feed is a subscription. IDs are namespaced under the owning account so the
// same remote feed ID on two providers never collides.
type Feed struct {
	ID            string  `db:"id"`
	Name          string  `db:"name"`
	URL           string  `db:"url"`
	GroupID       string  `db:"group_id"`
	AccountID     int64   `db:"account_id"`
	Icon          *string `db:"icon"`
	Notify        bool    `db:"notify"`
	FullContent   bool    `db:"full_content"`
	OpenInBrowser bool    `db:"open_in_browser"`
}

// Article is one delivered item. Insertion is insert-if-absent by ID: later
// sync passes never overwrite an existing row except the two boolean flags.
type Article struct {
	ID               string    `db:"id"`
	FeedID           string    `db:"feed_id"`
	AccountID        int64     `db:"account_id"`
	Date             time.Time `db:"date"`
	Title            string    `db:"title"`
	Author           *string   `db:"author"`
	RawDescription   string    `db:"raw_description"`
	ShortDescription string    `db:"short_description"`
	FullContent      *string   `db:"full_content"`
	Img              *string   `db:"img"`
	Link             string    `db:"link"`
	IsUnread         bool      `db:"is_unread"`
	IsStarred        bool      `db:"is_starred"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// ArticleMeta is the flag-only projection of Article used for diffing, so
// reconciliation never materializes article bodies.
type ArticleMeta struct {
	ID        string `db:"id"`
	IsUnread  bool   `db:"is_unread"`
	IsStarred bool   `db:"is_starred"`
}

// ArchivedArticle is a tombstone left behind by the retention sweeper. A
// (feed, link) pair recorded here is never re-imported for that feed.
type ArchivedArticle struct {
	FeedID string `db:"feed_id"`
	Link   string `db:"link"`
}
