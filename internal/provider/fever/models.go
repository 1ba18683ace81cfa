package fever

// Response is the envelope every Fever endpoint returns. Only the fields
// matching the requested resource are populated.
type Response struct {
	APIVersion      int          `json:"api_version"`
	Auth            int          `json:"auth"`
	LastRefreshedOn int64        `json:"last_refreshed_on_time"`
	Groups          []Group      `json:"groups"`
	FeedsGroups     []FeedsGroup `json:"feeds_groups"`
	Feeds           []Feed       `json:"feeds"`
	Favicons        []Favicon    `json:"favicons"`
	Items           []Item       `json:"items"`
	TotalItems      int          `json:"total_items"`
	UnreadItemIDs   string       `json:"unread_item_ids"`
	SavedItemIDs    string       `json:"saved_item_ids"`
}

type Group struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// FeedsGroup maps a group to its member feeds as a comma-separated ID list.
type FeedsGroup struct {
	GroupID int64  `json:"group_id"`
	FeedIDs string `json:"feed_ids"`
}

type Feed struct {
	ID            int64  `json:"id"`
	FaviconID     int64  `json:"favicon_id"`
	Title         string `json:"title"`
	URL           string `json:"url"`
	SiteURL       string `json:"site_url"`
	IsSpark       int    `json:"is_spark"`
	LastUpdatedOn int64  `json:"last_updated_on_time"`
}

type Favicon struct {
	ID   int64  `json:"id"`
	Data string `json:"data"`
}

type Item struct {
	ID          int64  `json:"id"`
	FeedID      int64  `json:"feed_id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	HTML        string `json:"html"`
	URL         string `json:"url"`
	IsSaved     int    `json:"is_saved"`
	IsRead      int    `json:"is_read"`
	CreatedOn   int64  `json:"created_on_time"`
}
