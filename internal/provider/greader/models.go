package greader

// Stream identifiers defined by the Reader API.
const (
	StreamReadingList = "user/-/state/com.google/reading-list"
	StreamRead        = "user/-/state/com.google/read"
	StreamStarred     = "user/-/state/com.google/starred"
)

type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type tagListResponse struct {
	Tags []Category `json:"tags"`
}

type Subscription struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Categories []Category `json:"categories"`
	URL        string     `json:"url"`
	HTMLURL    string     `json:"htmlUrl"`
	IconURL    string     `json:"iconUrl"`
}

type subscriptionListResponse struct {
	Subscriptions []Subscription `json:"subscriptions"`
}

type itemRef struct {
	ID string `json:"id"`
}

type streamIDsResponse struct {
	ItemRefs     []itemRef `json:"itemRefs"`
	Continuation string    `json:"continuation"`
}

// Item is a full article body from stream/items/contents.
type Item struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Published int64      `json:"published"`
	Author    string     `json:"author"`
	Summary   ItemBody   `json:"summary"`
	Canonical []ItemLink `json:"canonical"`
	Alternate []ItemLink `json:"alternate"`
	Origin    ItemOrigin `json:"origin"`
}

type ItemBody struct {
	Content string `json:"content"`
}

type ItemLink struct {
	Href string `json:"href"`
}

type ItemOrigin struct {
	StreamID string `json:"streamId"`
	Title    string `json:"title"`
	HTMLURL  string `json:"htmlUrl"`
}

type itemContentsResponse struct {
	Items []Item `json:"items"`
}
