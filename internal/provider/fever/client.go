// Package fever is a client for the Fever refresh API.
package fever

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"feedsync/internal/provider"
)

// PageSize is the item count Fever servers return per items request. A short
// page is treated as end-of-stream; the protocol does not guarantee this, so
// the value must stay aligned with the orchestrator's paging heuristic.
const PageSize = 50

type Config struct {
	ServerURL string
	Username  string
	Password  string
	Timeout   time.Duration
	UserAgent string
}

type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	userAgent  string
	logger     *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	sum := md5.Sum([]byte(cfg.Username + ":" + cfg.Password))

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		endpoint:  strings.TrimSuffix(cfg.ServerURL, "/"),
		apiKey:    hex.EncodeToString(sum[:]),
		userAgent: cfg.UserAgent,
		logger:    logger.With("provider", "fever"),
	}
}

// Validate checks the api_key against the server.
func (c *Client) Validate(ctx context.Context) error {
	_, err := c.call(ctx, "")
	return err
}

// Groups returns the remote group list plus the group-to-feed mapping.
func (c *Client) Groups(ctx context.Context) ([]Group, []FeedsGroup, error) {
	resp, err := c.call(ctx, "&groups")
	if err != nil {
		return nil, nil, err
	}
	return resp.Groups, resp.FeedsGroups, nil
}

// Feeds returns the remote subscription list plus the group-to-feed mapping.
func (c *Client) Feeds(ctx context.Context) ([]Feed, []FeedsGroup, error) {
	resp, err := c.call(ctx, "&feeds")
	if err != nil {
		return nil, nil, err
	}
	return resp.Feeds, resp.FeedsGroups, nil
}

// Favicons returns favicon data keyed by favicon ID.
func (c *Client) Favicons(ctx context.Context) (map[int64]string, error) {
	resp, err := c.call(ctx, "&favicons")
	if err != nil {
		return nil, err
	}

	icons := make(map[int64]string, len(resp.Favicons))
	for _, f := range resp.Favicons {
		icons[f.ID] = f.Data
	}
	return icons, nil
}

// ItemsSince returns one page of items with IDs greater than sinceID.
func (c *Client) ItemsSince(ctx context.Context, sinceID int64) ([]Item, error) {
	resp, err := c.call(ctx, "&items&since_id="+strconv.FormatInt(sinceID, 10))
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// UnreadItemIDs returns the complete remote unread set.
func (c *Client) UnreadItemIDs(ctx context.Context) ([]int64, error) {
	resp, err := c.call(ctx, "&unread_item_ids")
	if err != nil {
		return nil, err
	}
	return splitIDs(resp.UnreadItemIDs)
}

// SavedItemIDs returns the complete remote starred set.
func (c *Client) SavedItemIDs(ctx context.Context) ([]int64, error) {
	resp, err := c.call(ctx, "&saved_item_ids")
	if err != nil {
		return nil, err
	}
	return splitIDs(resp.SavedItemIDs)
}

// MarkItem sets an item's remote state. Action is one of read, unread, saved,
// unsaved.
func (c *Client) MarkItem(ctx context.Context, itemID int64, action string) error {
	_, err := c.call(ctx, "&mark=item&as="+action+"&id="+strconv.FormatInt(itemID, 10))
	return err
}

// MarkFeed marks every item of a feed created at or before the given unix
// timestamp as read.
func (c *Client) MarkFeed(ctx context.Context, feedID int64, before int64) error {
	_, err := c.call(ctx, fmt.Sprintf("&mark=feed&as=read&id=%d&before=%d", feedID, before))
	return err
}

// MarkGroup marks every item of a group created at or before the given unix
// timestamp as read. Group ID 0 addresses the whole account.
func (c *Client) MarkGroup(ctx context.Context, groupID int64, before int64) error {
	_, err := c.call(ctx, fmt.Sprintf("&mark=group&as=read&id=%d&before=%d", groupID, before))
	return err
}

func (c *Client) call(ctx context.Context, resource string) (*Response, error) {
	reqURL := c.endpoint + "/?api" + resource
	body := url.Values{"api_key": {c.apiKey}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", httpResp.StatusCode)
	}

	var resp Response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if resp.Auth != 1 {
		return nil, &provider.CredentialError{Provider: "fever"}
	}

	return &resp, nil
}

func splitIDs(csv string) ([]int64, error) {
	if csv == "" {
		return nil, nil
	}

	parts := strings.Split(csv, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse item id %q: %w", p, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// SplitFeedIDs parses a FeedsGroup's comma-separated feed ID list.
func SplitFeedIDs(fg FeedsGroup) ([]int64, error) {
	return splitIDs(fg.FeedIDs)
}
