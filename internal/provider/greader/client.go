// Package greader is a client for Google-Reader-compatible APIs (FreshRSS,
// Miniflux, Inoreader and friends).
package greader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"feedsync/internal/provider"
)

const (
	apiPath   = "/reader/api/0"
	loginPath = "/accounts/ClientLogin"

	// idsPerPage is the n= parameter for stream/items/ids requests.
	idsPerPage = 1000
)

type Config struct {
	ServerURL string
	Username  string
	Password  string
	Timeout   time.Duration
	UserAgent string
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	password   string
	userAgent  string
	logger     *slog.Logger

	mu        sync.Mutex
	authToken string
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:   strings.TrimSuffix(cfg.ServerURL, "/"),
		username:  cfg.Username,
		password:  cfg.Password,
		userAgent: cfg.UserAgent,
		logger:    logger.With("provider", "greader"),
	}
}

// Validate performs a login, discarding the token on failure.
func (c *Client) Validate(ctx context.Context) error {
	_, err := c.token(ctx)
	return err
}

// TagList returns the remote folder list. Only user/-/label/ entries are
// folders; state tags are filtered out.
func (c *Client) TagList(ctx context.Context) ([]Category, error) {
	var resp tagListResponse
	if err := c.get(ctx, "/tag/list", nil, &resp); err != nil {
		return nil, err
	}

	folders := make([]Category, 0, len(resp.Tags))
	for _, t := range resp.Tags {
		if label, ok := folderLabel(t.ID); ok {
			if t.Label == "" {
				t.Label = label
			}
			folders = append(folders, t)
		}
	}
	return folders, nil
}

// SubscriptionList returns the remote feed list.
func (c *Client) SubscriptionList(ctx context.Context) ([]Subscription, error) {
	var resp subscriptionListResponse
	if err := c.get(ctx, "/subscription/list", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Subscriptions, nil
}

// StreamFilter selects which item IDs to list.
type StreamFilter struct {
	Stream  string
	Exclude string
	Since   time.Time
}

// StreamItemIDs returns one page of short-form item IDs plus the continuation
// token for the next page. An empty next token means end-of-stream.
func (c *Client) StreamItemIDs(ctx context.Context, filter StreamFilter, continuation string) ([]string, string, error) {
	params := url.Values{
		"s": {filter.Stream},
		"n": {strconv.Itoa(idsPerPage)},
	}
	if filter.Exclude != "" {
		params.Set("xt", filter.Exclude)
	}
	if !filter.Since.IsZero() {
		params.Set("ot", strconv.FormatInt(filter.Since.Unix(), 10))
	}
	if continuation != "" {
		params.Set("c", continuation)
	}

	var resp streamIDsResponse
	if err := c.get(ctx, "/stream/items/ids", params, &resp); err != nil {
		return nil, "", err
	}

	ids := make([]string, 0, len(resp.ItemRefs))
	for _, ref := range resp.ItemRefs {
		ids = append(ids, ref.ID)
	}
	return ids, resp.Continuation, nil
}

// ItemContents fetches full bodies for the given short-form item IDs.
func (c *Client) ItemContents(ctx context.Context, ids []string) ([]Item, error) {
	form := url.Values{}
	for _, id := range ids {
		form.Add("i", LongItemID(id))
	}

	var resp itemContentsResponse
	if err := c.post(ctx, "/stream/items/contents", form, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// EditTags adds and/or removes a state tag on the given short-form item IDs.
func (c *Client) EditTags(ctx context.Context, ids []string, add, remove string) error {
	if len(ids) == 0 {
		return nil
	}

	form := url.Values{}
	for _, id := range ids {
		form.Add("i", LongItemID(id))
	}
	if add != "" {
		form.Set("a", add)
	}
	if remove != "" {
		form.Set("r", remove)
	}

	return c.post(ctx, "/edit-tag", form, nil)
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("output", "json")

	reqURL := c.baseURL + apiPath + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, form url.Values, out any) error {
	reqURL := c.baseURL + apiPath + path + "?output=json"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	token, err := c.token(req.Context())
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "GoogleLogin auth="+token)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		c.resetToken()
		return &provider.CredentialError{Provider: "greader"}
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// token returns the cached ClientLogin token, performing the login handshake
// on first use.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.authToken != "" {
		return c.authToken, nil
	}

	form := url.Values{
		"Email":  {c.username},
		"Passwd": {c.password},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute login: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &provider.CredentialError{
			Provider: "greader",
			Err:      fmt.Errorf("login status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read login response: %w", err)
	}

	for _, line := range strings.Split(string(body), "\n") {
		if after, ok := strings.CutPrefix(line, "Auth="); ok {
			c.authToken = strings.TrimSpace(after)
			return c.authToken, nil
		}
	}

	return "", &provider.CredentialError{
		Provider: "greader",
		Err:      fmt.Errorf("login response had no Auth token"),
	}
}

func (c *Client) resetToken() {
	c.mu.Lock()
	c.authToken = ""
	c.mu.Unlock()
}

// LongItemID converts a short decimal item ID to the canonical long form the
// write endpoints require. IDs already in long form pass through unchanged.
func LongItemID(id string) string {
	if strings.HasPrefix(id, "tag:google.com,2005:reader/item/") {
		return id
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return id
	}
	return fmt.Sprintf("tag:google.com,2005:reader/item/%016x", n)
}

// ShortItemID converts a long-form item ID back to its decimal short form.
func ShortItemID(id string) string {
	hexPart, ok := strings.CutPrefix(id, "tag:google.com,2005:reader/item/")
	if !ok {
		return id
	}
	n, err := strconv.ParseUint(hexPart, 16, 64)
	if err != nil {
		return id
	}
	return strconv.FormatInt(int64(n), 10)
}

func folderLabel(tagID string) (string, bool) {
	i := strings.LastIndex(tagID, "/label/")
	if i < 0 {
		return "", false
	}
	return tagID[i+len("/label/"):], true
}
