package fever

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"feedsync/internal/provider"
)

type FeverClientTestSuite struct {
	suite.Suite
	logger *slog.Logger
}

func (s *FeverClientTestSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestFeverClientTestSuite(t *testing.T) {
	suite.Run(t, new(FeverClientTestSuite))
}

func (s *FeverClientTestSuite) newClient(serverURL string) *Client {
	return NewClient(Config{
		ServerURL: serverURL,
		Username:  "alice",
		Password:  "secret",
		Timeout:   5 * time.Second,
		UserAgent: "feedsync-test",
	}, s.logger)
}

func (s *FeverClientTestSuite) TestCall_SendsMD5APIKey() {
	sum := md5.Sum([]byte("alice:secret"))
	wantKey := hex.EncodeToString(sum[:])

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.NoError(r.ParseForm())
		s.Equal(wantKey, r.PostFormValue("api_key"))
		w.Write([]byte(`{"api_version":3,"auth":1}`))
	}))
	defer srv.Close()

	s.NoError(s.newClient(srv.URL).Validate(context.Background()))
}

func (s *FeverClientTestSuite) TestCall_RejectedAuthIsCredentialError() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"api_version":3,"auth":0}`))
	}))
	defer srv.Close()

	err := s.newClient(srv.URL).Validate(context.Background())
	s.Error(err)

	var credErr *provider.CredentialError
	s.ErrorAs(err, &credErr)
	s.Equal("fever", credErr.Provider)
}

func (s *FeverClientTestSuite) TestItemsSince_PassesCursor() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Contains(r.URL.RawQuery, "items")
		s.Contains(r.URL.RawQuery, "since_id=42")
		w.Write([]byte(`{"auth":1,"items":[
			{"id":43,"feed_id":1,"title":"One","html":"<p>x</p>","url":"https://example.com/1","is_saved":0,"is_read":1,"created_on_time":1700000000},
			{"id":44,"feed_id":1,"title":"Two","url":"https://example.com/2","is_saved":1,"is_read":0,"created_on_time":1700000100}
		]}`))
	}))
	defer srv.Close()

	items, err := s.newClient(srv.URL).ItemsSince(context.Background(), 42)
	s.NoError(err)
	s.Require().Len(items, 2)
	s.Equal(int64(43), items[0].ID)
	s.Equal(1, items[0].IsRead)
	s.Equal(1, items[1].IsSaved)
}

func (s *FeverClientTestSuite) TestUnreadItemIDs_ParsesCSV() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"auth":1,"unread_item_ids":"1,2, 3"}`))
	}))
	defer srv.Close()

	ids, err := s.newClient(srv.URL).UnreadItemIDs(context.Background())
	s.NoError(err)
	s.Equal([]int64{1, 2, 3}, ids)
}

func (s *FeverClientTestSuite) TestMarkGroup_EncodesAction() {
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Write([]byte(`{"auth":1}`))
	}))
	defer srv.Close()

	s.NoError(s.newClient(srv.URL).MarkGroup(context.Background(), 0, 1700000000))
	s.Contains(query, "mark=group")
	s.Contains(query, "as=read")
	s.Contains(query, "id=0")
	s.Contains(query, "before=1700000000")
}

func TestSplitFeedIDs(t *testing.T) {
	ids, err := SplitFeedIDs(FeedsGroup{GroupID: 1, FeedIDs: "10,20,30"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 3 || ids[0] != 10 || ids[2] != 30 {
		t.Fatalf("unexpected ids: %v", ids)
	}

	ids, err = SplitFeedIDs(FeedsGroup{GroupID: 1})
	if err != nil || ids != nil {
		t.Fatalf("empty list should parse to nil, got %v, %v", ids, err)
	}
}
