package greader

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"feedsync/internal/provider"
)

type GReaderClientTestSuite struct {
	suite.Suite
	logger *slog.Logger
}

func (s *GReaderClientTestSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestGReaderClientTestSuite(t *testing.T) {
	suite.Run(t, new(GReaderClientTestSuite))
}

func (s *GReaderClientTestSuite) newClient(serverURL string) *Client {
	return NewClient(Config{
		ServerURL: serverURL,
		Username:  "alice",
		Password:  "secret",
		Timeout:   5 * time.Second,
		UserAgent: "feedsync-test",
	}, s.logger)
}

// loginHandler answers the ClientLogin handshake and counts how often it ran.
func loginHandler(logins *atomic.Int32, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == loginPath {
			logins.Add(1)
			w.Write([]byte("SID=x\nLSID=y\nAuth=token-123\n"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *GReaderClientTestSuite) TestToken_CachedAcrossCalls() {
	var logins atomic.Int32
	srv := httptest.NewServer(loginHandler(&logins, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("GoogleLogin auth=token-123", r.Header.Get("Authorization"))
		w.Write([]byte(`{"tags":[]}`))
	})))
	defer srv.Close()

	client := s.newClient(srv.URL)
	ctx := context.Background()

	_, err := client.TagList(ctx)
	s.NoError(err)
	_, err = client.TagList(ctx)
	s.NoError(err)

	s.Equal(int32(1), logins.Load())
}

func (s *GReaderClientTestSuite) TestDo_UnauthorizedResetsToken() {
	var logins atomic.Int32
	srv := httptest.NewServer(loginHandler(&logins, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})))
	defer srv.Close()

	client := s.newClient(srv.URL)
	ctx := context.Background()

	_, err := client.TagList(ctx)
	var credErr *provider.CredentialError
	s.ErrorAs(err, &credErr)
	s.Equal("greader", credErr.Provider)

	// The stale token was dropped, so the next call logs in again.
	_, _ = client.TagList(ctx)
	s.Equal(int32(2), logins.Load())
}

func (s *GReaderClientTestSuite) TestTagList_KeepsOnlyFolders() {
	var logins atomic.Int32
	srv := httptest.NewServer(loginHandler(&logins, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tags":[
			{"id":"user/-/state/com.google/starred"},
			{"id":"user/-/label/Tech"},
			{"id":"user/1000/label/News","label":"News"}
		]}`))
	})))
	defer srv.Close()

	folders, err := s.newClient(srv.URL).TagList(context.Background())
	s.NoError(err)
	s.Require().Len(folders, 2)
	s.Equal("Tech", folders[0].Label)
	s.Equal("News", folders[1].Label)
}

func (s *GReaderClientTestSuite) TestStreamItemIDs_EncodesFilter() {
	var logins atomic.Int32
	since := time.Unix(1700000000, 0)
	srv := httptest.NewServer(loginHandler(&logins, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		s.Equal(StreamReadingList, q.Get("s"))
		s.Equal(StreamRead, q.Get("xt"))
		s.Equal("1700000000", q.Get("ot"))
		s.Equal("1000", q.Get("n"))
		s.Equal("page2", q.Get("c"))
		w.Write([]byte(`{"itemRefs":[{"id":"101"},{"id":"102"}],"continuation":"page3"}`))
	})))
	defer srv.Close()

	ids, next, err := s.newClient(srv.URL).StreamItemIDs(context.Background(), StreamFilter{
		Stream:  StreamReadingList,
		Exclude: StreamRead,
		Since:   since,
	}, "page2")
	s.NoError(err)
	s.Equal([]string{"101", "102"}, ids)
	s.Equal("page3", next)
}

func (s *GReaderClientTestSuite) TestEditTags_PostsLongIDs() {
	var logins atomic.Int32
	srv := httptest.NewServer(loginHandler(&logins, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.NoError(r.ParseForm())
		s.Equal([]string{"tag:google.com,2005:reader/item/00000000000003e9"}, r.PostForm["i"])
		s.Equal(StreamRead, r.PostFormValue("a"))
		w.WriteHeader(http.StatusOK)
	})))
	defer srv.Close()

	err := s.newClient(srv.URL).EditTags(context.Background(), []string{"1001"}, StreamRead, "")
	s.NoError(err)
}

func (s *GReaderClientTestSuite) TestEditTags_EmptyIDsSkipsRequest() {
	client := s.newClient("http://unreachable.invalid")
	s.NoError(client.EditTags(context.Background(), nil, StreamRead, ""))
}

func TestItemIDConversion(t *testing.T) {
	cases := []struct {
		short string
		long  string
	}{
		{"1001", "tag:google.com,2005:reader/item/00000000000003e9"},
		{"0", "tag:google.com,2005:reader/item/0000000000000000"},
	}
	for _, tc := range cases {
		if got := LongItemID(tc.short); got != tc.long {
			t.Errorf("LongItemID(%q) = %q, want %q", tc.short, got, tc.long)
		}
		if got := ShortItemID(tc.long); got != tc.short {
			t.Errorf("ShortItemID(%q) = %q, want %q", tc.long, got, tc.short)
		}
	}

	// Already-converted inputs pass through unchanged.
	if got := LongItemID("tag:google.com,2005:reader/item/00000000000003e9"); got != "tag:google.com,2005:reader/item/00000000000003e9" {
		t.Errorf("long form not preserved: %q", got)
	}
	if got := ShortItemID("not-an-item-id"); got != "not-an-item-id" {
		t.Errorf("foreign ID not preserved: %q", got)
	}
}
