package search

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cookly/models"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

func newSearchServer(t *testing.T) *httptest.Server {
	t.Helper()
	h := NewHandler(sample, WithDebounce(fast), WithLatency(fast))
	router := httprouter.New()
	router.GET("/api/search", h.Search)
	router.GET("/api/search/live", h.LiveSearch)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestLiveSearch(t *testing.T) {
	srv := newSearchServer(t)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/search/live"

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(liveRequest{Query: "tac"}); err != nil {
		t.Fatal(err)
	}
	if err := conn.WriteJSON(liveRequest{Query: "taco"}); err != nil {
		t.Fatal(err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		var s Snapshot
		if err := conn.ReadJSON(&s); err != nil {
			t.Fatalf("read: %v", err)
		}
		if s.IsLoading || s.Query != "taco" {
			continue
		}
		if s.State != models.SearchResults || len(s.Results) != 1 {
			t.Fatalf("expected one taco result, got %+v", s)
		}
		break
	}

	if err := conn.WriteJSON(liveRequest{Query: ""}); err != nil {
		t.Fatal(err)
	}
	var s Snapshot
	if err := conn.ReadJSON(&s); err != nil {
		t.Fatalf("read: %v", err)
	}
	if s.State != models.SearchIdle {
		t.Errorf("expected idle after clearing, got %+v", s)
	}
}

func TestSearchEndpoint(t *testing.T) {
	srv := newSearchServer(t)

	tests := []struct {
		name  string
		query string
		code  int
	}{
		{"results", "?q=chicken", http.StatusOK},
		{"filters", "?filters=Diet,Gourmet", http.StatusOK},
		{"unknown filter", "?filters=Keto", http.StatusBadRequest},
		{"idle", "", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + "/api/search" + strings.ReplaceAll(tt.query, " ", "%20"))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.code {
				t.Errorf("expected %d, got %d", tt.code, resp.StatusCode)
			}
		})
	}
}
