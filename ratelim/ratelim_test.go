package ratelim

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
)

func TestLimitPerIP(t *testing.T) {
	rl := NewRateLimiter(1, 2, time.Minute)
	handler := rl.Limit(func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusNoContent)
	})

	call := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		handler(rr, req, nil)
		return rr.Code
	}

	// same host, different source ports share a bucket
	for i, addr := range []string{"10.0.0.1:1000", "10.0.0.1:1001"} {
		if code := call(addr); code != http.StatusNoContent {
			t.Fatalf("request %d: expected 204, got %d", i, code)
		}
	}
	if code := call("10.0.0.1:1002"); code != http.StatusTooManyRequests {
		t.Errorf("expected 429 once the burst is spent, got %d", code)
	}
	if code := call("10.0.0.2:1000"); code != http.StatusNoContent {
		t.Errorf("expected a separate budget for another IP, got %d", code)
	}
}
