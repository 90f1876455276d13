package streaks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cookly/globals"
	"cookly/models"

	"github.com/julienschmidt/httprouter"
)

func at(day, hour int) time.Time {
	return time.Date(2024, 5, day, hour, 0, 0, 0, time.UTC)
}

func TestNext(t *testing.T) {
	tests := []struct {
		name string
		prev *models.UserStreak
		now  time.Time
		want models.UserStreak
	}{
		{"first cook", nil, at(10, 9),
			models.UserStreak{CurrentStreak: 1, LongestStreak: 1, TotalCooks: 1, LastCookDate: at(10, 9)}},
		{"same day", &models.UserStreak{CurrentStreak: 3, LongestStreak: 5, TotalCooks: 7, LastCookDate: at(10, 8)}, at(10, 22),
			models.UserStreak{CurrentStreak: 3, LongestStreak: 5, TotalCooks: 8, LastCookDate: at(10, 8)}},
		{"next day", &models.UserStreak{CurrentStreak: 3, LongestStreak: 3, TotalCooks: 3, LastCookDate: at(9, 23)}, at(10, 1),
			models.UserStreak{CurrentStreak: 4, LongestStreak: 4, TotalCooks: 4, LastCookDate: at(10, 1)}},
		{"gap resets", &models.UserStreak{CurrentStreak: 6, LongestStreak: 6, TotalCooks: 10, LastCookDate: at(7, 12)}, at(10, 12),
			models.UserStreak{CurrentStreak: 1, LongestStreak: 6, TotalCooks: 11, LastCookDate: at(10, 12)}},
		{"no last date", &models.UserStreak{TotalCooks: 2}, at(10, 12),
			models.UserStreak{CurrentStreak: 1, LongestStreak: 1, TotalCooks: 3, LastCookDate: at(10, 12)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want.UserID = "u1"
			got := Next(tt.prev, "u1", tt.now)
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestNextUsesLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("EST", -5*3600)
	// 02:00 UTC on the 10th is still the 9th in EST
	prev := &models.UserStreak{CurrentStreak: 1, LongestStreak: 1, TotalCooks: 1, LastCookDate: at(10, 2)}
	now := time.Date(2024, 5, 10, 18, 0, 0, 0, loc)

	if got := Next(prev, "u1", now); got.CurrentStreak != 2 {
		t.Errorf("expected consecutive-day streak of 2, got %d", got.CurrentStreak)
	}
}

func TestRecordCook(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store)
	clock := at(1, 12)
	svc.now = func() time.Time { return clock }
	ctx := context.Background()

	for _, day := range []int{1, 1, 2, 3} {
		clock = at(day, 12)
		if _, err := svc.RecordCook(ctx, "u1", "r1", 4); err != nil {
			t.Fatal(err)
		}
	}

	streak, err := svc.Get(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if streak.CurrentStreak != 3 || streak.LongestStreak != 3 || streak.TotalCooks != 4 {
		t.Errorf("unexpected streak %+v", streak)
	}
	if len(store.Events) != 4 || store.Events[0].EventID == "" {
		t.Errorf("expected 4 logged events with ids, got %+v", store.Events)
	}

	if _, err := svc.RecordCook(ctx, "", "r1", 4); !errors.Is(err, ErrMissingUser) {
		t.Errorf("expected ErrMissingUser, got %v", err)
	}
	if _, err := svc.RecordCook(ctx, "u1", "r1", 7); !errors.Is(err, ErrInvalidRating) {
		t.Errorf("expected ErrInvalidRating, got %v", err)
	}
	if _, err := svc.Get(ctx, "u2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

type recipeSet map[string]bool

func (s recipeSet) ByID(id string) (models.Recipe, bool) {
	return models.Recipe{ID: id}, s[id]
}

func TestStreakHandlers(t *testing.T) {
	h := NewHandler(NewService(NewMemoryStore()), recipeSet{"r1": true})
	router := httprouter.New()
	router.POST("/api/cooks", h.RecordCook)
	router.GET("/api/streak", h.GetStreak)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req = req.WithContext(context.WithValue(req.Context(), globals.UserIDKey, "u1"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	rr := do(http.MethodGet, "/api/streak", "")
	var s models.UserStreak
	json.Unmarshal(rr.Body.Bytes(), &s)
	if rr.Code != http.StatusOK || s.CurrentStreak != 0 {
		t.Errorf("expected empty streak, got %d %+v", rr.Code, s)
	}

	if rr := do(http.MethodPost, "/api/cooks", `{"recipeId":"nope"}`); rr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rr.Code)
	}
	if rr := do(http.MethodPost, "/api/cooks", `{"recipeId":"r1","rating":9}`); rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rr.Code)
	}

	rr = do(http.MethodPost, "/api/cooks", `{"recipeId":"r1","rating":5}`)
	json.Unmarshal(rr.Body.Bytes(), &s)
	if rr.Code != http.StatusOK || s.CurrentStreak != 1 || s.TotalCooks != 1 {
		t.Errorf("expected first streak day, got %d %+v", rr.Code, s)
	}
}
