package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"cookly/globals"
	"cookly/models"

	"github.com/julienschmidt/httprouter"
)

type recipeMap map[string]models.Recipe

func (m recipeMap) ByID(id string) (models.Recipe, bool) {
	r, ok := m[id]
	return r, ok
}

type fakePantry struct {
	items []models.PantryItem
	err   error
}

func (f fakePantry) Get(context.Context, string) ([]models.PantryItem, error) {
	return f.items, f.err
}

type fakeCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, v any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.data[key] = raw
	c.sets++
	return nil
}

func newTestRouter(pantry PantryReader, cache Cache) *httprouter.Router {
	recipes := recipeMap{"t1": *eggsAndMilk(), "empty": {ID: "empty", Title: "Nothing"}}
	h := NewHandler(Default(), recipes, pantry, cache, time.Minute)

	router := httprouter.New()
	router.GET("/api/recipes/:id/prices", h.GetPrices)
	router.GET("/api/recipes/:id/prices/:store/list.pdf", h.GetShoppingListPDF)
	router.GET("/api/recipes/:id/prices/:store/qr.png", h.GetDeliveryQR)
	router.GET("/api/recipes/:id/comparison.xlsx", h.GetComparisonWorkbook)
	return router
}

func signedIn(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), globals.UserIDKey, userID))
}

func decodePrices(t *testing.T, rr *httptest.ResponseRecorder) PriceResponse {
	t.Helper()
	var resp PriceResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v (%s)", err, rr.Body.String())
	}
	return resp
}

func TestGetPrices(t *testing.T) {
	cache := &fakeCache{data: map[string][]byte{}}
	router := newTestRouter(fakePantry{items: []models.PantryItem{{IngredientKey: "eggs"}}}, cache)

	t.Run("anonymous", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/recipes/t1/prices", nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		resp := decodePrices(t, rr)
		if !resp.Available || len(resp.Estimates) != 3 {
			t.Fatalf("expected 3 estimates, got %+v", resp)
		}
		if resp.Estimates[0].TotalPrice != 8.78 || resp.Estimates[0].Links.UberEats == "" {
			t.Errorf("unexpected cheapest estimate %+v", resp.Estimates[0])
		}
	})

	t.Run("signed in excludes pantry", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, signedIn(httptest.NewRequest(http.MethodGet, "/api/recipes/t1/prices", nil), "u1"))
		resp := decodePrices(t, rr)
		if resp.Estimates[0].TotalPrice != 4.79 {
			t.Errorf("expected 4.79 with eggs in pantry, got %.2f", resp.Estimates[0].TotalPrice)
		}
	})

	t.Run("served from cache", func(t *testing.T) {
		before := cache.sets
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/recipes/t1/prices", nil))
		if cache.sets != before {
			t.Errorf("expected a cache hit, got a write")
		}
		if decodePrices(t, rr).Estimates[0].Store.ID != Maxi {
			t.Errorf("cached response lost its contents")
		}
	})

	t.Run("no ingredients", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/recipes/empty/prices", nil))
		resp := decodePrices(t, rr)
		if resp.Available || len(resp.Estimates) != 0 {
			t.Errorf("expected pricing unavailable, got %+v", resp)
		}
	})

	t.Run("unknown recipe", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/recipes/nope/prices", nil))
		if rr.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rr.Code)
		}
	})
}

func TestGetPricesPantryFailureDegrades(t *testing.T) {
	router := newTestRouter(fakePantry{err: errors.New("mongo down")}, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, signedIn(httptest.NewRequest(http.MethodGet, "/api/recipes/t1/prices", nil), "u1"))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if got := decodePrices(t, rr).Estimates[0].TotalPrice; got != 8.78 {
		t.Errorf("expected full-recipe total 8.78, got %.2f", got)
	}
}

func TestCacheKeyIgnoresPantryOrder(t *testing.T) {
	a := cacheKey("1", []models.PantryItem{{IngredientKey: "eggs"}, {IngredientKey: "milk"}})
	b := cacheKey("1", []models.PantryItem{{IngredientKey: "Milk"}, {IngredientKey: "eggs"}, {IngredientKey: "eggs"}})
	if a != b {
		t.Errorf("expected equal keys, got %s and %s", a, b)
	}
	if a == cacheKey("1", nil) {
		t.Errorf("expected pantry to change the key")
	}
}

func TestExportEndpoints(t *testing.T) {
	router := newTestRouter(nil, nil)
	tests := []struct {
		name        string
		path        string
		code        int
		contentType string
	}{
		{"pdf", "/api/recipes/t1/prices/maxi/list.pdf", http.StatusOK, "application/pdf"},
		{"pdf unknown store", "/api/recipes/t1/prices/costco/list.pdf", http.StatusNotFound, "application/json"},
		{"qr default provider", "/api/recipes/t1/prices/iga/qr.png", http.StatusOK, "image/png"},
		{"qr doordash", "/api/recipes/t1/prices/iga/qr.png?provider=doordash", http.StatusOK, "image/png"},
		{"qr bad provider", "/api/recipes/t1/prices/iga/qr.png?provider=grubhub", http.StatusBadRequest, "application/json"},
		{"xlsx", "/api/recipes/t1/comparison.xlsx", http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		{"xlsx empty recipe", "/api/recipes/empty/comparison.xlsx", http.StatusNotFound, "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rr.Code != tt.code {
				t.Fatalf("expected %d, got %d (%s)", tt.code, rr.Code, rr.Body.String())
			}
			if ct := rr.Header().Get("Content-Type"); ct != tt.contentType {
				t.Errorf("expected content type %s, got %s", tt.contentType, ct)
			}
		})
	}
}
