package pantry

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

func TestNewItem(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	item, err := NewItem("  Cheddar-Cheese ", now)
	if err != nil {
		t.Fatal(err)
	}
	if item.IngredientKey != "cheddarcheese" || item.Label != "Cheddar-Cheese" || !item.AddedAt.Equal(now) {
		t.Errorf("unexpected item %+v", item)
	}
	if _, err := NewItem(" (). ", now); !errors.Is(err, ErrEmptyLabel) {
		t.Errorf("expected ErrEmptyLabel, got %v", err)
	}
}

func TestContains(t *testing.T) {
	pantry := []models.PantryItem{{IngredientKey: "eggs"}, {IngredientKey: "milk"}}
	if !Contains(pantry, "milk") {
		t.Error("expected milk to be found")
	}
	if Contains(pantry, "") || Contains(pantry, "rice") {
		t.Error("empty or absent keys must not match")
	}
}

func TestMemoryStoreSetSemantics(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	s.Add(ctx, "u1", models.PantryItem{IngredientKey: "eggs", Label: "Eggs"})
	s.Add(ctx, "u1", models.PantryItem{IngredientKey: "eggs", Label: "EGGS"})
	s.Add(ctx, "u1", models.PantryItem{IngredientKey: "milk", Label: "Milk"})
	s.Add(ctx, "", models.PantryItem{IngredientKey: "rice"})

	items, _ := s.Get(ctx, "u1")
	if len(items) != 2 || items[0].Label != "Eggs" {
		t.Fatalf("expected eggs once then milk, got %+v", items)
	}
	if items[0].AddedAt.IsZero() {
		t.Error("expected AddedAt to be stamped")
	}

	s.Remove(ctx, "u1", "eggs")
	items, _ = s.Get(ctx, "u1")
	if len(items) != 1 || items[0].IngredientKey != "milk" {
		t.Errorf("expected only milk, got %+v", items)
	}

	if items, _ := s.Get(ctx, "nobody"); items == nil || len(items) != 0 {
		t.Errorf("expected an empty pantry for unknown user, got %v", items)
	}
}

func TestViewToggle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	v := NewView(s, "u1")
	if err := v.Load(ctx); err != nil {
		t.Fatal(err)
	}

	added, err := v.Toggle(ctx, "Eggs")
	if err != nil || !added || !v.Has("eggs") {
		t.Fatalf("expected eggs added, got added=%v err=%v", added, err)
	}
	stored, _ := s.Get(ctx, "u1")
	if !Contains(stored, "eggs") {
		t.Error("expected the write to reach the store")
	}

	added, err = v.Toggle(ctx, " eggs ")
	if err != nil || added || v.Has("Eggs") {
		t.Fatalf("expected eggs removed, got added=%v err=%v", added, err)
	}

	if _, err := v.Toggle(ctx, ""); !errors.Is(err, ErrEmptyLabel) {
		t.Errorf("expected ErrEmptyLabel, got %v", err)
	}
}

func TestViewToggleRevertsOnWriteFailure(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	s.Add(ctx, "u1", models.PantryItem{IngredientKey: "milk", Label: "Milk"})

	v := NewView(s, "u1")
	v.Load(ctx)
	s.FailWrites = errors.New("write refused")

	inPantry, err := v.Toggle(ctx, "Eggs")
	if err == nil || inPantry || v.Has("eggs") {
		t.Errorf("expected failed add to be reverted, got inPantry=%v err=%v", inPantry, err)
	}

	inPantry, err = v.Toggle(ctx, "Milk")
	if err == nil || !inPantry || !v.Has("milk") {
		t.Errorf("expected failed remove to be reverted, got inPantry=%v err=%v", inPantry, err)
	}
	if len(v.Items()) != 1 {
		t.Errorf("expected the original single item, got %+v", v.Items())
	}
}

func TestPantryHandlers(t *testing.T) {
	store := NewMemoryStore()
	h := NewHandler(store)
	router := httprouter.New()
	router.GET("/api/pantry", h.GetPantry)
	router.POST("/api/pantry", h.AddItem)
	router.DELETE("/api/pantry/:key", h.RemoveItem)
	router.POST("/api/pantry/toggle", h.Toggle)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req = req.WithContext(context.WithValue(req.Context(), globals.UserIDKey, "u1"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		code   int
	}{
		{"add", http.MethodPost, "/api/pantry", `{"label":"Olive Oil"}`, http.StatusCreated},
		{"add blank", http.MethodPost, "/api/pantry", `{"label":"  "}`, http.StatusBadRequest},
		{"add bad json", http.MethodPost, "/api/pantry", `{`, http.StatusBadRequest},
		{"toggle on", http.MethodPost, "/api/pantry/toggle", `{"label":"Eggs"}`, http.StatusOK},
		{"remove", http.MethodDelete, "/api/pantry/olive%20oil", "", http.StatusOK},
		{"list", http.MethodGet, "/api/pantry", "", http.StatusOK},
	}
	for _, tt := range tests {
		rr := do(tt.method, tt.path, tt.body)
		if rr.Code != tt.code {
			t.Fatalf("%s: expected %d, got %d (%s)", tt.name, tt.code, rr.Code, rr.Body.String())
		}
	}

	rr := do(http.MethodGet, "/api/pantry", "")
	var body struct {
		Pantry []models.PantryItem `json:"pantry"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Pantry) != 1 || body.Pantry[0].IngredientKey != "eggs" {
		t.Errorf("expected only eggs left, got %+v", body.Pantry)
	}

	store.FailWrites = errors.New("down")
	rr = do(http.MethodPost, "/api/pantry/toggle", `{"label":"Rice"}`)
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
	var failed struct {
		InPantry bool                `json:"inPantry"`
		Pantry   []models.PantryItem `json:"pantry"`
	}
	json.Unmarshal(rr.Body.Bytes(), &failed)
	if failed.InPantry || len(failed.Pantry) != 1 {
		t.Errorf("expected the pre-toggle pantry back, got %+v", failed)
	}
}
