package utils

import (
	"net/http/httptest"
	"testing"
)

func TestNormalizeIngredientKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Eggs", "eggs"},
		{"  Milk  ", "milk"},
		{"Chicken Breast", "chicken breast"},
		{"200 g chicken breast, sliced", "200 g chicken breast sliced"},
		{"1/4 cup cream", "14 cup cream"},
		{"Salt and   pepper", "salt and pepper"},
		{"Olive-Oil (extra_virgin).", "oliveoil extravirgin"},
		{"( eggs )", "eggs"},
		{"", ""},
		{"...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeIngredientKey(tt.in); got != tt.want {
				t.Errorf("NormalizeIngredientKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitCSV(t *testing.T) {
	got := SplitCSV(" Diet, ,Gourmet ,")
	if len(got) != 2 || got[0] != "Diet" || got[1] != "Gourmet" {
		t.Fatalf("unexpected split: %#v", got)
	}
	if got := SplitCSV(""); len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithError(w, 418, "teapot")

	if w.Code != 418 {
		t.Errorf("expected 418, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected json content type, got %q", ct)
	}
	if body := w.Body.String(); body != "{\"error\":\"teapot\"}\n" {
		t.Errorf("unexpected body %q", body)
	}
}
