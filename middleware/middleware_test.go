package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cookly/globals"
	"cookly/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

func sign(t *testing.T, method jwt.SigningMethod, key any, claims Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func validClaims() Claims {
	return Claims{
		UserID: "u1",
		Email:  "cook@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func echoUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"userId": utils.GetUserIDFromRequest(r)})
}

func TestAuthenticate(t *testing.T) {
	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	noUser := validClaims()
	noUser.UserID = ""

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{"valid", "Bearer " + sign(t, jwt.SigningMethodHS256, globals.JwtSecret, validClaims()), http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"no bearer prefix", sign(t, jwt.SigningMethodHS256, globals.JwtSecret, validClaims()), http.StatusUnauthorized},
		{"wrong secret", "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("other"), validClaims()), http.StatusUnauthorized},
		{"wrong method", "Bearer " + sign(t, jwt.SigningMethodHS512, globals.JwtSecret, validClaims()), http.StatusUnauthorized},
		{"expired", "Bearer " + sign(t, jwt.SigningMethodHS256, globals.JwtSecret, expired), http.StatusUnauthorized},
		{"no user id", "Bearer " + sign(t, jwt.SigningMethodHS256, globals.JwtSecret, noUser), http.StatusUnauthorized},
	}

	handler := Authenticate(echoUser)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			handler(rr, req, nil)
			if rr.Code != tt.code {
				t.Errorf("expected %d, got %d", tt.code, rr.Code)
			}
		})
	}
}

func TestRevokedToken(t *testing.T) {
	IsRevoked = func(_ context.Context, jti string) bool { return jti == "jti-1" }
	defer func() { IsRevoked = nil }()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+sign(t, jwt.SigningMethodHS256, globals.JwtSecret, validClaims()))
	rr := httptest.NewRecorder()
	Authenticate(echoUser)(rr, req, nil)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected revoked token to be rejected, got %d", rr.Code)
	}
}

func TestOptionalAuth(t *testing.T) {
	var seen string
	var claims *Claims
	handler := OptionalAuth(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		seen = utils.GetUserIDFromRequest(r)
		claims = ClaimsFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	handler(httptest.NewRecorder(), req, nil)
	if seen != "" || claims != nil {
		t.Errorf("expected anonymous request, got user %q", seen)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+sign(t, jwt.SigningMethodHS256, globals.JwtSecret, validClaims()))
	handler(httptest.NewRecorder(), req, nil)
	if seen != "u1" || claims == nil || claims.ID != "jti-1" {
		t.Errorf("expected u1 with claims, got %q %+v", seen, claims)
	}
}
