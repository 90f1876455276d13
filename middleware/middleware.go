package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"cookly/globals"
	"cookly/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// JWT claims
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// IsRevoked reports whether a token id has been logged out. Nil means no revocation store.
var IsRevoked func(ctx context.Context, jti string) bool

func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Missing token")
			return
		}

		claims, err := ValidateJWT(r.Context(), tokenString)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		next(w, r.WithContext(withClaims(r.Context(), claims)), ps)
	}
}

// OptionalAuth attaches the user when a valid token is present and proceeds regardless.
func OptionalAuth(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if tokenString := r.Header.Get("Authorization"); tokenString != "" {
			if claims, err := ValidateJWT(r.Context(), tokenString); err == nil {
				r = r.WithContext(withClaims(r.Context(), claims))
			}
		}
		next(w, r, ps)
	}
}

// ValidateJWT parses a "Bearer <token>" header value.
func ValidateJWT(ctx context.Context, header string) (*Claims, error) {
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		return nil, fmt.Errorf("invalid token format")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, fmt.Errorf("unauthorized: invalid claims")
	}
	if IsRevoked != nil && IsRevoked(ctx, claims.ID) {
		return nil, fmt.Errorf("unauthorized: token revoked")
	}
	return claims, nil
}

func withClaims(ctx context.Context, claims *Claims) context.Context {
	ctx = context.WithValue(ctx, globals.UserIDKey, claims.UserID)
	return context.WithValue(ctx, globals.ClaimsKey, claims)
}

// ClaimsFromContext returns the claims Authenticate attached, or nil.
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(globals.ClaimsKey).(*Claims)
	return claims
}
