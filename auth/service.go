// Package auth handles accounts: registration, password login with JWTs, logout and profiles.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"cookly/globals"
	"cookly/middleware"
	"cookly/models"
	"cookly/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL    = 24 * time.Hour
	minPasswordLength = 6
)

// Revoker remembers logged-out token ids until they expire.
type Revoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
}

type Service struct {
	users    UserStore
	revoker  Revoker
	now      func() time.Time
	hashCost int
}

// NewService builds the account service. revoker may be nil, in which case
// logout only succeeds client-side.
func NewService(users UserStore, revoker Revoker) *Service {
	return &Service{users: users, revoker: revoker, now: time.Now, hashCost: bcrypt.DefaultCost}
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}

func (s *Service) Register(ctx context.Context, email, password, displayName string) (models.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if len(password) < minPasswordLength {
		return models.User{}, ErrWeakPassword
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = strings.SplitN(email, "@", 2)[0]
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	user := models.User{
		UserID:       utils.GetUUID(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: string(hash),
		Pantry:       []models.PantryItem{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return models.User{}, err
	}
	log.Printf("[Register] user=%s", user.UserID)
	return user, nil
}

// Login checks the password and returns a signed access token.
func (s *Service) Login(ctx context.Context, email, password string) (string, models.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return "", models.User{}, err
	}
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return "", models.User{}, ErrInvalidCredential
	}
	if err != nil {
		return "", models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.User{}, ErrInvalidCredential
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return "", models.User{}, err
	}

	now := s.now().UTC()
	if err := s.users.TouchLogin(ctx, user.UserID, now); err != nil {
		log.Printf("[Login] last_login update for %s failed: %v", user.UserID, err)
	}
	user.LastLogin = now
	return token, user, nil
}

func (s *Service) IssueToken(user models.User) (string, error) {
	now := s.now()
	claims := &middleware.Claims{
		UserID: user.UserID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        utils.GetUUID(),
			Subject:   user.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Logout revokes the token until its natural expiry.
func (s *Service) Logout(ctx context.Context, claims *middleware.Claims) error {
	if claims == nil || s.revoker == nil {
		return nil
	}
	ttl := accessTokenTTL
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Time.Sub(s.now())
	}
	return s.revoker.Revoke(ctx, claims.ID, ttl)
}

// Refresh swaps a still-valid token for a fresh one and revokes the old id.
func (s *Service) Refresh(ctx context.Context, claims *middleware.Claims) (string, error) {
	if claims == nil {
		return "", ErrInvalidCredential
	}
	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return "", err
	}
	token, err := s.IssueToken(user)
	if err != nil {
		return "", err
	}
	if err := s.Logout(ctx, claims); err != nil {
		log.Printf("[Refresh] revoking old token for %s failed: %v", user.UserID, err)
	}
	return token, nil
}

func (s *Service) Profile(ctx context.Context, userID string) (models.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *Service) UpdateDisplayName(ctx context.Context, userID, displayName string) (models.User, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return models.User{}, ErrInvalidDisplayName
	}
	return s.users.UpdateDisplayName(ctx, userID, displayName, s.now().UTC())
}
