// Package streaks tracks consecutive days on which a user cooked something.
package streaks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cookly/models"
	"cookly/utils"
)

var (
	ErrNotFound      = errors.New("no streak recorded")
	ErrMissingUser   = errors.New("user ID is required to record a cook event")
	ErrMissingRecipe = errors.New("recipe ID is required to record a cook event")
	ErrInvalidRating = errors.New("rating must be between 0 and 5")
)

type Store interface {
	AddEvent(ctx context.Context, event models.CookEvent) error
	Get(ctx context.Context, userID string) (models.UserStreak, error)
	Put(ctx context.Context, streak models.UserStreak) error
}

// Next returns the streak after a cook at now. Days are calendar days in now's location.
func Next(prev *models.UserStreak, userID string, now time.Time) models.UserStreak {
	next := models.UserStreak{
		UserID:        userID,
		CurrentStreak: 1,
		LongestStreak: 1,
		LastCookDate:  now,
		TotalCooks:    1,
	}
	if prev == nil {
		return next
	}
	next.TotalCooks = prev.TotalCooks + 1
	if prev.LastCookDate.IsZero() {
		return next
	}

	switch daysBetween(prev.LastCookDate, now) {
	case 0:
		next.CurrentStreak = max(prev.CurrentStreak, 1)
		next.LongestStreak = max(prev.LongestStreak, next.CurrentStreak)
		next.LastCookDate = prev.LastCookDate
	case 1:
		next.CurrentStreak = prev.CurrentStreak + 1
		next.LongestStreak = max(prev.LongestStreak, next.CurrentStreak)
	default:
		next.LongestStreak = max(prev.LongestStreak, 1)
	}
	return next
}

// daysBetween counts calendar days from last to now, both taken in now's location.
func daysBetween(last, now time.Time) int {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	y, m, d = last.In(now.Location()).Date()
	then := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(today.Sub(then).Hours() / 24)
}

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// RecordCook logs the event, then advances the user's streak.
// rating is optional; 0 means unrated.
func (s *Service) RecordCook(ctx context.Context, userID, recipeID string, rating int) (models.UserStreak, error) {
	if userID == "" {
		return models.UserStreak{}, ErrMissingUser
	}
	if recipeID == "" {
		return models.UserStreak{}, ErrMissingRecipe
	}
	if rating < 0 || rating > 5 {
		return models.UserStreak{}, ErrInvalidRating
	}

	now := s.now()
	event := models.CookEvent{
		EventID:   utils.GetUUID(),
		UserID:    userID,
		RecipeID:  recipeID,
		Rating:    rating,
		CreatedAt: now.UTC(),
	}
	if err := s.store.AddEvent(ctx, event); err != nil {
		return models.UserStreak{}, fmt.Errorf("log cook event: %w", err)
	}

	var prev *models.UserStreak
	current, err := s.store.Get(ctx, userID)
	switch {
	case err == nil:
		prev = &current
	case !errors.Is(err, ErrNotFound):
		return models.UserStreak{}, fmt.Errorf("load streak: %w", err)
	}

	next := Next(prev, userID, now)
	if err := s.store.Put(ctx, next); err != nil {
		return models.UserStreak{}, fmt.Errorf("save streak: %w", err)
	}
	return next, nil
}

// Get returns ErrNotFound for a user who has never cooked.
func (s *Service) Get(ctx context.Context, userID string) (models.UserStreak, error) {
	if userID == "" {
		return models.UserStreak{}, ErrNotFound
	}
	return s.store.Get(ctx, userID)
}
