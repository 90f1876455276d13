// Package ratings stores one star rating per user and recipe.
package ratings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cookly/models"
)

var (
	ErrNotFound      = errors.New("rating not found")
	ErrMissingUser   = errors.New("user ID is required to set a rating")
	ErrMissingRecipe = errors.New("recipe ID is required")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

const (
	MinRating = 1
	MaxRating = 5
)

type Store interface {
	// Upsert replaces the rating document with the same ID.
	Upsert(ctx context.Context, rating models.RecipeRating) error
	ListByRecipe(ctx context.Context, recipeID string) ([]models.RecipeRating, error)
	Find(ctx context.Context, userID, recipeID string) (models.RecipeRating, error)
}

// DocID is the storage key for a user's rating of a recipe.
func DocID(userID, recipeID string) string {
	return userID + "_" + recipeID
}

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// SetRating records or overwrites the user's rating.
func (s *Service) SetRating(ctx context.Context, userID, recipeID string, rating int) (models.RecipeRating, error) {
	if userID == "" {
		return models.RecipeRating{}, ErrMissingUser
	}
	if recipeID == "" {
		return models.RecipeRating{}, ErrMissingRecipe
	}
	if rating < MinRating || rating > MaxRating {
		return models.RecipeRating{}, ErrInvalidRating
	}

	doc := models.RecipeRating{
		ID:        DocID(userID, recipeID),
		UserID:    userID,
		RecipeID:  recipeID,
		Rating:    rating,
		UpdatedAt: s.now().UTC(),
	}
	if err := s.store.Upsert(ctx, doc); err != nil {
		return models.RecipeRating{}, fmt.Errorf("set rating: %w", err)
	}
	return doc, nil
}

// Summary aggregates every rating for a recipe. userID is optional; when set
// and that user has rated, UserRating is filled in.
func (s *Service) Summary(ctx context.Context, recipeID, userID string) (models.RatingSummary, error) {
	if recipeID == "" {
		return models.RatingSummary{}, ErrMissingRecipe
	}
	all, err := s.store.ListByRecipe(ctx, recipeID)
	if err != nil {
		return models.RatingSummary{}, fmt.Errorf("rating summary: %w", err)
	}

	summary := models.RatingSummary{RecipeID: recipeID}
	total := 0
	for _, r := range all {
		total += r.Rating
		summary.RatingCount++
		if userID != "" && r.UserID == userID {
			rating := r.Rating
			summary.UserRating = &rating
		}
	}
	if summary.RatingCount > 0 {
		summary.AverageRating = float64(total) / float64(summary.RatingCount)
	}
	return summary, nil
}

// UserRating returns ErrNotFound when the user has not rated the recipe.
func (s *Service) UserRating(ctx context.Context, userID, recipeID string) (int, error) {
	if userID == "" || recipeID == "" {
		return 0, ErrNotFound
	}
	r, err := s.store.Find(ctx, userID, recipeID)
	if err != nil {
		return 0, err
	}
	return r.Rating, nil
}
