// Package pantry keeps the set of ingredients each user already owns.
package pantry

import (
	"context"
	"errors"
	"strings"
	"time"

	"cookly/models"
	"cookly/utils"
)

var ErrEmptyLabel = errors.New("ingredient label is required")

// Store persists pantries keyed by user id. Calls are independent; there is
// no transaction spanning a Get and a later Add or Remove.
type Store interface {
	Get(ctx context.Context, userID string) ([]models.PantryItem, error)
	// Add is a no-op when the user already has an item with the same key.
	Add(ctx context.Context, userID string, item models.PantryItem) error
	// Remove drops every item with the key.
	Remove(ctx context.Context, userID, ingredientKey string) error
}

// NewItem builds a pantry item from user input.
func NewItem(label string, now time.Time) (models.PantryItem, error) {
	label = strings.TrimSpace(label)
	key := utils.NormalizeIngredientKey(label)
	if key == "" {
		return models.PantryItem{}, ErrEmptyLabel
	}
	return models.PantryItem{IngredientKey: key, Label: label, AddedAt: now.UTC()}, nil
}

// Contains reports whether the pantry holds key. An empty key never matches.
func Contains(pantry []models.PantryItem, key string) bool {
	if key == "" {
		return false
	}
	for _, item := range pantry {
		if item.IngredientKey == key {
			return true
		}
	}
	return false
}

func stamp(item models.PantryItem) models.PantryItem {
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now().UTC()
	}
	return item
}
