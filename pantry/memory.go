package pantry

import (
	"context"
	"sync"

	"cookly/models"
)

// MemoryStore is an in-process Store. Setting FailWrites makes Add and Remove
// return that error without changing anything.
type MemoryStore struct {
	mu         sync.Mutex
	pantries   map[string][]models.PantryItem
	FailWrites error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{pantries: make(map[string][]models.PantryItem)}
}

func (s *MemoryStore) Get(_ context.Context, userID string) ([]models.PantryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.PantryItem, len(s.pantries[userID]))
	copy(out, s.pantries[userID])
	return out, nil
}

func (s *MemoryStore) Add(_ context.Context, userID string, item models.PantryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites != nil {
		return s.FailWrites
	}
	if userID == "" || Contains(s.pantries[userID], item.IngredientKey) {
		return nil
	}
	s.pantries[userID] = append(s.pantries[userID], stamp(item))
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, userID, ingredientKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites != nil {
		return s.FailWrites
	}
	s.pantries[userID] = without(s.pantries[userID], ingredientKey)
	return nil
}

func without(items []models.PantryItem, key string) []models.PantryItem {
	out := items[:0:0]
	for _, item := range items {
		if item.IngredientKey != key {
			out = append(out, item)
		}
	}
	return out
}
