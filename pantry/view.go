package pantry

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"cookly/models"
	"cookly/utils"
)

// View is a user's pantry as seen by one client. Toggle applies the change
// locally first, then writes it; a failed write is rolled back locally.
type View struct {
	store  Store
	userID string
	now    func() time.Time

	mu    sync.Mutex
	items []models.PantryItem
}

func NewView(store Store, userID string) *View {
	return &View{store: store, userID: userID, now: time.Now}
}

// Load replaces the local items with the stored pantry.
func (v *View) Load(ctx context.Context) error {
	items, err := v.store.Get(ctx, v.userID)
	if err != nil {
		return err
	}
	v.mu.Lock()
	v.items = items
	v.mu.Unlock()
	return nil
}

func (v *View) Items() []models.PantryItem {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]models.PantryItem, len(v.items))
	copy(out, v.items)
	return out
}

func (v *View) Has(label string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Contains(v.items, utils.NormalizeIngredientKey(label))
}

// Toggle adds label if its key is absent, otherwise removes it. It reports
// whether the item is now in the pantry.
func (v *View) Toggle(ctx context.Context, label string) (bool, error) {
	item, err := NewItem(label, v.now())
	if err != nil {
		return false, err
	}

	v.mu.Lock()
	removed := v.itemsWithKeyLocked(item.IngredientKey)
	adding := len(removed) == 0
	if adding {
		v.items = append(v.items, item)
	} else {
		v.items = without(v.items, item.IngredientKey)
	}
	v.mu.Unlock()

	if adding {
		err = v.store.Add(ctx, v.userID, item)
	} else {
		err = v.store.Remove(ctx, v.userID, item.IngredientKey)
	}
	if err == nil {
		return adding, nil
	}

	log.Printf("[PantryToggle] user=%s key=%q write failed, reverting: %v", v.userID, item.IngredientKey, err)
	v.mu.Lock()
	if adding {
		v.items = without(v.items, item.IngredientKey)
	} else {
		v.items = append(v.items, removed...)
	}
	v.mu.Unlock()
	return !adding, fmt.Errorf("toggle %q: %w", item.IngredientKey, err)
}

func (v *View) itemsWithKeyLocked(key string) []models.PantryItem {
	var out []models.PantryItem
	for _, item := range v.items {
		if item.IngredientKey == key {
			out = append(out, item)
		}
	}
	return out
}
