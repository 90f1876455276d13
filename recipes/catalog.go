package recipes

import (
	"sort"
	"strings"

	"cookly/models"
	"cookly/utils"
)

// Catalog is an immutable, indexed view over a recipe table.
type Catalog struct {
	recipes []models.Recipe
	byID    map[string]int
}

// NewCatalog indexes recipes by id. Later duplicates of an id are ignored.
func NewCatalog(recipes []models.Recipe) *Catalog {
	c := &Catalog{byID: make(map[string]int, len(recipes))}
	for _, r := range recipes {
		if _, dup := c.byID[r.ID]; dup {
			continue
		}
		c.byID[r.ID] = len(c.recipes)
		c.recipes = append(c.recipes, r)
	}
	return c
}

var defaultCatalog = NewCatalog(seed)

// Default returns the built-in catalog.
func Default() *Catalog { return defaultCatalog }

// All returns every recipe in table order. The slice must not be modified.
func (c *Catalog) All() []models.Recipe {
	return c.recipes
}

func (c *Catalog) ByID(id string) (models.Recipe, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Recipe{}, false
	}
	return c.recipes[i], true
}

// Categories returns the distinct categories, sorted.
func (c *Catalog) Categories() []string {
	return c.distinct(func(r models.Recipe) string { return r.Category })
}

// Cuisines returns the distinct cuisines, sorted.
func (c *Catalog) Cuisines() []string {
	return c.distinct(func(r models.Recipe) string { return r.Cuisine })
}

func (c *Catalog) distinct(field func(models.Recipe) string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, r := range c.recipes {
		v := field(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func (c *Catalog) ByCategory(category string) []models.Recipe {
	return c.Browse(BrowseQuery{Category: category})
}

// BrowseQuery narrows the recipe list. Zero fields do not filter.
type BrowseQuery struct {
	Name     string
	Category string
	MaxTime  int
}

// Browse returns the recipes matching every set field of q, in table order.
func (c *Catalog) Browse(q BrowseQuery) []models.Recipe {
	name := strings.TrimSpace(q.Name)
	category := strings.TrimSpace(q.Category)

	out := []models.Recipe{}
	for _, r := range c.recipes {
		if name != "" && !utils.ContainsIgnoreCase(r.Title, name) {
			continue
		}
		if category != "" && !strings.EqualFold(r.Category, category) {
			continue
		}
		if q.MaxTime > 0 && r.TotalTime > q.MaxTime {
			continue
		}
		out = append(out, r)
	}
	return out
}
