package search

import (
	"strings"

	"cookly/models"
	"cookly/utils"
)

// IsIdle reports whether there is nothing to search for.
func IsIdle(query string, filters models.SearchFilters) bool {
	return strings.TrimSpace(query) == "" && !filters.Any()
}

// Filter keeps recipes carrying any active filter tag, then narrows by a
// case-insensitive substring match on title, category, description or tag.
func Filter(recipes []models.Recipe, query string, filters models.SearchFilters) []models.Recipe {
	active := filters.Active()
	q := strings.ToLower(strings.TrimSpace(query))

	out := []models.Recipe{}
	for _, r := range recipes {
		if len(active) > 0 && !hasAnyFilter(r, active) {
			continue
		}
		if q != "" && !matchesQuery(r, q) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func hasAnyFilter(r models.Recipe, active []models.FilterType) bool {
	for _, f := range active {
		if r.HasFilter(f) {
			return true
		}
	}
	return false
}

// q must already be lowercased and trimmed.
func matchesQuery(r models.Recipe, q string) bool {
	if strings.Contains(strings.ToLower(r.Title), q) ||
		strings.Contains(strings.ToLower(r.Category), q) ||
		strings.Contains(strings.ToLower(r.Description), q) {
		return true
	}
	for _, tag := range r.Filters {
		if strings.Contains(strings.ToLower(string(tag)), q) {
			return true
		}
	}
	return false
}

// StateFor maps a finished result set to results or empty.
func StateFor(results []models.Recipe) models.SearchState {
	if len(results) == 0 {
		return models.SearchEmpty
	}
	return models.SearchResults
}

// ParseFilters reads a comma-separated list of filter names, e.g.
// "Diet,High Protein". Unrecognised names are returned separately.
func ParseFilters(csv string) (models.SearchFilters, []string) {
	var filters models.SearchFilters
	var unknown []string
	for _, name := range utils.SplitCSV(csv) {
		if !filters.Set(models.FilterType(name)) {
			unknown = append(unknown, name)
		}
	}
	return filters, unknown
}
