package utils

import (
	"regexp"
	"strconv"
	"strings"
)

// SplitCSV takes a comma-separated string and returns the trimmed, non-empty parts.
func SplitCSV(input string) []string {
	if input == "" {
		return []string{}
	}
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseInt returns 0 for anything that is not an integer.
func ParseInt(s string) int {
	val, _ := strconv.Atoi(strings.TrimSpace(s))
	return val
}

func ContainsIgnoreCase(str, substr string) bool {
	return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
}

var (
	ingredientPunct = regexp.MustCompile(`[.,:;()\-_/]`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
)

// NormalizeIngredientKey canonicalizes a free-text ingredient label so it can be
// matched against pantry entries and store catalog rows.
// "  Chicken-Breast (boneless) " -> "chickenbreast boneless"
func NormalizeIngredientKey(raw string) string {
	key := strings.TrimSpace(strings.ToLower(raw))
	key = ingredientPunct.ReplaceAllString(key, "")
	key = whitespaceRun.ReplaceAllString(key, " ")
	return strings.TrimSpace(key)
}
