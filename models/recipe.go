package models

// FilterType is one of the fixed recipe filter tags.
type FilterType string

const (
	FilterDiet            FilterType = "Diet"
	FilterHighProtein     FilterType = "High Protein"
	FilterStudentFriendly FilterType = "Student-Friendly"
	FilterGourmet         FilterType = "Gourmet"
)

// AllFilters lists the filter tags in display order.
var AllFilters = []FilterType{FilterDiet, FilterHighProtein, FilterStudentFriendly, FilterGourmet}

// Macros are per-serving nutrition values.
type Macros struct {
	Calories int `json:"calories" bson:"calories"`
	Protein  int `json:"protein" bson:"protein"` // g
	Carbs    int `json:"carbs" bson:"carbs"`     // g
	Fat      int `json:"fat" bson:"fat"`         // g
}

type Recipe struct {
	ID           string       `json:"id" bson:"id"`
	Title        string       `json:"title" bson:"title"`
	Category     string       `json:"category" bson:"category"` // e.g. "Chicken", "Vegan"
	Cuisine      string       `json:"cuisine" bson:"cuisine"`
	Description  string       `json:"description" bson:"description"`
	TotalTime    int          `json:"totalTime" bson:"totalTime"` // minutes
	Ingredients  []string     `json:"ingredients" bson:"ingredients"`
	Instructions []string     `json:"instructions" bson:"instructions"`
	Macros       Macros       `json:"macros" bson:"macros"`
	Filters      []FilterType `json:"filters" bson:"filters"`
}

// HasFilter reports whether the recipe carries the given filter tag.
func (r Recipe) HasFilter(f FilterType) bool {
	for _, have := range r.Filters {
		if have == f {
			return true
		}
	}
	return false
}
