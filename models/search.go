package models

// SearchFilters is the fixed set of toggleable filter chips.
type SearchFilters struct {
	Diet            bool `json:"Diet"`
	HighProtein     bool `json:"High Protein"`
	StudentFriendly bool `json:"Student-Friendly"`
	Gourmet         bool `json:"Gourmet"`
}

// Active returns the enabled filters in display order.
func (f SearchFilters) Active() []FilterType {
	var out []FilterType
	if f.Diet {
		out = append(out, FilterDiet)
	}
	if f.HighProtein {
		out = append(out, FilterHighProtein)
	}
	if f.StudentFriendly {
		out = append(out, FilterStudentFriendly)
	}
	if f.Gourmet {
		out = append(out, FilterGourmet)
	}
	return out
}

// Any reports whether at least one filter is enabled.
func (f SearchFilters) Any() bool {
	return f.Diet || f.HighProtein || f.StudentFriendly || f.Gourmet
}

// Set enables the named filter. Unknown names are ignored and reported as false.
func (f *SearchFilters) Set(name FilterType) bool {
	switch name {
	case FilterDiet:
		f.Diet = true
	case FilterHighProtein:
		f.HighProtein = true
	case FilterStudentFriendly:
		f.StudentFriendly = true
	case FilterGourmet:
		f.Gourmet = true
	default:
		return false
	}
	return true
}

type SearchState string

const (
	SearchIdle      SearchState = "idle"
	SearchSearching SearchState = "searching"
	SearchResults   SearchState = "results"
	SearchEmpty     SearchState = "empty"
	SearchError     SearchState = "error"
)
