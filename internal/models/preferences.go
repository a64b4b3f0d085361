package models

// SortKey selects the dashboard sort column.
type SortKey string

const (
	SortByProbability  SortKey = "probability"
	SortByPreparedness SortKey = "preparedness"
	SortBySeverity     SortKey = "severity"
	SortByName         SortKey = "name"
)

// ValidSortKeys is the set of all valid dashboard sort keys.
var ValidSortKeys = []SortKey{SortByProbability, SortByPreparedness, SortBySeverity, SortByName}

// IsValid returns true if the sort key is recognized.
func (k SortKey) IsValid() bool {
	for _, v := range ValidSortKeys {
		if k == v {
			return true
		}
	}
	return false
}

// SortOrder is the dashboard sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// IsValid returns true if the sort order is asc or desc.
func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}

// ViewMode selects how the dashboard lays out scenarios.
type ViewMode string

const (
	ViewCategories ViewMode = "categories"
	ViewAll        ViewMode = "all"
)

// IsValid returns true if the view mode is recognized.
func (m ViewMode) IsValid() bool {
	return m == ViewCategories || m == ViewAll
}

// Preferences is the persisted UI state.
type Preferences struct {
	DarkMode           bool      `json:"darkMode" yaml:"darkMode"`
	CurrentPage        string    `json:"currentPage" yaml:"currentPage"`
	DashboardSortBy    SortKey   `json:"dashboardSortBy" yaml:"dashboardSortBy"`
	DashboardSortOrder SortOrder `json:"dashboardSortOrder" yaml:"dashboardSortOrder"`
	ExpandedCategories []string  `json:"expandedCategories" yaml:"expandedCategories"`
	SelectedCategories []string  `json:"selectedCategories" yaml:"selectedCategories"`
	ViewMode           ViewMode  `json:"viewMode" yaml:"viewMode"`
}

// DefaultPreferences returns the preferences used when nothing is stored.
// Every category starts expanded and selected.
func DefaultPreferences(categoryIDs []string) Preferences {
	return Preferences{
		DarkMode:           false,
		CurrentPage:        "/",
		DashboardSortBy:    SortByProbability,
		DashboardSortOrder: SortDesc,
		ExpandedCategories: cloneSlice(categoryIDs),
		SelectedCategories: cloneSlice(categoryIDs),
		ViewMode:           ViewCategories,
	}
}

// IsSelected reports whether the category passes the dashboard filter.
func (p Preferences) IsSelected(categoryID string) bool {
	return containsID(p.SelectedCategories, categoryID)
}

// IsExpanded reports whether the category group is expanded.
func (p Preferences) IsExpanded(categoryID string) bool {
	return containsID(p.ExpandedCategories, categoryID)
}

// Clone returns a deep copy.
func (p Preferences) Clone() Preferences {
	p.ExpandedCategories = cloneSlice(p.ExpandedCategories)
	p.SelectedCategories = cloneSlice(p.SelectedCategories)
	return p
}

// ToggleID adds id to ids when absent and removes it when present.
func ToggleID(ids []string, id string) []string {
	out := make([]string, 0, len(ids)+1)
	found := false
	for _, v := range ids {
		if v == id {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, id)
	}
	return out
}
