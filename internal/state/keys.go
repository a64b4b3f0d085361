package state

// KeyPrefix namespaces every stored key.
const KeyPrefix = "risk-management-"

// Collection keys.
const (
	KeyScenarios    = KeyPrefix + "scenarios"
	KeyRemediations = KeyPrefix + "remediations"
	KeyPlans        = KeyPrefix + "plans"
	KeySteps        = KeyPrefix + "steps"
	KeyInventory    = KeyPrefix + "inventory"
	KeyContacts     = KeyPrefix + "contacts"
	KeyCategories   = KeyPrefix + "categories"
)

// Preference keys.
const (
	KeyDarkMode           = KeyPrefix + "dark-mode"
	KeyCurrentPage        = KeyPrefix + "current-page"
	KeySortBy             = KeyPrefix + "dashboard-sort-by"
	KeySortOrder          = KeyPrefix + "dashboard-sort-order"
	KeyExpandedCategories = KeyPrefix + "dashboard-expanded-categories"
	KeySelectedCategories = KeyPrefix + "dashboard-selected-categories"
	KeyViewMode           = KeyPrefix + "dashboard-view-mode"
)

// CollectionKeys lists the collection keys in load order.
var CollectionKeys = []string{
	KeyScenarios, KeyRemediations, KeyPlans, KeySteps, KeyInventory, KeyContacts, KeyCategories,
}

// PreferenceKeys lists the preference keys.
var PreferenceKeys = []string{
	KeyDarkMode, KeyCurrentPage, KeySortBy, KeySortOrder,
	KeyExpandedCategories, KeySelectedCategories, KeyViewMode,
}

// AllKeys returns every key the state reads or writes.
func AllKeys() []string {
	out := make([]string, 0, len(CollectionKeys)+len(PreferenceKeys))
	out = append(out, CollectionKeys...)
	return append(out, PreferenceKeys...)
}
