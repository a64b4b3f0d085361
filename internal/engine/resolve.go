package engine

import (
	"strings"

	"github.com/ajitpratap0/riskready/internal/models"
)

// Sentinel labels for references that point at nothing.
const (
	UnknownScenario    = "Unknown Scenario"
	UnknownRemediation = "Unknown Remediation"
	UnknownPlan        = "Unknown Plan"
	UnknownCategory    = "Unknown Category"
	UnknownItem        = "Unknown Item"
	Unknown            = "Unknown"
)

// ScenarioName resolves a scenario id to its name.
func ScenarioName(ds *models.Dataset, id string) string {
	if s, ok := ds.ScenarioByID(id); ok {
		return s.Name
	}
	return UnknownScenario
}

// ScenarioNames resolves each id and joins the names with ", ".
// Dangling ids render as "Unknown".
func ScenarioNames(ds *models.Dataset, ids []string) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if s, ok := ds.ScenarioByID(id); ok {
			names = append(names, s.Name)
		} else {
			names = append(names, Unknown)
		}
	}
	return strings.Join(names, ", ")
}

// RemediationName resolves a remediation id to its name.
func RemediationName(ds *models.Dataset, id string) string {
	if r, ok := ds.RemediationByID(id); ok {
		return r.Name
	}
	return UnknownRemediation
}

// PlanName resolves a plan id to its name.
func PlanName(ds *models.Dataset, id string) string {
	if p, ok := ds.PlanByID(id); ok {
		return p.Name
	}
	return UnknownPlan
}

// CategoryName resolves a category id to its name.
func CategoryName(ds *models.Dataset, id string) string {
	if c, ok := ds.CategoryByID(id); ok {
		return c.Name
	}
	return UnknownCategory
}

// InventoryName resolves an inventory item id to its name.
func InventoryName(ds *models.Dataset, id string) string {
	if it, ok := ds.InventoryByID(id); ok {
		return it.Name
	}
	return UnknownItem
}
