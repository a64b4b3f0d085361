package engine

import (
	"slices"
	"time"

	"github.com/ajitpratap0/riskready/internal/models"
)

// DueSoonDays is the window in which an unfinished remediation is due soon.
const DueSoonDays = 7

// DueWithin reports whether d is set, not yet past and at most days away.
func DueWithin(d *models.Date, now time.Time, days int) bool {
	if !models.IsSet(d) || PastDue(d, now) {
		return false
	}
	return DaysUntil(*d, now) <= float64(days)
}

// IsDueSoon reports whether a remediation is due within DueSoonDays and
// not already overdue.
func IsDueSoon(r *models.Remediation, now time.Time) bool {
	return !IsOverdue(r, now) && DueWithin(r.DueDate, now, DueSoonDays)
}

// RemediationRow is a remediation with its due-date flags.
type RemediationRow struct {
	Remediation models.Remediation `json:"remediation"`
	StatusTag   Tag                `json:"status_tag"`
	Overdue     bool               `json:"overdue"`
	DueSoon     bool               `json:"due_soon"`
}

// PlanView is a plan with its steps in execution order.
type PlanView struct {
	Plan      models.Plan   `json:"plan"`
	Steps     []models.Step `json:"steps"`
	Readiness Readiness     `json:"readiness"`
}

// RequiredItem is an inventory requirement resolved against the dataset.
type RequiredItem struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Stock StockLevel `json:"stock"`
}

// Analysis is the detail view of a single scenario.
type Analysis struct {
	Scenario      models.Scenario  `json:"scenario"`
	Categories    []string         `json:"categories"`
	Readiness     Readiness        `json:"readiness"`
	PlanReadiness Readiness        `json:"plan_readiness"`
	Risk          RiskBreakdown    `json:"risk"`
	Plans         []PlanView       `json:"plans"`
	Remediations  []RemediationRow `json:"remediations"`
	UrgentActions []RemediationRow `json:"urgent_actions"`
	RequiredItems []RequiredItem   `json:"required_items"`
	OverdueCount  int              `json:"overdue_count"`
	DueSoonCount  int              `json:"due_soon_count"`
}

// ScenarioAnalysis builds the detail view of the scenario with the given id.
// Readiness uses the remediation strategy; PlanReadiness the plan/step one.
func ScenarioAnalysis(ds *models.Dataset, scenarioID string, now time.Time) (Analysis, bool) {
	sc, ok := ds.ScenarioByID(scenarioID)
	if !ok {
		return Analysis{}, false
	}

	a := Analysis{
		Scenario:      sc,
		Readiness:     RemediationPreparedness(ds, scenarioID),
		PlanReadiness: PlanStepPreparedness(ds, scenarioID),
		Risk:          ExplainRisk(ds, &sc, now),
	}
	for _, cid := range sc.Categories {
		a.Categories = append(a.Categories, CategoryName(ds, cid))
	}

	for _, p := range PlansForScenario(ds, scenarioID) {
		a.Plans = append(a.Plans, PlanView{
			Plan:      p,
			Steps:     StepsForPlan(ds, p.ID),
			Readiness: PlanReadiness(ds, p.ID),
		})
	}

	seenItems := make(map[string]struct{})
	for i := range ds.Remediations {
		r := &ds.Remediations[i]
		if !r.AppliesTo(scenarioID) {
			continue
		}
		row := RemediationRow{
			Remediation: *r,
			StatusTag:   StatusTag(r.Status),
			Overdue:     IsOverdue(r, now),
			DueSoon:     IsDueSoon(r, now),
		}
		a.Remediations = append(a.Remediations, row)
		if row.Overdue {
			a.OverdueCount++
		}
		if row.DueSoon {
			a.DueSoonCount++
		}
		if r.Status == models.StatusNotStarted || r.Status == models.StatusInProgress {
			a.UrgentActions = append(a.UrgentActions, row)
		}
		for _, itemID := range r.RequiredInventory {
			if _, dup := seenItems[itemID]; dup {
				continue
			}
			seenItems[itemID] = struct{}{}
			a.RequiredItems = append(a.RequiredItems, RequiredItem{
				ID:    itemID,
				Name:  InventoryName(ds, itemID),
				Stock: InventoryStatus(ds, itemID),
			})
		}
	}
	return a, true
}

// PlansForScenario returns the scenario's plans ordered by Order.
func PlansForScenario(ds *models.Dataset, scenarioID string) []models.Plan {
	var plans []models.Plan
	for i := range ds.Plans {
		if ds.Plans[i].ScenarioID == scenarioID {
			plans = append(plans, ds.Plans[i])
		}
	}
	slices.SortStableFunc(plans, func(a, b models.Plan) int { return a.Order - b.Order })
	return plans
}

// StepsForPlan returns the plan's steps ordered by Order. Equal orders keep
// their input order.
func StepsForPlan(ds *models.Dataset, planID string) []models.Step {
	var steps []models.Step
	for i := range ds.Steps {
		if ds.Steps[i].PlanID == planID {
			steps = append(steps, ds.Steps[i])
		}
	}
	slices.SortStableFunc(steps, func(a, b models.Step) int { return a.Order - b.Order })
	return steps
}

// PlanReadiness is the share of completed steps in a single plan.
func PlanReadiness(ds *models.Dataset, planID string) Readiness {
	total, completed := 0, 0
	for i := range ds.Steps {
		if ds.Steps[i].PlanID != planID {
			continue
		}
		total++
		if ds.Steps[i].Status == models.StatusCompleted {
			completed++
		}
	}
	if total == 0 {
		return Readiness{Level: LevelNoSteps, Tag: TagError}
	}
	return readinessFor(completed, total)
}
