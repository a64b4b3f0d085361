package engine

import (
	"time"

	"github.com/ajitpratap0/riskready/internal/models"
)

// CategoryGroup is a dashboard section for one category.
type CategoryGroup struct {
	Category models.Category `json:"category"`
	Expanded bool            `json:"expanded"`
	Rows     []ScenarioRow   `json:"rows"`
}

// DashboardView is the dashboard laid out according to the preferences.
// Groups is filled in categories view mode, Rows in all view mode.
type DashboardView struct {
	ViewMode  models.ViewMode  `json:"view_mode"`
	SortBy    models.SortKey   `json:"sort_by"`
	SortOrder models.SortOrder `json:"sort_order"`
	Groups    []CategoryGroup  `json:"groups,omitempty"`
	Rows      []ScenarioRow    `json:"rows,omitempty"`
}

// ScenarioRows derives the dashboard row of every scenario, in dataset order.
func ScenarioRows(ds *models.Dataset, now time.Time) []ScenarioRow {
	rows := make([]ScenarioRow, 0, len(ds.Scenarios))
	for i := range ds.Scenarios {
		sc := &ds.Scenarios[i]
		score := RiskScore(ds, sc, now)
		rows = append(rows, ScenarioRow{
			Scenario:     *sc,
			Preparedness: PlanStepPreparedness(ds, sc.ID),
			RiskScore:    score,
			RiskTier:     RiskTierFor(score),
		})
	}
	return rows
}

// Dashboard builds the dashboard. In categories mode only selected
// categories with at least one scenario are shown, and a scenario appears
// under each of its categories.
func Dashboard(ds *models.Dataset, prefs models.Preferences, now time.Time) DashboardView {
	rows := SortScenarios(ScenarioRows(ds, now), prefs.DashboardSortBy, prefs.DashboardSortOrder)
	view := DashboardView{
		ViewMode:  prefs.ViewMode,
		SortBy:    prefs.DashboardSortBy,
		SortOrder: prefs.DashboardSortOrder,
	}
	if prefs.ViewMode == models.ViewAll {
		view.Rows = rows
		return view
	}

	for _, cat := range ds.Categories {
		if !prefs.IsSelected(cat.ID) {
			continue
		}
		g := CategoryGroup{Category: cat, Expanded: prefs.IsExpanded(cat.ID)}
		for _, r := range rows {
			if r.Scenario.InCategory(cat.ID) {
				g.Rows = append(g.Rows, r)
			}
		}
		if len(g.Rows) == 0 {
			continue
		}
		view.Groups = append(view.Groups, g)
	}
	return view
}
