package engine

import (
	"slices"
	"strings"

	"github.com/ajitpratap0/riskready/internal/models"
)

// ScenarioRow is a scenario together with the values the dashboard derives
// for it.
type ScenarioRow struct {
	Scenario     models.Scenario `json:"scenario"`
	Preparedness Readiness       `json:"preparedness"`
	RiskScore    float64         `json:"risk_score"`
	RiskTier     RiskTier        `json:"risk_tier"`
}

// SortScenarios returns rows ordered by key in the given direction.
// Ties keep their input order in both directions. An unknown key returns
// the rows unchanged. The input slice is not modified.
func SortScenarios(rows []ScenarioRow, key models.SortKey, order models.SortOrder) []ScenarioRow {
	out := slices.Clone(rows)
	cmp := comparatorFor(key)
	if cmp == nil {
		return out
	}
	if order == models.SortDesc {
		asc := cmp
		cmp = func(a, b *ScenarioRow) int { return asc(b, a) }
	}
	slices.SortStableFunc(out, func(a, b ScenarioRow) int { return cmp(&a, &b) })
	return out
}

func comparatorFor(key models.SortKey) func(a, b *ScenarioRow) int {
	switch key {
	case models.SortByProbability:
		return func(a, b *ScenarioRow) int {
			return compareFloat(
				weightOf(ProbabilityWeight, a.Scenario.Probability),
				weightOf(ProbabilityWeight, b.Scenario.Probability))
		}
	case models.SortBySeverity:
		return func(a, b *ScenarioRow) int {
			return compareFloat(
				weightOf(SeverityWeight, a.Scenario.Severity),
				weightOf(SeverityWeight, b.Scenario.Severity))
		}
	case models.SortByPreparedness:
		return func(a, b *ScenarioRow) int {
			return a.Preparedness.Percentage - b.Preparedness.Percentage
		}
	case models.SortByName:
		return func(a, b *ScenarioRow) int {
			return strings.Compare(strings.ToLower(a.Scenario.Name), strings.ToLower(b.Scenario.Name))
		}
	default:
		return nil
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
