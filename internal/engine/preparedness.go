package engine

import (
	"fmt"
	"math"

	"github.com/ajitpratap0/riskready/internal/models"
)

// Strategy selects what counts as "dependent work" for preparedness.
type Strategy string

const (
	// StrategyPlanSteps counts completed steps across the scenario's plans.
	StrategyPlanSteps Strategy = "plan_steps"
	// StrategyRemediations counts completed remediations applicable to the scenario.
	StrategyRemediations Strategy = "remediations"
)

// ParseStrategy maps a user-supplied name to a Strategy. The empty string
// selects StrategyPlanSteps.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyPlanSteps:
		return StrategyPlanSteps, nil
	case StrategyRemediations:
		return StrategyRemediations, nil
	default:
		return "", fmt.Errorf("unknown preparedness strategy %q (use plan_steps or remediations)", s)
	}
}

// Preparedness levels.
const (
	LevelNoPlans           = "No Plans"
	LevelNoSteps           = "No Steps"
	LevelNoRemediations    = "No Remediations"
	LevelFullyPrepared     = "Fully Prepared"
	LevelPartiallyPrepared = "Partially Prepared"
	LevelNeedsAttention    = "Needs Attention"
)

// Readiness is a completion ratio with its qualitative label.
type Readiness struct {
	Percentage int    `json:"percentage"`
	Level      string `json:"level"`
	Tag        Tag    `json:"tag"`
	Completed  int    `json:"completed"`
	Total      int    `json:"total"`
}

// Preparedness computes the scenario's readiness using the given strategy.
func Preparedness(ds *models.Dataset, scenarioID string, strategy Strategy) Readiness {
	if strategy == StrategyRemediations {
		return RemediationPreparedness(ds, scenarioID)
	}
	return PlanStepPreparedness(ds, scenarioID)
}

// PlanStepPreparedness is the dashboard variant: completed steps over all
// steps of every plan owned by the scenario. Steps are found through
// Step.PlanID, never through Plan.Steps.
func PlanStepPreparedness(ds *models.Dataset, scenarioID string) Readiness {
	planIDs := make(map[string]struct{})
	for i := range ds.Plans {
		if ds.Plans[i].ScenarioID == scenarioID {
			planIDs[ds.Plans[i].ID] = struct{}{}
		}
	}
	if len(planIDs) == 0 {
		return Readiness{Level: LevelNoPlans, Tag: TagError}
	}

	total, completed := 0, 0
	for i := range ds.Steps {
		if _, ok := planIDs[ds.Steps[i].PlanID]; !ok {
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

// RemediationPreparedness is the scenario-detail variant: completed
// remediations over all remediations applicable to the scenario.
func RemediationPreparedness(ds *models.Dataset, scenarioID string) Readiness {
	total, completed := 0, 0
	for i := range ds.Remediations {
		if !ds.Remediations[i].AppliesTo(scenarioID) {
			continue
		}
		total++
		if ds.Remediations[i].Status == models.StatusCompleted {
			completed++
		}
	}
	if total == 0 {
		return Readiness{Level: LevelNoRemediations, Tag: TagError}
	}
	return readinessFor(completed, total)
}

// LevelFor maps a percentage to its label and tag.
func LevelFor(percentage int) (string, Tag) {
	switch {
	case percentage >= 100:
		return LevelFullyPrepared, TagSuccess
	case percentage >= 50:
		return LevelPartiallyPrepared, TagWarning
	default:
		return LevelNeedsAttention, TagError
	}
}

func readinessFor(completed, total int) Readiness {
	pct := int(math.Round(100 * float64(completed) / float64(total)))
	level, tag := LevelFor(pct)
	return Readiness{
		Percentage: pct,
		Level:      level,
		Tag:        tag,
		Completed:  completed,
		Total:      total,
	}
}
