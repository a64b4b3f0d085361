package engine

import (
	"time"

	"github.com/ajitpratap0/riskready/internal/models"
)

const (
	// SeasonalMultiplier applies when the evaluation date falls in one of
	// the scenario's seasons.
	SeasonalMultiplier = 1.5

	// OverduePenalty is added to the overdue multiplier per overdue remediation.
	OverduePenalty = 0.3

	// HighRiskThreshold and MediumRiskThreshold are absolute score cut-offs.
	HighRiskThreshold   = 50.0
	MediumRiskThreshold = 25.0
)

// SeverityWeight maps severities to their risk weight.
var SeverityWeight = map[models.Severity]float64{
	models.SeverityHigh:   3,
	models.SeverityMedium: 2,
	models.SeverityLow:    1,
}

// ProbabilityWeight maps probabilities to their risk weight.
var ProbabilityWeight = map[models.Probability]float64{
	models.ProbabilityHigh:   3,
	models.ProbabilityMedium: 2,
	models.ProbabilityLow:    1,
}

// VelocityWeight maps velocities to their risk weight.
var VelocityWeight = map[models.Velocity]float64{
	models.VelocityImmediate: 4,
	models.VelocityFast:      3,
	models.VelocityModerate:  2,
	models.VelocitySlow:      1,
}

// DetectabilityWeight maps detectability ratings to their risk weight.
var DetectabilityWeight = map[models.Detectability]float64{
	models.DetectabilityDifficult: 3,
	models.DetectabilityModerate:  2,
	models.DetectabilityEasy:      1,
}

// RiskBreakdown exposes every factor of a composite risk score.
type RiskBreakdown struct {
	SeverityWeight      float64       `json:"severity_weight"`
	ProbabilityWeight   float64       `json:"probability_weight"`
	VelocityWeight      float64       `json:"velocity_weight"`
	DetectabilityWeight float64       `json:"detectability_weight"`
	Season              models.Season `json:"season"`
	SeasonalMultiplier  float64       `json:"seasonal_multiplier"`
	OverdueCount        int           `json:"overdue_count"`
	OverdueMultiplier   float64       `json:"overdue_multiplier"`
	PreparednessRatio   float64       `json:"preparedness_ratio"`
	Score               float64       `json:"score"`
	Tier                RiskTier      `json:"tier"`
}

// RiskTier is the display bucket for a risk score.
type RiskTier struct {
	Label string `json:"label"`
	Tag   Tag    `json:"tag"`
}

// SeasonFor maps a month to its season using t's own location.
// December through February is winter.
func SeasonFor(t time.Time) models.Season {
	switch t.Month() {
	case time.December, time.January, time.February:
		return models.SeasonWinter
	case time.March, time.April, time.May:
		return models.SeasonSpring
	case time.June, time.July, time.August:
		return models.SeasonSummer
	default:
		return models.SeasonFall
	}
}

// IsOverdue reports whether a remediation is past due and unfinished.
func IsOverdue(r *models.Remediation, now time.Time) bool {
	return PastDue(r.DueDate, now) && r.Status != models.StatusCompleted
}

// OverdueCount counts overdue remediations applicable to the scenario.
func OverdueCount(ds *models.Dataset, scenarioID string, now time.Time) int {
	n := 0
	for i := range ds.Remediations {
		r := &ds.Remediations[i]
		if r.AppliesTo(scenarioID) && IsOverdue(r, now) {
			n++
		}
	}
	return n
}

// RiskScore computes the composite urgency score of a scenario at now.
func RiskScore(ds *models.Dataset, scenario *models.Scenario, now time.Time) float64 {
	return ExplainRisk(ds, scenario, now).Score
}

// ExplainRisk computes the composite risk score and returns every factor.
// Preparedness uses the plan/step strategy.
func ExplainRisk(ds *models.Dataset, scenario *models.Scenario, now time.Time) RiskBreakdown {
	b := RiskBreakdown{
		SeverityWeight:      weightOf(SeverityWeight, scenario.Severity),
		ProbabilityWeight:   weightOf(ProbabilityWeight, scenario.Probability),
		VelocityWeight:      weightOf(VelocityWeight, scenario.Velocity),
		DetectabilityWeight: weightOf(DetectabilityWeight, scenario.Detectability),
		Season:              SeasonFor(now),
		SeasonalMultiplier:  1.0,
	}
	if scenario.HasSeason(b.Season) {
		b.SeasonalMultiplier = SeasonalMultiplier
	}
	b.OverdueCount = OverdueCount(ds, scenario.ID, now)
	b.OverdueMultiplier = 1 + OverduePenalty*float64(b.OverdueCount)
	b.PreparednessRatio = float64(PlanStepPreparedness(ds, scenario.ID).Percentage) / 100

	b.Score = b.SeverityWeight * b.ProbabilityWeight * b.VelocityWeight * b.DetectabilityWeight *
		b.SeasonalMultiplier * b.OverdueMultiplier * (1 - b.PreparednessRatio)
	b.Tier = RiskTierFor(b.Score)
	return b
}

// RiskTierFor buckets a score on the fixed absolute scale.
func RiskTierFor(score float64) RiskTier {
	switch {
	case score > HighRiskThreshold:
		return RiskTier{Label: "High Risk", Tag: TagError}
	case score > MediumRiskThreshold:
		return RiskTier{Label: "Medium Risk", Tag: TagWarning}
	default:
		return RiskTier{Label: "Low Risk", Tag: TagSuccess}
	}
}

// weightOf falls back to 1 for unrecognized values.
func weightOf[K comparable](table map[K]float64, k K) float64 {
	if w, ok := table[k]; ok {
		return w
	}
	return 1
}
