package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ajitpratap0/riskready/internal/engine"
	"github.com/ajitpratap0/riskready/internal/models"
)

var july = time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)

func worstCase(seasons ...models.Season) models.Scenario {
	return models.Scenario{
		ID:            "w",
		Name:          "Worst Case",
		Severity:      models.SeverityHigh,
		Probability:   models.ProbabilityHigh,
		Velocity:      models.VelocityImmediate,
		Detectability: models.DetectabilityDifficult,
		SeasonalRisk:  seasons,
	}
}

func TestRiskScore_BaseProduct(t *testing.T) {
	sc := worstCase(models.SeasonWinter)
	ds := &models.Dataset{Scenarios: []models.Scenario{sc}}
	// 3 * 3 * 4 * 3, no plans so preparedness is 0.
	assert.InDelta(t, 108.0, engine.RiskScore(ds, &sc, july), 1e-9)
}

func TestRiskScore_SeasonalMultiplier(t *testing.T) {
	off := worstCase(models.SeasonWinter)
	on := worstCase(models.SeasonSummer)
	ds := &models.Dataset{}

	base := engine.RiskScore(ds, &off, july)
	boosted := engine.RiskScore(ds, &on, july)
	assert.InDelta(t, 1.5, boosted/base, 1e-9)
}

func TestRiskScore_YearRoundNeverMatches(t *testing.T) {
	sc := worstCase(models.SeasonYearRound)
	ds := &models.Dataset{}
	for m := time.January; m <= time.December; m++ {
		now := time.Date(2025, m, 10, 0, 0, 0, 0, time.UTC)
		assert.InDelta(t, 108.0, engine.RiskScore(ds, &sc, now), 1e-9, "month %s", m)
	}
}

func TestRiskScore_OverdueMultiplier(t *testing.T) {
	sc := worstCase()
	yesterday := models.DatePtr(models.DateOf(july.AddDate(0, 0, -1)))
	nextWeek := models.DatePtr(models.DateOf(july.AddDate(0, 0, 7)))

	ds := &models.Dataset{Remediations: []models.Remediation{
		{ID: "r1", ApplicableScenarios: []string{"w"}, Status: models.StatusNotStarted, DueDate: yesterday},
		{ID: "r2", ApplicableScenarios: []string{"w"}, Status: models.StatusCompleted, DueDate: yesterday},
		{ID: "r3", ApplicableScenarios: []string{"w"}, Status: models.StatusInProgress, DueDate: nextWeek},
		{ID: "r4", ApplicableScenarios: []string{"other"}, Status: models.StatusNotStarted, DueDate: yesterday},
		{ID: "r5", ApplicableScenarios: []string{"w"}, Status: models.StatusNotStarted},
	}}

	assert.Equal(t, 1, engine.OverdueCount(ds, "w", july))
	assert.InDelta(t, 108.0*1.3, engine.RiskScore(ds, &sc, july), 1e-9)

	ds.Remediations[2].DueDate = yesterday
	assert.Equal(t, 2, engine.OverdueCount(ds, "w", july))
	assert.InDelta(t, 108.0*1.6, engine.RiskScore(ds, &sc, july), 1e-9)
}

func TestRiskScore_PreparednessReducesScore(t *testing.T) {
	sc := worstCase()
	ds := &models.Dataset{
		Plans: []models.Plan{{ID: "p", ScenarioID: "w"}},
		Steps: []models.Step{
			step("a", "p", 1, models.StatusCompleted),
			step("b", "p", 2, models.StatusNotStarted),
		},
	}
	assert.InDelta(t, 54.0, engine.RiskScore(ds, &sc, july), 1e-9)

	ds.Steps[1].Status = models.StatusCompleted
	assert.InDelta(t, 0.0, engine.RiskScore(ds, &sc, july), 1e-9)
}

func TestRiskScore_UnknownValuesWeighOne(t *testing.T) {
	sc := models.Scenario{
		ID:            "u",
		Severity:      "catastrophic",
		Probability:   "",
		Velocity:      "glacial",
		Detectability: "obvious",
	}
	assert.InDelta(t, 1.0, engine.RiskScore(&models.Dataset{}, &sc, july), 1e-9)
}

func TestExplainRisk(t *testing.T) {
	sc := worstCase(models.SeasonSummer)
	b := engine.ExplainRisk(&models.Dataset{}, &sc, july)
	assert.Equal(t, models.SeasonSummer, b.Season)
	assert.InDelta(t, 1.5, b.SeasonalMultiplier, 1e-9)
	assert.InDelta(t, 1.0, b.OverdueMultiplier, 1e-9)
	assert.InDelta(t, 162.0, b.Score, 1e-9)
	assert.Equal(t, "High Risk", b.Tier.Label)
}

func TestSeasonFor_AllMonths(t *testing.T) {
	want := map[time.Month]models.Season{
		time.January:   models.SeasonWinter,
		time.February:  models.SeasonWinter,
		time.March:     models.SeasonSpring,
		time.April:     models.SeasonSpring,
		time.May:       models.SeasonSpring,
		time.June:      models.SeasonSummer,
		time.July:      models.SeasonSummer,
		time.August:    models.SeasonSummer,
		time.September: models.SeasonFall,
		time.October:   models.SeasonFall,
		time.November:  models.SeasonFall,
		time.December:  models.SeasonWinter,
	}
	for m, s := range want {
		assert.Equal(t, s, engine.SeasonFor(time.Date(2025, m, 1, 0, 0, 0, 0, time.UTC)), m.String())
	}
}

func TestSeasonFor_UsesInstantLocation(t *testing.T) {
	utc := time.Date(2024, time.November, 30, 20, 0, 0, 0, time.UTC)
	kiribati := utc.In(time.FixedZone("UTC+14", 14*3600))

	assert.Equal(t, models.SeasonFall, engine.SeasonFor(utc))
	assert.Equal(t, models.SeasonWinter, engine.SeasonFor(kiribati))
}

func TestSeasonFor_LocalMonthBoundary(t *testing.T) {
	newYork := time.FixedZone("EST", -5*3600)
	evening := time.Date(2025, time.November, 30, 20, 0, 0, 0, newYork)

	assert.Equal(t, models.SeasonFall, engine.SeasonFor(evening))
	assert.Equal(t, models.SeasonWinter, engine.SeasonFor(evening.UTC()))

	ds := models.Dataset{}
	sc := models.Scenario{
		ID: "1", Severity: models.SeverityLow, Probability: models.ProbabilityLow,
		Velocity: models.VelocitySlow, Detectability: models.DetectabilityEasy,
		SeasonalRisk: []models.Season{models.SeasonWinter},
	}
	assert.InDelta(t, 1.0, engine.RiskScore(&ds, &sc, evening), 1e-9)
	assert.InDelta(t, 1.5, engine.RiskScore(&ds, &sc, evening.UTC()), 1e-9)
}

func TestRiskTierFor_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		label string
		tag   engine.Tag
	}{
		{0, "Low Risk", engine.TagSuccess},
		{25, "Low Risk", engine.TagSuccess},
		{25.01, "Medium Risk", engine.TagWarning},
		{50, "Medium Risk", engine.TagWarning},
		{50.01, "High Risk", engine.TagError},
		{324, "High Risk", engine.TagError},
	}
	for _, tc := range tests {
		tier := engine.RiskTierFor(tc.score)
		assert.Equal(t, tc.label, tier.Label, "score=%v", tc.score)
		assert.Equal(t, tc.tag, tier.Tag, "score=%v", tc.score)
	}
}
