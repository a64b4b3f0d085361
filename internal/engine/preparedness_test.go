package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/riskready/internal/engine"
	"github.com/ajitpratap0/riskready/internal/models"
	"github.com/ajitpratap0/riskready/internal/seed"
)

func step(id, planID string, order int, status models.Status) models.Step {
	return models.Step{ID: id, PlanID: planID, Name: "step " + id, Order: order, Status: status}
}

func remediation(id string, status models.Status, scenarios ...string) models.Remediation {
	return models.Remediation{ID: id, Name: "rem " + id, Status: status, ApplicableScenarios: scenarios}
}

// powerOutage is three plans and six steps, two of them completed.
func powerOutage() *models.Dataset {
	return &models.Dataset{
		Scenarios: []models.Scenario{{ID: "po", Name: "Power Outage"}},
		Plans: []models.Plan{
			{ID: "p1", ScenarioID: "po", Order: 1},
			{ID: "p2", ScenarioID: "po", Order: 2},
			{ID: "p3", ScenarioID: "po", Order: 3},
		},
		Steps: []models.Step{
			step("s1", "p1", 1, models.StatusCompleted),
			step("s2", "p1", 2, models.StatusCompleted),
			step("s3", "p2", 1, models.StatusInProgress),
			step("s4", "p2", 2, models.StatusNotStarted),
			step("s5", "p3", 1, models.StatusNotStarted),
			step("s6", "p3", 2, models.StatusNotStarted),
		},
	}
}

func TestPlanStepPreparedness_PowerOutage(t *testing.T) {
	r := engine.PlanStepPreparedness(powerOutage(), "po")
	assert.Equal(t, 33, r.Percentage)
	assert.Equal(t, engine.LevelNeedsAttention, r.Level)
	assert.Equal(t, engine.TagError, r.Tag)
	assert.Equal(t, 2, r.Completed)
	assert.Equal(t, 6, r.Total)
}

func TestPlanStepPreparedness_SeedDataset(t *testing.T) {
	ds := seed.Dataset()
	r := engine.PlanStepPreparedness(&ds, "1")
	assert.Equal(t, 33, r.Percentage)
	assert.Equal(t, engine.LevelNeedsAttention, r.Level)
}

func TestPlanStepPreparedness_NoPlans(t *testing.T) {
	ds := powerOutage()
	r := engine.PlanStepPreparedness(ds, "missing")
	assert.Equal(t, engine.Readiness{Level: engine.LevelNoPlans, Tag: engine.TagError}, r)
}

func TestPlanStepPreparedness_NoSteps(t *testing.T) {
	ds := &models.Dataset{Plans: []models.Plan{{ID: "p1", ScenarioID: "x"}}}
	r := engine.PlanStepPreparedness(ds, "x")
	assert.Equal(t, 0, r.Percentage)
	assert.Equal(t, engine.LevelNoSteps, r.Level)
	assert.Equal(t, engine.TagError, r.Tag)
}

func TestPlanStepPreparedness_IgnoresPlanStepsMirror(t *testing.T) {
	ds := powerOutage()
	// The mirror claims a completed step that belongs to another plan.
	ds.Plans[0].Steps = []string{"s1", "s2", "other"}
	ds.Steps = append(ds.Steps, step("other", "elsewhere", 1, models.StatusCompleted))

	r := engine.PlanStepPreparedness(ds, "po")
	assert.Equal(t, 6, r.Total)
	assert.Equal(t, 33, r.Percentage)
}

func TestRemediationPreparedness(t *testing.T) {
	tests := []struct {
		name  string
		rems  []models.Remediation
		pct   int
		level string
		tag   engine.Tag
		total int
		compl int
	}{
		{
			name:  "none applicable",
			rems:  []models.Remediation{remediation("r1", models.StatusCompleted, "other")},
			level: engine.LevelNoRemediations,
			tag:   engine.TagError,
		},
		{
			name: "half done",
			rems: []models.Remediation{
				remediation("r1", models.StatusCompleted, "s"),
				remediation("r2", models.StatusInProgress, "s"),
			},
			pct: 50, level: engine.LevelPartiallyPrepared, tag: engine.TagWarning, total: 2, compl: 1,
		},
		{
			name: "all done",
			rems: []models.Remediation{
				remediation("r1", models.StatusCompleted, "s", "t"),
				remediation("r2", models.StatusCompleted, "s"),
			},
			pct: 100, level: engine.LevelFullyPrepared, tag: engine.TagSuccess, total: 2, compl: 2,
		},
		{
			name: "one of eight rounds half up",
			rems: []models.Remediation{
				remediation("r1", models.StatusCompleted, "s"),
				remediation("r2", models.StatusNotStarted, "s"),
				remediation("r3", models.StatusNotStarted, "s"),
				remediation("r4", models.StatusNotStarted, "s"),
				remediation("r5", models.StatusNotStarted, "s"),
				remediation("r6", models.StatusNotStarted, "s"),
				remediation("r7", models.StatusNotStarted, "s"),
				remediation("r8", models.StatusNotStarted, "s"),
			},
			pct: 13, level: engine.LevelNeedsAttention, tag: engine.TagError, total: 8, compl: 1,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ds := &models.Dataset{Remediations: tc.rems}
			r := engine.RemediationPreparedness(ds, "s")
			assert.Equal(t, tc.pct, r.Percentage)
			assert.Equal(t, tc.level, r.Level)
			assert.Equal(t, tc.tag, r.Tag)
			assert.Equal(t, tc.total, r.Total)
			assert.Equal(t, tc.compl, r.Completed)
		})
	}
}

func TestPreparedness_StrategySelection(t *testing.T) {
	ds := powerOutage()
	ds.Remediations = []models.Remediation{remediation("r1", models.StatusCompleted, "po")}

	assert.Equal(t, 33, engine.Preparedness(ds, "po", engine.StrategyPlanSteps).Percentage)
	assert.Equal(t, 100, engine.Preparedness(ds, "po", engine.StrategyRemediations).Percentage)
}

func TestParseStrategy(t *testing.T) {
	s, err := engine.ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, engine.StrategyPlanSteps, s)

	s, err = engine.ParseStrategy("remediations")
	require.NoError(t, err)
	assert.Equal(t, engine.StrategyRemediations, s)

	_, err = engine.ParseStrategy("bogus")
	assert.Error(t, err)
}

func TestLevelFor(t *testing.T) {
	cases := map[int]string{
		0:   engine.LevelNeedsAttention,
		49:  engine.LevelNeedsAttention,
		50:  engine.LevelPartiallyPrepared,
		99:  engine.LevelPartiallyPrepared,
		100: engine.LevelFullyPrepared,
	}
	for pct, want := range cases {
		got, _ := engine.LevelFor(pct)
		assert.Equal(t, want, got, "pct=%d", pct)
	}
}
