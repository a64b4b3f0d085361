package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ajitpratap0/riskready/internal/models"
)

func TestEnumIsValid(t *testing.T) {
	for _, s := range models.ValidSeverities {
		assert.True(t, s.IsValid(), s)
	}
	for _, p := range models.ValidProbabilities {
		assert.True(t, p.IsValid(), p)
	}
	for _, v := range models.ValidVelocities {
		assert.True(t, v.IsValid(), v)
	}
	for _, d := range models.ValidDetectabilities {
		assert.True(t, d.IsValid(), d)
	}
	for _, st := range models.ValidStatuses {
		assert.True(t, st.IsValid(), st)
	}
	for _, c := range models.ValidContactCategories {
		assert.True(t, c.IsValid(), c)
	}
	assert.Len(t, models.ValidContactCategories, 8)

	assert.False(t, models.Severity("extreme").IsValid())
	assert.False(t, models.Velocity("").IsValid())
	assert.False(t, models.Status("done").IsValid())
	assert.False(t, models.ContactPriority("urgent").IsValid())
	assert.False(t, models.SortKey("riskScore").IsValid())
	assert.False(t, models.SortOrder("up").IsValid())
	assert.False(t, models.ViewMode("grid").IsValid())
}

func TestDateJSON(t *testing.T) {
	type wrapper struct {
		Due *models.Date `json:"dueDate,omitempty"`
	}

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"dueDate":"2025-06-01"}`), &w))
	require.NotNil(t, w.Due)
	assert.Equal(t, 2025, w.Due.Year())
	assert.Equal(t, time.June, w.Due.Month())

	b, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"dueDate":"2025-06-01"}`, string(b))

	require.NoError(t, json.Unmarshal([]byte(`{"dueDate":"2024-09-24T10:00:00Z"}`), &w))
	assert.Equal(t, 24, w.Due.Day())

	var empty wrapper
	require.NoError(t, json.Unmarshal([]byte(`{}`), &empty))
	assert.False(t, models.IsSet(empty.Due))

	assert.Error(t, json.Unmarshal([]byte(`{"dueDate":"next week"}`), &w))
}

func TestDateYAML(t *testing.T) {
	type wrapper struct {
		Due *models.Date `yaml:"dueDate,omitempty"`
	}
	in := wrapper{Due: models.DatePtr(models.NewDate(2026, time.March, 31))}
	out, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(out), "2026-03-31")

	var back wrapper
	require.NoError(t, yaml.Unmarshal(out, &back))
	require.NotNil(t, back.Due)
	assert.Equal(t, in.Due.String(), back.Due.String())
}

func TestDatasetCloneIsDeep(t *testing.T) {
	ds := models.Dataset{
		Scenarios: []models.Scenario{{ID: "1", Categories: []string{"cat1"}}},
		Remediations: []models.Remediation{{
			ID:                  "r1",
			ApplicableScenarios: []string{"1"},
			DueDate:             models.DatePtr(models.NewDate(2025, time.January, 1)),
		}},
	}
	c := ds.Clone()
	c.Scenarios[0].Categories[0] = "changed"
	c.Remediations[0].ApplicableScenarios[0] = "changed"
	c.Remediations[0].DueDate.Time = time.Time{}

	assert.Equal(t, "cat1", ds.Scenarios[0].Categories[0])
	assert.Equal(t, "1", ds.Remediations[0].ApplicableScenarios[0])
	assert.True(t, models.IsSet(ds.Remediations[0].DueDate))
}

func TestDatasetLookups(t *testing.T) {
	ds := models.Dataset{
		Plans:      []models.Plan{{ID: "p1", Name: "Immediate"}},
		Categories: []models.Category{{ID: "cat1"}, {ID: "cat2"}},
	}
	p, ok := ds.PlanByID("p1")
	require.True(t, ok)
	assert.Equal(t, "Immediate", p.Name)

	_, ok = ds.PlanByID("missing")
	assert.False(t, ok)
	assert.Equal(t, []string{"cat1", "cat2"}, ds.CategoryIDs())
}

func snapshot() models.Dataset {
	return models.Dataset{Remediations: []models.Remediation{{ID: "r1", Name: "Buy radio"}}}
}

func TestLookupsOnReturnedValues(t *testing.T) {
	r, ok := snapshot().RemediationByID("r1")
	require.True(t, ok)
	assert.Equal(t, "Buy radio", r.Name)
	assert.Equal(t, 1, snapshot().Stats().Remediations)

	assert.True(t, models.DefaultPreferences([]string{"cat1"}).IsSelected("cat1"))
	assert.False(t, models.DefaultPreferences(nil).IsExpanded("cat1"))
}

func TestDateAt(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	d := models.NewDate(2025, time.December, 1)
	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, est), d.At(est))

	parsed, err := models.ParseDate("2025-11-30T20:00:00-05:00")
	require.NoError(t, err)
	assert.Equal(t, "2025-11-30", parsed.String(), "a timestamp keeps the date of its own offset")
	assert.Equal(t, models.NewDate(2025, time.November, 30), parsed)
}

func TestToggleID(t *testing.T) {
	ids := []string{"a", "b"}
	assert.Equal(t, []string{"b"}, models.ToggleID(ids, "a"))
	assert.Equal(t, []string{"a", "b", "c"}, models.ToggleID(ids, "c"))
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestDefaultPreferences(t *testing.T) {
	p := models.DefaultPreferences([]string{"cat1", "cat2"})
	assert.False(t, p.DarkMode)
	assert.Equal(t, "/", p.CurrentPage)
	assert.Equal(t, models.SortByProbability, p.DashboardSortBy)
	assert.Equal(t, models.SortDesc, p.DashboardSortOrder)
	assert.Equal(t, models.ViewCategories, p.ViewMode)
	assert.True(t, p.IsSelected("cat2"))
	assert.True(t, p.IsExpanded("cat1"))
	assert.False(t, p.IsSelected("cat9"))
}
