package state_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/riskready/internal/models"
	"github.com/ajitpratap0/riskready/internal/state"
	"github.com/ajitpratap0/riskready/internal/store"
)

var fixedNow = time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("new-%d", n)
	}
}

func load(t *testing.T, kv store.KV) *state.State {
	t.Helper()
	return state.Load(context.Background(), kv, newTestLogger(),
		state.WithClock(func() time.Time { return fixedNow }),
		state.WithIDGenerator(sequentialIDs()),
	)
}

// failingKV fails every write after armed is set.
type failingKV struct {
	store.KV
	armed bool
}

func (f *failingKV) Put(ctx context.Context, key string, value []byte) error {
	if f.armed {
		return errors.New("disk full")
	}
	return f.KV.Put(ctx, key, value)
}

func TestLoad_DefaultClockIsLocal(t *testing.T) {
	s := state.Load(context.Background(), store.NewMemoryStore(), newTestLogger())
	assert.Equal(t, time.Local, s.Now().Location())
}

func TestLoad_EmptyStoreUsesDefaults(t *testing.T) {
	s := load(t, store.NewMemoryStore())
	ds := s.Snapshot()

	assert.Len(t, ds.Scenarios, 7)
	assert.Len(t, ds.Plans, 8)
	assert.Len(t, ds.Steps, 9)
	assert.Len(t, ds.Categories, 6)

	prefs := s.Preferences()
	assert.Equal(t, models.SortByProbability, prefs.DashboardSortBy)
	assert.Equal(t, models.SortDesc, prefs.DashboardSortOrder)
	assert.Equal(t, models.ViewCategories, prefs.ViewMode)
	assert.Len(t, prefs.SelectedCategories, 6)
	assert.Equal(t, "/", prefs.CurrentPage)
}

func TestLoad_FallbackIsPerKey(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	require.NoError(t, kv.Put(ctx, state.KeyScenarios, []byte("{not json")))
	plans, err := json.Marshal([]models.Plan{{ID: "p1", Name: "Only plan", ScenarioID: "1", Steps: []string{}}})
	require.NoError(t, err)
	require.NoError(t, kv.Put(ctx, state.KeyPlans, plans))
	require.NoError(t, kv.Put(ctx, state.KeyInventory, []byte("[]")))

	ds := load(t, kv).Snapshot()
	assert.Len(t, ds.Scenarios, 7, "malformed scenarios fall back to defaults")
	require.Len(t, ds.Plans, 1, "stored plans are kept")
	assert.Equal(t, "Only plan", ds.Plans[0].Name)
	assert.Empty(t, ds.Inventory, "an empty stored list is not replaced")
	assert.Len(t, ds.Contacts, 10)
}

func TestLoad_NullCollectionBecomesEmpty(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	require.NoError(t, kv.Put(ctx, state.KeyContacts, []byte("null")))

	ds := load(t, kv).Snapshot()
	assert.NotNil(t, ds.Contacts)
	assert.Empty(t, ds.Contacts)
}

func TestLoad_Preferences(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	require.NoError(t, kv.Put(ctx, state.KeyDarkMode, []byte("true")))
	require.NoError(t, kv.Put(ctx, state.KeySortBy, []byte("name")))
	require.NoError(t, kv.Put(ctx, state.KeySortOrder, []byte(`"asc"`)))
	require.NoError(t, kv.Put(ctx, state.KeyViewMode, []byte("grid")))
	require.NoError(t, kv.Put(ctx, state.KeySelectedCategories, []byte(`["cat2"]`)))
	require.NoError(t, kv.Put(ctx, state.KeyExpandedCategories, []byte(`not-json`)))

	prefs := load(t, kv).Preferences()
	assert.True(t, prefs.DarkMode)
	assert.Equal(t, models.SortByName, prefs.DashboardSortBy)
	assert.Equal(t, models.SortAsc, prefs.DashboardSortOrder, "JSON-quoted strings are accepted")
	assert.Equal(t, models.ViewCategories, prefs.ViewMode, "out-of-range view mode falls back")
	assert.Equal(t, []string{"cat2"}, prefs.SelectedCategories)
	assert.Len(t, prefs.ExpandedCategories, 6, "malformed list falls back")
}

func TestSnapshotIsIsolated(t *testing.T) {
	s := load(t, store.NewMemoryStore())
	ds := s.Snapshot()
	ds.Scenarios[0].Name = "mutated"
	ds.Scenarios[0].Categories[0] = "mutated"
	ds.Steps = nil

	again := s.Snapshot()
	assert.Equal(t, "Power Outage", again.Scenarios[0].Name)
	assert.NotEqual(t, "mutated", again.Scenarios[0].Categories[0])
	assert.Len(t, again.Steps, 9)
}

func TestMutationsPersistAcrossLoads(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	s := load(t, kv)

	r, err := s.CreateRemediation(ctx, models.Remediation{Name: "Buy a weather radio", ApplicableScenarios: []string{"2"}})
	require.NoError(t, err)
	assert.Equal(t, "new-1", r.ID)
	assert.Equal(t, models.StatusNotStarted, r.Status)

	_, err = s.SetRemediationStatus(ctx, "1", models.StatusCompleted)
	require.NoError(t, err)

	item, err := s.CreateInventoryItem(ctx, models.InventoryItem{Name: "Radio", Quantity: 1, MinimumStock: 1})
	require.NoError(t, err)
	assert.Equal(t, fixedNow, item.LastUpdated)

	reloaded := load(t, kv).Snapshot()
	got, ok := reloaded.RemediationByID(r.ID)
	require.True(t, ok)
	assert.Equal(t, "Buy a weather radio", got.Name)
	first, _ := reloaded.RemediationByID("1")
	assert.Equal(t, models.StatusCompleted, first.Status)
	_, ok = reloaded.InventoryByID(item.ID)
	assert.True(t, ok)
}

func TestUnknownIDsReturnErrNotFound(t *testing.T) {
	ctx := context.Background()
	s := load(t, store.NewMemoryStore())

	_, err := s.UpdateScenario(ctx, models.Scenario{ID: "missing"})
	assert.ErrorIs(t, err, state.ErrNotFound)
	_, err = s.SetStepStatus(ctx, "missing", models.StatusCompleted)
	assert.ErrorIs(t, err, state.ErrNotFound)
	_, err = s.AddStep(ctx, "missing", models.Step{Name: "x"})
	assert.ErrorIs(t, err, state.ErrNotFound)
	assert.ErrorIs(t, s.DeleteContact(ctx, "missing"), state.ErrNotFound)
	assert.ErrorIs(t, s.MoveStep(ctx, "missing", state.MoveUp), state.ErrNotFound)
}

func TestSetStatusRejectsInvalidValues(t *testing.T) {
	s := load(t, store.NewMemoryStore())
	_, err := s.SetRemediationStatus(context.Background(), "1", models.Status("done"))
	require.Error(t, err)
	r, _ := s.Snapshot().RemediationByID("1")
	assert.NotEqual(t, models.Status("done"), r.Status)
}

func TestAddStep(t *testing.T) {
	ctx := context.Background()
	s := load(t, store.NewMemoryStore())

	st, err := s.AddStep(ctx, "1", models.Step{Name: "Check neighbours", Order: 99, PlanID: "8"})
	require.NoError(t, err)
	assert.Equal(t, "1", st.PlanID, "owner comes from the target plan")
	assert.Equal(t, 3, st.Order, "order is one past the plan's highest")
	assert.Equal(t, models.StatusNotStarted, st.Status)

	ds := s.Snapshot()
	p, _ := ds.PlanByID("1")
	assert.Equal(t, []string{"s1", "s2", st.ID}, p.Steps)

	empty, err := s.AddStep(ctx, "5", models.Step{Name: "First"})
	require.NoError(t, err)
	assert.Equal(t, 1, empty.Order)
}

func TestMoveStep(t *testing.T) {
	ctx := context.Background()
	s := load(t, store.NewMemoryStore())

	require.NoError(t, s.MoveStep(ctx, "s2", state.MoveUp))
	ds := s.Snapshot()
	s1, _ := ds.StepByID("s1")
	s2, _ := ds.StepByID("s2")
	assert.Equal(t, 2, s1.Order)
	assert.Equal(t, 1, s2.Order)

	// s2 is now first; moving it up again changes nothing.
	require.NoError(t, s.MoveStep(ctx, "s2", state.MoveUp))
	require.NoError(t, s.MoveStep(ctx, "s1", state.MoveDown))
	ds = s.Snapshot()
	s1, _ = ds.StepByID("s1")
	s2, _ = ds.StepByID("s2")
	assert.Equal(t, 2, s1.Order)
	assert.Equal(t, 1, s2.Order)

	// Single-step plans never move.
	require.NoError(t, s.MoveStep(ctx, "s7", state.MoveDown))
	s7, _ := s.Snapshot().StepByID("s7")
	assert.Equal(t, 1, s7.Order)

	assert.Error(t, s.MoveStep(ctx, "s1", state.Direction("sideways")))
}

func TestDeletePlanCascadesToSteps(t *testing.T) {
	ctx := context.Background()
	s := load(t, store.NewMemoryStore())

	require.NoError(t, s.DeletePlan(ctx, "1"))
	ds := s.Snapshot()
	_, ok := ds.PlanByID("1")
	assert.False(t, ok)
	_, ok = ds.StepByID("s1")
	assert.False(t, ok)
	_, ok = ds.StepByID("s2")
	assert.False(t, ok)
	assert.Len(t, ds.Steps, 7)
}

func TestDeleteStepUpdatesOwnerMirror(t *testing.T) {
	ctx := context.Background()
	s := load(t, store.NewMemoryStore())

	require.NoError(t, s.DeleteStep(ctx, "s3"))
	ds := s.Snapshot()
	p2, _ := ds.PlanByID("2")
	assert.Equal(t, []string{"s4"}, p2.Steps)
	p4, _ := ds.PlanByID("4")
	assert.Equal(t, []string{"s3"}, p4.Steps, "only the owning plan's mirror is touched")
}

func TestUpdateStep(t *testing.T) {
	ctx := context.Background()
	s := load(t, store.NewMemoryStore())

	st, err := s.UpdateStep(ctx, models.Step{ID: "s4", PlanID: "8", Order: 7, Name: "Test generator", Status: models.StatusInProgress})
	require.NoError(t, err)
	assert.Equal(t, "2", st.PlanID, "owner is kept")
	assert.Equal(t, 7, st.Order)
	assert.Equal(t, "Test generator", st.Name)

	st, err = s.UpdateStep(ctx, models.Step{ID: "s4", Name: "Test generator monthly"})
	require.NoError(t, err)
	assert.Equal(t, 7, st.Order, "zero order keeps the stored order")
	assert.Equal(t, models.StatusInProgress, st.Status, "empty status keeps the stored status")

	ds := s.Snapshot()
	stored, _ := ds.StepByID("s4")
	assert.Equal(t, 7, stored.Order)
	assert.Equal(t, "Test generator monthly", stored.Name)
}

func TestUpdateRemediationKeepsStatus(t *testing.T) {
	ctx := context.Background()
	s := load(t, store.NewMemoryStore())

	_, err := s.SetRemediationStatus(ctx, "3", models.StatusInProgress)
	require.NoError(t, err)

	r, err := s.UpdateRemediation(ctx, models.Remediation{ID: "3", Name: "Renamed", ApplicableScenarios: []string{"1"}})
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, r.Status)

	r, err = s.UpdateRemediation(ctx, models.Remediation{ID: "3", Name: "Renamed", Status: models.StatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, r.Status)
}

func TestUpdateContactKeepActive(t *testing.T) {
	ctx := context.Background()
	s := load(t, store.NewMemoryStore())

	_, err := s.SetContactActive(ctx, "ec1", false)
	require.NoError(t, err)

	c, err := s.UpdateContact(ctx, models.EmergencyContact{ID: "ec1", Name: "Fire Dept", IsActive: true}, true)
	require.NoError(t, err)
	assert.False(t, c.IsActive)
	assert.Equal(t, "Fire Dept", c.Name)

	c, err = s.UpdateContact(ctx, models.EmergencyContact{ID: "ec1", Name: "Fire Dept", IsActive: true}, false)
	require.NoError(t, err)
	assert.True(t, c.IsActive)
}

func TestContacts(t *testing.T) {
	ctx := context.Background()
	s := load(t, store.NewMemoryStore())

	c, err := s.SetContactActive(ctx, "ec1", false)
	require.NoError(t, err)
	assert.False(t, c.IsActive)
	assert.Equal(t, fixedNow, c.LastUpdated)

	created, err := s.CreateContact(ctx, models.EmergencyContact{Name: "Neighbour", Category: models.ContactFamily, Priority: models.PrioritySecondary, PhonePrimary: "555-0100"})
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	require.NoError(t, s.DeleteContact(ctx, created.ID))
	assert.Len(t, s.Snapshot().Contacts, 10)
}

func TestCategories(t *testing.T) {
	ctx := context.Background()
	s := load(t, store.NewMemoryStore())

	c, err := s.CreateCategory(ctx, models.Category{Name: "Travel", Color: "#123456"})
	require.NoError(t, err)
	prefs := s.Preferences()
	assert.Contains(t, prefs.SelectedCategories, c.ID)
	assert.Contains(t, prefs.ExpandedCategories, c.ID)

	require.NoError(t, s.DeleteCategory(ctx, "cat1"))
	prefs = s.Preferences()
	assert.NotContains(t, prefs.SelectedCategories, "cat1")
	assert.NotContains(t, prefs.ExpandedCategories, "cat1")

	sc, _ := s.Snapshot().ScenarioByID("1")
	assert.Contains(t, sc.Categories, "cat1", "scenarios keep dangling category ids")
}

func TestPreferences(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	s := load(t, kv)

	selected, err := s.ToggleSelected(ctx, "cat3")
	require.NoError(t, err)
	assert.False(t, selected)
	selected, err = s.ToggleSelected(ctx, "cat3")
	require.NoError(t, err)
	assert.True(t, selected)

	expanded, err := s.ToggleExpanded(ctx, "cat1")
	require.NoError(t, err)
	assert.False(t, expanded)

	require.NoError(t, s.SetSort(ctx, models.SortByName, models.SortAsc))
	require.NoError(t, s.SetViewMode(ctx, models.ViewAll))
	require.NoError(t, s.SetDarkMode(ctx, true))
	require.NoError(t, s.SetCurrentPage(ctx, "/inventory"))

	raw, err := kv.Get(ctx, state.KeySortBy)
	require.NoError(t, err)
	assert.Equal(t, "name", string(raw), "string preferences are stored raw")

	prefs := load(t, kv).Preferences()
	assert.Equal(t, models.SortByName, prefs.DashboardSortBy)
	assert.Equal(t, models.SortAsc, prefs.DashboardSortOrder)
	assert.Equal(t, models.ViewAll, prefs.ViewMode)
	assert.True(t, prefs.DarkMode)
	assert.Equal(t, "/inventory", prefs.CurrentPage)
	assert.NotContains(t, prefs.ExpandedCategories, "cat1")
	assert.Contains(t, prefs.SelectedCategories, "cat3")

	bad := prefs
	bad.ViewMode = "grid"
	_, err = s.SetPreferences(ctx, bad)
	assert.ErrorIs(t, err, state.ErrInvalidPreference)
	assert.ErrorIs(t, s.SetSort(ctx, "risk", models.SortAsc), state.ErrInvalidPreference)
}

func TestFailedSaveLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	kv := &failingKV{KV: store.NewMemoryStore()}
	s := load(t, kv)
	kv.armed = true

	_, err := s.SetRemediationStatus(ctx, "1", models.StatusCompleted)
	require.Error(t, err)
	r, _ := s.Snapshot().RemediationByID("1")
	assert.Equal(t, models.StatusInProgress, r.Status)

	_, err = s.CreateScenario(ctx, models.Scenario{Name: "Drought"})
	require.Error(t, err)
	assert.Len(t, s.Snapshot().Scenarios, 7)

	_, err = s.ToggleSelected(ctx, "cat1")
	require.Error(t, err)
	assert.True(t, s.Preferences().IsSelected("cat1"))
}

func TestResetAndReplace(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	s := load(t, kv)

	require.NoError(t, s.Replace(ctx, models.Dataset{
		Categories: []models.Category{{ID: "cat2", Name: "Financial"}},
	}))
	ds := s.Snapshot()
	assert.Empty(t, ds.Scenarios)
	assert.Equal(t, []string{"cat2"}, s.Preferences().SelectedCategories)
	assert.Empty(t, load(t, kv).Snapshot().Scenarios)

	require.NoError(t, s.Reset(ctx))
	assert.Len(t, s.Snapshot().Scenarios, 7)
	assert.Len(t, s.Preferences().SelectedCategories, 6)
	assert.Len(t, load(t, kv).Snapshot().Scenarios, 7)
}
