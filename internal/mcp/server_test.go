package mcp_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/riskready/internal/engine"
	riskmcp "github.com/ajitpratap0/riskready/internal/mcp"
	"github.com/ajitpratap0/riskready/internal/models"
	"github.com/ajitpratap0/riskready/internal/review"
	"github.com/ajitpratap0/riskready/internal/state"
	"github.com/ajitpratap0/riskready/internal/store"
)

var fixedNow = time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC)

// newMCPServer returns a Server over the default dataset in a memory store.
func newMCPServer(t *testing.T) (*riskmcp.Server, *state.State) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	st := state.Load(context.Background(), store.NewMemoryStore(), logger,
		state.WithClock(func() time.Time { return fixedNow }))
	rv := review.NewManager(st, review.Options{}, logger)
	return riskmcp.NewServer(st, rv, logger), st
}

// makeReq builds a CallToolRequest with the given arguments.
func makeReq(toolName string, args map[string]any) mcpgo.CallToolRequest {
	req := mcpgo.CallToolRequest{}
	req.Params.Name = toolName
	req.Params.Arguments = args
	return req
}

// textContent extracts the text payload of a tool result.
func textContent(t *testing.T, result *mcpgo.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	tc, ok := result.Content[0].(mcpgo.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return tc.Text
}

func decodeResult(t *testing.T, result *mcpgo.CallToolResult, v any) {
	t.Helper()
	require.False(t, result.IsError, textContent(t, result))
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), v))
}

func TestServer_MCPServer(t *testing.T) {
	srv, _ := newMCPServer(t)
	assert.NotNil(t, srv.MCPServer())
}

func TestDashboard_SortOverride(t *testing.T) {
	srv, _ := newMCPServer(t)
	ctx := context.Background()

	result, err := srv.HandleDashboard(ctx, makeReq("dashboard", map[string]any{
		"sort_by":    "name",
		"sort_order": "asc",
	}))
	require.NoError(t, err)

	var view engine.DashboardView
	decodeResult(t, result, &view)
	assert.Equal(t, models.SortByName, view.SortBy)
	assert.Equal(t, models.SortAsc, view.SortOrder)
	require.NotEmpty(t, view.Groups)
	assert.Equal(t, "cat1", view.Groups[0].Category.ID)
}

func TestDashboard_InvalidSort(t *testing.T) {
	srv, _ := newMCPServer(t)

	result, err := srv.HandleDashboard(context.Background(), makeReq("dashboard", map[string]any{
		"sort_by": "colour",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, textContent(t, result), "invalid sort_by")
}

func TestAnalyzeScenario(t *testing.T) {
	srv, _ := newMCPServer(t)
	ctx := context.Background()

	result, err := srv.HandleAnalyzeScenario(ctx, makeReq("analyze_scenario", map[string]any{"id": "1"}))
	require.NoError(t, err)

	var a engine.Analysis
	decodeResult(t, result, &a)
	assert.Equal(t, "Power Outage", a.Scenario.Name)
	assert.Len(t, a.Plans, 5)
	assert.Equal(t, 33, a.PlanReadiness.Percentage)

	result, err = srv.HandleAnalyzeScenario(ctx, makeReq("analyze_scenario", map[string]any{"id": "nope"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, textContent(t, result), "not found")

	result, err = srv.HandleAnalyzeScenario(ctx, makeReq("analyze_scenario", map[string]any{"id": "  "}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, textContent(t, result), "id is required")
}

func TestRiskScore(t *testing.T) {
	srv, st := newMCPServer(t)

	result, err := srv.HandleRiskScore(context.Background(), makeReq("risk_score", map[string]any{"id": "1"}))
	require.NoError(t, err)

	var rb engine.RiskBreakdown
	decodeResult(t, result, &rb)

	ds := st.Snapshot()
	sc, ok := ds.ScenarioByID("1")
	require.True(t, ok)
	assert.InDelta(t, engine.RiskScore(&ds, &sc, fixedNow), rb.Score, 1e-9)
	assert.Equal(t, models.SeasonSpring, rb.Season)
}

func TestPreparedness_Strategies(t *testing.T) {
	srv, _ := newMCPServer(t)
	ctx := context.Background()

	var out struct {
		Strategy  engine.Strategy  `json:"strategy"`
		Readiness engine.Readiness `json:"readiness"`
	}
	result, err := srv.HandlePreparedness(ctx, makeReq("preparedness", map[string]any{"id": "1"}))
	require.NoError(t, err)
	decodeResult(t, result, &out)
	assert.Equal(t, engine.StrategyPlanSteps, out.Strategy)
	assert.Equal(t, 33, out.Readiness.Percentage)
	assert.Equal(t, engine.LevelNeedsAttention, out.Readiness.Level)

	result, err = srv.HandlePreparedness(ctx, makeReq("preparedness", map[string]any{
		"id":       "1",
		"strategy": "remediations",
	}))
	require.NoError(t, err)
	decodeResult(t, result, &out)
	assert.Equal(t, engine.StrategyRemediations, out.Strategy)

	result, err = srv.HandlePreparedness(ctx, makeReq("preparedness", map[string]any{
		"id":       "1",
		"strategy": "vibes",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestInventoryStatus_Search(t *testing.T) {
	srv, _ := newMCPServer(t)

	result, err := srv.HandleInventoryStatus(context.Background(), makeReq("inventory_status", map[string]any{
		"search": "water",
	}))
	require.NoError(t, err)

	var out struct {
		Items   []engine.InventoryRow  `json:"items"`
		Summary engine.InventoryTotals `json:"summary"`
	}
	decodeResult(t, result, &out)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Bottled Water", out.Items[0].Item.Name)
	assert.Equal(t, 1, out.Summary.Items)
	assert.InDelta(t, 50.0, out.Summary.TotalValue, 1e-9)
}

func TestListContacts(t *testing.T) {
	srv, st := newMCPServer(t)
	ctx := context.Background()

	var out struct {
		Groups []engine.ContactGroup `json:"groups"`
	}
	result, err := srv.HandleListContacts(ctx, makeReq("list_contacts", nil))
	require.NoError(t, err)
	decodeResult(t, result, &out)
	require.NotEmpty(t, out.Groups)
	assert.Equal(t, models.ContactEmergencyServices, out.Groups[0].Category)

	_, err = st.SetContactActive(ctx, "ec8", false)
	require.NoError(t, err)
	result, err = srv.HandleListContacts(ctx, makeReq("list_contacts", nil))
	require.NoError(t, err)
	decodeResult(t, result, &out)
	for _, g := range out.Groups {
		assert.NotEqual(t, models.ContactFinancial, g.Category)
	}
}

func TestUpdateRemediationStatus(t *testing.T) {
	srv, st := newMCPServer(t)
	ctx := context.Background()

	result, err := srv.HandleUpdateRemediationStatus(ctx, makeReq("update_remediation_status", map[string]any{
		"id":     "3",
		"status": "completed",
	}))
	require.NoError(t, err)

	var rem models.Remediation
	decodeResult(t, result, &rem)
	assert.Equal(t, models.StatusCompleted, rem.Status)

	ds := st.Snapshot()
	got, ok := ds.RemediationByID("3")
	require.True(t, ok)
	assert.Equal(t, models.StatusCompleted, got.Status)
}

func TestUpdateRemediationStatus_Errors(t *testing.T) {
	srv, _ := newMCPServer(t)
	ctx := context.Background()

	result, err := srv.HandleUpdateRemediationStatus(ctx, makeReq("update_remediation_status", map[string]any{
		"id":     "3",
		"status": "done",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, textContent(t, result), "invalid status")

	result, err = srv.HandleUpdateRemediationStatus(ctx, makeReq("update_remediation_status", map[string]any{
		"id":     "missing",
		"status": "completed",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, textContent(t, result), "not found")
}

func TestReview(t *testing.T) {
	srv, _ := newMCPServer(t)

	result, err := srv.HandleReview(context.Background(), makeReq("review", nil))
	require.NoError(t, err)

	var report review.Report
	decodeResult(t, result, &report)
	assert.Equal(t, 1, report.Count(review.KindOverduePlan))
	assert.Equal(t, 1, report.Count(review.KindLowStock))
}

func TestNilState(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	srv := riskmcp.NewServer(nil, nil, logger)

	result, err := srv.HandleDashboard(context.Background(), makeReq("dashboard", nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	result, err = srv.HandleReview(context.Background(), makeReq("review", nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
