// Package mcp implements the Model Context Protocol server for riskready.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/ajitpratap0/riskready/internal/engine"
	"github.com/ajitpratap0/riskready/internal/metrics"
	"github.com/ajitpratap0/riskready/internal/models"
	"github.com/ajitpratap0/riskready/internal/review"
	"github.com/ajitpratap0/riskready/internal/state"
)

// Server wraps an MCPServer with riskready dependencies.
type Server struct {
	mcp    *mcpserver.MCPServer
	st     *state.State
	review *review.Manager
	logger *slog.Logger
}

// NewServer creates a new MCP server. If st is nil every tool call returns
// an error result instead of panicking.
func NewServer(st *state.State, rv *review.Manager, logger *slog.Logger) *Server {
	s := &Server{
		st:     st,
		review: rv,
		logger: logger,
	}

	mcpSrv := mcpserver.NewMCPServer(
		"riskready",
		"1.0.0",
		mcpserver.WithToolCapabilities(true),
	)

	mcpSrv.AddTool(buildDashboardTool(), s.observe("dashboard", s.handleDashboard))
	mcpSrv.AddTool(buildAnalyzeScenarioTool(), s.observe("analyze_scenario", s.handleAnalyzeScenario))
	mcpSrv.AddTool(buildRiskScoreTool(), s.observe("risk_score", s.handleRiskScore))
	mcpSrv.AddTool(buildPreparednessTool(), s.observe("preparedness", s.handlePreparedness))
	mcpSrv.AddTool(buildInventoryStatusTool(), s.observe("inventory_status", s.handleInventoryStatus))
	mcpSrv.AddTool(buildListContactsTool(), s.observe("list_contacts", s.handleListContacts))
	mcpSrv.AddTool(buildUpdateRemediationStatusTool(), s.observe("update_remediation_status", s.handleUpdateRemediationStatus))
	mcpSrv.AddTool(buildReviewTool(), s.observe("review", s.handleReview))

	s.mcp = mcpSrv
	return s
}

// MCPServer returns the underlying mcp-go server for use with ServeStdio.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcp
}

// observe counts tool calls by outcome.
func (s *Server) observe(name string, h mcpserver.ToolHandlerFunc) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		res, err := h(ctx, req)
		result := metrics.Result(err)
		if res != nil && res.IsError {
			result = "error"
		}
		metrics.MCPToolCalls.WithLabelValues(name, result).Inc()
		return res, err
	}
}

// HandleDashboard is exported for testing.
func (s *Server) HandleDashboard(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleDashboard(ctx, req)
}

// HandleAnalyzeScenario is exported for testing.
func (s *Server) HandleAnalyzeScenario(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleAnalyzeScenario(ctx, req)
}

// HandleRiskScore is exported for testing.
func (s *Server) HandleRiskScore(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleRiskScore(ctx, req)
}

// HandlePreparedness is exported for testing.
func (s *Server) HandlePreparedness(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handlePreparedness(ctx, req)
}

// HandleInventoryStatus is exported for testing.
func (s *Server) HandleInventoryStatus(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleInventoryStatus(ctx, req)
}

// HandleListContacts is exported for testing.
func (s *Server) HandleListContacts(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleListContacts(ctx, req)
}

// HandleUpdateRemediationStatus is exported for testing.
func (s *Server) HandleUpdateRemediationStatus(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleUpdateRemediationStatus(ctx, req)
}

// HandleReview is exported for testing.
func (s *Server) HandleReview(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleReview(ctx, req)
}

// toolResultJSON marshals v as JSON and returns it as a text tool result.
func toolResultJSON(v any) (*mcpgo.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal tool result: %w", err)
	}
	return mcpgo.NewToolResultText(string(b)), nil
}

// --- tool definitions ---

func buildDashboardTool() mcpgo.Tool {
	return mcpgo.NewTool("dashboard",
		mcpgo.WithDescription("Scenario dashboard: every scenario with preparedness, composite risk score and tier, laid out by the saved view preferences."),
		mcpgo.WithString("sort_by",
			mcpgo.Description("Override the saved sort key: probability, preparedness, severity or name"),
		),
		mcpgo.WithString("sort_order",
			mcpgo.Description("Override the saved sort order: asc or desc"),
		),
	)
}

func buildAnalyzeScenarioTool() mcpgo.Tool {
	return mcpgo.NewTool("analyze_scenario",
		mcpgo.WithDescription("Detailed analysis of one scenario: plans with ordered steps, remediations, urgent actions, required inventory and risk breakdown."),
		mcpgo.WithString("id",
			mcpgo.Required(),
			mcpgo.Description("The scenario ID"),
		),
	)
}

func buildRiskScoreTool() mcpgo.Tool {
	return mcpgo.NewTool("risk_score",
		mcpgo.WithDescription("Composite risk score of a scenario with every contributing factor."),
		mcpgo.WithString("id",
			mcpgo.Required(),
			mcpgo.Description("The scenario ID"),
		),
	)
}

func buildPreparednessTool() mcpgo.Tool {
	return mcpgo.NewTool("preparedness",
		mcpgo.WithDescription("Preparedness percentage and level of a scenario."),
		mcpgo.WithString("id",
			mcpgo.Required(),
			mcpgo.Description("The scenario ID"),
		),
		mcpgo.WithString("strategy",
			mcpgo.Description("plan_steps (default) or remediations"),
		),
	)
}

func buildInventoryStatusTool() mcpgo.Tool {
	return mcpgo.NewTool("inventory_status",
		mcpgo.WithDescription("Inventory items with stock level and expiration flags, plus totals."),
		mcpgo.WithString("search",
			mcpgo.Description("Case-insensitive filter on name, description, category or location"),
		),
	)
}

func buildListContactsTool() mcpgo.Tool {
	return mcpgo.NewTool("list_contacts",
		mcpgo.WithDescription("Active emergency contacts grouped by category."),
	)
}

func buildUpdateRemediationStatusTool() mcpgo.Tool {
	return mcpgo.NewTool("update_remediation_status",
		mcpgo.WithDescription("Set the status of a remediation."),
		mcpgo.WithString("id",
			mcpgo.Required(),
			mcpgo.Description("The remediation ID"),
		),
		mcpgo.WithString("status",
			mcpgo.Required(),
			mcpgo.Description("not_started, in_progress or completed"),
		),
	)
}

func buildReviewTool() mcpgo.Tool {
	return mcpgo.NewTool("review",
		mcpgo.WithDescription("Review sweep: overdue and due-soon work, low or expiring stock, high-risk and unprepared scenarios."),
	)
}

// --- tool handlers ---

func (s *Server) handleDashboard(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.st == nil {
		return mcpgo.NewToolResultError("state is unavailable"), nil
	}

	prefs := s.st.Preferences()
	if v := req.GetString("sort_by", ""); v != "" {
		key := models.SortKey(v)
		if !key.IsValid() {
			return mcpgo.NewToolResultErrorf("invalid sort_by %q: must be one of probability, preparedness, severity, name", v), nil
		}
		prefs.DashboardSortBy = key
	}
	if v := req.GetString("sort_order", ""); v != "" {
		order := models.SortOrder(v)
		if !order.IsValid() {
			return mcpgo.NewToolResultErrorf("invalid sort_order %q: must be asc or desc", v), nil
		}
		prefs.DashboardSortOrder = order
	}

	ds := s.st.Snapshot()
	return toolResultJSON(engine.Dashboard(&ds, prefs, s.st.Now()))
}

func (s *Server) handleAnalyzeScenario(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.st == nil {
		return mcpgo.NewToolResultError("state is unavailable"), nil
	}
	id, res := requireID(req)
	if res != nil {
		return res, nil
	}

	ds := s.st.Snapshot()
	a, ok := engine.ScenarioAnalysis(&ds, id, s.st.Now())
	if !ok {
		return mcpgo.NewToolResultErrorf("scenario %s not found", id), nil
	}
	return toolResultJSON(a)
}

func (s *Server) handleRiskScore(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.st == nil {
		return mcpgo.NewToolResultError("state is unavailable"), nil
	}
	id, res := requireID(req)
	if res != nil {
		return res, nil
	}

	ds := s.st.Snapshot()
	sc, ok := ds.ScenarioByID(id)
	if !ok {
		return mcpgo.NewToolResultErrorf("scenario %s not found", id), nil
	}
	return toolResultJSON(engine.ExplainRisk(&ds, &sc, s.st.Now()))
}

func (s *Server) handlePreparedness(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.st == nil {
		return mcpgo.NewToolResultError("state is unavailable"), nil
	}
	id, res := requireID(req)
	if res != nil {
		return res, nil
	}
	strategy, err := engine.ParseStrategy(req.GetString("strategy", ""))
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}

	ds := s.st.Snapshot()
	if _, ok := ds.ScenarioByID(id); !ok {
		return mcpgo.NewToolResultErrorf("scenario %s not found", id), nil
	}
	result := map[string]any{
		"id":        id,
		"strategy":  strategy,
		"readiness": engine.Preparedness(&ds, id, strategy),
	}
	return toolResultJSON(result)
}

func (s *Server) handleInventoryStatus(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.st == nil {
		return mcpgo.NewToolResultError("state is unavailable"), nil
	}

	ds := s.st.Snapshot()
	now := s.st.Now()
	items := engine.SearchInventory(ds.Inventory, req.GetString("search", ""))
	result := map[string]any{
		"items":   engine.InventoryRows(items, now),
		"summary": engine.InventorySummary(items, now),
	}
	return toolResultJSON(result)
}

func (s *Server) handleListContacts(_ context.Context, _ mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.st == nil {
		return mcpgo.NewToolResultError("state is unavailable"), nil
	}

	ds := s.st.Snapshot()
	groups := engine.ContactsByCategory(ds.Contacts)
	if groups == nil {
		groups = []engine.ContactGroup{}
	}
	return toolResultJSON(map[string]any{"groups": groups})
}

// handleUpdateRemediationStatus sets a remediation's status and persists it.
func (s *Server) handleUpdateRemediationStatus(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.st == nil {
		return mcpgo.NewToolResultError("state is unavailable"), nil
	}
	id, res := requireID(req)
	if res != nil {
		return res, nil
	}
	status := models.Status(req.GetString("status", ""))
	if !status.IsValid() {
		return mcpgo.NewToolResultErrorf("invalid status %q: must be one of not_started, in_progress, completed", status), nil
	}

	rem, err := s.st.SetRemediationStatus(ctx, id, status)
	switch {
	case errors.Is(err, state.ErrNotFound):
		return mcpgo.NewToolResultErrorf("remediation %s not found", id), nil
	case err != nil:
		return mcpgo.NewToolResultErrorf("update failed: %s", err.Error()), nil
	}

	s.logger.Info("mcp: remediation status updated", "id", id, "status", status)
	return toolResultJSON(rem)
}

func (s *Server) handleReview(_ context.Context, _ mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.st == nil || s.review == nil {
		return mcpgo.NewToolResultError("review is unavailable"), nil
	}
	return toolResultJSON(s.review.Run(s.st.Now()))
}

// requireID reads the mandatory id argument, returning an error result when
// it is missing or blank.
func requireID(req mcpgo.CallToolRequest) (string, *mcpgo.CallToolResult) {
	id := strings.TrimSpace(req.GetString("id", ""))
	if id == "" {
		return "", mcpgo.NewToolResultError("id is required and must not be empty")
	}
	return id, nil
}
