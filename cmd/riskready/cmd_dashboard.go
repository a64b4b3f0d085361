package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ajitpratap0/riskready/internal/engine"
	"github.com/ajitpratap0/riskready/internal/models"
)

func dashboardCmd() *cobra.Command {
	var (
		sortBy  string
		order   string
		view    string
		asJSON  bool
		persist bool
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show every scenario with preparedness and composite risk",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			st, closeStore, err := openState(ctx, logger)
			if err != nil {
				return fmt.Errorf("dashboard: opening store: %w", err)
			}
			defer closeStore()

			prefs := st.Preferences()
			if sortBy != "" {
				prefs.DashboardSortBy = models.SortKey(sortBy)
			}
			if order != "" {
				prefs.DashboardSortOrder = models.SortOrder(order)
			}
			if view != "" {
				prefs.ViewMode = models.ViewMode(view)
			}
			if !prefs.DashboardSortBy.IsValid() || !prefs.DashboardSortOrder.IsValid() || !prefs.ViewMode.IsValid() {
				return fmt.Errorf("dashboard: invalid sort or view (sort: probability|preparedness|severity|name, order: asc|desc, view: categories|all)")
			}
			if persist {
				if _, err := st.SetPreferences(ctx, prefs); err != nil {
					return fmt.Errorf("dashboard: saving preferences: %w", err)
				}
			}

			ds := st.Snapshot()
			dash := engine.Dashboard(&ds, prefs, st.Now())
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), dash)
			}
			renderDashboard(newPrinter(cmd), dash)
			return nil
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", "", "sort key: probability, preparedness, severity or name (default: saved preference)")
	cmd.Flags().StringVar(&order, "order", "", "sort order: asc or desc (default: saved preference)")
	cmd.Flags().StringVar(&view, "view", "", "view mode: categories or all (default: saved preference)")
	cmd.Flags().BoolVar(&persist, "save", false, "save the sort and view flags as the new preference")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func analyzeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze [scenario-id]",
		Short: "Show the detailed analysis of one scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			st, closeStore, err := openState(ctx, logger)
			if err != nil {
				return fmt.Errorf("analyze: opening store: %w", err)
			}
			defer closeStore()

			ds := st.Snapshot()
			a, ok := engine.ScenarioAnalysis(&ds, args[0], st.Now())
			if !ok {
				return fmt.Errorf("analyze: scenario %s not found", args[0])
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), a)
			}
			renderAnalysis(newPrinter(cmd), a)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
