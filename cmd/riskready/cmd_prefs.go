package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajitpratap0/riskready/internal/models"
)

func prefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change saved preferences",
	}
	cmd.AddCommand(prefsGetCmd(), prefsSetCmd(), prefsToggleCmd())
	return cmd
}

func prefsGetCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show saved preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			st, closeStore, err := openState(cmd.Context(), logger)
			if err != nil {
				return fmt.Errorf("prefs get: opening store: %w", err)
			}
			defer closeStore()

			prefs := st.Preferences()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), prefs)
			}
			renderPreferences(newPrinter(cmd), prefs)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func prefsSetCmd() *cobra.Command {
	var (
		darkMode bool
		page     string
		sortBy   string
		order    string
		view     string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change saved preferences; only the flags given are changed",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			st, closeStore, err := openState(ctx, logger)
			if err != nil {
				return fmt.Errorf("prefs set: opening store: %w", err)
			}
			defer closeStore()

			prefs := st.Preferences()
			flags := cmd.Flags()
			if flags.Changed("dark-mode") {
				prefs.DarkMode = darkMode
			}
			if flags.Changed("page") {
				prefs.CurrentPage = page
			}
			if flags.Changed("sort") {
				prefs.DashboardSortBy = models.SortKey(sortBy)
			}
			if flags.Changed("order") {
				prefs.DashboardSortOrder = models.SortOrder(order)
			}
			if flags.Changed("view") {
				prefs.ViewMode = models.ViewMode(view)
			}

			prefs, err = st.SetPreferences(ctx, prefs)
			if err != nil {
				return fmt.Errorf("prefs set: %w", err)
			}
			renderPreferences(newPrinter(cmd), prefs)
			return nil
		},
	}

	cmd.Flags().BoolVar(&darkMode, "dark-mode", false, "enable dark mode")
	cmd.Flags().StringVar(&page, "page", "", "current page")
	cmd.Flags().StringVar(&sortBy, "sort", "", "dashboard sort key: probability, preparedness, severity or name")
	cmd.Flags().StringVar(&order, "order", "", "dashboard sort order: asc or desc")
	cmd.Flags().StringVar(&view, "view", "", "dashboard view mode: categories or all")
	return cmd
}

func prefsToggleCmd() *cobra.Command {
	var selected bool

	cmd := &cobra.Command{
		Use:   "toggle [category-id]",
		Short: "Expand or collapse a dashboard category, or with --selected show or hide it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			st, closeStore, err := openState(ctx, logger)
			if err != nil {
				return fmt.Errorf("prefs toggle: opening store: %w", err)
			}
			defer closeStore()

			id := args[0]
			ds := st.Snapshot()
			if _, ok := ds.CategoryByID(id); !ok {
				return fmt.Errorf("prefs toggle: category %s not found", id)
			}

			toggle, field := st.ToggleExpanded, "expanded"
			if selected {
				toggle, field = st.ToggleSelected, "selected"
			}
			on, err := toggle(ctx, id)
			if err != nil {
				return fmt.Errorf("prefs toggle: %w", err)
			}
			newPrinter(cmd).Success(fmt.Sprintf("category %s %s: %t", id, field, on))
			return nil
		},
	}

	cmd.Flags().BoolVar(&selected, "selected", false, "toggle the dashboard filter instead of the expanded state")
	return cmd
}
