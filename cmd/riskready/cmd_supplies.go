package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajitpratap0/riskready/internal/engine"
)

func inventoryCmd() *cobra.Command {
	var (
		search string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "List inventory with stock level and expiration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			st, closeStore, err := openState(ctx, logger)
			if err != nil {
				return fmt.Errorf("inventory: opening store: %w", err)
			}
			defer closeStore()

			ds := st.Snapshot()
			now := st.Now()
			items := engine.SearchInventory(ds.Inventory, search)
			rows := engine.InventoryRows(items, now)
			totals := engine.InventorySummary(items, now)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"items": rows, "summary": totals})
			}
			renderInventory(newPrinter(cmd), rows, totals)
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by name, description, category or location")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func contactsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "List active emergency contacts grouped by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			st, closeStore, err := openState(ctx, logger)
			if err != nil {
				return fmt.Errorf("contacts: opening store: %w", err)
			}
			defer closeStore()

			ds := st.Snapshot()
			groups := engine.ContactsByCategory(ds.Contacts)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), groups)
			}
			renderContacts(newPrinter(cmd), groups)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}
