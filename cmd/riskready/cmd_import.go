package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajitpratap0/riskready/internal/models"
)

// uniqueIDs reports the first empty or duplicate id in items.
func uniqueIDs[T any](kind string, items []T, id func(*T) string) error {
	seen := make(map[string]bool, len(items))
	for i := range items {
		v := id(&items[i])
		if v == "" {
			return fmt.Errorf("%s with empty id", kind)
		}
		if seen[v] {
			return fmt.Errorf("duplicate %s id %q", kind, v)
		}
		seen[v] = true
	}
	return nil
}

func checkIDs(ds *models.Dataset) error {
	return errors.Join(
		uniqueIDs("scenario", ds.Scenarios, func(v *models.Scenario) string { return v.ID }),
		uniqueIDs("remediation", ds.Remediations, func(v *models.Remediation) string { return v.ID }),
		uniqueIDs("plan", ds.Plans, func(v *models.Plan) string { return v.ID }),
		uniqueIDs("step", ds.Steps, func(v *models.Step) string { return v.ID }),
		uniqueIDs("inventory item", ds.Inventory, func(v *models.InventoryItem) string { return v.ID }),
		uniqueIDs("contact", ds.Contacts, func(v *models.EmergencyContact) string { return v.ID }),
		uniqueIDs("category", ds.Categories, func(v *models.Category) string { return v.ID }),
	)
}

func importCmd() *cobra.Command {
	var (
		filePath  string
		format    string
		keepPrefs bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace all data with the contents of an export file",
		Long: `Import an export file written by "riskready export", replacing every
collection. Preferences are replaced too unless --keep-preferences is set.

Use - as the file path to read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			var r io.Reader = cmd.InOrStdin()
			if filePath != "" && filePath != "-" {
				f, openErr := os.Open(filePath)
				if openErr != nil {
					return fmt.Errorf("import: opening file: %w", openErr)
				}
				defer func() { _ = f.Close() }()
				r = f
			}

			file, err := decodeExport(r, formatFor(format, filePath))
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}
			if err := checkIDs(&file.Data); err != nil {
				return fmt.Errorf("import: %w", err)
			}

			st, closeStore, err := openState(ctx, logger)
			if err != nil {
				return fmt.Errorf("import: opening store: %w", err)
			}
			defer closeStore()

			if err := st.Replace(ctx, file.Data); err != nil {
				return fmt.Errorf("import: saving data: %w", err)
			}
			if !keepPrefs && file.Preferences.ViewMode != "" {
				if _, err := st.SetPreferences(ctx, file.Preferences); err != nil {
					return fmt.Errorf("import: saving preferences: %w", err)
				}
			}

			stats := file.Data.Stats()
			newPrinter(cmd).Success(fmt.Sprintf("Imported %d scenarios, %d remediations, %d plans, %d steps, %d items, %d contacts, %d categories",
				stats.Scenarios, stats.Remediations, stats.Plans, stats.Steps, stats.Inventory, stats.Contacts, stats.Categories))
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "-", "path to input file (- for stdin)")
	cmd.Flags().StringVar(&format, "format", "", "input format: json or yaml (default: from file extension, else json)")
	cmd.Flags().BoolVar(&keepPrefs, "keep-preferences", false, "keep the current preferences")
	return cmd
}
