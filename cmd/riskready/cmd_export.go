package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ajitpratap0/riskready/internal/models"
)

const exportVersion = 1

// exportFile is the on-disk backup format shared by export and import.
type exportFile struct {
	Version     int                `json:"version" yaml:"version"`
	ExportedAt  time.Time          `json:"exportedAt" yaml:"exportedAt"`
	Data        models.Dataset     `json:"data" yaml:"data"`
	Preferences models.Preferences `json:"preferences" yaml:"preferences"`
}

func encodeExport(w io.Writer, format string, f *exportFile) error {
	switch format {
	case "json":
		return writeJSON(w, f)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q (use json or yaml)", format)
	}
}

func decodeExport(r io.Reader, format string) (*exportFile, error) {
	var f exportFile
	switch format {
	case "json":
		if err := json.NewDecoder(r).Decode(&f); err != nil {
			return nil, fmt.Errorf("decoding JSON: %w", err)
		}
	case "yaml":
		if err := yaml.NewDecoder(r).Decode(&f); err != nil {
			return nil, fmt.Errorf("decoding YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q (use json or yaml)", format)
	}
	if f.Version > exportVersion {
		return nil, fmt.Errorf("export version %d is newer than supported version %d", f.Version, exportVersion)
	}
	return &f, nil
}

// formatFor picks the format from the flag, falling back to the file
// extension and then JSON.
func formatFor(flag, path string) string {
	if flag != "" {
		return strings.ToLower(flag)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

func exportCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data and preferences to JSON or YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			st, closeStore, err := openState(ctx, logger)
			if err != nil {
				return fmt.Errorf("export: opening store: %w", err)
			}
			defer closeStore()

			f := &exportFile{
				Version:     exportVersion,
				ExportedAt:  st.Now().UTC(),
				Data:        st.Snapshot(),
				Preferences: st.Preferences(),
			}

			w := cmd.OutOrStdout()
			if output != "" && output != "-" {
				file, createErr := os.Create(output)
				if createErr != nil {
					return fmt.Errorf("export: creating output file: %w", createErr)
				}
				defer func() { _ = file.Close() }()
				w = file
			}

			if err := encodeExport(w, formatFor(format, output), f); err != nil {
				return fmt.Errorf("export: %w", err)
			}

			if output != "" && output != "-" {
				stats := f.Data.Stats()
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d scenarios, %d remediations, %d plans, %d steps, %d items, %d contacts, %d categories to %s\n",
					stats.Scenarios, stats.Remediations, stats.Plans, stats.Steps, stats.Inventory, stats.Contacts, stats.Categories, output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "output format: json or yaml (default: from file extension, else json)")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file path (- for stdout)")
	return cmd
}
