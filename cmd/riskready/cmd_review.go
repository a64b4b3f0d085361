package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func reviewCmd() *cobra.Command {
	var (
		asJSON bool
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Sweep for overdue work, low or expiring stock and unprepared scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			st, closeStore, err := openState(ctx, logger)
			if err != nil {
				return fmt.Errorf("review: opening store: %w", err)
			}
			defer closeStore()

			report := newReview(st, logger).Run(st.Now())
			if asJSON {
				if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
					return err
				}
			} else {
				renderReview(newPrinter(cmd), report)
			}

			if strict && len(report.Findings) > 0 {
				return fmt.Errorf("review: %d findings", len(report.Findings))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when there are findings")
	return cmd
}
