package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func resetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace all data and preferences with the built-in sample dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("reset: this overwrites every collection; rerun with --yes to confirm")
			}
			logger := newLogger()
			ctx := cmd.Context()

			st, closeStore, err := openState(ctx, logger)
			if err != nil {
				return fmt.Errorf("reset: opening store: %w", err)
			}
			defer closeStore()

			if err := st.Reset(ctx); err != nil {
				return fmt.Errorf("reset: %w", err)
			}
			newPrinter(cmd).Success("restored the sample dataset")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}
