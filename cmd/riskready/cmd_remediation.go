package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajitpratap0/riskready/internal/engine"
	"github.com/ajitpratap0/riskready/internal/models"
)

func remediationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remediation",
		Short: "List remediations or change their status",
	}
	cmd.AddCommand(remediationListCmd(), remediationStatusCmd())
	return cmd
}

func remediationListCmd() *cobra.Command {
	var scenario string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List remediations with status and due date",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			st, closeStore, err := openState(cmd.Context(), logger)
			if err != nil {
				return fmt.Errorf("remediation list: opening store: %w", err)
			}
			defer closeStore()

			ds := st.Snapshot()
			now := st.Now()
			p := newPrinter(cmd)
			var rows [][]string
			for i := range ds.Remediations {
				r := &ds.Remediations[i]
				if scenario != "" && !r.AppliesTo(scenario) {
					continue
				}
				due := dueText(r.DueDate)
				switch {
				case engine.IsOverdue(r, now):
					due = badge(p, engine.TagError, due+" overdue")
				case engine.IsDueSoon(r, now):
					due = badge(p, engine.TagWarning, due+" soon")
				}
				rows = append(rows, []string{
					r.ID,
					truncate(r.Name, descWidth),
					badge(p, engine.StatusTag(r.Status), string(r.Status)),
					due,
					truncate(engine.ScenarioNames(&ds, r.ApplicableScenarios), descWidth),
				})
			}
			p.Table([]string{"ID", "REMEDIATION", "STATUS", "DUE", "SCENARIOS"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&scenario, "scenario", "", "only remediations applicable to this scenario id")
	return cmd
}

func remediationStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [remediation-id] [not_started|in_progress|completed]",
		Short: "Set the status of a remediation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			status := models.Status(args[1])
			if !status.IsValid() {
				return fmt.Errorf("remediation status: invalid status %q (use not_started, in_progress or completed)", args[1])
			}

			st, closeStore, err := openState(ctx, logger)
			if err != nil {
				return fmt.Errorf("remediation status: opening store: %w", err)
			}
			defer closeStore()

			rem, err := st.SetRemediationStatus(ctx, args[0], status)
			if err != nil {
				return fmt.Errorf("remediation status: %w", err)
			}
			newPrinter(cmd).Success(fmt.Sprintf("%s is now %s", rem.Name, rem.Status))
			return nil
		},
	}
}
