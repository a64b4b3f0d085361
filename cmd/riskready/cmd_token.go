package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajitpratap0/riskready/internal/auth"
)

func tokenCmd() *cobra.Command {
	var (
		subject string
		email   string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a signed API token using api.jwt_secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.API.JWTSecret == "" {
				return fmt.Errorf("token: api.jwt_secret is not configured")
			}
			if subject == "" && email == "" {
				return fmt.Errorf("token: --subject or --email is required")
			}
			tok, err := auth.NewJWT(cfg.API.JWTSecret).Issue(subject, email, ttl)
			if err != nil {
				return fmt.Errorf("token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "user id (sub claim)")
	cmd.Flags().StringVar(&email, "email", "", "user email")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
