package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ajitpratap0/riskready/internal/config"
	"github.com/ajitpratap0/riskready/internal/review"
	"github.com/ajitpratap0/riskready/internal/state"
	"github.com/ajitpratap0/riskready/internal/store"
	"github.com/ajitpratap0/riskready/pkg/ux"
)

var (
	cfg   *config.Config
	plain bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	rootCmd := &cobra.Command{
		Use:   "riskready",
		Short: "riskready — household risk preparedness tracker",
		Long:  "Track risk scenarios, remediations, response plans, supplies and emergency contacts, and see how prepared you are for each.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return nil
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "disable colors and box drawing")

	rootCmd.AddCommand(
		dashboardCmd(),
		analyzeCmd(),
		inventoryCmd(),
		contactsCmd(),
		reviewCmd(),
		prefsCmd(),
		remediationCmd(),
		exportCmd(),
		importCmd(),
		resetCmd(),
		serveCmd(),
		mcpCmd(),
		healthCmd(),
		tokenCmd(),
	)

	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if cfg != nil && cfg.Logging.Level == "debug" {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg != nil && cfg.Logging.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// openState opens the configured store and loads the application state.
// The returned close func releases the store.
func openState(ctx context.Context, logger *slog.Logger) (*state.State, func(), error) {
	kv, err := store.Open(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if closeErr := kv.Close(); closeErr != nil {
			logger.Warn("closing store", "error", closeErr)
		}
	}
	return state.Load(ctx, kv, logger), closeFn, nil
}

func newReview(st *state.State, logger *slog.Logger) *review.Manager {
	return review.NewManager(st, review.Options{
		DueSoonDays:  cfg.Review.DueSoonDays,
		ExpiringDays: cfg.Review.ExpiringDays,
	}, logger)
}

func newPrinter(cmd *cobra.Command) *ux.Printer {
	return ux.NewPrinter(cmd.OutOrStdout(), plain)
}

func truncate(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen]) + "..."
	}
	return s
}
