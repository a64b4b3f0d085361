package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajitpratap0/riskready/internal/state"
	"github.com/ajitpratap0/riskready/internal/store"
)

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the configured store is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()
			p := newPrinter(cmd)

			kv, err := store.Open(ctx, cfg.Storage, logger)
			if err != nil {
				p.Line("Store (%s): FAIL (%v)", cfg.Storage.Backend, err)
				return fmt.Errorf("one or more health checks failed")
			}
			defer func() { _ = kv.Close() }()

			keys, err := kv.Keys(ctx)
			if err != nil {
				p.Line("Store (%s): FAIL (%v)", cfg.Storage.Backend, err)
				return fmt.Errorf("one or more health checks failed")
			}
			p.Success(fmt.Sprintf("Store (%s): OK", cfg.Storage.Backend))

			present := make(map[string]bool, len(keys))
			for _, k := range keys {
				present[k] = true
			}
			missing := 0
			for _, k := range state.AllKeys() {
				if !present[k] {
					missing++
				}
			}
			if missing > 0 {
				p.Warning(fmt.Sprintf("%d of %d keys not yet saved; defaults will be used", missing, len(state.AllKeys())))
			}
			return nil
		},
	}
}
