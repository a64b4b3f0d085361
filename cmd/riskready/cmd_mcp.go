package main

import (
	"log"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	riskmcp "github.com/ajitpratap0/riskready/internal/mcp"
)

func mcpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start the MCP (Model Context Protocol) server over stdio",
		Long: `Starts an MCP JSON-RPC 2.0 server that reads from stdin and writes to stdout.
All diagnostic logs go to stderr so that stdout remains exclusively MCP protocol traffic.

Tools exposed:
  dashboard                  scenarios with preparedness and risk
  analyze_scenario           detailed analysis of one scenario
  risk_score                 composite risk with every factor
  preparedness               readiness of a scenario by strategy
  inventory_status           stock and expiration status
  list_contacts              active contacts by category
  update_remediation_status  change a remediation's status
  review                     overdue, low-stock and unprepared findings

If the store cannot be opened the server still starts; every tool call
returns an MCP error result.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger()

			st, closeStore, err := openState(cmd.Context(), logger)
			if err != nil {
				logger.Error("mcp: failed to open store; tool calls will fail", "error", err)
			} else {
				defer closeStore()
			}

			var srv *riskmcp.Server
			if st != nil {
				srv = riskmcp.NewServer(st, newReview(st, logger), logger)
			} else {
				srv = riskmcp.NewServer(nil, nil, logger)
			}

			// Use a standard log.Logger pointing at stderr for the mcp-go error logger.
			errLogger := log.New(os.Stderr, "mcp: ", log.LstdFlags)

			logger.Info("mcp: riskready MCP server starting", "transport", "stdio")

			return mcpserver.ServeStdio(
				srv.MCPServer(),
				mcpserver.WithErrorLogger(errLogger),
			)
		},
	}

	return cmd
}
