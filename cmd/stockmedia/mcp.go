package main

import (
	"github.com/spf13/cobra"

	"github.com/vadimtrunov/stockmedia/internal/config"
	mcpserver "github.com/vadimtrunov/stockmedia/internal/mcp"
)

// newMCPServeCmd returns the "mcp-serve" subcommand.
// It starts an MCP server over stdin/stdout that exposes image and video
// lookups as tools. Logs go to stderr since stdout carries the protocol.
func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp-serve",
		Short: "Start MCP server over stdio",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			logger := config.SetupStderrLogger(cfg.App.LogLevel)

			client, err := initClient(cfg, logger)
			if err != nil {
				return err
			}

			srv := mcpserver.NewServer(mcpserver.Deps{Client: client}, version, logger)
			return srv.ServeStdio(cmd.Context())
		},
	}
}
