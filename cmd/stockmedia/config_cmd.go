package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vadimtrunov/stockmedia/internal/config"
)

// newConfigCmd returns the "config" subcommand group for configuration management.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	cmd.AddCommand(newConfigValidateCmd())
	return cmd
}

// newConfigValidateCmd returns the "config validate" subcommand that checks config file validity.
func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleSuccess.Render("✓ Configuration is valid"))
			printConfigSummary(out, cfg)
			return nil
		},
	}
}

// printConfigSummary prints the effective settings without secrets.
func printConfigSummary(w io.Writer, cfg *config.Config) {
	auth := "client credentials"
	if cfg.API.Token != "" {
		auth = "bearer token"
	}
	telegram := "disabled"
	if cfg.Telegram != nil {
		telegram = fmt.Sprintf("enabled (%d allowed users)", len(cfg.Telegram.AllowedUserIDs))
	}

	fmt.Fprintln(w, styleDim.Render("  api:      ")+sanitizeURL(cfg.API.BaseURL))
	fmt.Fprintln(w, styleDim.Render("  auth:     ")+auth)
	fmt.Fprintln(w, styleDim.Render("  timeout:  ")+fmt.Sprintf("%ds", cfg.API.TimeoutSeconds))
	fmt.Fprintln(w, styleDim.Render("  telegram: ")+telegram)
	fmt.Fprintln(w, styleDim.Render("  log:      ")+cfg.App.LogLevel)
}
