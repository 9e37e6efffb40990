package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"

	"github.com/charmbracelet/lipgloss"

	"github.com/vadimtrunov/stockmedia/internal/config"
	"github.com/vadimtrunov/stockmedia/internal/shutterstock"
)

// Lipgloss styles used across commands.
var (
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // blue
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow

	styleTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true) // white bold

	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("5")).
			MarginBottom(1)
)

// loadConfig loads and validates the configuration file.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}

// initClient creates the media API client from the configuration.
func initClient(cfg *config.Config, logger *slog.Logger) (*shutterstock.Client, error) {
	client, err := shutterstock.New(cfg.ClientConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("create API client: %w", err)
	}
	logger.Debug("API client initialized", slog.String("url", sanitizeURL(client.BaseURL())))
	return client, nil
}

// setup loads the configuration and builds a client that logs to stderr,
// leaving stdout to the command output.
func setup() (*shutterstock.Client, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return initClient(cfg, config.SetupStderrLogger(cfg.App.LogLevel))
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

// sanitizeURL strips credentials, query params, and fragment from a URL for safe logging.
func sanitizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || u.Scheme == "" {
		return "<redacted>"
	}
	u.User = nil
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
