package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/vadimtrunov/stockmedia/internal/shutterstock"
)

const defaultTimeoutSeconds = 30

// Config represents the main application configuration
type Config struct {
	// Upstream API
	API APIConfig `yaml:"api"`

	// Frontends
	Telegram *TelegramConfig `yaml:"telegram,omitempty"`

	// Application settings
	App AppConfig `yaml:"app"`
}

// APIConfig holds the media API endpoint and credentials
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	Token          string `yaml:"token,omitempty"`
	ClientID       string `yaml:"client_id,omitempty"`
	ClientSecret   string `yaml:"client_secret,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"`
	UserAgent      string `yaml:"user_agent,omitempty"`
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	BotToken       string  `yaml:"bot_token"`
	AllowedUserIDs []int64 `yaml:"allowed_user_ids,omitempty"`
}

// AppConfig holds application-level settings
type AppConfig struct {
	LogLevel string `yaml:"log_level"` // "debug", "info", "warn", "error"
}

// Load loads configuration from a YAML file with environment variable overrides.
// A missing file is not an error: the configuration then comes from the environment.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyEnvOverrides overrides config values with environment variables
func (c *Config) applyEnvOverrides() {
	// API
	if v := os.Getenv("STOCKMEDIA_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("STOCKMEDIA_TOKEN"); v != "" {
		c.API.Token = v
	}
	if v := os.Getenv("STOCKMEDIA_CLIENT_ID"); v != "" {
		c.API.ClientID = v
	}
	if v := os.Getenv("STOCKMEDIA_CLIENT_SECRET"); v != "" {
		c.API.ClientSecret = v
	}
	if v := os.Getenv("STOCKMEDIA_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.API.TimeoutSeconds = n
		}
	}

	// Telegram
	if v := os.Getenv("STOCKMEDIA_TELEGRAM_BOT_TOKEN"); v != "" {
		if c.Telegram == nil {
			c.Telegram = &TelegramConfig{}
		}
		c.Telegram.BotToken = v
	}

	// App
	if v := os.Getenv("STOCKMEDIA_LOG_LEVEL"); v != "" {
		c.App.LogLevel = v
	}
}

// Validate validates the configuration and fills in defaults
func (c *Config) Validate() error {
	c.setDefaults()

	if err := validateURL(c.API.BaseURL, "api.base_url"); err != nil {
		return err
	}
	if c.API.Token == "" && c.API.ClientID == "" {
		return fmt.Errorf("api.token or api.client_id is required")
	}
	if c.API.Token == "" && c.API.ClientSecret == "" {
		return fmt.Errorf("api.client_secret is required when api.client_id is set")
	}
	if c.API.TimeoutSeconds < 0 {
		return fmt.Errorf("api.timeout_seconds must not be negative")
	}

	if c.Telegram != nil && c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}

	switch strings.ToLower(c.App.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("app.log_level must be one of debug, info, warn, error; got %q", c.App.LogLevel)
	}

	return nil
}

func (c *Config) setDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = shutterstock.DefaultBaseURL
	}
	if c.API.TimeoutSeconds == 0 {
		c.API.TimeoutSeconds = defaultTimeoutSeconds
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
}

// ClientConfig converts the API section into a client configuration.
func (c *Config) ClientConfig() shutterstock.Config {
	return shutterstock.Config{
		BaseURL:      c.API.BaseURL,
		Token:        c.API.Token,
		ClientID:     c.API.ClientID,
		ClientSecret: c.API.ClientSecret,
		Timeout:      time.Duration(c.API.TimeoutSeconds) * time.Second,
		UserAgent:    c.API.UserAgent,
	}
}

// validateURL checks that raw is an absolute http(s) URL with a host.
func validateURL(raw, field string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is invalid: %w", field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https", field)
	}
	if u.Host == "" {
		return fmt.Errorf("%s is missing host", field)
	}
	return nil
}
