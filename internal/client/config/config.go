package config

import (
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/storefront/internal/flagx"
)

// Config holds runtime settings for the storefront CLI.
//
// Fields:
//   - BaseURL: root of the REST API, including the /api prefix.
//   - RequestTimeout: upper bound for a single HTTP request.
//   - ExpirationCheckInterval: how often the session watcher re-checks the token.
//   - DatabasePath: SQLite file holding the persisted session.
//   - LogLevel, LogBackend: see logging.New.
//   - RetryMax: retries for idempotent reads.
type Config struct {
	BaseURL                 string        `env:"BASE_URL"`
	RequestTimeout          time.Duration `env:"REQUEST_TIMEOUT"`
	ExpirationCheckInterval time.Duration `env:"EXPIRATION_CHECK_INTERVAL"`
	DatabasePath            string        `env:"DATABASE_PATH"`
	LogLevel                string        `env:"LOG_LEVEL"`
	LogBackend              string        `env:"LOG_BACKEND"`
	RetryMax                int           `env:"RETRY_MAX"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://e-commerce-backend-j8ie.onrender.com/api"
	c.RequestTimeout = 10 * time.Second
	c.ExpirationCheckInterval = 60 * time.Second
	c.DatabasePath = "storefront.db"
	c.LogLevel = "info"
	c.LogBackend = "slog"
	c.RetryMax = 2
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, flagx.ConfigPath(args)); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("config: base url is required")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("config: request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.ExpirationCheckInterval <= 0 {
		return fmt.Errorf("config: expiration check interval must be positive, got %s", c.ExpirationCheckInterval)
	}
	if c.RetryMax < 0 {
		return fmt.Errorf("config: retry max must not be negative, got %d", c.RetryMax)
	}
	return nil
}
