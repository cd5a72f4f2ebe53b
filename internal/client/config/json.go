package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/storefront/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Intervals are
// timex.Duration so they may be written as "10s" or as integer nanoseconds.
// Pointer and zero fields mean "not set" and leave the current value alone.
type JSONConfig struct {
	BaseURL                 string         `json:"base_url"`
	RequestTimeout          timex.Duration `json:"request_timeout"`
	ExpirationCheckInterval timex.Duration `json:"expiration_check_interval"`
	DatabasePath            string         `json:"database_path"`
	LogLevel                string         `json:"log_level"`
	LogBackend              string         `json:"log_backend"`
	RetryMax                *int           `json:"retry_max"`
}

// parseJSON overlays cfg with the file at path. An empty path is a no-op.
func parseJSON(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.ExpirationCheckInterval.Duration != 0 {
		cfg.ExpirationCheckInterval = jc.ExpirationCheckInterval.Duration
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogBackend != "" {
		cfg.LogBackend = jc.LogBackend
	}
	if jc.RetryMax != nil {
		cfg.RetryMax = *jc.RetryMax
	}
	return nil
}
