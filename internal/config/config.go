// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the runtime settings, loadable from a JSON file. All fields
// are optional; missing values fall back to defaults or env vars.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Persistence
	StateFile   string `json:"state_file,omitempty"`   // Path to the JSON snapshot file
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL; takes precedence over StateFile

	// Ingestion
	ListingURL string `json:"listing_url,omitempty"` // Raw markdown listing URL
	BoardURL   string `json:"board_url,omitempty"`   // Optional HTML board URL

	// Pipeline behavior
	FailureRate   float64 `json:"failure_rate,omitempty"`   // Simulated submission failure probability (0.0-1.0)
	Seed          int64   `json:"seed,omitempty"`           // Deterministic submission seed; 0 means random
	RetryAttempts int     `json:"retry_attempts,omitempty"` // Max attempts per retryable step
	FastDelays    bool    `json:"fast_delays,omitempty"`    // Skip agent narration delays

	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the baseline configuration.
func Defaults() Config {
	return Config{
		Port:          8080,
		StateFile:     "autopilot-state.json",
		ListingURL:    "",
		FailureRate:   0.1,
		RetryAttempts: 1,
	}
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.FailureRate < 0 || c.FailureRate > 1 {
		return fmt.Errorf("config error: 'failure_rate' must be between 0.0 and 1.0")
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("config error: 'retry_attempts' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. Booleans merge with OR since false is indistinguishable from
// unset.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.StateFile == "" {
		result.StateFile = defaults.StateFile
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ListingURL == "" {
		result.ListingURL = defaults.ListingURL
	}
	if result.BoardURL == "" {
		result.BoardURL = defaults.BoardURL
	}
	if result.FailureRate == 0 {
		result.FailureRate = defaults.FailureRate
	}
	if result.Seed == 0 {
		result.Seed = defaults.Seed
	}
	if result.RetryAttempts == 0 {
		result.RetryAttempts = defaults.RetryAttempts
	}
	result.FastDelays = result.FastDelays || defaults.FastDelays
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// FromEnv overlays settings from environment variables onto the config.
func (c *Config) FromEnv() {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("AUTOPILOT_STATE_FILE"); v != "" {
		c.StateFile = v
	}
	if v := os.Getenv("AUTOPILOT_LISTING_URL"); v != "" {
		c.ListingURL = v
	}
}
