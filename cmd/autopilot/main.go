// Package main provides the entry point for the job autopilot CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/job-autopilot/internal/config"
	"github.com/jonathan/job-autopilot/internal/persist"
	"github.com/jonathan/job-autopilot/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "autopilot",
	Short: "Job application autopilot",
	Long:  "Job autopilot ingests internship listings, matches them against resume presets and drives simulated applications through an agent pipeline.",
}

var (
	rootConfigPath string
	rootVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig assembles the effective configuration: file values overlaid
// with env vars, merged with defaults, then validated.
func loadConfig() (config.Config, error) {
	var cfg config.Config
	if rootConfigPath != "" {
		loaded, err := config.Load(rootConfigPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}
	cfg.FromEnv()
	cfg = cfg.MergeWithDefaults(config.Defaults())
	cfg.Verbose = cfg.Verbose || rootVerbose

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openSink picks the persistence backend: PostgreSQL when a database URL is
// configured, the JSON state file otherwise. The returned cleanup is safe to
// call unconditionally.
func openSink(ctx context.Context, cfg config.Config) (persist.Sink, func(), error) {
	if cfg.DatabaseURL != "" {
		pg, err := persist.ConnectPostgres(ctx, cfg.DatabaseURL, "autopilot")
		if err != nil {
			return nil, nil, err
		}
		return pg, pg.Close, nil
	}
	return persist.NewFileSink(cfg.StateFile), func() {}, nil
}

// openStore builds the store, restores persisted state into it and attaches
// save-on-change.
func openStore(ctx context.Context, cfg config.Config) (*store.Store, func(), error) {
	sink, cleanup, err := openSink(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	st := store.New()
	adapter := persist.NewAdapter(sink)
	if err := adapter.Restore(ctx, st); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to restore state: %w", err)
	}
	adapter.Attach(ctx, st)
	return st, cleanup, nil
}
