package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-autopilot/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for jobs, presets, applications and the agent pipeline.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	ctx := context.Background()
	st, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := server.New(server.Config{
		Port:          cfg.Port,
		ListingURL:    cfg.ListingURL,
		BoardURL:      cfg.BoardURL,
		FailureRate:   cfg.FailureRate,
		Seed:          cfg.Seed,
		RetryAttempts: cfg.RetryAttempts,
		FastDelays:    cfg.FastDelays,
	}, st)

	return srv.Start()
}
