package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-autopilot/internal/ingest"
	"github.com/jonathan/job-autopilot/internal/store"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Refresh jobs from the configured sources",
	Long:  `Fetch the configured listings, parse them into jobs and persist the refreshed job list.`,
	RunE:  runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	st, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	sources := []ingest.Source{ingest.NewGitHubSource(cfg.ListingURL)}
	if cfg.BoardURL != "" {
		sources = append(sources, ingest.NewBoardSource(cfg.BoardURL))
	}

	st.Dispatch(store.JobsFetchStart{})
	jobs, err := ingest.FetchAll(ctx, sources...)
	if err != nil {
		st.Dispatch(store.JobsFetchError{Message: err.Error()})
		return fmt.Errorf("refresh failed: %w", err)
	}
	st.Dispatch(store.JobsFetchSuccess{Jobs: jobs, At: time.Now()})

	fmt.Printf("Fetched %d jobs\n", len(jobs))
	if cfg.Verbose {
		for _, j := range jobs {
			fmt.Printf("  %s  %s — %s (%s)\n", j.ID, j.Company, j.Position, j.Location)
		}
	}
	return nil
}
