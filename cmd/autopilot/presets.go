package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List resume and cover-letter presets",
	RunE:  runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(_ *cobra.Command, _ []string) error {
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

	presets := st.State().Presets.Presets
	if len(presets) == 0 {
		fmt.Println("No presets. Create some via the REST API (POST /presets).")
		return nil
	}

	for _, p := range presets {
		fmt.Printf("%-40s %-12s %-24s used %d times\n", p.ID, p.Kind, p.Name, p.UsageCount)
		if cfg.Verbose && len(p.Skills) > 0 {
			fmt.Printf("    skills: %v\n", p.Skills)
		}
	}
	return nil
}
