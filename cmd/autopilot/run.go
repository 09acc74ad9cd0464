package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-autopilot/internal/agents"
	"github.com/jonathan/job-autopilot/internal/pipeline"
	"github.com/jonathan/job-autopilot/internal/store"
	"github.com/jonathan/job-autopilot/internal/types"
)

var runCmd = &cobra.Command{
	Use:   "run <job-id>",
	Short: "Run the application pipeline for one job",
	Long:  `Drive a single job through the full apply workflow (analyze -> match -> customize -> review -> submit), printing agent activity as it streams. Ctrl-C cancels the run.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runApply,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runApply(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	st, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	jobID := args[0]
	var job types.Job
	found := false
	for _, j := range st.State().Jobs.Jobs {
		if j.ID == jobID {
			job = j
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("job %s not found; run 'autopilot ingest' first", jobID)
	}

	var submitter agents.Submitter
	if cfg.Seed != 0 {
		submitter = agents.NewSeededSubmitter(cfg.FailureRate, cfg.Seed)
	} else {
		submitter = agents.NewSimulatedSubmitter(cfg.FailureRate)
	}

	retry := pipeline.NoRetries()
	if cfg.RetryAttempts > 1 {
		retry = pipeline.FixedBackoff(cfg.RetryAttempts, time.Second)
	}

	delay := agents.SleepDelay
	if cfg.FastDelays {
		delay = agents.NoDelay
	}

	fmt.Printf("Applying to %s — %s (%s)\n\n", job.Company, job.Position, job.Location)

	app := pipeline.Run(ctx, job, st.State().Presets.Presets, pipeline.Options{
		OnApplicationCreated: func(a types.Application) {
			st.Dispatch(store.ApplicationsAdd{Application: a})
		},
		OnStepUpdate: func(stage types.PipelineStage, step types.Step) {
			fmt.Printf("[%s] %s\n", stage, step.Status)
		},
		OnLogEntry: func(entry types.LogEntry) {
			fmt.Printf("  %s  %-12s %s\n", entry.Timestamp.Format("15:04:05"), entry.AgentName, entry.Content)
		},
		Submitter: submitter,
		Retry:     retry,
		Delay:     delay,
	})

	// Publish the final record and the job outcome.
	now := time.Now()
	st.Dispatch(store.ApplicationsUpdate{ID: app.ID, Patch: types.ApplicationPatch{
		Status:          &app.Status,
		CurrentStage:    &app.CurrentStage,
		ResumeUsed:      &app.ResumeUsed,
		CoverLetterUsed: &app.CoverLetterUsed,
		Customizations:  &app.Customizations,
		SubmittedAt:     app.SubmittedAt,
		ConfirmationID:  &app.ConfirmationID,
		UpdatedAt:       &now,
	}})
	for _, stage := range types.Stages() {
		if step := app.Step(stage); step != nil {
			status := step.Status
			st.Dispatch(store.ApplicationsUpdateStep{ID: app.ID, Stage: stage, Patch: types.StepPatch{Status: &status}})
		}
	}
	st.Dispatch(store.JobsUpdate{ID: job.ID, Patch: types.JobPatch{Status: &app.Status}})

	fmt.Println()
	switch app.Status {
	case types.JobStatusSubmitted:
		fmt.Printf("Submitted. Confirmation: %s\n", app.ConfirmationID)
	default:
		fmt.Printf("Run ended with status %s\n", app.Status)
	}
	return nil
}
