// Package pipeline provides the orchestrator that drives one application
// through the five-stage apply workflow: analyze, match, customize, review,
// submit.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonathan/job-autopilot/internal/agents"
	"github.com/jonathan/job-autopilot/internal/types"
)

// pipelineAgent tags orchestrator-level log entries, as opposed to entries
// emitted by the stage agents themselves.
const pipelineAgent = "pipeline"

// StepCallback is invoked on every step transition: into running, on each
// retry increment, and into a terminal per-stage state. The review stage gets
// exactly one invocation, with status skipped.
type StepCallback func(stage types.PipelineStage, step types.Step)

// LogCallback is invoked once per log entry emitted by any stage.
type LogCallback func(entry types.LogEntry)

// Options configures a pipeline run. All callbacks are optional; they must
// return promptly since the orchestrator invokes them inline.
type Options struct {
	// OnApplicationCreated fires once, with the freshly created application,
	// before any step transition. It lets callers register the record wherever
	// they track applications so later step updates have somewhere to land.
	OnApplicationCreated func(app types.Application)

	OnStepUpdate StepCallback
	OnLogEntry   LogCallback

	// Submitter is the external submission channel. Defaults to a simulated
	// submitter with the baseline failure rate.
	Submitter agents.Submitter

	// Retry is consulted between a stage failure and either a re-attempt or
	// final failure. Defaults to no retries.
	Retry RetryPolicy

	// Delay stands in for per-stage I/O latency. Defaults to real sleeps.
	Delay agents.Delay

	// Now is the clock, injectable for tests.
	Now func() time.Time
}

func (o *Options) fillDefaults() {
	if o.Submitter == nil {
		o.Submitter = agents.NewSimulatedSubmitter(agents.DefaultFailureRate)
	}
	if o.Delay == nil {
		o.Delay = agents.SleepDelay
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// runner carries the mutable draft of one application through its stages. The
// draft is local to the run; publishing state belongs to the caller via the
// two callbacks.
type runner struct {
	app  types.Application
	opts Options
}

// Run drives one application for the job from creation to a terminal status
// and returns the finalized record. Stages execute strictly sequentially; a
// stage only starts once its predecessor completed or was skipped. Failures
// are converted into state, never propagated: the returned application ends
// as either submitted or rejected.
func Run(ctx context.Context, job types.Job, presets []types.Preset, opts Options) types.Application {
	opts.fillDefaults()

	r := &runner{
		app:  types.NewApplication(job.ID, opts.Now()),
		opts: opts,
	}
	if opts.OnApplicationCreated != nil {
		opts.OnApplicationCreated(r.app)
	}

	if err := r.execute(ctx, job, presets); err != nil {
		r.fail(err)
	}

	r.app.UpdatedAt = r.opts.Now()
	return r.app
}

func (r *runner) execute(ctx context.Context, job types.Job, presets []types.Preset) error {
	var requirements types.Requirements
	err := r.runStage(ctx, types.StageAnalyze, func(ctx context.Context) (any, error) {
		req, err := agents.AnalyzeJob(ctx, job, r.sink(), r.opts.Delay)
		requirements = req
		return req, err
	})
	if err != nil {
		return err
	}

	var match agents.MatchResult
	err = r.runStage(ctx, types.StageMatch, func(ctx context.Context) (any, error) {
		m, err := agents.MatchPresets(ctx, requirements, presets, r.sink(), r.opts.Delay)
		if err != nil {
			return nil, err
		}
		match = m
		r.app.ResumeUsed = m.TopResume.ID
		if m.TopCoverLetter != nil {
			r.app.CoverLetterUsed = m.TopCoverLetter.ID
		}
		return m, nil
	})
	if err != nil {
		return err
	}

	err = r.runStage(ctx, types.StageCustomize, func(ctx context.Context) (any, error) {
		if _, err := agents.CustomizeResume(ctx, *match.TopResume, job, requirements, r.sink(), r.opts.Delay); err != nil {
			return nil, err
		}
		r.app.Customizations = append(r.app.Customizations,
			fmt.Sprintf("customized resume %q", match.TopResume.Name))

		// No cover-letter preset means the fill sub-step is skipped, not failed.
		if match.TopCoverLetter != nil {
			if _, err := agents.GenerateCoverLetter(ctx, *match.TopCoverLetter, job, r.sink(), r.opts.Delay); err != nil {
				return nil, err
			}
			r.app.Customizations = append(r.app.Customizations,
				fmt.Sprintf("generated cover letter %q", match.TopCoverLetter.Name))
		}
		return nil, nil
	})
	if err != nil {
		return err
	}

	// Manual review gating is out of scope; the review stage is
	// unconditionally skipped.
	r.app.CurrentStage = types.StageReview
	r.setStep(types.StageReview, func(s *types.Step) {
		s.Status = types.StepStatusSkipped
		s.StartedAt = r.opts.Now()
		s.Duration = 0
	})

	return r.runStage(ctx, types.StageSubmit, func(ctx context.Context) (any, error) {
		confirmation, err := agents.SubmitApplication(ctx, r.app, job, r.opts.Submitter, r.sink(), r.opts.Delay)
		if err != nil {
			return nil, err
		}
		now := r.opts.Now()
		r.app.SubmittedAt = &now
		r.app.ConfirmationID = confirmation
		r.app.Status = types.JobStatusSubmitted
		return map[string]any{"confirmation_id": confirmation}, nil
	})
}

// runStage executes one stage with the configured retry policy, publishing
// step transitions as it goes. The returned error, if any, already left the
// step in its terminal failed or cancelled state.
func (r *runner) runStage(ctx context.Context, stage types.PipelineStage, fn func(ctx context.Context) (any, error)) error {
	r.app.CurrentStage = stage
	start := r.opts.Now()
	r.setStep(stage, func(s *types.Step) {
		s.Status = types.StepStatusRunning
		s.StartedAt = start
	})

	attempts := r.opts.Retry.attempts()
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		output, err := fn(ctx)
		if err == nil {
			r.setStep(stage, func(s *types.Step) {
				s.Status = types.StepStatusCompleted
				s.Output = output
				s.Duration = r.opts.Now().Sub(start)
			})
			return nil
		}
		lastErr = err

		if isCancelled(err) {
			r.setStep(stage, func(s *types.Step) {
				s.Status = types.StepStatusCancelled
				s.Error = err.Error()
				s.Duration = r.opts.Now().Sub(start)
			})
			return err
		}

		if attempt < attempts {
			retries := attempt
			r.setStep(stage, func(s *types.Step) {
				s.Retries = retries
			})
			if wait := r.opts.Retry.backoff(attempt); wait > 0 {
				if err := r.opts.Delay(ctx, wait); err != nil {
					r.setStep(stage, func(s *types.Step) {
						s.Status = types.StepStatusCancelled
						s.Error = err.Error()
						s.Duration = r.opts.Now().Sub(start)
					})
					return err
				}
			}
		}
	}

	r.setStep(stage, func(s *types.Step) {
		s.Status = types.StepStatusFailed
		s.Error = lastErr.Error()
		s.Duration = r.opts.Now().Sub(start)
	})
	return lastErr
}

// fail finalizes the application after a stage reached failed or cancelled.
// Later steps stay pending forever.
func (r *runner) fail(err error) {
	r.app.Status = types.JobStatusRejected
	entry := types.NewLogEntry(pipelineAgent, types.LogError,
		fmt.Sprintf("Pipeline failed: %v", err), r.app.ID)
	r.app.Logs = append(r.app.Logs, entry)
	if r.opts.OnLogEntry != nil {
		r.opts.OnLogEntry(entry)
	}
}

// sink returns the log sink handed to stage functions: entries are stamped
// with the application id, embedded in the draft, and forwarded to the
// caller.
func (r *runner) sink() agents.LogSink {
	return func(entry types.LogEntry) {
		if entry.ApplicationID == "" {
			entry.ApplicationID = r.app.ID
		}
		r.app.Logs = append(r.app.Logs, entry)
		if r.opts.OnLogEntry != nil {
			r.opts.OnLogEntry(entry)
		}
	}
}

func (r *runner) setStep(stage types.PipelineStage, mutate func(*types.Step)) {
	step := r.app.Step(stage)
	if step == nil {
		return
	}
	mutate(step)
	r.app.UpdatedAt = r.opts.Now()
	if r.opts.OnStepUpdate != nil {
		r.opts.OnStepUpdate(stage, *step)
	}
}

func isCancelled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
