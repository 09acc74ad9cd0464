package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/job-autopilot/internal/agentlog"
	"github.com/jonathan/job-autopilot/internal/agents"
	"github.com/jonathan/job-autopilot/internal/pipeline"
	"github.com/jonathan/job-autopilot/internal/store"
	"github.com/jonathan/job-autopilot/internal/types"
)

// stageAgents maps pipeline stages to the catalog agent doing the work. The
// review stage has no agent; it is skipped by the orchestrator.
var stageAgents = map[types.PipelineStage]string{
	types.StageAnalyze:   agents.AgentJobAnalyzer,
	types.StageMatch:     agents.AgentPresetMatcher,
	types.StageCustomize: agents.AgentResumeCustomizer,
	types.StageSubmit:    agents.AgentApplicationAgent,
}

// storeBridge translates pipeline callbacks into store dispatches so the
// orchestrator itself stays store-free. Log entries pass through the event
// log, whose observer publishes them to the store.
type storeBridge struct {
	st     *store.Store
	events *agentlog.Log
	job    types.Job
	appID  string

	// Optional taps for streaming handlers.
	onStep func(stage types.PipelineStage, step types.Step)
	onLog  func(entry types.LogEntry)
}

func (b *storeBridge) applicationCreated(app types.Application) {
	b.appID = app.ID
	b.st.Dispatch(store.ApplicationsAdd{Application: app})
}

func (b *storeBridge) stepUpdate(stage types.PipelineStage, step types.Step) {
	b.st.Dispatch(store.ApplicationsUpdateStep{ID: b.appID, Stage: stage, Patch: stepPatch(step)})

	if agent := stageAgents[stage]; agent != "" {
		switch {
		case step.Status == types.StepStatusRunning:
			b.st.Dispatch(store.AgentsUpdateStatus{
				ID:          agent,
				Status:      types.AgentStatusRunning,
				CurrentTask: fmt.Sprintf("%s: %s at %s", stage, b.job.Position, b.job.Company),
				At:          time.Now(),
			})
		case step.Status == types.StepStatusFailed:
			b.st.Dispatch(store.AgentsUpdateStatus{ID: agent, Status: types.AgentStatusError, At: time.Now()})
		case step.Status == types.StepStatusCancelled:
			// Back to idle, but the task never finished.
			b.st.Dispatch(store.AgentsUpdateStatus{ID: agent, Status: types.AgentStatusIdle, Interrupted: true, At: time.Now()})
		case step.Status.Terminal():
			b.st.Dispatch(store.AgentsUpdateStatus{ID: agent, Status: types.AgentStatusIdle, At: time.Now()})
		}
	}

	if b.onStep != nil {
		b.onStep(stage, step)
	}
}

func (b *storeBridge) logEntry(entry types.LogEntry) {
	entry = b.events.Append(entry)
	if entry.ApplicationID != "" {
		b.st.Dispatch(store.ApplicationsAddLog{ID: entry.ApplicationID, Entry: entry})
	}

	// Tool-call narration doubles as a tool-call record.
	if entry.Kind == types.LogToolCall {
		call := types.ToolCall{
			ID:        fmt.Sprintf("tc-%s", uuid.New().String()),
			AgentID:   entry.AgentName,
			ToolName:  entry.Content,
			Timestamp: entry.Timestamp,
		}
		b.events.RecordToolCall(call)
		b.st.Dispatch(store.AgentsAddToolCall{Call: call})
	}

	if b.onLog != nil {
		b.onLog(entry)
	}
}

// finish publishes the run's final application-level fields and job outcome.
func (b *storeBridge) finish(app types.Application) {
	now := time.Now()
	b.st.Dispatch(store.ApplicationsUpdate{ID: app.ID, Patch: types.ApplicationPatch{
		Status:          &app.Status,
		CurrentStage:    &app.CurrentStage,
		ResumeUsed:      &app.ResumeUsed,
		CoverLetterUsed: &app.CoverLetterUsed,
		Customizations:  &app.Customizations,
		SubmittedAt:     app.SubmittedAt,
		ConfirmationID:  &app.ConfirmationID,
		UpdatedAt:       &now,
	}})

	jobPatch := types.JobPatch{Status: &app.Status}
	if match, ok := matchOutput(app); ok {
		score := match.MatchScore
		jobPatch.MatchScore = &score
	}
	b.st.Dispatch(store.JobsUpdate{ID: app.JobID, Patch: jobPatch})

	if app.ResumeUsed != "" {
		b.st.Dispatch(store.PresetsIncrementUsage{ID: app.ResumeUsed, At: now})
	}
	if app.CoverLetterUsed != "" {
		b.st.Dispatch(store.PresetsIncrementUsage{ID: app.CoverLetterUsed, At: now})
	}
}

func matchOutput(app types.Application) (agents.MatchResult, bool) {
	step := app.Step(types.StageMatch)
	if step == nil {
		return agents.MatchResult{}, false
	}
	match, ok := step.Output.(agents.MatchResult)
	return match, ok
}

// stepPatch converts a full step into a patch carrying every field.
func stepPatch(step types.Step) types.StepPatch {
	status := step.Status
	errMsg := step.Error
	startedAt := step.StartedAt
	duration := step.Duration
	retries := step.Retries
	return types.StepPatch{
		Status:    &status,
		Output:    step.Output,
		Error:     &errMsg,
		StartedAt: &startedAt,
		Duration:  &duration,
		Retries:   &retries,
	}
}

// runPipeline executes the apply workflow for one job with store bridging.
func (s *Server) runPipeline(r *http.Request, bridge *storeBridge) types.Application {
	applying := types.JobStatusApplying
	s.store.Dispatch(store.JobsUpdate{ID: bridge.job.ID, Patch: types.JobPatch{Status: &applying}})

	app := pipeline.Run(r.Context(), bridge.job, s.store.State().Presets.Presets, pipeline.Options{
		OnApplicationCreated: bridge.applicationCreated,
		OnStepUpdate:         bridge.stepUpdate,
		OnLogEntry:           bridge.logEntry,
		Submitter:            s.submitter,
		Retry:                s.retry,
		Delay:                s.delay,
	})
	bridge.finish(app)
	return app
}

// handleApply runs the pipeline synchronously and returns the finalized
// application.
func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	job, ok := s.findJob(r.PathValue("id"))
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	log.Printf("Starting application pipeline for job %s", job.ID)
	app := s.runPipeline(r, &storeBridge{st: s.store, events: s.events, job: job})

	s.jsonResponse(w, http.StatusOK, app)
}

// handleApplyStream runs the pipeline and streams step updates and log
// entries as SSE events.
func (s *Server) handleApplyStream(w http.ResponseWriter, r *http.Request) {
	job, ok := s.findJob(r.PathValue("id"))
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Printf("Starting streaming application pipeline for job %s", job.ID)

	bridge := &storeBridge{
		st:     s.store,
		events: s.events,
		job:    job,
		onStep: func(stage types.PipelineStage, step types.Step) {
			if err := sse.WriteStep(stage, step); err != nil {
				log.Printf("Error writing SSE event: %v", err)
			}
		},
		onLog: func(entry types.LogEntry) {
			if err := sse.WriteLog(entry); err != nil {
				log.Printf("Error writing SSE event: %v", err)
			}
		},
	}

	app := s.runPipeline(r, bridge)
	if err := sse.WriteComplete(app); err != nil {
		log.Printf("Error writing SSE event: %v", err)
	}
}
