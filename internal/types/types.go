// Package types provides type definitions for structured data used throughout the job-autopilot system.
package types

// JobStatus tracks a job posting through its application lifecycle.
type JobStatus string

// Job status values. Only Submitted and Rejected are reachable as pipeline
// terminal states; Interview and Accepted are set by later human action.
const (
	JobStatusNew       JobStatus = "new"
	JobStatusQueued    JobStatus = "queued"
	JobStatusAnalyzing JobStatus = "analyzing"
	JobStatusApplying  JobStatus = "applying"
	JobStatusSubmitted JobStatus = "submitted"
	JobStatusRejected  JobStatus = "rejected"
	JobStatusInterview JobStatus = "interview"
	JobStatusAccepted  JobStatus = "accepted"
)

// JobSource identifies where a job posting came from.
type JobSource string

const (
	JobSourceGitHub    JobSource = "github"
	JobSourceHandshake JobSource = "handshake"
	JobSourceManual    JobSource = "manual"
)

// PipelineStage names one unit of pipeline work, executed in fixed order.
type PipelineStage string

const (
	StageAnalyze   PipelineStage = "analyze"
	StageMatch     PipelineStage = "match"
	StageCustomize PipelineStage = "customize"
	StageReview    PipelineStage = "review"
	StageSubmit    PipelineStage = "submit"
)

// Stages lists the pipeline stages in execution order.
func Stages() []PipelineStage {
	return []PipelineStage{StageAnalyze, StageMatch, StageCustomize, StageReview, StageSubmit}
}

// StepStatus tracks one stage of an application.
type StepStatus string

const (
	StepStatusPending   StepStatus = "pending"
	StepStatusRunning   StepStatus = "running"
	StepStatusCompleted StepStatus = "completed"
	StepStatusFailed    StepStatus = "failed"
	StepStatusSkipped   StepStatus = "skipped"
	StepStatusCancelled StepStatus = "cancelled"
)

// Terminal reports whether the status is a per-stage terminal state.
func (s StepStatus) Terminal() bool {
	switch s {
	case StepStatusCompleted, StepStatusFailed, StepStatusSkipped, StepStatusCancelled:
		return true
	}
	return false
}

// AgentStatus tracks a named agent's activity.
type AgentStatus string

const (
	AgentStatusIdle    AgentStatus = "idle"
	AgentStatusRunning AgentStatus = "running"
	AgentStatusPaused  AgentStatus = "paused"
	AgentStatusError   AgentStatus = "error"
)

// LogKind classifies an agent log entry.
type LogKind string

const (
	LogThought     LogKind = "thought"
	LogToolCall    LogKind = "tool_call"
	LogObservation LogKind = "observation"
	LogDecision    LogKind = "decision"
	LogError       LogKind = "error"
	LogSuccess     LogKind = "success"
)

// PresetKind classifies a reusable template.
type PresetKind string

const (
	PresetResume      PresetKind = "resume"
	PresetCoverLetter PresetKind = "coverLetter"
	PresetTemplate    PresetKind = "template"
)
