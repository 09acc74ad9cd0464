package store

import (
	"time"

	"github.com/jonathan/job-autopilot/internal/types"
)

// Action is a named state-transition command. The namespace prefix of its
// type routes it to the matching sub-reducer; actions with an unrecognized
// namespace, or an unrecognized type within a namespace, leave state
// unchanged.
type Action interface {
	ActionType() string
}

// Action type names, grouped by namespace.
const (
	ActionJobsFetchStart   = "JOBS_FETCH_START"
	ActionJobsFetchSuccess = "JOBS_FETCH_SUCCESS"
	ActionJobsFetchError   = "JOBS_FETCH_ERROR"
	ActionJobsAdd          = "JOBS_ADD"
	ActionJobsUpdate       = "JOBS_UPDATE"
	ActionJobsDelete       = "JOBS_DELETE"
	ActionJobsSetFilter    = "JOBS_SET_FILTER"
	ActionJobsClearFilter  = "JOBS_CLEAR_FILTER"

	ActionApplicationsAdd        = "APPLICATIONS_ADD"
	ActionApplicationsUpdate     = "APPLICATIONS_UPDATE"
	ActionApplicationsDelete     = "APPLICATIONS_DELETE"
	ActionApplicationsAddLog     = "APPLICATIONS_ADD_LOG"
	ActionApplicationsUpdateStep = "APPLICATIONS_UPDATE_STEP"

	ActionPresetsAdd            = "PRESETS_ADD"
	ActionPresetsUpdate         = "PRESETS_UPDATE"
	ActionPresetsDelete         = "PRESETS_DELETE"
	ActionPresetsIncrementUsage = "PRESETS_INCREMENT_USAGE"

	ActionAgentsUpdateStatus = "AGENTS_UPDATE_STATUS"
	ActionAgentsAddToolCall  = "AGENTS_ADD_TOOL_CALL"
	ActionAgentsAddLog       = "AGENTS_ADD_LOG"
	ActionAgentsClearLogs    = "AGENTS_CLEAR_LOGS"
)

// Jobs namespace.

type JobsFetchStart struct{}

func (JobsFetchStart) ActionType() string { return ActionJobsFetchStart }

type JobsFetchSuccess struct {
	Jobs []types.Job
	At   time.Time
}

func (JobsFetchSuccess) ActionType() string { return ActionJobsFetchSuccess }

type JobsFetchError struct{ Message string }

func (JobsFetchError) ActionType() string { return ActionJobsFetchError }

type JobsAdd struct{ Job types.Job }

func (JobsAdd) ActionType() string { return ActionJobsAdd }

type JobsUpdate struct {
	ID    string
	Patch types.JobPatch
}

func (JobsUpdate) ActionType() string { return ActionJobsUpdate }

type JobsDelete struct{ ID string }

func (JobsDelete) ActionType() string { return ActionJobsDelete }

// JobsSetFilter merges the non-zero fields of Filter into the current filter.
type JobsSetFilter struct{ Filter types.Filter }

func (JobsSetFilter) ActionType() string { return ActionJobsSetFilter }

type JobsClearFilter struct{}

func (JobsClearFilter) ActionType() string { return ActionJobsClearFilter }

// Applications namespace.

type ApplicationsAdd struct{ Application types.Application }

func (ApplicationsAdd) ActionType() string { return ActionApplicationsAdd }

type ApplicationsUpdate struct {
	ID    string
	Patch types.ApplicationPatch
}

func (ApplicationsUpdate) ActionType() string { return ActionApplicationsUpdate }

type ApplicationsDelete struct{ ID string }

func (ApplicationsDelete) ActionType() string { return ActionApplicationsDelete }

type ApplicationsAddLog struct {
	ID    string
	Entry types.LogEntry
}

func (ApplicationsAddLog) ActionType() string { return ActionApplicationsAddLog }

type ApplicationsUpdateStep struct {
	ID    string
	Stage types.PipelineStage
	Patch types.StepPatch
}

func (ApplicationsUpdateStep) ActionType() string { return ActionApplicationsUpdateStep }

// Presets namespace.

type PresetsAdd struct{ Preset types.Preset }

func (PresetsAdd) ActionType() string { return ActionPresetsAdd }

type PresetsUpdate struct {
	ID    string
	Patch types.PresetPatch
}

func (PresetsUpdate) ActionType() string { return ActionPresetsUpdate }

type PresetsDelete struct{ ID string }

func (PresetsDelete) ActionType() string { return ActionPresetsDelete }

// PresetsIncrementUsage bumps the usage counter and stamps last-used with At.
// The timestamp travels in the action so the reducer stays pure.
type PresetsIncrementUsage struct {
	ID string
	At time.Time
}

func (PresetsIncrementUsage) ActionType() string { return ActionPresetsIncrementUsage }

// Agents namespace.

// AgentsUpdateStatus moves an agent to a new status. Interrupted marks a
// return to idle that did not finish the task (a cancelled run), so the
// completion counter stays put.
type AgentsUpdateStatus struct {
	ID          string
	Status      types.AgentStatus
	CurrentTask string
	Interrupted bool
	At          time.Time
}

func (AgentsUpdateStatus) ActionType() string { return ActionAgentsUpdateStatus }

type AgentsAddToolCall struct{ Call types.ToolCall }

func (AgentsAddToolCall) ActionType() string { return ActionAgentsAddToolCall }

type AgentsAddLog struct{ Entry types.LogEntry }

func (AgentsAddLog) ActionType() string { return ActionAgentsAddLog }

type AgentsClearLogs struct{}

func (AgentsClearLogs) ActionType() string { return ActionAgentsClearLogs }
