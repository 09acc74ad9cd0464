package store

import "strings"

// Namespace prefixes used to route actions to sub-reducers.
const (
	nsJobs         = "JOBS_"
	nsApplications = "APPLICATIONS_"
	nsPresets      = "PRESETS_"
	nsAgents       = "AGENTS_"
)

// Reduce is the pure top-level transition function: given the current state
// and an action it returns the next state. Routing is by namespace prefix;
// an action addressed to no known namespace returns the state unchanged, as
// does an unrecognized action type inside a namespace.
func Reduce(state AppState, action Action) AppState {
	t := action.ActionType()
	switch {
	case strings.HasPrefix(t, nsJobs):
		state.Jobs = reduceJobs(state.Jobs, action)
	case strings.HasPrefix(t, nsApplications):
		state.Applications = reduceApplications(state.Applications, action)
	case strings.HasPrefix(t, nsPresets):
		state.Presets = reducePresets(state.Presets, action)
	case strings.HasPrefix(t, nsAgents):
		state.Agents = reduceAgents(state.Agents, action)
	}
	return state
}

// Known reports whether the action is one a sub-reducer actually handles.
// The store uses it to warn about unrecognized commands, including types that
// land in a known namespace but fall through its switch, without breaking the
// silent-no-op reducer contract.
func Known(action Action) bool {
	switch action.(type) {
	case JobsFetchStart, JobsFetchSuccess, JobsFetchError,
		JobsAdd, JobsUpdate, JobsDelete, JobsSetFilter, JobsClearFilter,
		ApplicationsAdd, ApplicationsUpdate, ApplicationsDelete,
		ApplicationsAddLog, ApplicationsUpdateStep,
		PresetsAdd, PresetsUpdate, PresetsDelete, PresetsIncrementUsage,
		AgentsUpdateStatus, AgentsAddToolCall, AgentsAddLog, AgentsClearLogs:
		return true
	}
	return false
}
