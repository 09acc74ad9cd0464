package store

import "github.com/jonathan/job-autopilot/internal/types"

// reduceAgents handles the AGENTS_ namespace.
func reduceAgents(state AgentsState, action Action) AgentsState {
	switch a := action.(type) {
	case AgentsUpdateStatus:
		state.Agents = mapCopy(state.Agents, func(agent types.Agent) types.Agent {
			if agent.ID != a.ID {
				return agent
			}
			// Completion counter bumps exactly on uninterrupted transitions
			// into idle.
			if a.Status == types.AgentStatusIdle && agent.Status != types.AgentStatusIdle && !a.Interrupted {
				agent.TasksCompleted++
			}
			agent.Status = a.Status
			agent.CurrentTask = a.CurrentTask
			at := a.At
			agent.LastActive = &at
			return agent
		})
		return state

	case AgentsAddToolCall:
		state.ToolCalls = appendCopy(state.ToolCalls, a.Call)
		return state

	case AgentsAddLog:
		state.Logs = appendCopy(state.Logs, a.Entry)
		return state

	case AgentsClearLogs:
		// Logs and tool calls are cleared together.
		state.Logs = nil
		state.ToolCalls = nil
		return state
	}
	return state
}
