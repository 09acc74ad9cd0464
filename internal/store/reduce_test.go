package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-autopilot/internal/types"
)

func job(id string) types.Job {
	return types.Job{
		ID:       id,
		Company:  "Acme",
		Position: "SWE Intern",
		Location: "Remote",
		URL:      "https://example.com/" + id,
		Source:   types.JobSourceManual,
		Status:   types.JobStatusNew,
		Requirements: types.Requirements{
			Required:  []string{},
			Preferred: []string{},
			Keywords:  []string{},
		},
	}
}

func preset(id string, kind types.PresetKind) types.Preset {
	return types.Preset{ID: id, Kind: kind, Name: id, Content: "body"}
}

// unknownAction exercises the namespace fall-through path.
type unknownAction struct{ t string }

func (a unknownAction) ActionType() string { return a.t }

func TestReduce_UnknownNamespaceIsNoOp(t *testing.T) {
	state := InitialState()
	state = Reduce(state, JobsAdd{Job: job("j1")})

	next := Reduce(state, unknownAction{t: "SETTINGS_UPDATE"})
	assert.Equal(t, state, next)
}

func TestReduce_UnknownTypeWithinNamespaceIsNoOp(t *testing.T) {
	state := Reduce(InitialState(), JobsAdd{Job: job("j1")})

	next := Reduce(state, unknownAction{t: "JOBS_REINDEX"})
	assert.Equal(t, state, next)
}

func TestKnown_CoversHandledActionsOnly(t *testing.T) {
	assert.True(t, Known(JobsAdd{Job: job("j1")}))
	assert.True(t, Known(AgentsClearLogs{}))

	// Unknown namespace and unknown type within a known namespace both warn.
	assert.False(t, Known(unknownAction{t: "SETTINGS_UPDATE"}))
	assert.False(t, Known(unknownAction{t: "JOBS_REINDEX"}))
}

func TestReduce_PurityOnRepeatedApplication(t *testing.T) {
	state := Reduce(InitialState(), JobsAdd{Job: job("j1")})
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	action := JobsUpdate{ID: "j1", Patch: types.JobPatch{Status: jobStatusPtr(types.JobStatusQueued)}}

	first := Reduce(state, action)
	second := Reduce(state, action)
	assert.Equal(t, first, second)

	// Input state untouched.
	assert.Equal(t, types.JobStatusNew, state.Jobs.Jobs[0].Status)

	usage := PresetsIncrementUsage{ID: "p1", At: at}
	withPreset := Reduce(state, PresetsAdd{Preset: preset("p1", types.PresetResume)})
	assert.Equal(t, Reduce(withPreset, usage), Reduce(withPreset, usage))
}

func jobStatusPtr(s types.JobStatus) *types.JobStatus { return &s }

func TestJobs_FetchLifecycle(t *testing.T) {
	state := InitialState()

	state = Reduce(state, JobsFetchStart{})
	assert.True(t, state.Jobs.Loading)

	at := time.Now()
	state = Reduce(state, JobsFetchSuccess{Jobs: []types.Job{job("j1"), job("j2")}, At: at})
	assert.False(t, state.Jobs.Loading)
	require.Len(t, state.Jobs.Jobs, 2)
	require.NotNil(t, state.Jobs.LastFetched)
	assert.Equal(t, at, *state.Jobs.LastFetched)

	state = Reduce(state, JobsFetchError{Message: "boom"})
	assert.Equal(t, "boom", state.Jobs.Error)
	assert.False(t, state.Jobs.Loading)
}

func TestJobs_UpdateMergesPartial(t *testing.T) {
	state := Reduce(InitialState(), JobsAdd{Job: job("j1")})

	score := 72.5
	state = Reduce(state, JobsUpdate{ID: "j1", Patch: types.JobPatch{MatchScore: &score}})

	got := state.Jobs.Jobs[0]
	require.NotNil(t, got.MatchScore)
	assert.InDelta(t, 72.5, *got.MatchScore, 0.001)
	assert.Equal(t, "Acme", got.Company) // untouched fields survive
}

func TestJobs_DeleteRemovesOnlyTarget(t *testing.T) {
	state := InitialState()
	state = Reduce(state, JobsAdd{Job: job("j1")})
	state = Reduce(state, JobsAdd{Job: job("j2")})

	state = Reduce(state, JobsDelete{ID: "j1"})
	require.Len(t, state.Jobs.Jobs, 1)
	assert.Equal(t, "j2", state.Jobs.Jobs[0].ID)
}

func TestJobs_FilterSetAndClear(t *testing.T) {
	state := InitialState()

	state = Reduce(state, JobsSetFilter{Filter: types.Filter{Search: "intern"}})
	state = Reduce(state, JobsSetFilter{Filter: types.Filter{Locations: []string{"Remote"}}})

	assert.Equal(t, "intern", state.Jobs.Filter.Search) // merged, not replaced
	assert.Equal(t, []string{"Remote"}, state.Jobs.Filter.Locations)

	state = Reduce(state, JobsClearFilter{})
	assert.Equal(t, types.Filter{}, state.Jobs.Filter)
}

func TestApplications_AddLogAndUpdateStep(t *testing.T) {
	app := types.NewApplication("j1", time.Now())
	state := Reduce(InitialState(), ApplicationsAdd{Application: app})

	entry := types.NewLogEntry("pipeline", types.LogError, "failed", app.ID)
	state = Reduce(state, ApplicationsAddLog{ID: app.ID, Entry: entry})
	require.Len(t, state.Applications.Applications[0].Logs, 1)

	running := types.StepStatusRunning
	state = Reduce(state, ApplicationsUpdateStep{
		ID:    app.ID,
		Stage: types.StageAnalyze,
		Patch: types.StepPatch{Status: &running},
	})

	got := state.Applications.Applications[0]
	assert.Equal(t, types.StepStatusRunning, got.Step(types.StageAnalyze).Status)
	// Other steps untouched.
	assert.Equal(t, types.StepStatusPending, got.Step(types.StageMatch).Status)
}

func TestApplications_UpdateStepIgnoresOtherApplications(t *testing.T) {
	app1 := types.NewApplication("j1", time.Now())
	app2 := types.NewApplication("j2", time.Now())
	state := InitialState()
	state = Reduce(state, ApplicationsAdd{Application: app1})
	state = Reduce(state, ApplicationsAdd{Application: app2})

	failed := types.StepStatusFailed
	state = Reduce(state, ApplicationsUpdateStep{
		ID:    app1.ID,
		Stage: types.StageSubmit,
		Patch: types.StepPatch{Status: &failed},
	})

	assert.Equal(t, types.StepStatusFailed, state.Applications.Applications[0].Step(types.StageSubmit).Status)
	assert.Equal(t, types.StepStatusPending, state.Applications.Applications[1].Step(types.StageSubmit).Status)
}

func TestPresets_IncrementUsage(t *testing.T) {
	state := Reduce(InitialState(), PresetsAdd{Preset: preset("p1", types.PresetResume)})

	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	state = Reduce(state, PresetsIncrementUsage{ID: "p1", At: first})

	got := state.Presets.Presets[0]
	assert.Equal(t, 1, got.UsageCount)
	require.NotNil(t, got.LastUsed)
	assert.Equal(t, first, *got.LastUsed)

	// Each dispatch bumps by exactly one and never moves last-used backwards
	// when time advances.
	second := first.Add(time.Hour)
	state = Reduce(state, PresetsIncrementUsage{ID: "p1", At: second})
	got = state.Presets.Presets[0]
	assert.Equal(t, 2, got.UsageCount)
	assert.False(t, got.LastUsed.Before(first))
}

func TestAgents_UpdateStatusCountsIdleTransitions(t *testing.T) {
	state := InitialState()
	at := time.Now()

	state = Reduce(state, AgentsUpdateStatus{ID: "job-analyzer", Status: types.AgentStatusRunning, CurrentTask: "analyzing j1", At: at})
	agent := findAgent(t, state, "job-analyzer")
	assert.Equal(t, types.AgentStatusRunning, agent.Status)
	assert.Equal(t, "analyzing j1", agent.CurrentTask)
	assert.Zero(t, agent.TasksCompleted)

	state = Reduce(state, AgentsUpdateStatus{ID: "job-analyzer", Status: types.AgentStatusIdle, At: at})
	agent = findAgent(t, state, "job-analyzer")
	assert.Equal(t, 1, agent.TasksCompleted)

	// Idle to idle is not a transition.
	state = Reduce(state, AgentsUpdateStatus{ID: "job-analyzer", Status: types.AgentStatusIdle, At: at})
	agent = findAgent(t, state, "job-analyzer")
	assert.Equal(t, 1, agent.TasksCompleted)
}

func TestAgents_InterruptedIdleDoesNotCount(t *testing.T) {
	state := InitialState()
	at := time.Now()

	state = Reduce(state, AgentsUpdateStatus{ID: "job-analyzer", Status: types.AgentStatusRunning, At: at})
	state = Reduce(state, AgentsUpdateStatus{ID: "job-analyzer", Status: types.AgentStatusIdle, Interrupted: true, At: at})

	agent := findAgent(t, state, "job-analyzer")
	assert.Equal(t, types.AgentStatusIdle, agent.Status)
	assert.Zero(t, agent.TasksCompleted)
}

func TestAgents_ClearLogsClearsToolCallsToo(t *testing.T) {
	state := InitialState()
	state = Reduce(state, AgentsAddLog{Entry: types.NewLogEntry("a", types.LogThought, "x", "")})
	state = Reduce(state, AgentsAddToolCall{Call: types.ToolCall{ID: "tc1", AgentID: "a"}})

	state = Reduce(state, AgentsClearLogs{})
	assert.Empty(t, state.Agents.Logs)
	assert.Empty(t, state.Agents.ToolCalls)
}

func findAgent(t *testing.T, state AppState, id string) types.Agent {
	t.Helper()
	for _, a := range state.Agents.Agents {
		if a.ID == id {
			return a
		}
	}
	t.Fatalf("agent %s not found", id)
	return types.Agent{}
}
