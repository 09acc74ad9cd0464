package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-autopilot/internal/types"
)

func collectSink(entries *[]types.LogEntry) LogSink {
	return func(e types.LogEntry) {
		*entries = append(*entries, e)
	}
}

func testJob() types.Job {
	return types.Job{
		ID:       "j1",
		Company:  "Acme",
		Position: "SWE Intern",
		Location: "Remote",
		URL:      "https://jobs.example.com/acme/swe-intern",
		Requirements: types.Requirements{
			Keywords: []string{"python"},
		},
		Status: types.JobStatusNew,
	}
}

func TestAnalyzeJob_BuildsRequirements(t *testing.T) {
	var entries []types.LogEntry

	req, err := AnalyzeJob(context.Background(), testJob(), collectSink(&entries), NoDelay)
	require.NoError(t, err)

	assert.Equal(t, []string{"python", "problem solving", "communication", "teamwork"}, req.Required)
	assert.Equal(t, []string{"cloud platforms", "agile", "version control"}, req.Preferred)
	assert.Contains(t, req.Keywords, "acme")
	assert.Contains(t, req.Keywords, "remote")
	assert.Contains(t, req.Description, "SWE Intern")
	assert.Contains(t, req.Description, "Acme")

	require.Len(t, entries, 4)
	assert.Equal(t, types.LogThought, entries[0].Kind)
	assert.Equal(t, types.LogToolCall, entries[1].Kind)
	assert.Equal(t, types.LogObservation, entries[2].Kind)
	assert.Equal(t, types.LogDecision, entries[3].Kind)
	for _, e := range entries {
		assert.Equal(t, AgentJobAnalyzer, e.AgentName)
	}
}

func TestAnalyzeJob_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := AnalyzeJob(ctx, testJob(), nil, NoDelay)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMatchPresets_SelectsTopResume(t *testing.T) {
	presets := []types.Preset{
		{ID: "r1", Kind: types.PresetResume, Name: "General", Skills: []string{"python"}},
		{ID: "r2", Kind: types.PresetResume, Name: "Stronger", Skills: []string{"python", "teamwork"}},
		{ID: "cl1", Kind: types.PresetCoverLetter, Name: "Letter"},
	}
	req := types.Requirements{Required: []string{"python", "teamwork"}}

	var entries []types.LogEntry
	result, err := MatchPresets(context.Background(), req, presets, collectSink(&entries), NoDelay)
	require.NoError(t, err)

	require.NotNil(t, result.TopResume)
	assert.Equal(t, "r2", result.TopResume.ID)
	assert.InDelta(t, 100.0, result.MatchScore, 0.001)
	require.NotNil(t, result.TopCoverLetter)
	assert.Equal(t, "cl1", result.TopCoverLetter.ID)
	assert.Empty(t, result.SkillGaps)

	last := entries[len(entries)-1]
	assert.Equal(t, types.LogSuccess, last.Kind)
	assert.Contains(t, last.Content, "Stronger")
}

func TestMatchPresets_FailsWithoutResume(t *testing.T) {
	var entries []types.LogEntry

	_, err := MatchPresets(context.Background(), types.Requirements{Required: []string{"go"}},
		nil, collectSink(&entries), NoDelay)

	assert.ErrorIs(t, err, ErrNoResumePreset)
	last := entries[len(entries)-1]
	assert.Equal(t, types.LogError, last.Kind)
}

func TestMatchPresets_ReportsSkillGaps(t *testing.T) {
	presets := []types.Preset{
		{ID: "r1", Kind: types.PresetResume, Name: "General", Skills: []string{"python"}},
	}
	req := types.Requirements{Required: []string{"python", "kubernetes"}}

	var entries []types.LogEntry
	result, err := MatchPresets(context.Background(), req, presets, collectSink(&entries), NoDelay)
	require.NoError(t, err)

	assert.Equal(t, []string{"kubernetes"}, result.SkillGaps)

	var sawGapWarning bool
	for _, e := range entries {
		if e.Kind == types.LogObservation {
			sawGapWarning = true
			assert.Contains(t, e.Content, "kubernetes")
		}
	}
	assert.True(t, sawGapWarning)
}

func TestCustomizeResume_PassThrough(t *testing.T) {
	preset := types.Preset{ID: "r1", Kind: types.PresetResume, Name: "General", Content: "my resume"}

	out, err := CustomizeResume(context.Background(), preset, testJob(),
		types.Requirements{Required: []string{"python"}}, nil, NoDelay)
	require.NoError(t, err)
	assert.Equal(t, "my resume", out)
}

func TestGenerateCoverLetter_SubstitutesPlaceholders(t *testing.T) {
	preset := types.Preset{
		ID:      "cl1",
		Kind:    types.PresetCoverLetter,
		Content: "Dear {{company}}, I am applying for {{position}} in {{location}}.",
	}
	job := types.Job{Company: "Acme", Position: "Intern", Location: "Remote"}

	out, err := GenerateCoverLetter(context.Background(), preset, job, nil, NoDelay)
	require.NoError(t, err)

	assert.Equal(t, "Dear Acme, I am applying for Intern in Remote.", out)
	assert.NotContains(t, out, "{{")
	assert.NotContains(t, out, "}}")
}
