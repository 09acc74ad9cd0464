package agents

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/job-autopilot/internal/matching"
	"github.com/jonathan/job-autopilot/internal/types"
)

// ErrNoResumePreset is returned by MatchPresets when the collection holds no
// resume-kind preset to apply with.
var ErrNoResumePreset = errors.New("no suitable resume preset found")

// MatchResult is the output of the preset-matcher stage.
type MatchResult struct {
	TopResume      *types.Preset `json:"top_resume,omitempty"`
	TopCoverLetter *types.Preset `json:"top_cover_letter,omitempty"`
	MatchScore     float64       `json:"match_score"`
	SkillGaps      []string      `json:"skill_gaps"`
}

// MatchPresets scores the preset collection against the requirements record
// and selects the highest-scoring resume plus the first available cover
// letter. Fails when no resume preset exists.
func MatchPresets(ctx context.Context, req types.Requirements, presets []types.Preset, sink LogSink, delay Delay) (MatchResult, error) {
	emit(sink, types.NewLogEntry(AgentPresetMatcher, types.LogThought,
		fmt.Sprintf("Evaluating %d presets against job requirements", len(presets)), ""))

	if err := delay(ctx, 1500*time.Millisecond); err != nil {
		return MatchResult{}, err
	}

	ranked := matching.RankResumes(presets, req.Required)

	topScore := 0.0
	if len(ranked) > 0 {
		topScore = ranked[0].Score
	}
	emit(sink, types.NewLogEntry(AgentPresetMatcher, types.LogToolCall,
		fmt.Sprintf("Scored %d resume presets. Top score: %.0f%%", len(ranked), topScore), ""))

	if err := delay(ctx, 1*time.Second); err != nil {
		return MatchResult{}, err
	}

	gaps := matching.SkillGaps(presets, req.Required)
	if len(gaps) > 0 {
		emit(sink, types.NewLogEntry(AgentPresetMatcher, types.LogObservation,
			fmt.Sprintf("Skill gaps detected: %s. Consider creating a new preset.", strings.Join(gaps, ", ")), ""))
	}

	if len(ranked) == 0 {
		emit(sink, types.NewLogEntry(AgentPresetMatcher, types.LogError, ErrNoResumePreset.Error(), ""))
		return MatchResult{}, ErrNoResumePreset
	}

	result := MatchResult{
		TopResume:  &ranked[0].Preset,
		MatchScore: ranked[0].Score,
		SkillGaps:  gaps,
	}
	if cl, ok := matching.FirstCoverLetter(presets); ok {
		result.TopCoverLetter = &cl
	}

	emit(sink, types.NewLogEntry(AgentPresetMatcher, types.LogSuccess,
		fmt.Sprintf("Selected preset: %q with %.0f%% match", result.TopResume.Name, result.MatchScore), ""))

	return result, nil
}
