// Package matching scores resume presets against job requirements and picks
// the presets a pipeline run should use.
package matching

import (
	"sort"
	"strings"

	"github.com/jonathan/job-autopilot/internal/types"
)

// ScoredPreset pairs a preset with its match score.
type ScoredPreset struct {
	Preset types.Preset
	Score  float64
}

// tagMatches reports whether a preset skill tag matches a required skill.
// Matching is a case-insensitive substring check of the tag within the
// requirement text, so the tag "python" matches "Python 3 experience".
func tagMatches(tag, required string) bool {
	return strings.Contains(strings.ToLower(required), strings.ToLower(tag))
}

// ScoreResume computes the match score for one resume preset: the number of
// its skill tags matching any required skill, normalized against the required
// skill count and scaled to 0-100. Returns the score and the matched tags.
func ScoreResume(preset types.Preset, required []string) (float64, []string) {
	if len(required) == 0 {
		return 0, nil
	}

	matched := make([]string, 0)
	for _, tag := range preset.Skills {
		for _, req := range required {
			if tagMatches(tag, req) {
				matched = append(matched, tag)
				break
			}
		}
	}

	score := float64(len(matched)) / float64(len(required)) * 100
	if score > 100 {
		score = 100
	}
	return score, matched
}

// RankResumes scores every resume-kind preset and returns them in descending
// score order. The sort is stable, so ties keep collection order.
func RankResumes(presets []types.Preset, required []string) []ScoredPreset {
	scored := make([]ScoredPreset, 0)
	for _, p := range presets {
		if p.Kind != types.PresetResume {
			continue
		}
		score, _ := ScoreResume(p, required)
		scored = append(scored, ScoredPreset{Preset: p, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// FirstCoverLetter returns the first cover-letter preset by collection order,
// or false when none exists. Cover-letter selection is deliberately a
// separate policy from resume ranking.
func FirstCoverLetter(presets []types.Preset) (types.Preset, bool) {
	for _, p := range presets {
		if p.Kind == types.PresetCoverLetter {
			return p, true
		}
	}
	return types.Preset{}, false
}

// SkillGaps returns the required skills that no preset in the whole
// collection advertises a matching tag for.
func SkillGaps(presets []types.Preset, required []string) []string {
	gaps := make([]string, 0)
	for _, req := range required {
		covered := false
		for _, p := range presets {
			for _, tag := range p.Skills {
				if tagMatches(tag, req) {
					covered = true
					break
				}
			}
			if covered {
				break
			}
		}
		if !covered {
			gaps = append(gaps, req)
		}
	}
	return gaps
}
