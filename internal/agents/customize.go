package agents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/job-autopilot/internal/types"
)

// CustomizeResume tailors the chosen resume preset to the job. Currently a
// pass-through of the preset content; the narration documents the intended
// emphasis so a real rewriting backend can slot in behind the same contract.
func CustomizeResume(ctx context.Context, preset types.Preset, job types.Job, req types.Requirements, sink LogSink, delay Delay) (string, error) {
	emit(sink, types.NewLogEntry(AgentResumeCustomizer, types.LogThought,
		fmt.Sprintf("Customizing resume %q for %s", preset.Name, job.Company), ""))

	if err := delay(ctx, 2*time.Second); err != nil {
		return "", err
	}

	emphasis := req.Required
	if len(emphasis) > 3 {
		emphasis = emphasis[:3]
	}
	emit(sink, types.NewLogEntry(AgentResumeCustomizer, types.LogToolCall,
		fmt.Sprintf("Adjusting resume to emphasize: %s", strings.Join(emphasis, ", ")), ""))

	if err := delay(ctx, 1500*time.Millisecond); err != nil {
		return "", err
	}

	emit(sink, types.NewLogEntry(AgentResumeCustomizer, types.LogSuccess,
		"Resume customization complete", ""))

	return preset.Content, nil
}

// GenerateCoverLetter fills the cover-letter template for the job,
// substituting the {{company}}, {{position}} and {{location}} placeholders.
func GenerateCoverLetter(ctx context.Context, preset types.Preset, job types.Job, sink LogSink, delay Delay) (string, error) {
	emit(sink, types.NewLogEntry(AgentCoverLetterGenerator, types.LogThought,
		fmt.Sprintf("Generating cover letter for %s at %s", job.Position, job.Company), ""))

	if err := delay(ctx, 2500*time.Millisecond); err != nil {
		return "", err
	}

	emit(sink, types.NewLogEntry(AgentCoverLetterGenerator, types.LogToolCall,
		fmt.Sprintf("Researching %s background", job.Company), ""))

	if err := delay(ctx, 1500*time.Millisecond); err != nil {
		return "", err
	}

	filled := strings.NewReplacer(
		"{{company}}", job.Company,
		"{{position}}", job.Position,
		"{{location}}", job.Location,
	).Replace(preset.Content)

	emit(sink, types.NewLogEntry(AgentCoverLetterGenerator, types.LogSuccess,
		"Cover letter generated successfully", ""))

	return filled, nil
}
