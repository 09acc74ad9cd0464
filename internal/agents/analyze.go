package agents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/job-autopilot/internal/types"
)

// Baseline skills every posting is assumed to ask for on top of its own
// keywords.
var (
	baselineRequired  = []string{"problem solving", "communication", "teamwork"}
	baselinePreferred = []string{"cloud platforms", "agile", "version control"}
)

// AnalyzeJob extracts the requirements record for a job posting. This stage
// has no modeled failure; it only aborts when the context is cancelled.
func AnalyzeJob(ctx context.Context, job types.Job, sink LogSink, delay Delay) (types.Requirements, error) {
	emit(sink, types.NewLogEntry(AgentJobAnalyzer, types.LogThought,
		fmt.Sprintf("Analyzing job posting for %s - %s", job.Company, job.Position), ""))

	if err := delay(ctx, 1*time.Second); err != nil {
		return types.Requirements{}, err
	}

	emit(sink, types.NewLogEntry(AgentJobAnalyzer, types.LogToolCall,
		fmt.Sprintf("Fetching job description from %s", job.URL), ""))

	if err := delay(ctx, 2*time.Second); err != nil {
		return types.Requirements{}, err
	}

	required := make([]string, 0, len(job.Requirements.Keywords)+len(baselineRequired))
	required = append(required, job.Requirements.Keywords...)
	required = append(required, baselineRequired...)

	preferred := append([]string(nil), baselinePreferred...)

	keywords := make([]string, 0, len(required)+len(preferred)+2)
	keywords = append(keywords, required...)
	keywords = append(keywords, preferred...)
	keywords = append(keywords, strings.ToLower(job.Company), strings.ToLower(job.Location))

	req := types.Requirements{
		Required:    required,
		Preferred:   preferred,
		Keywords:    keywords,
		Description: fmt.Sprintf("We are seeking a talented %s to join our team at %s.", job.Position, job.Company),
	}

	emit(sink, types.NewLogEntry(AgentJobAnalyzer, types.LogObservation,
		fmt.Sprintf("Extracted %d required skills and %d preferred skills", len(required), len(preferred)), ""))

	top := required
	if len(top) > 3 {
		top = top[:3]
	}
	emit(sink, types.NewLogEntry(AgentJobAnalyzer, types.LogDecision,
		fmt.Sprintf("Job analysis complete. Match criteria: %s", strings.Join(top, ", ")), ""))

	return req, nil
}
