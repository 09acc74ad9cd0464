// Package agents implements the autonomous stage functions of the
// application pipeline. Each stage takes its upstream inputs, produces a
// typed result or an error, and narrates its work through a log sink. Stages
// never touch shared state; publishing results is the caller's job.
package agents

import (
	"context"
	"time"

	"github.com/jonathan/job-autopilot/internal/types"
)

// Agent names as they appear in log entries and the agent catalog.
const (
	AgentJobScraper           = "job-scraper"
	AgentJobAnalyzer          = "job-analyzer"
	AgentPresetMatcher        = "preset-matcher"
	AgentResumeCustomizer     = "resume-customizer"
	AgentCoverLetterGenerator = "cover-letter-generator"
	AgentApplicationAgent     = "application-agent"
)

// LogSink receives log entries as a stage emits them. A nil sink discards
// entries.
type LogSink func(types.LogEntry)

// Delay suspends for the given duration, standing in for network or
// model-inference latency. Implementations must honor context cancellation
// and return the context error when cancelled.
type Delay func(ctx context.Context, d time.Duration) error

// SleepDelay waits in real time, aborting early if the context is cancelled.
func SleepDelay(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoDelay skips the wait entirely but still observes cancellation. Intended
// for tests.
func NoDelay(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

func emit(sink LogSink, entry types.LogEntry) {
	if sink != nil {
		sink(entry)
	}
}
