// Package store provides the reducer-based application state store: the
// single source of truth for jobs, applications, presets and agents, mutated
// only through dispatched actions.
package store

import (
	"time"

	"github.com/jonathan/job-autopilot/internal/agents"
	"github.com/jonathan/job-autopilot/internal/types"
)

// JobsState holds the job collection plus fetch/filter bookkeeping.
type JobsState struct {
	Jobs        []types.Job  `json:"jobs"`
	Loading     bool         `json:"loading"`
	Error       string       `json:"error,omitempty"`
	LastFetched *time.Time   `json:"last_fetched,omitempty"`
	Filter      types.Filter `json:"filter"`
}

// ApplicationsState holds the application collection.
type ApplicationsState struct {
	Applications []types.Application `json:"applications"`
}

// PresetsState holds the preset collection.
type PresetsState struct {
	Presets []types.Preset `json:"presets"`
}

// AgentsState holds the agent catalog, the shared event log, and tool-call
// records.
type AgentsState struct {
	Agents    []types.Agent    `json:"agents"`
	ToolCalls []types.ToolCall `json:"tool_calls"`
	Logs      []types.LogEntry `json:"logs"`
}

// AppState is the complete store state.
type AppState struct {
	Jobs         JobsState         `json:"jobs"`
	Applications ApplicationsState `json:"applications"`
	Presets      PresetsState      `json:"presets"`
	Agents       AgentsState       `json:"agents"`
}

// InitialState returns the default state: empty collections and the
// six-agent catalog, all idle.
func InitialState() AppState {
	return AppState{
		Agents: AgentsState{
			Agents: []types.Agent{
				{
					ID:          agents.AgentJobScraper,
					Name:        "Job Scraper",
					Description: "Fetches jobs from GitHub and Handshake",
					Status:      types.AgentStatusIdle,
					Tools:       []string{"fetchGitHub", "parseMarkdown", "scrapeHandshake"},
				},
				{
					ID:          agents.AgentJobAnalyzer,
					Name:        "Job Analyzer",
					Description: "Analyzes job requirements and extracts skills",
					Status:      types.AgentStatusIdle,
					Tools:       []string{"extractText", "identifySkills", "scoreRequirements"},
				},
				{
					ID:          agents.AgentPresetMatcher,
					Name:        "Preset Matcher",
					Description: "Matches jobs to best resume/cover letter presets",
					Status:      types.AgentStatusIdle,
					Tools:       []string{"compareSkills", "scoreMatch", "rankPresets"},
				},
				{
					ID:          agents.AgentResumeCustomizer,
					Name:        "Resume Customizer",
					Description: "Customizes resume to match job requirements",
					Status:      types.AgentStatusIdle,
					Tools:       []string{"analyzeResume", "tweakBullets", "reorderSections"},
				},
				{
					ID:          agents.AgentCoverLetterGenerator,
					Name:        "Cover Letter Generator",
					Description: "Generates customized cover letters",
					Status:      types.AgentStatusIdle,
					Tools:       []string{"fillTemplate", "generateParagraph", "adjustTone"},
				},
				{
					ID:          agents.AgentApplicationAgent,
					Name:        "Application Agent",
					Description: "Submits applications and tracks confirmations",
					Status:      types.AgentStatusIdle,
					Tools:       []string{"navigateURL", "fillForm", "submitApplication"},
				},
			},
		},
	}
}
