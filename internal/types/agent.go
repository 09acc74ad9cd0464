package types

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LogEntry is one immutable record of agent activity. Entries are append-only
// and ordered by emission time.
type LogEntry struct {
	ID            string    `json:"id"`
	AgentName     string    `json:"agent_name"`
	ApplicationID string    `json:"application_id,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	Kind          LogKind   `json:"kind"`
	Content       string    `json:"content"`
}

// NewLogEntry creates a log entry with a generated id and the current time.
func NewLogEntry(agentName string, kind LogKind, content, applicationID string) LogEntry {
	return LogEntry{
		ID:            fmt.Sprintf("log-%s", uuid.New().String()),
		AgentName:     agentName,
		ApplicationID: applicationID,
		Timestamp:     time.Now(),
		Kind:          kind,
		Content:       content,
	}
}

// Agent describes one autonomous worker in the catalog.
type Agent struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Status         AgentStatus `json:"status"`
	CurrentTask    string      `json:"current_task,omitempty"`
	TasksCompleted int         `json:"tasks_completed"`
	Errors         int         `json:"errors"`
	LastActive     *time.Time  `json:"last_active,omitempty"`
	Tools          []string    `json:"tools"`
}

// ToolCall records one tool invocation by an agent.
type ToolCall struct {
	ID        string        `json:"id"`
	AgentID   string        `json:"agent_id"`
	ToolName  string        `json:"tool_name"`
	Input     any           `json:"input"`
	Output    any           `json:"output,omitempty"`
	Error     string        `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	Duration  time.Duration `json:"duration"`
}
