// Package agentlog provides the append-only event log of agent activity.
package agentlog

import (
	"sync"
	"time"

	"github.com/jonathan/job-autopilot/internal/types"
)

// Observer is invoked synchronously with each appended entry so consumers can
// stream it live. Observers must return promptly.
type Observer func(types.LogEntry)

// Log is an append-only sequence of agent log entries plus the tool-call
// records associated with them. Entries are immutable once appended and are
// only removed by an explicit Clear.
type Log struct {
	mu        sync.Mutex
	entries   []types.LogEntry
	toolCalls []types.ToolCall
	observer  Observer
	lastStamp time.Time
}

// New creates an empty log. The observer may be nil.
func New(observer Observer) *Log {
	return &Log{observer: observer}
}

// Append stores the entry and returns it unchanged. Timestamps are kept
// monotonic: an entry stamped earlier than its predecessor inherits the
// predecessor's timestamp.
func (l *Log) Append(entry types.LogEntry) types.LogEntry {
	l.mu.Lock()
	if entry.Timestamp.Before(l.lastStamp) {
		entry.Timestamp = l.lastStamp
	}
	l.lastStamp = entry.Timestamp
	l.entries = append(l.entries, entry)
	observer := l.observer
	l.mu.Unlock()

	if observer != nil {
		observer(entry)
	}
	return entry
}

// RecordToolCall stores a tool-call record alongside the log.
func (l *Log) RecordToolCall(call types.ToolCall) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.toolCalls = append(l.toolCalls, call)
}

// Entries returns a copy of all entries in emission order.
func (l *Log) Entries() []types.LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]types.LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// ToolCalls returns a copy of all tool-call records.
func (l *Log) ToolCalls() []types.ToolCall {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]types.ToolCall, len(l.toolCalls))
	copy(out, l.toolCalls)
	return out
}

// Clear removes all entries and associated tool-call records. Irreversible;
// reserved for an explicit user action, never invoked by the pipeline.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
	l.toolCalls = nil
}

// Len returns the number of entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
