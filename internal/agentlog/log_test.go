package agentlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-autopilot/internal/types"
)

func TestAppend_ReturnsEntryUnchanged(t *testing.T) {
	log := New(nil)

	entry := types.NewLogEntry("job-analyzer", types.LogThought, "thinking", "")
	got := log.Append(entry)

	assert.Equal(t, entry.ID, got.ID)
	assert.Equal(t, entry.Content, got.Content)
	require.Len(t, log.Entries(), 1)
}

func TestAppend_InvokesObserverSynchronously(t *testing.T) {
	var seen []types.LogEntry
	log := New(func(e types.LogEntry) {
		seen = append(seen, e)
	})

	log.Append(types.NewLogEntry("job-analyzer", types.LogThought, "first", ""))
	log.Append(types.NewLogEntry("job-analyzer", types.LogSuccess, "second", ""))

	require.Len(t, seen, 2)
	assert.Equal(t, "first", seen[0].Content)
	assert.Equal(t, "second", seen[1].Content)
}

func TestAppend_EnforcesMonotonicTimestamps(t *testing.T) {
	log := New(nil)

	later := types.NewLogEntry("a", types.LogThought, "later", "")
	later.Timestamp = time.Now().Add(time.Hour)
	log.Append(later)

	earlier := types.NewLogEntry("a", types.LogThought, "earlier", "")
	earlier.Timestamp = time.Now().Add(-time.Hour)
	got := log.Append(earlier)

	assert.False(t, got.Timestamp.Before(later.Timestamp))

	entries := log.Entries()
	require.Len(t, entries, 2)
	assert.False(t, entries[1].Timestamp.Before(entries[0].Timestamp))
}

func TestClear_RemovesEntriesAndToolCalls(t *testing.T) {
	log := New(nil)
	log.Append(types.NewLogEntry("a", types.LogThought, "x", ""))
	log.RecordToolCall(types.ToolCall{ID: "tc-1", AgentID: "a", ToolName: "fetch"})

	log.Clear()

	assert.Empty(t, log.Entries())
	assert.Empty(t, log.ToolCalls())
	assert.Equal(t, 0, log.Len())
}

func TestEntries_ReturnsCopy(t *testing.T) {
	log := New(nil)
	log.Append(types.NewLogEntry("a", types.LogThought, "x", ""))

	entries := log.Entries()
	entries[0].Content = "mutated"

	assert.Equal(t, "x", log.Entries()[0].Content)
}
