package persist

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/job-autopilot/internal/store"
	"github.com/jonathan/job-autopilot/internal/types"
)

//go:embed snapshot_schema.json
var snapshotSchema string

// Snapshot is the durable subset of application state. Agent runtime state
// (catalog, logs, tool calls) is rebuilt fresh on startup and not persisted.
type Snapshot struct {
	Version      int                 `json:"version"`
	SavedAt      time.Time           `json:"saved_at"`
	Jobs         []types.Job         `json:"jobs"`
	Presets      []types.Preset      `json:"presets"`
	Applications []types.Application `json:"applications"`
}

// SnapshotVersion is the current snapshot format version.
const SnapshotVersion = 1

// Capture extracts the durable subset of the given state.
func Capture(state store.AppState, now time.Time) Snapshot {
	return Snapshot{
		Version:      SnapshotVersion,
		SavedAt:      now,
		Jobs:         state.Jobs.Jobs,
		Presets:      state.Presets.Presets,
		Applications: state.Applications.Applications,
	}
}

// Validate checks raw snapshot JSON against the embedded schema before it is
// trusted, so a corrupted file degrades to defaults instead of poisoning state.
func Validate(raw []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(snapshotSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		// An unparseable document (truncated file, partial write) is malformed
		// the same way a schema violation is: callers fall back to defaults.
		return &ValidationError{Errors: []FieldError{{Field: "(root)", Message: err.Error()}}}
	}
	if result.Valid() {
		return nil
	}

	errs := make([]FieldError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		errs = append(errs, FieldError{Field: field, Message: desc.Description()})
	}
	return &ValidationError{Errors: errs}
}

// Decode validates and unmarshals raw snapshot JSON.
func Decode(raw []byte) (Snapshot, error) {
	if err := Validate(raw); err != nil {
		return Snapshot{}, err
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return Snapshot{}, &ValidationError{Errors: []FieldError{{Field: "(root)", Message: err.Error()}}}
	}
	return snap, nil
}

// ValidationError reports snapshot schema violations with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	msg := "snapshot validation failed:"
	for _, e := range ve.Errors {
		msg += fmt.Sprintf(" %s: %s;", e.Field, e.Message)
	}
	return msg
}
