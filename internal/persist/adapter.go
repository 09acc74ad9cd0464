package persist

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jonathan/job-autopilot/internal/store"
)

// Adapter bridges a Sink and the state store: it replays a saved snapshot
// into the store on startup and saves a fresh snapshot after every dispatch.
type Adapter struct {
	sink Sink
}

// NewAdapter wraps the given sink.
func NewAdapter(sink Sink) *Adapter {
	return &Adapter{sink: sink}
}

// Restore loads the snapshot and replays it into the store through ordinary
// actions, so restored state passes through the same reducers as live state.
// A missing or malformed snapshot leaves the store at its defaults.
func (a *Adapter) Restore(ctx context.Context, s *store.Store) error {
	snap, err := a.sink.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrNoSnapshot) {
			return nil
		}
		var ve *ValidationError
		if errors.As(err, &ve) {
			log.Printf("[persist] discarding malformed snapshot: %v", ve)
			return nil
		}
		return err
	}

	s.Dispatch(store.JobsFetchSuccess{Jobs: snap.Jobs, At: snap.SavedAt})
	for _, p := range snap.Presets {
		s.Dispatch(store.PresetsAdd{Preset: p})
	}
	for _, app := range snap.Applications {
		s.Dispatch(store.ApplicationsAdd{Application: app})
	}
	return nil
}

// Attach subscribes to the store and saves a snapshot after every change.
// Save failures are logged, not fatal; the next change retries.
func (a *Adapter) Attach(ctx context.Context, s *store.Store) {
	s.Subscribe(func(state store.AppState) {
		snap := Capture(state, time.Now())
		if err := a.sink.Save(ctx, snap); err != nil {
			log.Printf("[persist] failed to save snapshot: %v", err)
		}
	})
}
