package store

import (
	"log"
	"sync"
)

// Store serializes dispatches against the application state and notifies
// subscribers after each change. It is the sole writer; readers only ever
// see fully-applied state.
type Store struct {
	mu    sync.Mutex
	state AppState
	subs  []func(AppState)
}

// New creates a store seeded with the initial state.
func New() *Store {
	return &Store{state: InitialState()}
}

// Dispatch applies an action atomically and notifies subscribers with the
// resulting state. Unrecognized actions leave state unchanged but are logged,
// since a silent no-op usually means a wiring mistake.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	if !Known(action) {
		log.Printf("[store] ignoring unknown action %q", action.ActionType())
	}
	next := Reduce(s.state, action)
	s.state = next
	subs := make([]func(AppState), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
}

// State returns the current state. Sub-collection slices are shared
// copy-on-write data; callers must treat them as read-only.
func (s *Store) State() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers a callback invoked after every dispatch with the new
// state. Callbacks run on the dispatching goroutine and must return promptly.
func (s *Store) Subscribe(fn func(AppState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
