// Package persist saves and restores application state snapshots.
package persist

import (
	"context"
	"errors"
)

// ErrNoSnapshot is returned by Load when the sink holds no saved snapshot yet.
// Callers should treat it as "start from defaults", not as a failure.
var ErrNoSnapshot = errors.New("no snapshot saved")

// Sink stores one snapshot of durable state. Implementations overwrite the
// previous snapshot on every Save; there is no history.
type Sink interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
}
