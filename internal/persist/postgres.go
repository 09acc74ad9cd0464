package persist

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSink stores the snapshot as a single JSONB row keyed by name, so
// multiple pipeline instances can share one database without clobbering each
// other.
type PostgresSink struct {
	pool *pgxpool.Pool
	name string
}

// ConnectPostgres establishes a connection pool and ensures the snapshot
// table exists.
func ConnectPostgres(ctx context.Context, databaseURL, name string) (*PostgresSink, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	_, err = pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS state_snapshots (
			name       TEXT PRIMARY KEY,
			content    JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ensure snapshot table: %w", err)
	}

	if name == "" {
		name = "default"
	}
	return &PostgresSink{pool: pool, name: name}, nil
}

// Close closes the connection pool.
func (s *PostgresSink) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Load fetches and validates the stored snapshot. A missing row returns
// ErrNoSnapshot.
func (s *PostgresSink) Load(ctx context.Context) (Snapshot, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT content FROM state_snapshots WHERE name = $1`,
		s.name,
	).Scan(&raw)
	if err != nil {
		if err == pgx.ErrNoRows {
			return Snapshot{}, ErrNoSnapshot
		}
		return Snapshot{}, fmt.Errorf("failed to load snapshot %s: %w", s.name, err)
	}
	return Decode(raw)
}

// Save upserts the snapshot row.
func (s *PostgresSink) Save(ctx context.Context, snap Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO state_snapshots (name, content)
		 VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET content = $2, updated_at = NOW()`,
		s.name, raw,
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", s.name, err)
	}
	return nil
}
