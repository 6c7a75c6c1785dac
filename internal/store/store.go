// Package store provides optional PostgreSQL persistence for match results,
// profile analyses, and LLM usage. The scoring core never touches it; the
// server and CLI run fine with no database configured.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the tables the store needs if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS match_results (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			profile_id TEXT NOT NULL,
			job_id TEXT NOT NULL,
			overall_score DOUBLE PRECISION NOT NULL,
			result JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS profile_analyses (
			id UUID PRIMARY KEY,
			profile_id TEXT NOT NULL,
			strength_score DOUBLE PRECISION NOT NULL,
			analysis JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS llm_usage (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			model TEXT NOT NULL,
			input_tokens BIGINT NOT NULL,
			output_tokens BIGINT NOT NULL,
			cost_usd DOUBLE PRECISION NOT NULL,
			recorded_at TIMESTAMPTZ NOT NULL
		)`,
	}

	for _, stmt := range ddl {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
