// Package store is the Postgres persistence layer. The destination is a
// hosted Supabase database reached over its direct connection string;
// all access goes through a pgx connection pool.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	pool *pgxpool.Pool
}

// New connects a pool to databaseURL and verifies the connection.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

// nullable maps the domain's "" convention to NULL at the SQL boundary.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// text maps a scanned nullable column back to the "" convention.
func text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
