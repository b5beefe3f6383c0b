package store

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the pgx-backed persistence layer for users, assignments,
// sessions and refresh tokens.
type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}
