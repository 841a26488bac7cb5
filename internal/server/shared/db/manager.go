// Package db selects and owns the storage behind the API server: an
// in-memory directory for local development or PostgreSQL (pgx) with goose
// migrations.
package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/employwise/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Close() error
}

// New returns a Postgres manager for a non-empty dsn and an in-memory one
// otherwise.
func New(ctx context.Context, dsn string) (RepositoryManager, error) {
	if dsn == "" {
		return NewInMemoryRepositoryManager(), nil
	}
	return NewPostgresRepositoryManager(ctx, dsn)
}
