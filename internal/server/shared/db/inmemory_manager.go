package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/employwise/internal/server/users"
)

type InMemoryRepositoryManager struct {
	users *users.MemoryRepository
}

func (m InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m InMemoryRepositoryManager) Close() error {
	return nil
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return InMemoryRepositoryManager{users: users.NewMemoryRepository()}
}
