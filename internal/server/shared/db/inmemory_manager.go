package db

import (
	"context"
	"database/sql"

	"github.com/campushub/campushub/internal/server/accounts"
	"github.com/campushub/campushub/internal/server/events"
)

// InMemoryRepositoryManager backs the repositories with in-process maps.
// Selected when no database DSN is configured; state does not survive a
// restart.
type InMemoryRepositoryManager struct {
	accounts accounts.Repository
	events   events.Repository
}

func (m *InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Accounts() accounts.Repository {
	return m.accounts
}

func (m *InMemoryRepositoryManager) Events() events.Repository {
	return m.events
}

func (m *InMemoryRepositoryManager) Close() error {
	return nil
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{
		accounts: accounts.NewMemoryRepository(),
		events:   events.NewMemoryRepository(),
	}
}
