// Package db wires repository implementations to their backing store and
// owns connection setup and schema migration.
package db

import (
	"context"
	"database/sql"

	"github.com/campushub/campushub/internal/server/accounts"
	"github.com/campushub/campushub/internal/server/events"
)

type RepositoryManager interface {
	Conn() *sql.DB
	RunMigrations(ctx context.Context) error
	Accounts() accounts.Repository
	Events() events.Repository
	Close() error
}
