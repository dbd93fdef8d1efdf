// Package db wires the process-wide database handle to the per-entity
// repositories. The connection is opened once at startup, injected into the
// routers through the manager, and closed on shutdown.
package db

import (
	"context"
	"database/sql"

	"github.com/umar-hyatt/gardenkeeper/internal/server/observations"
	"github.com/umar-hyatt/gardenkeeper/internal/server/plants"
	"github.com/umar-hyatt/gardenkeeper/internal/server/tasks"
	"github.com/umar-hyatt/gardenkeeper/internal/server/users"
)

type RepositoryManager interface {
	Ping(ctx context.Context) error
	RunMigrations(ctx context.Context) error
	Close() error
	Conn() *sql.DB
	Users() users.Repository
	Plants() plants.Repository
	Tasks() tasks.Repository
	Observations() observations.Repository
}
