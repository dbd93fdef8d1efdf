package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/umar-hyatt/gardenkeeper/internal/server/migrations"
	"github.com/umar-hyatt/gardenkeeper/internal/server/observations"
	"github.com/umar-hyatt/gardenkeeper/internal/server/plants"
	"github.com/umar-hyatt/gardenkeeper/internal/server/tasks"
	"github.com/umar-hyatt/gardenkeeper/internal/server/users"
)

type PostgresRepositoryManager struct {
	db           *sql.DB
	users        users.Repository
	plants       plants.Repository
	tasks        tasks.Repository
	observations observations.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) Plants() plants.Repository {
	return m.plants
}

func (m *PostgresRepositoryManager) Tasks() tasks.Repository {
	return m.tasks
}

func (m *PostgresRepositoryManager) Observations() observations.Repository {
	return m.observations
}

func (m *PostgresRepositoryManager) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

// NewPostgresRepositoryManager opens the process-wide connection pool and
// builds the repositories. It does not dial the database; the caller pings
// and migrates at startup so a down database delays readiness instead of
// preventing the process from starting.
func NewPostgresRepositoryManager(dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	users, err := users.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("user repo creation error: %w", err)
	}

	plants, err := plants.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("plant repo creation error: %w", err)
	}

	tasks, err := tasks.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("task repo creation error: %w", err)
	}

	observations, err := observations.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("observation repo creation error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:           db,
		users:        users,
		plants:       plants,
		tasks:        tasks,
		observations: observations,
	}

	return m, nil
}
