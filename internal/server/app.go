// Package server initializes and runs the garden management backend.
// It wires the configuration, the Postgres repositories and the HTTP API,
// and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/umar-hyatt/gardenkeeper/internal/logging"
	"github.com/umar-hyatt/gardenkeeper/internal/server/config"
	"github.com/umar-hyatt/gardenkeeper/internal/server/httpapi"
	"github.com/umar-hyatt/gardenkeeper/internal/server/shared/db"
	"github.com/umar-hyatt/gardenkeeper/internal/server/uploads"
	"github.com/umar-hyatt/gardenkeeper/internal/server/users"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	manager db.RepositoryManager
	server  *httpapi.Server
}

func NewApp(c *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slog)

	rm, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(rm.Users(), c)
	up := uploads.NewService(c)

	srv := httpapi.NewServer(c, logger, us, rm.Plants(), rm.Tasks(), rm.Observations(), up)

	return &App{config: c, logger: logger, manager: rm, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// initStorage pings the database and applies pending migrations. A failure is
// logged but does not stop the server; requests needing the store fail until
// the database comes back.
func (app *App) initStorage(ctx context.Context) {

	if err := app.manager.Ping(ctx); err != nil {
		app.logger.Warn(ctx, "Database unreachable, starting degraded", "error", err.Error())
		return
	}

	if err := app.manager.RunMigrations(ctx); err != nil {
		app.logger.Error(ctx, "Migration error", "error", err.Error())
		return
	}

	app.logger.Info(ctx, "Database ready, migrations applied")
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)
	app.initStorage(ctx)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, "Error closing db connection", "error", err.Error())
	}
}
