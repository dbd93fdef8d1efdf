// Package httpapi exposes the REST surface of the server: bearer-token auth
// routes plus the uniform ownership-scoped CRUD routers for plants, tasks
// and observations.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/umar-hyatt/gardenkeeper/internal/logging"
	"github.com/umar-hyatt/gardenkeeper/internal/server/config"
	"github.com/umar-hyatt/gardenkeeper/internal/server/observations"
	"github.com/umar-hyatt/gardenkeeper/internal/server/plants"
	"github.com/umar-hyatt/gardenkeeper/internal/server/tasks"
	"github.com/umar-hyatt/gardenkeeper/internal/server/uploads"
	"github.com/umar-hyatt/gardenkeeper/internal/server/users"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	addr         string
	corsOrigin   string
	jwtSecret    []byte
	logger       logging.Logger
	users        *users.Service
	plants       plants.Repository
	tasks        tasks.Repository
	observations observations.Repository
	uploads      *uploads.Service
}

func NewServer(
	cfg *config.Config,
	l logging.Logger,
	us *users.Service,
	pr plants.Repository,
	tr tasks.Repository,
	or observations.Repository,
	up *uploads.Service,
) *Server {
	return &Server{
		addr:         cfg.Addr,
		corsOrigin:   cfg.CORSOrigin,
		jwtSecret:    []byte(cfg.SecretKey),
		logger:       l.With("module", "httpapi"),
		users:        us,
		plants:       pr,
		tasks:        tr,
		observations: or,
		uploads:      up,
	}
}

// Router builds the chi route tree. Everything lives under /api; the three
// resource routers share one generic implementation and differ only in
// schema.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.corsMiddleware)

	r.Route("/api", func(api chi.Router) {

		api.Route("/auth", func(ar chi.Router) {
			ar.Post("/register", s.handleRegister)
			ar.Post("/login", s.handleLogin)
			ar.Group(func(pg chi.Router) {
				pg.Use(s.requireAuth)
				pg.Get("/profile", s.handleGetProfile)
				pg.Put("/profile", s.handleUpdateProfile)
			})
		})

		api.Group(func(g chi.Router) {
			g.Use(s.requireAuth)
			mountResource[*plants.Input, *plants.Plant](g, "/plants", "Plant", s.plants, s.logger)
			mountResource[*tasks.Input, *tasks.Task](g, "/tasks", "Task", s.tasks, s.logger)
			mountResource[*observations.Input, *observations.Observation](g, "/observations", "Observation", s.observations, s.logger)
			g.Post("/uploads/images", s.handlePresignUpload)
			g.Get("/uploads/images", s.handlePresignDownload)
		})
	})

	return r
}

// Run serves the API until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{Addr: s.addr, Handler: s.Router()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
