package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/alexanderramin/mesoforge/internal/service"
	"github.com/go-chi/chi/v5"
)

// Services are the use cases exposed over HTTP.
type Services struct {
	Programs service.ProgramService
	Sessions service.SessionService
	Catalog  service.CatalogService
	Goals    service.GoalService
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	svc    Services
	log    *slog.Logger
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(svc Services, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		svc:    svc,
		log:    log,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(Recoverer(s.log))

	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Route("/programs", func(r chi.Router) {
			r.Post("/", s.handleGenerateProgram)
			r.Get("/", s.handleListPrograms)
			r.Get("/{id}", s.handleGetProgram)
			r.Delete("/{id}", s.handleDeleteProgram)
			r.Get("/{id}/periods/{period}", s.handleGetPeriod)
			r.Get("/{id}/periods/{period}/days/{day}/sets", s.handleListSets)
		})
		r.Post("/sessions/plan", s.handlePlanSession)
		r.Post("/sessions/sets", s.handleLogSet)
		r.Post("/brief", s.handleBrief)
		r.Post("/fatigue", s.handleFatigueCheck)
		r.Get("/exercises", s.handleListExercises)
		r.Post("/exercises/import", s.handleImportExercises)
		r.Get("/goals", s.handleListGoals)
	})
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpSrv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("server started", "addr", listener.Addr().String())
		if err := httpSrv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info("server stopped")
	return <-errc
}
