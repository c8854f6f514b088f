// Package server implements the HTTP shell around the builder core.
//
// The shell owns everything the core leaves to its host: session lifetime
// and isolation (one independent builder per session, stored through
// pkg/session), request decoding, and mapping coded errors to HTTP
// statuses. Handlers are thin: load session → rebuild builder → call one
// core operation → store snapshot → respond.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/Aouidate/CartoonBuilder/pkg/session"
)

// Server is the HTTP builder service.
type Server struct {
	cfg    Config
	store  session.Store
	logger *log.Logger
	router chi.Router
}

// New creates a server around the given session store.
func New(cfg Config, store session.Store, logger *log.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		store:  store,
		logger: logger,
	}
	s.router = s.routes()
	return s
}

// NewStore creates the session store selected by the config.
func NewStore(cfg Config) (session.Store, error) {
	switch cfg.Session.Backend {
	case BackendMemory:
		return session.NewMemoryStore(), nil
	case BackendRedis:
		return session.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB), nil
	default:
		return nil, errors.New("unknown session backend " + cfg.Session.Backend)
	}
}

// Handler returns the root http.Handler, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreateSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Delete("/", s.handleDeleteSession)
			r.Post("/components", s.handleAddComponent)
			r.Get("/components", s.handleListComponents)
			r.Post("/attachment-points", s.handleAddAttachmentPoint)
			r.Get("/attachment-points", s.handleListAttachmentPoints)
			r.Put("/scaffold", s.handleSetScaffold)
			r.Post("/attachments", s.handleAttachComponent)
			r.Get("/image.png", s.handleImage)
		})
	})

	return r
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr, "backend", s.cfg.Session.Backend)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"elapsed", time.Since(start).Round(time.Millisecond),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
