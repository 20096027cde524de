// Package server exposes the projection engine over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rpgo/bucket-planner/internal/calculation"
	"github.com/rpgo/bucket-planner/internal/config"
)

// maxBodyBytes bounds request bodies; portfolios are small documents.
const maxBodyBytes = 1 << 20

// Server wires the input parser and calculation engine into a chi router.
type Server struct {
	parser *config.InputParser
	logger calculation.Logger
	router chi.Router
}

// New builds a Server. A nil logger discards engine diagnostics.
func New(logger calculation.Logger) *Server {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	s := &Server{parser: config.NewInputParser(), logger: logger}
	s.router = s.setupRouter()
	return s
}

func (s *Server) setupRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/health", handleHealth)
	r.Post("/api/calculate", s.handleCalculate)
	r.Post("/api/custom", s.handleCustom)
	return r
}

// Handler returns the routed handler, mainly for httptest.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}
