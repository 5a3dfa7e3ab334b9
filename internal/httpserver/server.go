// Package httpserver exposes the bot's status over a small JSON API and
// serves the pairing dashboard.
package httpserver

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/edgard/wabot/internal/config"
	"github.com/edgard/wabot/internal/logger"
	"github.com/edgard/wabot/internal/status"
)

//go:embed dashboard.html
var dashboardHTML []byte

const shutdownTimeout = 5 * time.Second

// Pairer requests a phone-pairing code from the session adapter.
type Pairer interface {
	RequestPairingCode(ctx context.Context, phoneNumber string) (string, error)
}

// Server is the HTTP status API.
type Server struct {
	logger *slog.Logger
	cfg    *config.Config
	store  *status.Store
	pairer Pairer
	srv    *http.Server
}

// NewServer builds the server and its routes.
func NewServer(log *slog.Logger, cfg *config.Config, store *status.Store, pairer Pairer) *Server {
	s := &Server{
		logger: log.With("component", "httpserver"),
		cfg:    cfg,
		store:  store,
		pairer: pairer,
	}

	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: s.Routes(),
	}
	return s
}

// Routes assembles the chi router. Exposed separately for tests.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(logger.Middleware(s.logger))

	r.Get("/", s.handleDashboard)
	r.Get("/api/status", s.handleStatus)
	r.Get("/api/qr", s.handleQR)
	r.Post("/api/request-pairing", s.handleRequestPairing)
	r.Get("/api/health", s.handleHealth)

	return r
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	s.logger.Info("HTTP server stopped")
	return nil
}
