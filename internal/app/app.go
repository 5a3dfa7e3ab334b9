// Package app supervises the application components and manages their
// lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/edgard/wabot/internal/bot"
	"github.com/edgard/wabot/internal/config"
	"github.com/edgard/wabot/internal/httpserver"
	"github.com/edgard/wabot/internal/status"
	"github.com/edgard/wabot/internal/whatsapp"
)

// App runs the WhatsApp client, HTTP status API, and scheduler together.
type App struct {
	logger    *slog.Logger
	cfg       *config.Config
	store     *status.Store
	client    *whatsapp.Client
	httpSrv   *httpserver.Server
	scheduler *bot.Scheduler
}

// New creates the component supervisor. client may be nil when the WhatsApp
// client failed to initialize; the app then serves the status API in
// degraded mode.
func New(
	logger *slog.Logger,
	cfg *config.Config,
	store *status.Store,
	client *whatsapp.Client,
	httpSrv *httpserver.Server,
	scheduler *bot.Scheduler,
) *App {
	return &App{
		logger:    logger.With("component", "orchestrator"),
		cfg:       cfg,
		store:     store,
		client:    client,
		httpSrv:   httpSrv,
		scheduler: scheduler,
	}
}

// Run starts all components and blocks until the context is cancelled or the
// HTTP server fails. A WhatsApp connection failure is not fatal: the status
// store records the failure and the HTTP API keeps serving.
func (a *App) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	if a.client != nil {
		g.Go(func() error {
			if err := a.client.Run(gCtx); err != nil {
				a.logger.Error("WhatsApp client stopped with error, continuing in degraded mode", "error", err)
				a.store.SetAuthFailed(err.Error())
			}
			return nil
		})
	} else {
		a.logger.Warn("WhatsApp client unavailable, serving status API only")
	}

	g.Go(func() error {
		return a.httpSrv.Run(gCtx)
	})

	g.Go(func() error {
		if err := a.scheduler.Start(); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}

		<-gCtx.Done()
		if err := a.scheduler.Stop(); err != nil {
			a.logger.Error("Error stopping scheduler", "error", err)
		}
		return nil
	})

	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		a.logger.Error("Application stopped due to error", "error", err)
		return err
	}

	a.logger.Info("Application stopped gracefully.")
	return nil
}
