// Package main contains the entrypoint for the WhatsApp bot application.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/edgard/wabot/internal/app"
	"github.com/edgard/wabot/internal/bot"
	"github.com/edgard/wabot/internal/bot/handlers"
	"github.com/edgard/wabot/internal/bot/tasks"
	"github.com/edgard/wabot/internal/config"
	"github.com/edgard/wabot/internal/httpserver"
	"github.com/edgard/wabot/internal/logger"
	"github.com/edgard/wabot/internal/status"
	"github.com/edgard/wabot/internal/whatsapp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run initializes and starts all application components (config, logger,
// status store, WhatsApp client, dispatcher, HTTP server, scheduler),
// handles graceful shutdown, and returns an exit code.
func run(ctx context.Context) int {
	configPath := flag.String("config", "./config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Log.Level, cfg.Log.JSON)
	slog.SetDefault(log)
	log.Info("Logger initialized", "level", cfg.Log.Level, "json", cfg.Log.JSON)

	store := status.NewStore()

	// A client failure is degraded, not fatal: the dashboard stays up so the
	// failure is visible.
	client, err := whatsapp.NewClient(ctx, cfg, log, store)
	if err != nil {
		log.Error("Failed to initialize WhatsApp client, continuing without it", "error", err)
		store.SetAuthFailed(err.Error())
		client = nil
	}

	var pairer httpserver.Pairer
	var presence tasks.PresenceSender
	if client != nil {
		hDeps := handlers.HandlerDeps{
			Logger:    log,
			Config:    cfg,
			Messenger: client,
			Store:     store,
		}
		dispatcher := bot.NewDispatcher(log, cfg.Bot.Prefix, handlers.RegisterAllCommands(hDeps), client, store)
		client.SetMessageHandler(dispatcher.Dispatch)

		pairer = client
		presence = client
	} else {
		pairer = unavailablePairer{}
		presence = unavailablePresence{}
	}

	httpSrv := httpserver.NewServer(log, cfg, store, pairer)

	taskMap := tasks.RegisterAllTasks(tasks.TaskDeps{
		Logger:   log,
		Config:   cfg,
		Store:    store,
		Presence: presence,
	})
	scheduler, err := bot.NewScheduler(log, &cfg.Scheduler, taskMap)
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}

	application := app.New(log, cfg, store, client, httpSrv, scheduler)

	log.Info("Starting bot...", "prefix", cfg.Bot.Prefix, "http_port", cfg.HTTP.Port)
	if err := application.Run(ctx); err != nil {
		log.Error("Bot stopped due to error", "error", err)
		return 1
	}

	log.Info("Bot stopped gracefully.")
	return 0
}
