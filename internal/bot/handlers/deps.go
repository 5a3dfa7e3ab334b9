// Package handlers implements the bot's text commands.
package handlers

import (
	"log/slog"

	"github.com/edgard/wabot/internal/bot"
	"github.com/edgard/wabot/internal/config"
	"github.com/edgard/wabot/internal/status"
)

// HandlerDeps provides dependencies for command handlers.
type HandlerDeps struct {
	Logger    *slog.Logger
	Config    *config.Config
	Messenger bot.Messenger
	Store     *status.Store
}
