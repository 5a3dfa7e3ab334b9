// Package tasks implements scheduled maintenance tasks for the bot.
package tasks

import (
	"context"
	"log/slog"

	"github.com/edgard/wabot/internal/config"
	"github.com/edgard/wabot/internal/status"
)

// PresenceSender marks the bot as available on the transport.
type PresenceSender interface {
	SendPresenceAvailable(ctx context.Context) error
}

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger   *slog.Logger
	Config   *config.Config
	Store    *status.Store
	Presence PresenceSender
}
