package tasks

import (
	"context"
	"fmt"
)

// newPresenceKeepaliveTask creates a scheduled task that refreshes the bot's
// available presence while the session is ready. Skipped silently otherwise.
func newPresenceKeepaliveTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "presence_keepalive")

	return func(ctx context.Context) error {
		if !deps.Store.Snapshot().Ready {
			log.DebugContext(ctx, "Session not ready, skipping presence refresh")
			return nil
		}

		if err := deps.Presence.SendPresenceAvailable(ctx); err != nil {
			return fmt.Errorf("failed to refresh presence: %w", err)
		}

		log.DebugContext(ctx, "Presence refreshed")
		return nil
	}
}
