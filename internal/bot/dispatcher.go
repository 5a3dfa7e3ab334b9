package bot

import (
	"context"
	"log/slog"
	"strings"

	"github.com/edgard/wabot/internal/status"
)

// Dispatcher routes prefixed text commands to their registered handlers.
type Dispatcher struct {
	logger     *slog.Logger
	prefix     string
	errorReply string
	handlers   map[string]HandlerFunc
	messenger  Messenger
	store      *status.Store
}

// NewDispatcher creates a dispatcher over a static command registry.
func NewDispatcher(logger *slog.Logger, prefix string, handlers map[string]HandlerFunc, messenger Messenger, store *status.Store) *Dispatcher {
	return &Dispatcher{
		logger:     logger.With("component", "dispatcher"),
		prefix:     prefix,
		errorReply: "Something went wrong while running that command.",
		handlers:   handlers,
		messenger:  messenger,
		store:      store,
	}
}

// Dispatch parses an inbound message and invokes the matching handler.
// Messages are discarded while the session is not ready, when the prefix
// does not match, and when the command name is unknown. Unknown commands are
// intentionally left without an error reply.
func (d *Dispatcher) Dispatch(ctx context.Context, msg Message) {
	if !d.store.Snapshot().Ready {
		return
	}

	text := strings.TrimSpace(msg.Text)
	if !strings.HasPrefix(text, d.prefix) {
		return
	}

	fields := strings.Fields(strings.TrimPrefix(text, d.prefix))
	if len(fields) == 0 {
		return
	}

	name := strings.ToLower(fields[0])
	args := fields[1:]

	handler, ok := d.handlers[name]
	if !ok {
		d.logger.DebugContext(ctx, "Ignoring unknown command", "command", name, "sender", msg.Sender)
		return
	}

	d.logger.InfoContext(ctx, "Dispatching command", "command", name, "sender", msg.Sender)

	if err := handler(ctx, msg, args); err != nil {
		d.logger.ErrorContext(ctx, "Command handler failed", "command", name, "sender", msg.Sender, "error", err)

		if _, sendErr := d.messenger.SendText(ctx, msg.Sender, d.errorReply); sendErr != nil {
			d.logger.ErrorContext(ctx, "Failed to send error reply", "command", name, "sender", msg.Sender, "error", sendErr)
		}
	}
}
