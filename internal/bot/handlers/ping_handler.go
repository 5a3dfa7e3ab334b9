package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/edgard/wabot/internal/bot"
)

// NewPingHandler returns a handler for the ping command. It sends a
// placeholder reply, measures the round trip, and reports the latency either
// by editing the placeholder (when configured and supported) or by sending a
// second message.
func NewPingHandler(deps HandlerDeps) bot.HandlerFunc {
	return pingHandler{deps}.Handle
}

type pingHandler struct {
	deps HandlerDeps
}

func (h pingHandler) Handle(ctx context.Context, msg bot.Message, _ []string) error {
	log := h.deps.Logger.With("handler", "ping")

	startTime := time.Now()
	placeholderID, err := h.deps.Messenger.SendText(ctx, msg.Sender, "Pinging...")
	if err != nil {
		return fmt.Errorf("failed to send ping placeholder: %w", err)
	}

	latency := time.Since(startTime).Milliseconds()
	pong := fmt.Sprintf("Pong! %d ms", latency)

	if h.deps.Config.Bot.PingEdit && h.deps.Messenger.SupportsEdit() {
		if err := h.deps.Messenger.EditText(ctx, msg.Sender, placeholderID, pong); err != nil {
			return fmt.Errorf("failed to edit ping reply: %w", err)
		}
		log.DebugContext(ctx, "Edited ping reply in place", "latency_ms", latency)
		return nil
	}

	if _, err := h.deps.Messenger.SendText(ctx, msg.Sender, pong); err != nil {
		return fmt.Errorf("failed to send pong: %w", err)
	}
	log.DebugContext(ctx, "Sent pong", "latency_ms", latency)
	return nil
}
