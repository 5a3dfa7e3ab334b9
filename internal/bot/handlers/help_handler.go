package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/edgard/wabot/internal/bot"
)

// NewHelpHandler returns a handler for the help command, listing every
// registered command with the configured prefix.
func NewHelpHandler(deps HandlerDeps) bot.HandlerFunc {
	return helpHandler{deps}.Handle
}

type helpHandler struct {
	deps HandlerDeps
}

func (h helpHandler) Handle(ctx context.Context, msg bot.Message, _ []string) error {
	prefix := h.deps.Config.Bot.Prefix

	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, name := range CommandNames {
		b.WriteString(prefix)
		b.WriteString(name)
		b.WriteString("\n")
	}
	b.WriteString("\nPrefix: ")
	b.WriteString(prefix)

	if _, err := h.deps.Messenger.SendText(ctx, msg.Sender, b.String()); err != nil {
		return fmt.Errorf("failed to send help reply: %w", err)
	}
	return nil
}
