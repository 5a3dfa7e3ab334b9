package handlers

import (
	"context"
	"fmt"

	"github.com/edgard/wabot/internal/bot"
)

// NewOwnerHandler returns a handler for the owner command, reporting the
// configured owner contact details.
func NewOwnerHandler(deps HandlerDeps) bot.HandlerFunc {
	return ownerHandler{deps}.Handle
}

type ownerHandler struct {
	deps HandlerDeps
}

func (h ownerHandler) Handle(ctx context.Context, msg bot.Message, _ []string) error {
	owner := h.deps.Config.Owner

	reply := fmt.Sprintf("Owner: %s\nNumber: %s\nContact: https://wa.me/%s",
		owner.Name, owner.Number, owner.Number)

	if _, err := h.deps.Messenger.SendText(ctx, msg.Sender, reply); err != nil {
		return fmt.Errorf("failed to send owner reply: %w", err)
	}
	return nil
}
