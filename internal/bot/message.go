// Package bot implements command parsing and dispatch for inbound WhatsApp
// messages.
package bot

import (
	"context"
)

// Message is a single inbound text message. Sender is the chat identifier in
// the transport's serialized form; handlers pass it back unchanged when
// replying.
type Message struct {
	Text   string
	Sender string
	ID     string
}

// Messenger is the outbound side of the transport, implemented by the
// WhatsApp client adapter.
type Messenger interface {
	// SendText sends a text message and returns the transport message ID.
	SendText(ctx context.Context, to string, text string) (string, error)

	// EditText replaces the content of a previously sent message.
	EditText(ctx context.Context, to string, id string, text string) error

	// SupportsEdit reports whether EditText is usable on this transport.
	SupportsEdit() bool
}

// HandlerFunc processes one command invocation. Errors are handled by the
// dispatcher; handlers never reply with error details themselves.
type HandlerFunc func(ctx context.Context, msg Message, args []string) error
