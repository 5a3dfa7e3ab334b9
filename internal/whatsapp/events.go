package whatsapp

import (
	"context"

	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types/events"

	"github.com/edgard/wabot/internal/bot"
)

// handleEvent maps whatsmeow lifecycle events onto the status store and
// forwards inbound text messages to the registered message handler.
func (c *Client) handleEvent(evt interface{}) {
	switch v := evt.(type) {
	case *events.PairSuccess:
		c.logger.Info("Paired successfully", "jid", v.ID.String())
		c.store.SetAuthenticated()

	case *events.Connected:
		c.logger.Info("Connected and ready")
		c.store.SetReady()

	case *events.OfflineSyncPreview:
		// Informational only; do not drop the ready flag once connected.
		if !c.store.Snapshot().Ready {
			c.logger.Debug("Offline sync started", "total", v.Total)
			c.store.SetLoading(v.Total)
		}

	case *events.OfflineSyncCompleted:
		if !c.store.Snapshot().Ready && c.wa.IsLoggedIn() {
			c.logger.Debug("Offline sync completed")
			c.store.SetReady()
		}

	case *events.LoggedOut:
		c.logger.Error("Logged out by server", "reason", v.Reason.String())
		c.store.SetAuthFailed("logged out: " + v.Reason.String())

	case *events.ConnectFailure:
		c.logger.Error("Connection failure", "reason", v.Reason.String())
		c.store.SetAuthFailed(v.Reason.String())

	case *events.StreamReplaced:
		c.logger.Warn("Stream replaced by another session")
		c.store.SetDisconnected("stream replaced")

	case *events.Disconnected:
		c.logger.Warn("Disconnected", "auto_reconnect", c.cfg.Reconnect.Enabled)
		c.store.SetDisconnected("")

	case *events.Message:
		c.handleMessage(v)
	}
}

// handleMessage extracts text content and hands it to the dispatcher. Each
// message runs on its own goroutine so a slow handler never blocks the event
// loop.
func (c *Client) handleMessage(evt *events.Message) {
	if c.onMessage == nil || evt.Info.IsFromMe {
		return
	}

	text := extractText(evt.Message)
	if text == "" {
		return
	}

	msg := bot.Message{
		Text:   text,
		Sender: evt.Info.Chat.String(),
		ID:     string(evt.Info.ID),
	}
	go c.onMessage(context.Background(), msg)
}

// consumeQRChannel renders each QR challenge into the status store until the
// channel closes (pairing succeeded, timed out, or the client stopped).
func (c *Client) consumeQRChannel(qrChan <-chan whatsmeow.QRChannelItem) {
	for item := range qrChan {
		switch item.Event {
		case whatsmeow.QRChannelEventCode:
			dataURL, err := renderQRDataURL(item.Code)
			if err != nil {
				c.logger.Error("Failed to render QR code", "error", err)
				continue
			}
			c.logger.Info("New QR challenge received")
			c.store.SetQR(dataURL)

		case whatsmeow.QRChannelEventError:
			c.logger.Error("QR channel error", "error", item.Error)
			c.store.SetAuthFailed(item.Error.Error())

		default:
			// success, timeout, and client-outdated are terminal; lifecycle
			// events carry the resulting state.
			c.logger.Debug("QR channel closed", "event", item.Event)
		}
	}
}

// extractText pulls the plain text out of a message payload, covering both
// simple and extended text messages.
func extractText(msg *waE2E.Message) string {
	if msg == nil {
		return ""
	}
	if text := msg.GetConversation(); text != "" {
		return text
	}
	return msg.GetExtendedTextMessage().GetText()
}
