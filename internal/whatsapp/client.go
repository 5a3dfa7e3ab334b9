// Package whatsapp wraps the whatsmeow client. It owns the session store and
// all writes to the shared status store, and exposes the outbound message
// surface used by command handlers.
package whatsapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"google.golang.org/protobuf/proto"

	_ "modernc.org/sqlite"

	"github.com/edgard/wabot/internal/bot"
	"github.com/edgard/wabot/internal/config"
	"github.com/edgard/wabot/internal/status"
)

// MessageFunc receives each inbound text message.
type MessageFunc func(ctx context.Context, msg bot.Message)

// Client is the session lifecycle adapter around whatsmeow.
type Client struct {
	logger    *slog.Logger
	cfg       *config.Config
	store     *status.Store
	container *sqlstore.Container
	wa        *whatsmeow.Client
	onMessage MessageFunc
}

// NewClient opens the session store and constructs the underlying whatsmeow
// client. The session database is created if it does not exist.
func NewClient(ctx context.Context, cfg *config.Config, logger *slog.Logger, store *status.Store) (*Client, error) {
	log := logger.With("component", "whatsapp")

	container, err := sqlstore.New(ctx, "sqlite",
		fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", cfg.Session.DBPath),
		newLogAdapter(log.With("module", "sqlstore")))
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	device, err := container.GetFirstDevice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load device from session store: %w", err)
	}

	wa := whatsmeow.NewClient(device, newLogAdapter(log.With("module", "client")))
	wa.EnableAutoReconnect = cfg.Reconnect.Enabled

	c := &Client{
		logger:    log,
		cfg:       cfg,
		store:     store,
		container: container,
		wa:        wa,
	}
	wa.AddEventHandler(c.handleEvent)

	return c, nil
}

// SetMessageHandler registers the inbound message callback. Must be called
// before Run.
func (c *Client) SetMessageHandler(fn MessageFunc) {
	c.onMessage = fn
}

// Run connects the client and blocks until the context is cancelled, then
// disconnects and closes the session store. When no session exists yet, it
// consumes the QR channel and publishes rendered challenges to the status
// store until pairing completes.
func (c *Client) Run(ctx context.Context) error {
	if c.wa.Store.ID == nil {
		qrChan, err := c.wa.GetQRChannel(ctx)
		if err != nil {
			return fmt.Errorf("failed to open QR channel: %w", err)
		}

		if err := c.connectWithRetry(ctx); err != nil {
			return err
		}

		go c.consumeQRChannel(qrChan)
	} else {
		c.logger.Info("Existing session found, connecting", "jid", c.wa.Store.ID.String())
		if err := c.connectWithRetry(ctx); err != nil {
			return err
		}
	}

	<-ctx.Done()
	c.logger.Info("Shutting down WhatsApp client...")
	c.wa.Disconnect()
	if err := c.container.Close(); err != nil {
		c.logger.Error("Failed to close session store", "error", err)
	}
	return nil
}

// connectWithRetry applies the configured retry policy to the initial
// connection. With retries disabled a single attempt is made.
func (c *Client) connectWithRetry(ctx context.Context) error {
	attempts := 1
	if c.cfg.Reconnect.Enabled {
		attempts = c.cfg.Reconnect.MaxAttempts
	}
	backoff := c.cfg.Reconnect.InitialBackoff

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := c.wa.Connect(); err != nil {
			lastErr = err
			c.logger.Warn("Connection attempt failed",
				"attempt", attempt,
				"max_attempts", attempts,
				"error", err)

			if attempt == attempts {
				break
			}

			select {
			case <-time.After(backoff):
				backoff *= 2
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		}
		return nil
	}

	return fmt.Errorf("failed to connect after %d attempts: %w", attempts, lastErr)
}

// RequestPairingCode requests a phone-pairing code for the given number.
// The number is reduced to digits before the request; the resulting code is
// published to the status store.
func (c *Client) RequestPairingCode(ctx context.Context, phoneNumber string) (string, error) {
	digits := NormalizePhone(phoneNumber)
	if digits == "" {
		return "", errors.New("phone number contains no digits")
	}

	code, err := c.wa.PairPhone(ctx, digits, true, whatsmeow.PairClientChrome, "Chrome (Linux)")
	if err != nil {
		return "", fmt.Errorf("failed to request pairing code: %w", err)
	}

	c.store.SetPairingCode(code)
	c.logger.Info("Pairing code generated", "number", digits)
	return code, nil
}

// SendText implements bot.Messenger.
func (c *Client) SendText(ctx context.Context, to string, text string) (string, error) {
	jid, err := types.ParseJID(to)
	if err != nil {
		return "", fmt.Errorf("invalid recipient %q: %w", to, err)
	}

	resp, err := c.wa.SendMessage(ctx, jid, &waE2E.Message{
		Conversation: proto.String(text),
	})
	if err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}
	return string(resp.ID), nil
}

// EditText implements bot.Messenger by sending a protocol edit for a
// previously sent message.
func (c *Client) EditText(ctx context.Context, to string, id string, text string) error {
	jid, err := types.ParseJID(to)
	if err != nil {
		return fmt.Errorf("invalid recipient %q: %w", to, err)
	}

	edit := c.wa.BuildEdit(jid, types.MessageID(id), &waE2E.Message{
		Conversation: proto.String(text),
	})
	if _, err := c.wa.SendMessage(ctx, jid, edit); err != nil {
		return fmt.Errorf("failed to edit message: %w", err)
	}
	return nil
}

// SupportsEdit reports that this transport can edit sent messages.
func (c *Client) SupportsEdit() bool { return true }

// SendPresenceAvailable refreshes the bot's available presence.
func (c *Client) SendPresenceAvailable(_ context.Context) error {
	if err := c.wa.SendPresence(types.PresenceAvailable); err != nil {
		return fmt.Errorf("failed to send presence: %w", err)
	}
	return nil
}
