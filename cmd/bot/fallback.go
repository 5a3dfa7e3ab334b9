package main

import (
	"context"
	"errors"
)

var errClientUnavailable = errors.New("whatsapp client unavailable")

// unavailablePairer and unavailablePresence stand in for the WhatsApp client
// in degraded mode so the HTTP API and scheduler keep a valid dependency.
type unavailablePairer struct{}

func (unavailablePairer) RequestPairingCode(context.Context, string) (string, error) {
	return "", errClientUnavailable
}

type unavailablePresence struct{}

func (unavailablePresence) SendPresenceAvailable(context.Context) error {
	return errClientUnavailable
}
