// Package status holds the shared connection status of the bot. The store is
// written only by the WhatsApp session adapter and read by command handlers
// and the HTTP status API.
package status

import (
	"fmt"
	"sync"
	"time"
)

// ConnectionState describes where the WhatsApp session currently is in its
// lifecycle.
type ConnectionState string

const (
	StateInitializing   ConnectionState = "initializing"
	StateQRPending      ConnectionState = "qr_pending"
	StatePairingPending ConnectionState = "pairing_pending"
	StateAuthenticating ConnectionState = "authenticating"
	StateLoading        ConnectionState = "loading"
	StateReady          ConnectionState = "ready"
	StateAuthFailed     ConnectionState = "auth_failed"
	StateDisconnected   ConnectionState = "disconnected"
)

// Snapshot is an immutable view of the store, safe to hold across calls.
type Snapshot struct {
	State       ConnectionState
	Status      string
	QRDataURL   string
	PairingCode string
	Ready       bool
	StartedAt   time.Time
}

// Uptime returns the time elapsed since the process started.
func (s Snapshot) Uptime() time.Duration {
	return time.Since(s.StartedAt)
}

// Store is the process-wide bot status. All mutating methods are intended to
// be called by the session lifecycle adapter only; everything else reads via
// Snapshot.
type Store struct {
	mu sync.RWMutex

	state       ConnectionState
	status      string
	qrDataURL   string
	pairingCode string
	ready       bool
	startedAt   time.Time
}

// NewStore returns a store in the initializing state with the start time set
// to now.
func NewStore() *Store {
	return &Store{
		state:     StateInitializing,
		status:    "Initializing...",
		startedAt: time.Now(),
	}
}

// Snapshot returns a copy of the current status.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		State:       s.state,
		Status:      s.status,
		QRDataURL:   s.qrDataURL,
		PairingCode: s.pairingCode,
		Ready:       s.ready,
		StartedAt:   s.startedAt,
	}
}

// SetQR stores a rendered QR challenge and moves to the QR-pending state.
// Any previously requested pairing code is superseded.
func (s *Store) SetQR(dataURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateQRPending
	s.status = "Scan the QR code to connect"
	s.qrDataURL = dataURL
	s.pairingCode = ""
	s.ready = false
}

// SetPairingCode stores a pairing code and moves to the pairing-pending
// state. Any displayed QR challenge is superseded.
func (s *Store) SetPairingCode(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StatePairingPending
	s.status = "Enter the pairing code on your phone"
	s.pairingCode = code
	s.qrDataURL = ""
	s.ready = false
}

// SetAuthenticated marks the session as authenticated but not yet usable.
func (s *Store) SetAuthenticated() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateAuthenticating
	s.status = "Authenticated, waiting for connection..."
	s.ready = false
}

// SetLoading records transient sync progress. Informational only.
func (s *Store) SetLoading(pending int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateLoading
	s.status = fmt.Sprintf("Syncing %d pending items...", pending)
	s.ready = false
}

// SetReady marks the session as connected and usable. QR and pairing code
// are cleared; a ready session no longer needs either.
func (s *Store) SetReady() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateReady
	s.status = "Connected"
	s.qrDataURL = ""
	s.pairingCode = ""
	s.ready = true
}

// SetAuthFailed records an authentication failure.
func (s *Store) SetAuthFailed(detail string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateAuthFailed
	s.status = "Authentication failed: " + detail
	s.qrDataURL = ""
	s.pairingCode = ""
	s.ready = false
}

// SetDisconnected records a dropped connection.
func (s *Store) SetDisconnected(detail string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateDisconnected
	if detail != "" {
		s.status = "Disconnected: " + detail
	} else {
		s.status = "Disconnected"
	}
	s.ready = false
}
