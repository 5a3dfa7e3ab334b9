package status_test

import (
	"testing"

	"github.com/edgard/wabot/internal/status"
)

func TestStoreInitialState(t *testing.T) {
	t.Parallel()

	snap := status.NewStore().Snapshot()

	if snap.State != status.StateInitializing {
		t.Errorf("initial state = %q, want %q", snap.State, status.StateInitializing)
	}
	if snap.Ready {
		t.Error("new store reports ready")
	}
	if snap.StartedAt.IsZero() {
		t.Error("start time not set")
	}
}

func TestStoreReadyClearsPairingArtifacts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(*status.Store)
	}{
		{
			name:  "after QR",
			setup: func(s *status.Store) { s.SetQR("data:image/png;base64,abc") },
		},
		{
			name:  "after pairing code",
			setup: func(s *status.Store) { s.SetPairingCode("ABCD-EFGH") },
		},
		{
			name: "after QR then pairing code",
			setup: func(s *status.Store) {
				s.SetQR("data:image/png;base64,abc")
				s.SetPairingCode("ABCD-EFGH")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := status.NewStore()
			tt.setup(store)
			store.SetAuthenticated()
			store.SetReady()

			snap := store.Snapshot()
			if !snap.Ready {
				t.Error("ready flag not set after SetReady")
			}
			if snap.State != status.StateReady {
				t.Errorf("state = %q, want %q", snap.State, status.StateReady)
			}
			if snap.QRDataURL != "" {
				t.Errorf("QR payload not cleared: %q", snap.QRDataURL)
			}
			if snap.PairingCode != "" {
				t.Errorf("pairing code not cleared: %q", snap.PairingCode)
			}
		})
	}
}

func TestStoreAtMostOnePairingArtifact(t *testing.T) {
	t.Parallel()

	store := status.NewStore()

	store.SetQR("data:image/png;base64,abc")
	snap := store.Snapshot()
	if snap.QRDataURL == "" || snap.PairingCode != "" {
		t.Errorf("after SetQR: qr=%q code=%q, want only qr set", snap.QRDataURL, snap.PairingCode)
	}

	store.SetPairingCode("ABCD-EFGH")
	snap = store.Snapshot()
	if snap.PairingCode == "" || snap.QRDataURL != "" {
		t.Errorf("after SetPairingCode: qr=%q code=%q, want only code set", snap.QRDataURL, snap.PairingCode)
	}
}

func TestStoreDisconnectedDetail(t *testing.T) {
	t.Parallel()

	store := status.NewStore()
	store.SetReady()
	store.SetDisconnected("stream replaced")

	snap := store.Snapshot()
	if snap.Ready {
		t.Error("ready flag still set after disconnect")
	}
	if snap.State != status.StateDisconnected {
		t.Errorf("state = %q, want %q", snap.State, status.StateDisconnected)
	}
	if snap.Status != "Disconnected: stream replaced" {
		t.Errorf("status = %q", snap.Status)
	}
}
