package httpserver

import (
	"encoding/json"
	"net/http"
	"time"
)

// statusResponse is the /api/status payload.
type statusResponse struct {
	Status         string `json:"status"`
	IsReady        bool   `json:"isReady"`
	HasQR          bool   `json:"hasQR"`
	HasPairingCode bool   `json:"hasPairingCode"`
	Uptime         int64  `json:"uptime"`
	Prefix         string `json:"prefix"`
}

func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(dashboardHTML)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Snapshot()

	writeJSON(w, http.StatusOK, statusResponse{
		Status:         snap.Status,
		IsReady:        snap.Ready,
		HasQR:          snap.QRDataURL != "",
		HasPairingCode: snap.PairingCode != "",
		Uptime:         int64(snap.Uptime().Seconds()),
		Prefix:         s.cfg.Bot.Prefix,
	})
}

func (s *Server) handleQR(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Snapshot()
	if snap.QRDataURL == "" {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "QR code not available"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"qr": snap.QRDataURL})
}

func (s *Server) handleRequestPairing(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PhoneNumber string `json:"phoneNumber"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.PhoneNumber == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "phoneNumber is required"})
		return
	}

	code, err := s.pairer.RequestPairingCode(r.Context(), body.PhoneNumber)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Pairing code request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Failed to generate pairing code",
			"details": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"code":    code,
		"message": "Enter this code on your phone under Linked Devices",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"bot":       s.store.Snapshot().Ready,
	})
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
