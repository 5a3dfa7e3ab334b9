package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/edgard/wabot/internal/config"
	"github.com/edgard/wabot/internal/httpserver"
	"github.com/edgard/wabot/internal/status"
)

type fakePairer struct {
	code   string
	err    error
	gotNum string
	called bool
}

func (p *fakePairer) RequestPairingCode(_ context.Context, phoneNumber string) (string, error) {
	p.called = true
	p.gotNum = phoneNumber
	if p.err != nil {
		return "", p.err
	}
	return p.code, nil
}

func newTestServer(store *status.Store, pairer httpserver.Pairer) http.Handler {
	cfg := &config.Config{
		Bot:  config.BotConfig{Prefix: "!"},
		HTTP: config.HTTPConfig{Port: 3000},
	}
	return httpserver.NewServer(slog.Default(), cfg, store, pairer).Routes()
}

func TestStatusEndpoint(t *testing.T) {
	t.Parallel()

	store := status.NewStore()
	store.SetQR("data:image/png;base64,abc")
	handler := newTestServer(store, &fakePairer{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Status         string `json:"status"`
		IsReady        bool   `json:"isReady"`
		HasQR          bool   `json:"hasQR"`
		HasPairingCode bool   `json:"hasPairingCode"`
		Uptime         int64  `json:"uptime"`
		Prefix         string `json:"prefix"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if body.IsReady {
		t.Error("isReady = true before ready event")
	}
	if !body.HasQR {
		t.Error("hasQR = false with QR stored")
	}
	if body.HasPairingCode {
		t.Error("hasPairingCode = true without a pairing code")
	}
	if body.Prefix != "!" {
		t.Errorf("prefix = %q, want !", body.Prefix)
	}
	if body.Uptime < 0 {
		t.Errorf("uptime = %d, want >= 0", body.Uptime)
	}
}

func TestStatusAfterReadyClearsPairingFlags(t *testing.T) {
	t.Parallel()

	store := status.NewStore()
	store.SetQR("data:image/png;base64,abc")
	store.SetReady()
	handler := newTestServer(store, &fakePairer{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["isReady"] != true {
		t.Error("isReady = false after ready event")
	}
	if body["hasQR"] != false || body["hasPairingCode"] != false {
		t.Errorf("pairing flags not cleared after ready: %v", body)
	}
}

func TestQREndpoint(t *testing.T) {
	t.Parallel()

	t.Run("404 when absent", func(t *testing.T) {
		t.Parallel()

		handler := newTestServer(status.NewStore(), &fakePairer{})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/qr", nil))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if body["error"] == "" {
			t.Error("404 body missing error field")
		}
	})

	t.Run("returns stored payload", func(t *testing.T) {
		t.Parallel()

		store := status.NewStore()
		store.SetQR("data:image/png;base64,abc")
		handler := newTestServer(store, &fakePairer{})

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/qr", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if body["qr"] != "data:image/png;base64,abc" {
			t.Errorf("qr = %q", body["qr"])
		}
	})
}

func TestRequestPairingEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		pairer := &fakePairer{code: "ABCD-EFGH"}
		handler := newTestServer(status.NewStore(), pairer)

		req := httptest.NewRequest(http.MethodPost, "/api/request-pairing",
			strings.NewReader(`{"phoneNumber":"+1 (234) 567-8900"}`))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if !pairer.called {
			t.Fatal("pairer not invoked")
		}
		if pairer.gotNum != "+1 (234) 567-8900" {
			t.Errorf("pairer received %q", pairer.gotNum)
		}

		var body map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if body["success"] != true || body["code"] != "ABCD-EFGH" {
			t.Errorf("body = %v", body)
		}
	})

	t.Run("pairer failure returns 500 with detail", func(t *testing.T) {
		t.Parallel()

		pairer := &fakePairer{err: errors.New("not connected")}
		handler := newTestServer(status.NewStore(), pairer)

		req := httptest.NewRequest(http.MethodPost, "/api/request-pairing",
			strings.NewReader(`{"phoneNumber":"12345678900"}`))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rec.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if body["error"] == "" || !strings.Contains(body["details"], "not connected") {
			t.Errorf("body = %v", body)
		}
	})

	t.Run("missing number returns 400", func(t *testing.T) {
		t.Parallel()

		pairer := &fakePairer{}
		handler := newTestServer(status.NewStore(), pairer)

		req := httptest.NewRequest(http.MethodPost, "/api/request-pairing", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if pairer.called {
			t.Error("pairer invoked for invalid request")
		}
	})
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	store := status.NewStore()
	store.SetReady()
	handler := newTestServer(store, &fakePairer{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %v", body["status"])
	}
	if body["bot"] != true {
		t.Errorf("bot field = %v", body["bot"])
	}
	if body["timestamp"] == "" {
		t.Error("timestamp missing")
	}
}

func TestDashboardServed(t *testing.T) {
	t.Parallel()

	handler := newTestServer(status.NewStore(), &fakePairer{})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "/api/status") {
		t.Error("dashboard does not poll /api/status")
	}
}
