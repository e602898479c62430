package web_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/lockbox/gatebot/internal/bot"
	"github.com/lockbox/gatebot/internal/db"
	"github.com/lockbox/gatebot/internal/services"
	"github.com/lockbox/gatebot/internal/store"
	"github.com/lockbox/gatebot/internal/web"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	conn, err := db.Open(filepath.Join(t.TempDir(), "web_test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	settings := store.NewSettings(conn)
	if err := settings.EnsureDefault("0000"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	log := zap.NewNop()
	d := bot.NewDispatcher(
		bot.NewClient("test-token"),
		services.NewAccess(conn, log),
		services.NewAdmin(conn, nil, log),
		"", log)
	return web.Router("hunter2", d, settings)
}

func TestRouterHealthz(t *testing.T) {
	r := testRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestWebhookSecret(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/tg/webhook?secret=wrong", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("wrong secret: expected 403, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/tg/webhook?secret=hunter2", strings.NewReader("{}"))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("correct secret: expected 200, got %d", rec.Code)
	}
}

func TestWebhookBadJSON(t *testing.T) {
	r := testRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/tg/webhook?secret=hunter2", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestQRServesOnlyLiveCode(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/qr/0000.png", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("live code: expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %q, want image/png", ct)
	}

	req = httptest.NewRequest(http.MethodGet, "/qr/9999.png", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("stale code: expected 404, got %d", rec.Code)
	}
}
