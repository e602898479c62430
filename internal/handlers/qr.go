package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/lockbox/gatebot/internal/store"
)

// QR serves the current access code as a PNG. Only the live code is
// rendered; stale or guessed codes get a 404.
func QR(settings *store.Settings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "code")
		if code == "" {
			http.NotFound(w, r)
			return
		}
		current, err := settings.AccessCode()
		if err != nil {
			http.Error(w, "storage error", http.StatusInternalServerError)
			return
		}
		if current == "" || code != current {
			http.NotFound(w, r)
			return
		}

		png, err := qrcode.Encode(code, qrcode.Medium, 256)
		if err != nil {
			http.Error(w, "failed to generate qr", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(png)
	}
}
