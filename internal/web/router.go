package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lockbox/gatebot/internal/bot"
	"github.com/lockbox/gatebot/internal/handlers"
	"github.com/lockbox/gatebot/internal/store"
)

func Router(secret string, d *bot.Dispatcher, settings *store.Settings) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handlers.Health)
	r.Post("/tg/webhook", handlers.TelegramWebhook(secret, d))
	r.Get("/qr/{code}.png", handlers.QR(settings))

	return r
}
