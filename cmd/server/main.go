package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/lockbox/gatebot/internal/bot"
	"github.com/lockbox/gatebot/internal/config"
	"github.com/lockbox/gatebot/internal/db"
	"github.com/lockbox/gatebot/internal/logging"
	"github.com/lockbox/gatebot/internal/services"
	"github.com/lockbox/gatebot/internal/store"
	"github.com/lockbox/gatebot/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("db open", zap.String("path", cfg.DBPath), zap.Error(err))
	}

	settings := store.NewSettings(conn)
	if err := settings.EnsureDefault(cfg.DefaultAccessCode); err != nil {
		logger.Fatal("seed access code", zap.Error(err))
	}

	access := services.NewAccess(conn, logger)
	admin := services.NewAdmin(conn, cfg.AdminIDs, logger)
	dispatcher := bot.NewDispatcher(bot.NewClient(cfg.BotToken), access, admin, cfg.PublicURL, logger)

	r := web.Router(cfg.WebhookSecret, dispatcher, settings)

	logger.Info("gatebot listening",
		zap.String("addr", cfg.Addr),
		zap.Int("admins", len(cfg.AdminIDs)))
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
