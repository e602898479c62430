package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries everything the bot needs at startup. All values come
// from the environment (optionally via a .env file).
type Config struct {
	BotToken          string
	AdminIDs          []int64
	DBPath            string
	DefaultAccessCode string
	Addr              string
	WebhookSecret     string

	// PublicURL is the externally reachable base URL of this server,
	// used to build QR image links Telegram can fetch. Empty disables
	// the QR photo.
	PublicURL string
}

// Load reads configuration from the environment. A missing .env file is
// not an error; a missing bot token is.
func Load() (*Config, error) {
	_ = godotenv.Load()

	token := strings.TrimSpace(os.Getenv("TG_BOT_TOKEN"))
	if token == "" {
		return nil, errors.New("TG_BOT_TOKEN is required")
	}

	return &Config{
		BotToken:          token,
		AdminIDs:          ParseAdminIDs(os.Getenv("ADMIN_IDS")),
		DBPath:            getEnv("DB_PATH", "gatebot.db"),
		DefaultAccessCode: getEnv("ACCESS_CODE", "0000"),
		Addr:              getEnv("ADDR", ":8080"),
		WebhookSecret:     os.Getenv("TG_WEBHOOK_SECRET"),
		PublicURL:         os.Getenv("PUBLIC_URL"),
	}, nil
}

// ParseAdminIDs parses a comma-separated list of Telegram user ids.
// Blank and malformed entries are skipped rather than failing startup.
func ParseAdminIDs(raw string) []int64 {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
