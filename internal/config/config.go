// README: Config loader with env defaults for HTTP, DB, Redis, quoting, and API keys.
package config

import (
	"os"
	"strconv"
	"time"
)

type QuoteConfig struct {
	ValidFor        time.Duration
	SlotIntervalMin int
}

type Config struct {
	HTTP struct {
		Addr       string
		CORSOrigin string
	}
	DB struct {
		// DSN may be empty; the built-in seed dataset is used instead.
		DSN string
	}
	Redis struct {
		// Addr may be empty; quotes are then not re-fetchable by id.
		Addr string
	}
	Quote    QuoteConfig
	Firebase struct {
		ProjectID       string
		CredentialsFile string
	}
	AI struct {
		GeminiKey string
	}
	Maps struct {
		APIKey string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TGT_HTTP_ADDR", ":8080")
	cfg.HTTP.CORSOrigin = envOrDefault("TGT_CORS_ORIGIN", "https://timagreentours.com")
	cfg.DB.DSN = os.Getenv("TGT_DB_DSN")
	cfg.Redis.Addr = os.Getenv("TGT_REDIS_ADDR")
	cfg.Quote.ValidFor = time.Duration(envOrDefaultInt("TGT_QUOTE_TTL_HOURS", 24)) * time.Hour
	cfg.Quote.SlotIntervalMin = envOrDefaultInt("TGT_SLOT_INTERVAL_MIN", 60)
	cfg.Firebase.ProjectID = os.Getenv("TGT_FIREBASE_PROJECT_ID")
	cfg.Firebase.CredentialsFile = os.Getenv("TGT_FIREBASE_CREDENTIALS")
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.Maps.APIKey = os.Getenv("GOOGLE_MAPS_API_KEY")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
