package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// "memory", "sqlite" or "firestore"
	StorageBackend string
	SQLitePath     string
	GCPProjectID   string

	// Reference zone for day keys. IANA name, e.g. "Europe/Madrid".
	Timezone string

	// Simulated companion latency bounds.
	ReplyMinDelay time.Duration
	ReplyMaxDelay time.Duration

	// Seed for template selection. 0 means seed from the clock.
	Seed int64
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getIntEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: ignoring %s=%q: %v", key, v, err)
		return def
	}
	return n
}

// Load reads all env vars and builds the config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		Port: getEnv("DAYBOOK_PORT", "8080"),

		StorageBackend: getEnv("DAYBOOK_STORAGE_BACKEND", "memory"),
		SQLitePath:     getEnv("DAYBOOK_DB_PATH", "daybook.db"),
		GCPProjectID:   getEnv("DAYBOOK_GCP_PROJECT", ""),

		Timezone: getEnv("DAYBOOK_TIMEZONE", "UTC"),

		ReplyMinDelay: time.Duration(getIntEnv("DAYBOOK_REPLY_MIN_MS", 750)) * time.Millisecond,
		ReplyMaxDelay: time.Duration(getIntEnv("DAYBOOK_REPLY_MAX_MS", 1500)) * time.Millisecond,

		Seed: int64(getIntEnv("DAYBOOK_SEED", 0)),
	}

	if cfg.StorageBackend == "firestore" && cfg.GCPProjectID == "" {
		log.Fatal("DAYBOOK_GCP_PROJECT must be set for the firestore backend")
	}
	if cfg.ReplyMaxDelay < cfg.ReplyMinDelay {
		cfg.ReplyMaxDelay = cfg.ReplyMinDelay
	}

	return cfg
}

// Location resolves the configured reference zone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("config: unknown timezone %q, using UTC", c.Timezone)
		return time.UTC
	}
	return loc
}
