// Package config reads application configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port           string
	SiteDir        string
	FacilitiesPath string
	DBPath         string
	DatabaseURL    string
	RedisAddr      string
	OpenAIKey      string
	OpenRouterKey  string
	TickInterval   time.Duration
	CacheTTL       time.Duration
}

// Load reads configuration with sensible defaults for local runs.
func Load() *Config {
	return &Config{
		Port:           Get("PORT", "5176"),
		SiteDir:        Get("SITE_DIR", "site"),
		FacilitiesPath: Get("FACILITIES_PATH", "data/facilities.json"),
		DBPath:         Get("DB_PATH", "data/app.db"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenRouterKey:  os.Getenv("OPENROUTER_API_KEY"),
		TickInterval:   getDuration("TICK_INTERVAL_MS", 1500) * time.Millisecond,
		CacheTTL:       getDuration("CACHE_TTL_SECONDS", 86400) * time.Second,
	}
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n)
		}
	}
	return time.Duration(fallback)
}
