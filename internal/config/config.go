package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, sourced from the environment.
type Config struct {
	DatabaseURL    string
	ServerPort     string
	JWTSecret      string
	LowStockNotify string // "always" or "on_crossing"
}

// Load reads configuration from .env (if present) and the environment.
// An empty DatabaseURL selects the in-memory store.
func Load() *Config {
	godotenv.Load()

	return &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		ServerPort:     getEnv("APP_PORT", "8080"),
		JWTSecret:      getEnv("JWT_SECRET", "dev-secret-change-me"),
		LowStockNotify: getEnv("LOW_STOCK_NOTIFY", "always"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
