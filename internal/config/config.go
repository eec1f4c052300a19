// Package config loads server settings from the environment, with an
// optional .env file for development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the process-level settings. Game rules are not
// configurable; rooms carry their own difficulty.
type Config struct {
	// Addr is the listen address for the websocket server.
	Addr string
	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string
}

// Load reads a .env file if present, then the environment. Missing
// variables fall back to defaults; Load never fails.
func Load() Config {
	_ = godotenv.Load() // absent .env is fine

	return Config{
		Addr:     getenv("BIGTWO_ADDR", ":3002"),
		LogLevel: getenv("BIGTWO_LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
