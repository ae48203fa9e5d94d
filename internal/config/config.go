package config

import (
	"os"

	"github.com/joho/godotenv"
)

// DefaultDataFile is the roster file used when ENROLLMENT_FILE is not set.
const DefaultDataFile = "Enrollments.json"

// Config holds all application configuration.
type Config struct {
	DataFile  string
	LogLevel  string
	LogFormat string
	// LogFile receives diagnostics. Empty means stderr; stdout is reserved
	// for the interactive console.
	LogFile string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		DataFile:  getEnv("ENROLLMENT_FILE", DefaultDataFile),
		LogLevel:  getEnv("LOG_LEVEL", "warn"),
		LogFormat: getEnv("LOG_FORMAT", "pretty"),
		LogFile:   getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
