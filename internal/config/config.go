package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alpine-labs/my-pace/internal/logger"
)

// DemoAPIKey is USDA's public rate-limited key, used when neither the
// stored profile setting nor the environment provides one.
const DemoAPIKey = "DEMO_KEY"

// EnvUSDAAPIKey overrides the API key when no profile key is stored.
const EnvUSDAAPIKey = "MYPACE_USDA_API_KEY"

var customLog = logger.NewLogger()

// Load reads a .env file if one is present. Missing files are fine;
// anything else is worth a warning but never fatal.
func Load() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		customLog.Warnf("Error loading .env file: %v", err)
	}
}

// ResolveUSDAAPIKey applies the contractual precedence order:
// stored profile setting > environment variable > demo key.
func ResolveUSDAAPIKey(storedKey string) string {
	if key := strings.TrimSpace(storedKey); key != "" {
		return key
	}
	if key := strings.TrimSpace(os.Getenv(EnvUSDAAPIKey)); key != "" && key != DemoAPIKey {
		return key
	}
	return DemoAPIKey
}

// GetEnv reads an environment variable or returns the fallback.
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
