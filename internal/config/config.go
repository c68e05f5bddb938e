package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration. The loaded dataset is passed
// around explicitly; nothing here is mutated after Load.
type Config struct {
	// Environment
	Environment string
	Port        string

	// Dataset source. DatasetURL (postgres DSN) wins over DatasetPath (JSON
	// file); with neither set the embedded sample dataset is used.
	DatasetURL  string
	DatasetPath string

	// Classifier selection: "heuristic" (default) or "advanced" (template
	// matching with heuristic fallback).
	Classifier string

	// RandomSeed seeds the generation RNG. 0 means seed from the clock.
	RandomSeed int64

	// Observability
	SentryDSN string

	// Auth mode
	// - "none": No auth (self-hosted, local dev)
	// - "gateway": Trust X-User-* headers from an upstream gateway
	AuthMode string
}

func Load() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8080"),
		DatasetURL:  getEnv("DATASET_URL", ""),
		DatasetPath: getEnv("DATASET_PATH", ""),
		Classifier:  getEnv("CLASSIFIER", "heuristic"),
		RandomSeed:  getEnvInt64("RANDOM_SEED", 0),
		SentryDSN:   getEnv("SENTRY_DSN", ""),
		AuthMode:    getEnv("AUTH_MODE", "none"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// IsGatewayMode returns true if running behind an authenticating gateway.
func (c *Config) IsGatewayMode() bool {
	return c.AuthMode == "gateway"
}

// IsProduction returns true in the production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
