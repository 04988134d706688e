// Package config reads the bot's environment configuration. Callers load a
// .env file first (godotenv) so local runs match the deployed environment.
package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	// DefaultDBPath matches the path the bot has always used.
	DefaultDBPath = "data/alerts.db"
	// DefaultAnalyticsDBPath keeps the write-heavy usage feed in its own file.
	DefaultAnalyticsDBPath = "data/analytics.db"
)

// DBPath returns the alerts database path, DB_FILE overriding the default.
func DBPath() string {
	return String("DB_FILE", DefaultDBPath)
}

// AnalyticsDBPath returns the analytics database path.
func AnalyticsDBPath() string {
	return String("ANALYTICS_DB_FILE", DefaultAnalyticsDBPath)
}

// String returns the env value for key, or def when unset or blank.
func String(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}

// Int returns the env value parsed as an int, or def when unset or invalid.
func Int(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return def
}
