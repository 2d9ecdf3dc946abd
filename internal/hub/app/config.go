package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	BackendBaseURL string // Base URL of the SIGESLA backend API (default: http://localhost:3000/api)

	DatabaseFile    string        // Optional: path to SQLite database file (default: ./hub.db)
	SessionTTL      time.Duration // Optional: idle browser session lifetime (default: 12h)
	LaunchRetention time.Duration // Optional: launch audit retention (default: 90 days)
	SecureCookies   bool          // Mark session cookies Secure (default: true outside dev)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		BackendBaseURL:       getEnvOrDefault("HUB_API_BASE_URL", "http://localhost:3000/api"),
		DatabaseFile:         getEnvOrDefault("HUB_DATABASE_FILE", "hub.db"),
		SessionTTL:           getEnvDurationOrDefault("HUB_SESSION_TTL", 12*time.Hour),
		LaunchRetention:      getEnvDurationOrDefault("HUB_LAUNCH_RETENTION", 90*24*time.Hour),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	cfg.SecureCookies = getEnvBoolOrDefault("HUB_SECURE_COOKIES", cfg.Env != "dev")

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
