package config

import (
	"os"
	"strconv"
)

// Config holds the application settings read from environment variables.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	LogLevel  string
	LogFormat string

	// Seed admin account, created at startup when it does not exist.
	AdminEmail    string
	AdminPassword string

	// Pending parking reservations older than this many hours are purged
	// by the cleanup job.
	PendingReservationTTLHours int
}

// Load reads the configuration from the environment, applying defaults.
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@smarak.in"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		PendingReservationTTLHours: getEnvInt("PENDING_RESERVATION_TTL_HOURS", 24),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
