package config

import (
	"crypto/rand"
	"encoding/hex"
	"os"
)

type Config struct {
	ServerAddr    string
	DBPath        string
	AdminPassword string
	SessionSecret string
	LogLevel      string
}

func Load() *Config {
	return &Config{
		ServerAddr:    getEnvOrDefault("SERVER_ADDR", ":8080"),
		DBPath:        getEnvOrDefault("DB_PATH", "videos.db"),
		AdminPassword: getEnvOrDefault("ADMIN_PASSWORD", "z3z3"),
		SessionSecret: getEnvOrDefault("SESSION_SECRET", generateDefaultSecret()),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// generateDefaultSecret makes sessions work out of the box in dev; a
// restart invalidates them, so production sets SESSION_SECRET.
func generateDefaultSecret() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "dev-secret-change-in-production"
	}
	return hex.EncodeToString(bytes)
}
