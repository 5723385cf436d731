package config

import (
	"os"
	"strconv"
)

// GetEnv reads an environment variable, falling back to a default
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// GetEnvAsInt reads an environment variable as an integer, falling back to a default
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// JWTSecret is the token signing key. Read at call time, not package init,
// so a value loaded from .env by godotenv is honored.
func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "authentix-dev-secret"))
}
