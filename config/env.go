package config

import (
	"os"
	"time"
)

func Getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func Port() string {
	return Getenv("PORT", "5001")
}

func MongoURI() string {
	return Getenv("MONGO_URI", "mongodb://localhost:27017")
}

func DBName() string {
	return Getenv("DB_NAME", "arogya")
}

// JWTSecret returns the token signing secret. Empty means the server is
// misconfigured; token operations surface that as a server error instead
// of crashing the process.
func JWTSecret() string {
	return os.Getenv("JWT_SECRET")
}

// JWTLifetime is how long minted tokens stay valid. Defaults to one day.
func JWTLifetime() time.Duration {
	if d, err := time.ParseDuration(os.Getenv("JWT_EXPIRES_IN")); err == nil && d > 0 {
		return d
	}
	return 24 * time.Hour
}
