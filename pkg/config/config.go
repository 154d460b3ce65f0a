package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting. It is built once at startup and
// handed to constructors; nothing reads the environment at call time.
type Config struct {
	Port              string
	DatabaseURL       string
	JWTSecret         string
	AccessTokenExpiry time.Duration
	CORSOrigin        string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	accessExpiry := 24 * time.Hour
	if exp := os.Getenv("ACCESS_TOKEN_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			accessExpiry = parsed
		}
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       getEnv("DATABASE_URL", "host=localhost port=5432 user=postgres password=postgres dbname=task_manager sslmode=disable"),
		JWTSecret:         getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		AccessTokenExpiry: accessExpiry,
		CORSOrigin:        getEnv("CORS_ORIGIN", "*"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
