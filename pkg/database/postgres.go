package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"task-manager-backend/pkg/config"
)

const connectAttempts = 3

// NewPostgresConnection opens the database, retrying with exponential
// backoff. Connection establishment is the only thing the service ever
// retries; per-request store calls are not.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	backoff := 2 * time.Second

	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err == nil {
			log.Println("Connected to PostgreSQL")
			return db, nil
		}
		lastErr = err

		if attempt < connectAttempts {
			log.Printf("Database connection failed (attempt %d/%d): %v. Reconnecting in %s...",
				attempt, connectAttempts, err, backoff)
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	return nil, fmt.Errorf("connect database: %w", lastErr)
}
