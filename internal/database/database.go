package database

import (
	"log"

	"quiz-ingest-backend/internal/config"
	"quiz-ingest-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the archive database. It returns nil when no DSN is
// configured.
func Connect(cfg *config.Config) *gorm.DB {
	if cfg.DatabaseDSN == "" {
		log.Println("DATABASE_DSN not set, quiz archive disabled")
		return nil
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	if err := db.AutoMigrate(&models.QuizItem{}); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}
	log.Println("database migrated")
}
