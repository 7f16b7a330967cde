package main

import (
	"log"

	"portfolio-pulse-be/internal/config"
	"portfolio-pulse-be/internal/model"
	"portfolio-pulse-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	log.Println("Running migrations...")
	err = db.AutoMigrate(
		&model.AnalyticsEvent{},
		&model.ChatMessage{},
		&model.ContactSubmission{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations complete")
}
