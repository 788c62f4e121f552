package main

import (
	"log"

	"notes-taking-be/internal/config"
	"notes-taking-be/internal/model"
	"notes-taking-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDB(database.GormConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// gen_random_uuid() needs pgcrypto on older Postgres versions.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
	}

	if err := db.AutoMigrate(&model.Note{}); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("Success: Database migration completed via GORM.")
}
