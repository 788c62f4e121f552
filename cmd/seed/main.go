package main

import (
	"log"

	"notes-taking-be/internal/config"
	"notes-taking-be/internal/model"
	"notes-taking-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
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

	color.Cyan("Seeding sample notes...")

	notes := []model.Note{
		{Id: uuid.New(), Title: "Welcome", Body: "This is your first note."},
		{Id: uuid.New(), Title: "Shopping list", Body: "Milk, eggs, coffee."},
		{Id: uuid.New(), Title: "Meeting notes", Body: "Discussed the release plan for Q4."},
		{Id: uuid.New(), Title: "Ideas", Body: "Try the new pagination endpoint."},
	}

	for _, n := range notes {
		// Skip titles that already exist so the seeder stays idempotent.
		var existing model.Note
		if err := db.Where("title = ?", n.Title).First(&existing).Error; err == nil {
			color.Yellow("Note '%s' already exists, skipping...", n.Title)
			continue
		}

		if err := db.Create(&n).Error; err != nil {
			color.Red("Error creating note '%s': %v", n.Title, err)
		} else {
			color.Green("Created note: %s (%s)", n.Title, n.Id)
		}
	}

	color.Cyan("Seeding completed!")
}
