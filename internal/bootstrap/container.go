package bootstrap

import (
	"notes-taking-be/internal/config"
	"notes-taking-be/internal/controller"
	"notes-taking-be/internal/pkg/logger"
	"notes-taking-be/internal/repository/implementation"
	"notes-taking-be/internal/service"

	"gorm.io/gorm"
)

type Container struct {
	NoteController controller.INoteController
	Logger         logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	noteRepository := implementation.NewNoteRepository(db)
	noteService := service.NewNoteService(noteRepository, sysLogger)

	return &Container{
		NoteController: controller.NewNoteController(noteService),
		Logger:         sysLogger,
	}
}
