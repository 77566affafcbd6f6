package project

import (
	"log/slog"

	"project-submission-system/internal/global/database"
	"project-submission-system/internal/global/logger"
	"project-submission-system/internal/repository"
)

var (
	log         *slog.Logger
	projectRepo *repository.ProjectRepository
	fieldRepo   *repository.FieldRepository
)

type ModuleProject struct{}

func (m *ModuleProject) GetName() string {
	return "Project"
}

func (m *ModuleProject) Init() {
	log = logger.New("Project")
	projectRepo = repository.NewProjectRepository(database.DB)
	fieldRepo = repository.NewFieldRepository(database.DB)
}
