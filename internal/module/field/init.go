package field

import (
	"log/slog"

	"project-submission-system/internal/global/database"
	"project-submission-system/internal/global/logger"
	"project-submission-system/internal/repository"
)

var (
	log       *slog.Logger
	fieldRepo *repository.FieldRepository
)

type ModuleField struct{}

func (f *ModuleField) GetName() string {
	return "Field"
}

func (f *ModuleField) Init() {
	log = logger.New("Field")
	fieldRepo = repository.NewFieldRepository(database.DB)
}
