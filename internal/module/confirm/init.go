package confirm

import (
	"log/slog"

	"project-submission-system/internal/global/database"
	"project-submission-system/internal/global/logger"
	"project-submission-system/internal/global/mailer"
	"project-submission-system/internal/repository"
)

var (
	log      *slog.Logger
	workflow *Workflow
)

type ModuleConfirm struct{}

func (m *ModuleConfirm) GetName() string {
	return "Confirm"
}

func (m *ModuleConfirm) Init() {
	log = logger.New("Confirm")
	workflow = NewWorkflow(
		repository.NewProjectRepository(database.DB),
		repository.NewStatusRepository(database.DB),
		mailer.Default,
	)
}

func selfInit() {
	m := &ModuleConfirm{}
	m.Init()
}
