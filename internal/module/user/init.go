package user

import (
	"log/slog"

	"project-submission-system/internal/global/logger"
)

var log *slog.Logger

type ModuleUser struct{}

func (u *ModuleUser) GetName() string {
	return "User"
}

func (u *ModuleUser) Init() {
	log = logger.New("User")
}

func selfInit() {
	u := &ModuleUser{}
	u.Init()
}
