package ping

import (
	"log/slog"

	"project-submission-system/internal/global/logger"
)

var log *slog.Logger

type ModulePing struct{}

func (p *ModulePing) GetName() string {
	return "Ping"
}

func (p *ModulePing) Init() {
	log = logger.New("Ping")
}
