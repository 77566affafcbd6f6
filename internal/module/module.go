package module

import (
	"project-submission-system/internal/module/confirm"
	"project-submission-system/internal/module/field"
	"project-submission-system/internal/module/ping"
	"project-submission-system/internal/module/project"
	"project-submission-system/internal/module/user"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&user.ModuleUser{},
		&ping.ModulePing{},
		&field.ModuleField{},
		&project.ModuleProject{},
		&confirm.ModuleConfirm{},
	})
}
