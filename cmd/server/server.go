package server

import (
	"context"
	"fmt"
	"log/slog"

	"project-submission-system/config"
	"project-submission-system/internal/global/cache"
	"project-submission-system/internal/global/database"
	"project-submission-system/internal/global/logger"
	"project-submission-system/internal/global/mailer"
	"project-submission-system/internal/global/middleware"
	"project-submission-system/internal/global/objstore"
	internalSentry "project-submission-system/internal/global/sentry"
	"project-submission-system/internal/module"
	"project-submission-system/tools"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()
	log = logger.New("Server")

	if err := internalSentry.Init(); err != nil {
		log.Error("初始化 Sentry 失败", "error", err)
	}

	database.Init()
	cache.Init()
	mailer.Init()

	if err := objstore.Init(context.Background()); err != nil {
		log.Error("初始化对象存储失败", "error", err)
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

func Run() {
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()

	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors())
	r.Use(internalSentry.Middleware())
	r.Use(middleware.Recovery())

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + config.Get().Prefix))
	}
	err := r.Run(config.Get().Host + ":" + config.Get().Port)
	tools.PanicOnErr(err)
}
