package database

import (
	"fmt"

	"project-submission-system/config"
	"project-submission-system/internal/model"
	"project-submission-system/tools"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var DB *gorm.DB

// autoMigrateModels 定义需要自动迁移的模型列表
var autoMigrateModels = []any{
	&model.User{},
	&model.Project{},
	&model.Plan{},
	&model.Report{},
	&model.Status{},
	&model.Member{},
	&model.Field{},
	// 在这里添加其他模型
}

func Init() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.Get().Mysql.Username,
		config.Get().Mysql.Password,
		config.Get().Mysql.Host,
		config.Get().Mysql.Port,
		config.Get().Mysql.DBName,
	)
	gormConfig := &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true}, // 还是单数表名好
	}

	switch config.Get().Mode {
	case config.ModeDebug:
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	case config.ModeRelease:
		gormConfig.Logger = logger.Discard
	}

	db, err := gorm.Open(mysql.Open(dsn), gormConfig)
	tools.PanicOnErr(err)
	DB = db

	tools.PanicOnErr(Migrate(DB))
}

// Migrate 执行模型迁移，测试环境用同一份迁移建 SQLite 内存库
func Migrate(db *gorm.DB) error {
	// 项目与领域的多对多使用显式连接表模型，保证 (project_id, field_id) 唯一
	if err := db.SetupJoinTable(&model.Project{}, "Fields", &model.ProjectField{}); err != nil {
		return err
	}
	return db.AutoMigrate(autoMigrateModels...)
}
