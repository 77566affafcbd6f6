package test

import (
	"testing"

	"project-submission-system/internal/global/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// NewDB 建一个跑完整迁移的 SQLite 内存库，与生产共用同一份迁移定义
func NewDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
		Logger:         gormlogger.Discard,
	})
	require.NoError(t, err)

	// 内存库绑定单个连接，连接切换会丢库
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}
