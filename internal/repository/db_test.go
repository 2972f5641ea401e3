package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"greenbook/internal/model"
	"greenbook/internal/pkg/database"
)

// newTestDB 内存 sqlite, 表结构与线上一致由迁移创建
// 单连接保证同一个内存库在事务内外可见
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, name, email string) *model.User {
	t.Helper()
	u := &model.User{Name: name, Email: email}
	require.NoError(t, NewUserRepository(db).Create(u))
	return u
}
