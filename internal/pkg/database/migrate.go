package database

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"greenbook/internal/model"
	"greenbook/internal/pkg/logger"
)

// Migrations 按顺序执行的表结构变更, 已发布的条目不可修改
func Migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "202410010001_init_users_clients",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&model.User{}, &model.Client{}, &model.ClientUser{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(model.ClientUserTableName, model.ClientTableName, model.UserTableName)
			},
		},
		{
			ID: "202410010002_init_projects",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&model.Project{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(model.ProjectTableName)
			},
		},
	}
}

// Migrate 执行全部未应用的迁移
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, Migrations())
	if err := m.Migrate(); err != nil {
		return err
	}
	logger.Info("数据库迁移完成", zap.Int("migrations", len(Migrations())))
	return nil
}
