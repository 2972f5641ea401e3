package repository

import (
	"errors"

	"gorm.io/gorm"

	pkgErrors "greenbook/pkg/errors"
)

type QueryOption func(*gorm.DB) *gorm.DB

func WithPreload(association string, conds ...interface{}) QueryOption {
	return func(db *gorm.DB) *gorm.DB {
		return db.Preload(association, conds...)
	}
}

func applyOptions(db *gorm.DB, opts []QueryOption) *gorm.DB {
	for _, opt := range opts {
		db = opt(db)
	}
	return db
}

// notFoundOr 记录不存在映射为 ErrRecordNotFound, 其余包装为数据库错误
func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgErrors.ErrRecordNotFound
	}
	return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, message, err)
}

func offsetOf(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}
