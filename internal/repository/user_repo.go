package repository

import (
	"time"

	"gorm.io/gorm"

	"greenbook/internal/model"
	pkgErrors "greenbook/pkg/errors"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id string, opts ...QueryOption) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Update(user *model.User) error
	UpdateName(id, name string) error
	UpdateLastLogin(id string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建用户失败", err)
	}
	return nil
}

func (r *userRepository) FindByID(id string, opts ...QueryOption) (*model.User, error) {
	var user model.User
	if err := applyOptions(r.db, opts).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, notFoundOr(err, "查询用户失败")
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFoundOr(err, "查询用户失败")
	}
	return &user, nil
}

func (r *userRepository) Update(user *model.User) error {
	if err := r.db.Save(user).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新用户失败", err)
	}
	return nil
}

func (r *userRepository) UpdateName(id, name string) error {
	if err := r.db.Model(&model.User{}).Where("id = ?", id).Update("name", name).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新用户失败", err)
	}
	return nil
}

func (r *userRepository) UpdateLastLogin(id string) error {
	if err := r.db.Model(&model.User{}).Where("id = ?", id).Update("last_login_at", time.Now()).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新登录时间失败", err)
	}
	return nil
}
