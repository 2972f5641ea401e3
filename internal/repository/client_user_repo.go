package repository

import (
	"gorm.io/gorm"

	"greenbook/internal/model"
	"greenbook/internal/pkg/auth"
	pkgErrors "greenbook/pkg/errors"
)

type ClientUserRepository interface {
	Create(member *model.ClientUser) error
	FindByClientAndUser(clientID, userID string) (*model.ClientUser, error)
	ListByClient(clientID string) ([]*model.ClientUser, error)
	ListByUser(userID string) ([]*model.ClientUser, error)
	UpdateRole(id string, role auth.Role) error
	Delete(id string) error
}

type clientUserRepository struct {
	db *gorm.DB
}

func NewClientUserRepository(db *gorm.DB) ClientUserRepository {
	return &clientUserRepository{db: db}
}

func (r *clientUserRepository) Create(member *model.ClientUser) error {
	if err := r.db.Create(member).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "添加客户成员失败", err)
	}
	return nil
}

func (r *clientUserRepository) FindByClientAndUser(clientID, userID string) (*model.ClientUser, error) {
	var member model.ClientUser
	err := r.db.Where("client_id = ? AND user_id = ?", clientID, userID).First(&member).Error
	if err != nil {
		return nil, notFoundOr(err, "查询客户成员失败")
	}
	return &member, nil
}

func (r *clientUserRepository) ListByClient(clientID string) ([]*model.ClientUser, error) {
	var members []*model.ClientUser
	if err := r.db.Where("client_id = ?", clientID).
		Preload("User").
		Order("created_at ASC").
		Find(&members).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询客户成员失败", err)
	}
	return members, nil
}

func (r *clientUserRepository) ListByUser(userID string) ([]*model.ClientUser, error) {
	var members []*model.ClientUser
	if err := r.db.Where("user_id = ?", userID).
		Preload("Client").
		Find(&members).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询用户成员关系失败", err)
	}
	return members, nil
}

func (r *clientUserRepository) UpdateRole(id string, role auth.Role) error {
	if err := r.db.Model(&model.ClientUser{}).Where("id = ?", id).Update("role", role).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新成员角色失败", err)
	}
	return nil
}

func (r *clientUserRepository) Delete(id string) error {
	if err := r.db.Where("id = ?", id).Delete(&model.ClientUser{}).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除客户成员失败", err)
	}
	return nil
}
