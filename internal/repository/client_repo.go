package repository

import (
	"gorm.io/gorm"

	"greenbook/internal/model"
	"greenbook/internal/pkg/auth"
	pkgErrors "greenbook/pkg/errors"
)

type ClientRepository interface {
	// CreateWithAdmin 在同一事务中创建客户和创建者的 ADMIN 成员关系
	CreateWithAdmin(client *model.Client, adminUserID string) error
	FindByID(id string, opts ...QueryOption) (*model.Client, error)
	// ListByMember 列出用户作为成员的客户
	ListByMember(userID string, page, pageSize int, keyword string) ([]*model.Client, int64, error)
	Update(client *model.Client) error
	// DeleteCascade 在同一事务中删除客户及其项目和成员关系
	DeleteCascade(id string) error
}

type clientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) CreateWithAdmin(client *model.Client, adminUserID string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(client).Error; err != nil {
			return err
		}
		return tx.Create(&model.ClientUser{
			ClientID: client.ID,
			UserID:   adminUserID,
			Role:     auth.RoleAdmin,
		}).Error
	})
	if err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建客户失败", err)
	}
	return nil
}

func (r *clientRepository) FindByID(id string, opts ...QueryOption) (*model.Client, error) {
	var client model.Client
	if err := applyOptions(r.db, opts).Where("id = ?", id).First(&client).Error; err != nil {
		return nil, notFoundOr(err, "查询客户失败")
	}
	return &client, nil
}

func (r *clientRepository) ListByMember(userID string, page, pageSize int, keyword string) ([]*model.Client, int64, error) {
	var clients []*model.Client
	var total int64

	query := r.db.Model(&model.Client{}).
		Joins("JOIN client_users ON client_users.client_id = clients.id").
		Where("client_users.user_id = ?", userID)

	if keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("clients.company_name LIKE ? OR clients.company_email LIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "统计客户数量失败", err)
	}

	if err := query.Order("clients.updated_at DESC").
		Offset(offsetOf(page, pageSize)).
		Limit(pageSize).
		Find(&clients).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询客户列表失败", err)
	}

	return clients, total, nil
}

func (r *clientRepository) Update(client *model.Client) error {
	if err := r.db.Save(client).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新客户失败", err)
	}
	return nil
}

func (r *clientRepository) DeleteCascade(id string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", id).Delete(&model.Project{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", id).Delete(&model.ClientUser{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Client{}).Error
	})
	if err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除客户失败", err)
	}
	return nil
}
