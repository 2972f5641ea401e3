package repository

import (
	"gorm.io/gorm"

	"greenbook/internal/model"
	pkgErrors "greenbook/pkg/errors"
)

// ProjectFilter 项目列表过滤条件
type ProjectFilter struct {
	ClientIDs []string // 调用者可见的客户, 为空时结果为空
	ClientID  string
	Status    model.ProjectStatus
	Keyword   string
	Page      int
	PageSize  int
}

type ProjectRepository interface {
	Create(project *model.Project) error
	FindByID(id string) (*model.Project, error)
	List(filter ProjectFilter) ([]*model.Project, int64, error)
	UpdateFields(id string, fields map[string]interface{}) error
	UpdateStatus(id string, status model.ProjectStatus) error
	UpdateBuilderKey(id, key string) error
	Delete(id string) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(project *model.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建项目失败", err)
	}
	return nil
}

func (r *projectRepository) FindByID(id string) (*model.Project, error) {
	var project model.Project
	if err := r.db.Where("id = ?", id).First(&project).Error; err != nil {
		return nil, notFoundOr(err, "查询项目失败")
	}
	return &project, nil
}

func (r *projectRepository) List(filter ProjectFilter) ([]*model.Project, int64, error) {
	var projects []*model.Project
	var total int64

	if len(filter.ClientIDs) == 0 {
		return projects, 0, nil
	}

	query := r.db.Model(&model.Project{}).Where("client_id IN ?", filter.ClientIDs)

	if filter.ClientID != "" {
		query = query.Where("client_id = ?", filter.ClientID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "统计项目数量失败", err)
	}

	if err := query.Order("updated_at DESC").
		Offset(offsetOf(filter.Page, filter.PageSize)).
		Limit(filter.PageSize).
		Find(&projects).Error; err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询项目列表失败", err)
	}

	return projects, total, nil
}

func (r *projectRepository) UpdateFields(id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	if err := r.db.Model(&model.Project{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新项目失败", err)
	}
	return nil
}

// UpdateStatus 无版本校验, 后写者生效
func (r *projectRepository) UpdateStatus(id string, status model.ProjectStatus) error {
	if err := r.db.Model(&model.Project{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新项目状态失败", err)
	}
	return nil
}

func (r *projectRepository) UpdateBuilderKey(id, key string) error {
	if err := r.db.Model(&model.Project{}).Where("id = ?", id).Update("builder_public_key", key).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新项目公钥失败", err)
	}
	return nil
}

func (r *projectRepository) Delete(id string) error {
	if err := r.db.Where("id = ?", id).Delete(&model.Project{}).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除项目失败", err)
	}
	return nil
}
