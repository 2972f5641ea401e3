package model

import "gorm.io/datatypes"

const ProjectTableName = "projects"

// ProjectStatus 部署状态
type ProjectStatus string

const (
	ProjectStatusNotDeployed ProjectStatus = "NOT_DEPLOYED"
	ProjectStatusDeploying   ProjectStatus = "DEPLOYING"
	ProjectStatusDeployed    ProjectStatus = "DEPLOYED"
	ProjectStatusFailed      ProjectStatus = "FAILED"
)

// Valid 是否为已知状态
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusNotDeployed, ProjectStatusDeploying, ProjectStatusDeployed, ProjectStatusFailed:
		return true
	}
	return false
}

// Project 项目, 创建时已关联代码仓库与 CMS 空间
type Project struct {
	BaseModelWithSoftDelete
	ClientID         string                          `gorm:"size:36;not null;index" json:"client_id"`
	Name             string                          `gorm:"size:191;not null" json:"name"`
	Description      *string                         `gorm:"type:text" json:"description,omitempty"`
	Status           ProjectStatus                   `gorm:"size:20;not null;default:NOT_DEPLOYED;index" json:"status"`
	RepositoryURL    *string                         `gorm:"column:repository_url;size:500" json:"repository_url,omitempty"`
	BuilderSpaceID   *string                         `gorm:"column:builder_space_id;size:100" json:"builder_space_id,omitempty"`
	BuilderPublicKey *string                         `gorm:"column:builder_public_key;size:255" json:"builder_public_key,omitempty"`
	SeedReport       datatypes.JSONSlice[SeedResult] `gorm:"column:seed_report" json:"seed_report,omitempty"`

	Client *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

func (Project) TableName() string {
	return ProjectTableName
}
