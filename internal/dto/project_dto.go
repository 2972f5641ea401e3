package dto

import (
	"github.com/samber/lo"

	"greenbook/internal/model"
)

// ProjectCreateRequest 创建项目请求
type ProjectCreateRequest struct {
	Name        string `json:"name" binding:"required,max=191"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	ClientID    string `json:"client_id" binding:"required,uuid"`
}

// ProjectUpdateRequest 更新项目请求, 只更新传入的字段
type ProjectUpdateRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=191"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// ProjectStatusRequest 更新项目状态
type ProjectStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=NOT_DEPLOYED DEPLOYING DEPLOYED FAILED"`
}

// ProjectBuilderKeyRequest 更新 CMS 公钥, 空字符串表示清除
type ProjectBuilderKeyRequest struct {
	BuilderPublicKey string `json:"builder_public_key" binding:"max=255"`
}

// ProjectListQuery 项目列表请求
type ProjectListQuery struct {
	PageQuery
	ClientID string `form:"client_id" binding:"omitempty,uuid"`
	Status   string `form:"status" binding:"omitempty,oneof=NOT_DEPLOYED DEPLOYING DEPLOYED FAILED"`
}

// ProjectResponse 项目响应
type ProjectResponse struct {
	ID               string             `json:"id"`
	ClientID         string             `json:"client_id"`
	Name             string             `json:"name"`
	Description      *string            `json:"description,omitempty"`
	Status           string             `json:"status"`
	RepositoryURL    *string            `json:"repository_url"`
	BuilderSpaceID   *string            `json:"builder_space_id"`
	BuilderPublicKey *string            `json:"builder_public_key"`
	SeedReport       []model.SeedResult `json:"seed_report,omitempty"`
	CreatedAt        string             `json:"created_at"`
	UpdatedAt        string             `json:"updated_at"`
}

// ToProjectResponse 转换项目
func ToProjectResponse(p *model.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:               p.ID,
		ClientID:         p.ClientID,
		Name:             p.Name,
		Description:      p.Description,
		Status:           string(p.Status),
		RepositoryURL:    p.RepositoryURL,
		BuilderSpaceID:   p.BuilderSpaceID,
		BuilderPublicKey: p.BuilderPublicKey,
		SeedReport:       p.SeedReport,
		CreatedAt:        formatTime(p.CreatedAt),
		UpdatedAt:        formatTime(p.UpdatedAt),
	}
}

// ToProjectResponses 批量转换项目
func ToProjectResponses(projects []*model.Project) []*ProjectResponse {
	return lo.Map(projects, func(p *model.Project, _ int) *ProjectResponse {
		return ToProjectResponse(p)
	})
}
