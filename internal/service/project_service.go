package service

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"greenbook/internal/core/automation"
	"greenbook/internal/dto"
	"greenbook/internal/model"
	"greenbook/internal/pkg/auth"
	"greenbook/internal/pkg/logger"
	"greenbook/internal/repository"
	pkgErrors "greenbook/pkg/errors"
)

// ProjectAutomation 项目开通与公钥同步
type ProjectAutomation interface {
	CreateProject(ctx context.Context, in automation.CreateProjectInput) (*model.Project, error)
	UpdateBuilderKey(ctx context.Context, projectID, key string) (*model.Project, error)
}

type ProjectService interface {
	// Create 创建仓库和 CMS 空间后保存项目
	Create(ctx context.Context, userID string, req *dto.ProjectCreateRequest) (*dto.ProjectResponse, error)
	Get(userID, projectID string) (*dto.ProjectResponse, error)
	// List 只返回调用者所属客户下的项目
	List(userID string, query *dto.ProjectListQuery) ([]*dto.ProjectResponse, int64, error)
	Update(userID, projectID string, req *dto.ProjectUpdateRequest) (*dto.ProjectResponse, error)
	UpdateStatus(userID, projectID string, req *dto.ProjectStatusRequest) (*dto.ProjectResponse, error)
	Delete(userID, projectID string) error
	// UpdateBuilderKey 仓库同步失败时同时返回已保存的项目和错误
	UpdateBuilderKey(ctx context.Context, userID, projectID string, req *dto.ProjectBuilderKeyRequest) (*dto.ProjectResponse, error)
}

type projectService struct {
	repo       repository.ProjectRepository
	memberRepo repository.ClientUserRepository
	authz      AuthorizationService
	automation ProjectAutomation
}

func NewProjectService(
	repo repository.ProjectRepository,
	memberRepo repository.ClientUserRepository,
	authz AuthorizationService,
	automation ProjectAutomation,
) ProjectService {
	return &projectService{
		repo:       repo,
		memberRepo: memberRepo,
		authz:      authz,
		automation: automation,
	}
}

func (s *projectService) Create(ctx context.Context, userID string, req *dto.ProjectCreateRequest) (*dto.ProjectResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, pkgErrors.Validation("项目名称不能为空")
	}
	if req.ClientID == "" {
		return nil, pkgErrors.Validation("客户ID不能为空")
	}

	if err := s.authz.Authorize(req.ClientID, userID, auth.OpProjectCreate); err != nil {
		return nil, err
	}

	project, err := s.automation.CreateProject(ctx, automation.CreateProjectInput{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		ClientID:    req.ClientID,
	})
	if err != nil {
		return nil, err
	}
	return dto.ToProjectResponse(project), nil
}

func (s *projectService) Get(userID, projectID string) (*dto.ProjectResponse, error) {
	project, err := s.findAuthorized(userID, projectID, auth.OpProjectView)
	if err != nil {
		return nil, err
	}
	return dto.ToProjectResponse(project), nil
}

func (s *projectService) List(userID string, query *dto.ProjectListQuery) ([]*dto.ProjectResponse, int64, error) {
	memberships, err := s.memberRepo.ListByUser(userID)
	if err != nil {
		return nil, 0, err
	}

	projects, total, err := s.repo.List(repository.ProjectFilter{
		ClientIDs: lo.Map(memberships, func(m *model.ClientUser, _ int) string { return m.ClientID }),
		ClientID:  query.ClientID,
		Status:    model.ProjectStatus(query.Status),
		Keyword:   strings.TrimSpace(query.Keyword),
		Page:      query.GetPage(),
		PageSize:  query.GetPageSize(),
	})
	if err != nil {
		return nil, 0, err
	}
	return dto.ToProjectResponses(projects), total, nil
}

func (s *projectService) Update(userID, projectID string, req *dto.ProjectUpdateRequest) (*dto.ProjectResponse, error) {
	project, err := s.findAuthorized(userID, projectID, auth.OpProjectUpdate)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, pkgErrors.Validation("项目名称不能为空")
		}
		fields["name"] = name
		project.Name = name
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		fields["description"] = description
		project.Description = lo.ToPtr(description)
	}

	// 仓库名不随项目名变化
	if err := s.repo.UpdateFields(projectID, fields); err != nil {
		return nil, err
	}
	return dto.ToProjectResponse(project), nil
}

// UpdateStatus 不做状态流转校验, 后写者生效
func (s *projectService) UpdateStatus(userID, projectID string, req *dto.ProjectStatusRequest) (*dto.ProjectResponse, error) {
	status := model.ProjectStatus(req.Status)
	if !status.Valid() {
		return nil, pkgErrors.Validation("无效的项目状态")
	}

	project, err := s.findAuthorized(userID, projectID, auth.OpProjectUpdateStatus)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(projectID, status); err != nil {
		return nil, err
	}
	project.Status = status

	logger.Info("项目状态已更新",
		zap.String("project_id", projectID),
		zap.String("status", string(status)),
		zap.String("user_id", userID))
	return dto.ToProjectResponse(project), nil
}

func (s *projectService) Delete(userID, projectID string) error {
	if _, err := s.findAuthorized(userID, projectID, auth.OpProjectDelete); err != nil {
		return err
	}

	// 仓库和 CMS 空间不随项目删除
	if err := s.repo.Delete(projectID); err != nil {
		return err
	}
	logger.Info("项目已删除", zap.String("project_id", projectID), zap.String("user_id", userID))
	return nil
}

func (s *projectService) UpdateBuilderKey(ctx context.Context, userID, projectID string, req *dto.ProjectBuilderKeyRequest) (*dto.ProjectResponse, error) {
	// 空值表示清除公钥, 与空间公钥查询失败时的状态一致
	key := strings.TrimSpace(req.BuilderPublicKey)

	if _, err := s.findAuthorized(userID, projectID, auth.OpProjectBuilderKey); err != nil {
		return nil, err
	}

	project, err := s.automation.UpdateBuilderKey(ctx, projectID, key)
	if project == nil {
		return nil, err
	}
	return dto.ToProjectResponse(project), err
}

// findAuthorized 先查项目再按其所属客户鉴权
func (s *projectService) findAuthorized(userID, projectID string, op auth.Operation) (*model.Project, error) {
	project, err := s.repo.FindByID(projectID)
	if err != nil {
		if isNotFound(err) {
			return nil, pkgErrors.NotFound("项目不存在")
		}
		return nil, err
	}

	if err := s.authz.Authorize(project.ClientID, userID, op); err != nil {
		return nil, err
	}
	return project, nil
}
