package automation

import (
	"context"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"greenbook/internal/model"
	"greenbook/internal/pkg/logger"
)

// RepositoryCreator 创建并初始化项目仓库
type RepositoryCreator interface {
	CreateRepository(ctx context.Context, projectName string) (*RepositoryResult, error)
}

// SpaceCreator 创建 CMS 空间
type SpaceCreator interface {
	CreateSpaceFromTemplate(ctx context.Context, name string) (*SpaceResult, error)
}

// RepositoryConfigurator 把公钥同步到仓库
type RepositoryConfigurator interface {
	WriteConfig(ctx context.Context, repositoryURL, publicKey string) error
}

// ProjectStore 项目持久化
type ProjectStore interface {
	Create(project *model.Project) error
	FindByID(id string) (*model.Project, error)
	UpdateBuilderKey(id, key string) error
}

// CreateProjectInput 调用方需已通过鉴权
type CreateProjectInput struct {
	Name        string
	Description string
	ClientID    string
}

// Automation 项目开通流程
type Automation struct {
	repos    RepositoryCreator
	spaces   SpaceCreator
	writer   RepositoryConfigurator
	projects ProjectStore
	metrics  *Metrics
}

// New 组装流程
func New(repos RepositoryCreator, spaces SpaceCreator, writer RepositoryConfigurator, projects ProjectStore, metrics *Metrics) *Automation {
	return &Automation{
		repos:    repos,
		spaces:   spaces,
		writer:   writer,
		projects: projects,
		metrics:  metrics,
	}
}

// CreateProject 仓库 -> 空间 -> 落库
// 任一外部步骤失败都直接返回, 不写项目记录
func (a *Automation) CreateProject(ctx context.Context, in CreateProjectInput) (*model.Project, error) {
	repo, err := a.repos.CreateRepository(ctx, in.Name)
	if err != nil {
		return nil, err
	}

	space, err := a.spaces.CreateSpaceFromTemplate(ctx, in.Name)
	if err != nil {
		logger.Warn("CMS空间创建失败, 已创建的仓库不会回收",
			zap.String("project", in.Name),
			zap.String("repository", repo.URL))
		return nil, err
	}

	project := &model.Project{
		ClientID:         in.ClientID,
		Name:             in.Name,
		Description:      lo.EmptyableToPtr(in.Description),
		Status:           model.ProjectStatusNotDeployed,
		RepositoryURL:    lo.ToPtr(repo.URL),
		BuilderSpaceID:   lo.ToPtr(space.SpaceID),
		BuilderPublicKey: lo.ToPtr(space.PublicKey),
		SeedReport:       datatypes.JSONSlice[model.SeedResult](repo.Seed),
	}
	if err := a.projects.Create(project); err != nil {
		a.metrics.step(StepPersist, ResultFailure)
		logger.Error("项目记录保存失败",
			zap.String("project", in.Name),
			zap.String("repository", repo.URL),
			zap.String("space_id", space.SpaceID),
			zap.Error(err))
		return nil, err
	}
	a.metrics.step(StepPersist, ResultSuccess)

	logger.Info("项目创建完成",
		zap.String("project_id", project.ID),
		zap.String("client_id", in.ClientID),
		zap.String("repository", repo.URL),
		zap.String("space_id", space.SpaceID),
		zap.Bool("has_public_key", space.PublicKey != ""))
	return project, nil
}

// UpdateBuilderKey 先落库再同步仓库
// 同步失败时返回已更新的项目和错误, 不回滚数据库
func (a *Automation) UpdateBuilderKey(ctx context.Context, projectID, key string) (*model.Project, error) {
	project, err := a.projects.FindByID(projectID)
	if err != nil {
		return nil, err
	}

	if err := a.projects.UpdateBuilderKey(projectID, key); err != nil {
		return nil, err
	}
	project.BuilderPublicKey = lo.ToPtr(key)

	repositoryURL := lo.FromPtr(project.RepositoryURL)
	if repositoryURL == "" {
		return project, nil
	}

	if err := a.writer.WriteConfig(ctx, repositoryURL, key); err != nil {
		logger.Warn("公钥已保存, 仓库同步失败",
			zap.String("project_id", projectID),
			zap.String("repository", repositoryURL))
		return project, err
	}
	return project, nil
}
