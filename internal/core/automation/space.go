package automation

import (
	"context"

	"go.uber.org/zap"

	"greenbook/internal/pkg/builder"
	"greenbook/internal/pkg/logger"
	pkgErrors "greenbook/pkg/errors"
)

// SpaceAdmin CMS 管理接口上本流程用到的操作
type SpaceAdmin interface {
	CreateSpace(ctx context.Context, settings builder.SpaceSettings) (string, error)
	GetSpace(ctx context.Context, spaceID string) (*builder.Space, error)
}

// SpaceResult 新空间, PublicKey 可能为空
type SpaceResult struct {
	SpaceID   string
	PublicKey string
}

// SpaceProvisioner 从模板空间克隆 CMS 空间
type SpaceProvisioner struct {
	admin           SpaceAdmin
	templateSpaceID string
	metrics         *Metrics
}

// NewSpaceProvisioner 创建空间开通器
func NewSpaceProvisioner(admin SpaceAdmin, templateSpaceID string, metrics *Metrics) *SpaceProvisioner {
	return &SpaceProvisioner{
		admin:           admin,
		templateSpaceID: templateSpaceID,
		metrics:         metrics,
	}
}

// CreateSpaceFromTemplate 创建空间失败返回 ProvisioningError
// 公钥查询失败只记日志, 返回空公钥
func (p *SpaceProvisioner) CreateSpaceFromTemplate(ctx context.Context, name string) (*SpaceResult, error) {
	spaceID, err := p.admin.CreateSpace(ctx, builder.SpaceSettings{
		Name:              name,
		TemplateID:        p.templateSpaceID,
		AllowBuilderSites: true,
		PreviewURL:        "*",
		SiteURL:           "*",
	})
	if err != nil {
		p.metrics.step(StepSpace, ResultFailure)
		logger.Error("CMS空间创建失败", zap.String("name", name), zap.Error(err))
		return nil, pkgErrors.Provisioning("CMS空间创建失败", err)
	}
	p.metrics.step(StepSpace, ResultSuccess)

	return &SpaceResult{
		SpaceID:   spaceID,
		PublicKey: p.lookupPublicKey(ctx, spaceID),
	}, nil
}

func (p *SpaceProvisioner) lookupPublicKey(ctx context.Context, spaceID string) string {
	space, err := p.admin.GetSpace(ctx, spaceID)
	if err != nil {
		p.metrics.step(StepSpaceKey, ResultFallback)
		logger.Warn("获取CMS空间公钥失败, 使用空值", zap.String("space_id", spaceID), zap.Error(err))
		return ""
	}

	key := space.PublicKey()
	if key == "" {
		p.metrics.step(StepSpaceKey, ResultFallback)
		logger.Warn("CMS空间没有公钥", zap.String("space_id", spaceID))
		return ""
	}
	p.metrics.step(StepSpaceKey, ResultSuccess)
	return key
}
