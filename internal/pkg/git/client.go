package git

import (
	"fmt"

	"greenbook/internal/pkg/config"
	"greenbook/internal/pkg/git/api"
	"greenbook/internal/pkg/git/gitea"
	"greenbook/internal/pkg/git/github"
)

// NewProvider 按配置的平台类型创建提供者
func NewProvider(cfg *config.GitConfig) (api.GitProvider, error) {
	providerCfg := &api.ProviderConfig{
		BaseURL: cfg.BaseURL,
		Token:   cfg.Token,
		Timeout: cfg.GetTimeout(),
	}

	switch api.PlatformType(cfg.Platform) {
	case api.PlatformGitHub:
		return github.NewProvider(providerCfg)
	case api.PlatformGitea:
		return gitea.NewProvider(providerCfg)
	default:
		return nil, fmt.Errorf("不支持的平台类型: %s", cfg.Platform)
	}
}
