package automation

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"greenbook/internal/pkg/git/api"
	"greenbook/internal/pkg/logger"
	"greenbook/pkg/constants"
	pkgErrors "greenbook/pkg/errors"
)

// FileStore 读写仓库文件
type FileStore interface {
	GetFile(ctx context.Context, owner, repo, path string) (*api.FileContent, error)
	PutFile(ctx context.Context, owner, repo string, opts api.PutFileOptions) error
}

// ConfigWriter 把 CMS 密钥写入仓库的 .env
type ConfigWriter struct {
	files      FileStore
	privateKey string
	metrics    *Metrics
}

// NewConfigWriter 创建配置写入器
func NewConfigWriter(files FileStore, privateKey string, metrics *Metrics) *ConfigWriter {
	return &ConfigWriter{
		files:      files,
		privateKey: privateKey,
		metrics:    metrics,
	}
}

// ParseRepositoryURL 取 URL 最后两段作为 owner/repo
func ParseRepositoryURL(repositoryURL string) (owner, repo string, err error) {
	u, err := url.Parse(strings.TrimSpace(repositoryURL))
	if err != nil {
		return "", "", fmt.Errorf("无效的仓库地址 %q: %w", repositoryURL, err)
	}
	segments := strings.FieldsFunc(u.Path, func(r rune) bool { return r == '/' })
	if len(segments) < 2 {
		return "", "", fmt.Errorf("无效的仓库地址 %q", repositoryURL)
	}
	owner = segments[len(segments)-2]
	repo = strings.TrimSuffix(segments[len(segments)-1], ".git")
	if owner == "" || repo == "" {
		return "", "", fmt.Errorf("无效的仓库地址 %q", repositoryURL)
	}
	return owner, repo, nil
}

// EnvFileContent 生成 .env 内容
func EnvFileContent(privateKey, publicKey string) string {
	return fmt.Sprintf("# Builder.io configuration\nBUILDER_PRIVATE_KEY=%s\nNEXT_PUBLIC_BUILDER_PUBLIC_KEY=%s", privateKey, publicKey)
}

// WriteConfig 整体覆盖 .env, 任何失败都返回 IntegrationError
func (w *ConfigWriter) WriteConfig(ctx context.Context, repositoryURL, publicKey string) error {
	err := w.write(ctx, repositoryURL, publicKey)
	if err != nil {
		w.metrics.step(StepConfig, ResultFailure)
		logger.Error("写入仓库配置失败", zap.String("repository", repositoryURL), zap.Error(err))
		return pkgErrors.Integration("写入仓库配置失败", err)
	}
	w.metrics.step(StepConfig, ResultSuccess)
	logger.Info("仓库配置已更新", zap.String("repository", repositoryURL))
	return nil
}

func (w *ConfigWriter) write(ctx context.Context, repositoryURL, publicKey string) error {
	owner, repo, err := ParseRepositoryURL(repositoryURL)
	if err != nil {
		return err
	}

	// 内容总是完整重新生成; 平台要求覆盖时携带当前版本
	var sha string
	existing, err := w.files.GetFile(ctx, owner, repo, constants.EnvFilePath)
	switch {
	case err == nil:
		sha = existing.SHA
	case errors.Is(err, api.ErrNotFound):
	default:
		return fmt.Errorf("查询 %s 失败: %w", constants.EnvFilePath, err)
	}

	return w.files.PutFile(ctx, owner, repo, api.PutFileOptions{
		Path:    constants.EnvFilePath,
		Content: []byte(EnvFileContent(w.privateKey, publicKey)),
		Message: constants.EnvCommitMessage,
		SHA:     sha,
	})
}
