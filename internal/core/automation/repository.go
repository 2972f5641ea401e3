package automation

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"greenbook/internal/model"
	"greenbook/internal/pkg/config"
	"greenbook/internal/pkg/git/api"
	"greenbook/internal/pkg/logger"
	"greenbook/pkg/constants"
	pkgErrors "greenbook/pkg/errors"
)

// ErrNamingExhausted 所有候选仓库名都已被占用
var ErrNamingExhausted = errors.New("exhausted naming attempts")

var whitespaceRun = regexp.MustCompile(`\s+`)

// RepositoryHost 代码托管平台上本流程用到的操作
type RepositoryHost interface {
	CreateRepository(ctx context.Context, opts api.CreateRepositoryOptions) (*api.RepositoryInfo, error)
	ListContents(ctx context.Context, owner, repo, path string) ([]api.ContentEntry, error)
	GetFile(ctx context.Context, owner, repo, path string) (*api.FileContent, error)
	PutFile(ctx context.Context, owner, repo string, opts api.PutFileOptions) error
}

// RepositoryOptions 仓库创建与初始化参数
type RepositoryOptions struct {
	Prefix        string
	Org           string // 为空时创建在 token 所属账号下
	TemplateOwner string
	TemplateRepo  string
	MaxAttempts   int // 含首次
	SettleDelay   time.Duration
}

// RepositoryOptionsFromConfig 从全局配置组装参数
func RepositoryOptionsFromConfig(git *config.GitConfig, provision *config.ProvisionConfig) RepositoryOptions {
	return RepositoryOptions{
		Prefix:        provision.GetRepoPrefix(),
		Org:           git.Org,
		TemplateOwner: git.TemplateOwnerOrOrg(),
		TemplateRepo:  git.TemplateRepo,
		MaxAttempts:   provision.GetMaxNameAttempts(),
		SettleDelay:   provision.GetSettleDelay(),
	}
}

// RepositoryResult 新仓库及其初始化结果
type RepositoryResult struct {
	URL   string
	Owner string
	Name  string
	Seed  model.SeedReport
}

// RepositoryProvisioner 创建项目仓库并从模板仓库复制初始文件
type RepositoryProvisioner struct {
	host    RepositoryHost
	opts    RepositoryOptions
	metrics *Metrics
	sleep   func(ctx context.Context, d time.Duration) error
}

// NewRepositoryProvisioner 创建仓库开通器
func NewRepositoryProvisioner(host RepositoryHost, opts RepositoryOptions, metrics *Metrics) *RepositoryProvisioner {
	if opts.Prefix == "" {
		opts.Prefix = constants.DefaultRepoPrefix
	}
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = constants.DefaultMaxNameAttempts
	}
	return &RepositoryProvisioner{
		host:    host,
		opts:    opts,
		metrics: metrics,
		sleep:   sleepContext,
	}
}

// RepositoryName 前缀 + 小写项目名, 连续空白替换为 "-"
func RepositoryName(prefix, projectName string) string {
	slug := whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(projectName)), "-")
	return prefix + "-" + slug
}

// candidateName 第 0 次使用基础名, 之后追加 -1, -2 ...
func candidateName(base string, attempt int) string {
	if attempt == 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, attempt)
}

// CreateRepository 创建仓库, 等待平台初始化后复制模板文件
// 单个文件复制失败只记录在 SeedReport 中; 模板仓库无法读取时整个步骤失败
func (p *RepositoryProvisioner) CreateRepository(ctx context.Context, projectName string) (*RepositoryResult, error) {
	base := RepositoryName(p.opts.Prefix, projectName)

	repo, err := p.createWithRetry(ctx, base)
	if err != nil {
		p.metrics.step(StepRepository, ResultFailure)
		return nil, err
	}
	p.metrics.step(StepRepository, ResultSuccess)

	logger.Info("仓库创建成功",
		zap.String("project", projectName),
		zap.String("repo", repo.FullName),
		zap.String("url", repo.HTMLURL))

	if err := p.sleep(ctx, p.opts.SettleDelay); err != nil {
		return nil, pkgErrors.Provisioning("等待仓库初始化被中断", err)
	}

	report, err := p.seed(ctx, repo.Owner, repo.Name)
	if err != nil {
		return nil, err
	}

	return &RepositoryResult{
		URL:   repo.HTMLURL,
		Owner: repo.Owner,
		Name:  repo.Name,
		Seed:  report,
	}, nil
}

func (p *RepositoryProvisioner) createWithRetry(ctx context.Context, base string) (*api.RepositoryInfo, error) {
	for attempt := 0; attempt < p.opts.MaxAttempts; attempt++ {
		name := candidateName(base, attempt)
		repo, err := p.host.CreateRepository(ctx, api.CreateRepositoryOptions{
			Name:     name,
			Org:      p.opts.Org,
			Private:  true,
			AutoInit: true,
		})
		if err == nil {
			return repo, nil
		}
		if !errors.Is(err, api.ErrNameExists) {
			logger.Error("仓库创建失败", zap.String("name", name), zap.Error(err))
			return nil, pkgErrors.Provisioning("仓库创建失败", err)
		}
		logger.Warn("仓库名已存在, 尝试下一个名称", zap.String("name", name), zap.Int("attempt", attempt+1))
	}

	logger.Error("仓库命名尝试次数已用尽", zap.String("base", base), zap.Int("attempts", p.opts.MaxAttempts))
	return nil, pkgErrors.Provisioning("仓库命名尝试次数已用尽", ErrNamingExhausted)
}

// seed 逐个复制模板仓库根目录下的条目
func (p *RepositoryProvisioner) seed(ctx context.Context, owner, repo string) (model.SeedReport, error) {
	entries, err := p.host.ListContents(ctx, p.opts.TemplateOwner, p.opts.TemplateRepo, "")
	if err != nil {
		logger.Error("读取模板仓库失败",
			zap.String("template", p.opts.TemplateOwner+"/"+p.opts.TemplateRepo),
			zap.String("repo", owner+"/"+repo),
			zap.Error(err))
		p.metrics.step(StepSeed, ResultFailure)
		return nil, pkgErrors.Provisioning("读取模板仓库失败", err)
	}

	report := make(model.SeedReport, 0, len(entries))
	for _, entry := range entries {
		res := p.copyEntry(ctx, owner, repo, entry)
		if res.Outcome == model.SeedSkipped {
			logger.Warn("模板文件未复制",
				zap.String("repo", owner+"/"+repo),
				zap.String("path", res.Path),
				zap.String("reason", res.Reason))
		}
		p.metrics.seed(string(res.Outcome))
		report = append(report, res)
	}

	p.metrics.step(StepSeed, ResultSuccess)
	logger.Info("模板复制完成",
		zap.String("repo", owner+"/"+repo),
		zap.Int("copied", report.Count(model.SeedCopied)),
		zap.Int("skipped", report.Count(model.SeedSkipped)))
	return report, nil
}

func (p *RepositoryProvisioner) copyEntry(ctx context.Context, owner, repo string, entry api.ContentEntry) model.SeedResult {
	skipped := func(reason string, err error) model.SeedResult {
		if err != nil {
			reason = reason + ": " + err.Error()
		}
		return model.SeedResult{Path: entry.Path, Outcome: model.SeedSkipped, Reason: reason}
	}

	if err := ctx.Err(); err != nil {
		return skipped("已取消", err)
	}
	if entry.Type != api.EntryFile {
		return skipped(fmt.Sprintf("不复制 %s 类型条目", entry.Type), nil)
	}

	src, err := p.host.GetFile(ctx, p.opts.TemplateOwner, p.opts.TemplateRepo, entry.Path)
	if err != nil {
		return skipped("读取模板文件失败", err)
	}

	// auto_init 生成的 README 等文件已存在, 需要带上当前版本才能覆盖
	var sha string
	existing, err := p.host.GetFile(ctx, owner, repo, entry.Path)
	switch {
	case err == nil:
		sha = existing.SHA
	case errors.Is(err, api.ErrNotFound):
	default:
		return skipped("查询目标文件失败", err)
	}

	if err := p.host.PutFile(ctx, owner, repo, api.PutFileOptions{
		Path:    entry.Path,
		Content: src.Content,
		Message: constants.SeedCommitMessage,
		SHA:     sha,
	}); err != nil {
		return skipped("写入文件失败", err)
	}

	return model.SeedResult{Path: entry.Path, Outcome: model.SeedCopied}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
