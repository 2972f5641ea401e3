package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/imroc/req/v3"

	"greenbook/internal/pkg/git/api"
)

const defaultBaseURL = "https://api.github.com"

// Provider GitHub平台提供者
type Provider struct {
	config *api.ProviderConfig
	client *req.Client
}

// NewProvider 创建GitHub提供者
func NewProvider(config *api.ProviderConfig) (api.GitProvider, error) {
	if config.Token == "" {
		return nil, fmt.Errorf("Token不能为空")
	}
	// GitHub可以省略BaseURL，使用默认值
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := req.C().
		SetBaseURL(strings.TrimSuffix(config.BaseURL, "/")).
		SetTimeout(timeout).
		SetCommonHeader("Accept", "application/vnd.github+json").
		SetCommonHeader("X-GitHub-Api-Version", "2022-11-28").
		SetCommonBearerAuthToken(config.Token)

	return &Provider{
		config: config,
		client: client,
	}, nil
}

type githubRepo struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	CloneURL      string `json:"clone_url"`
	DefaultBranch string `json:"default_branch"`
	Private       bool   `json:"private"`
	HTMLURL       string `json:"html_url"`
	Owner         struct {
		Login string `json:"login"`
	} `json:"owner"`
}

type githubContent struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Type     string `json:"type"`
	SHA      string `json:"sha"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// errorResponse GitHub错误响应
type errorResponse struct {
	Message string `json:"message"`
	Errors  []struct {
		Resource string `json:"resource"`
		Field    string `json:"field"`
		Code     string `json:"code"`
		Message  string `json:"message"`
	} `json:"errors"`
}

// nameExists 422 且提示 "name already exists on this account"
func (e *errorResponse) nameExists() bool {
	if strings.Contains(e.Message, "name already exists") {
		return true
	}
	for _, item := range e.Errors {
		if strings.Contains(item.Message, "name already exists") {
			return true
		}
		if item.Field == "name" && item.Code == "already_exists" {
			return true
		}
	}
	return false
}

// GetPlatformType 获取平台类型
func (p *Provider) GetPlatformType() api.PlatformType {
	return api.PlatformGitHub
}

// TestConnection 测试连接
func (p *Provider) TestConnection(ctx context.Context) error {
	_, err := p.GetCurrentUser(ctx)
	return err
}

// GetCurrentUser 获取当前用户
func (p *Provider) GetCurrentUser(ctx context.Context) (*api.UserInfo, error) {
	var user struct {
		ID    int64  `json:"id"`
		Login string `json:"login"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}

	resp, err := p.client.R().SetContext(ctx).SetSuccessResult(&user).Get("/user")
	if err != nil {
		return nil, fmt.Errorf("获取用户信息失败: %w", err)
	}
	if !resp.IsSuccessState() {
		return nil, statusError("获取用户信息失败", resp)
	}

	return &api.UserInfo{
		ID:       user.ID,
		Username: user.Login,
		Email:    user.Email,
		Name:     user.Name,
	}, nil
}

// CreateRepository 创建仓库
func (p *Provider) CreateRepository(ctx context.Context, opts api.CreateRepositoryOptions) (*api.RepositoryInfo, error) {
	path := "/user/repos"
	if opts.Org != "" {
		path = fmt.Sprintf("/orgs/%s/repos", url.PathEscape(opts.Org))
	}

	var repo githubRepo
	var apiErr errorResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{
			"name":      opts.Name,
			"private":   opts.Private,
			"auto_init": opts.AutoInit,
		}).
		SetSuccessResult(&repo).
		SetErrorResult(&apiErr).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("创建仓库请求失败: %w", err)
	}
	if resp.IsErrorState() {
		if resp.StatusCode == http.StatusUnprocessableEntity && apiErr.nameExists() {
			return nil, api.ErrNameExists
		}
		return nil, statusError("创建仓库失败", resp)
	}

	return &api.RepositoryInfo{
		ID:            repo.ID,
		Name:          repo.Name,
		FullName:      repo.FullName,
		CloneURL:      repo.CloneURL,
		DefaultBranch: repo.DefaultBranch,
		Private:       repo.Private,
		Owner:         repo.Owner.Login,
		HTMLURL:       repo.HTMLURL,
	}, nil
}

// ListContents 列出目录条目
func (p *Provider) ListContents(ctx context.Context, owner, repo, path string) ([]api.ContentEntry, error) {
	var items []githubContent
	resp, err := p.client.R().SetContext(ctx).SetSuccessResult(&items).Get(api.ContentPath(owner, repo, path))
	if err != nil {
		return nil, fmt.Errorf("获取目录失败: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, api.ErrNotFound
	}
	if !resp.IsSuccessState() {
		return nil, statusError("获取目录失败", resp)
	}

	entries := make([]api.ContentEntry, len(items))
	for i, item := range items {
		entries[i] = api.ContentEntry{
			Name: item.Name,
			Path: item.Path,
			Type: api.EntryType(item.Type),
			SHA:  item.SHA,
		}
	}
	return entries, nil
}

// GetFile 读取文件
func (p *Provider) GetFile(ctx context.Context, owner, repo, path string) (*api.FileContent, error) {
	var item githubContent
	resp, err := p.client.R().SetContext(ctx).SetSuccessResult(&item).Get(api.ContentPath(owner, repo, path))
	if err != nil {
		return nil, fmt.Errorf("获取文件失败: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, api.ErrNotFound
	}
	if !resp.IsSuccessState() {
		return nil, statusError("获取文件失败", resp)
	}
	if item.Type != string(api.EntryFile) {
		return nil, fmt.Errorf("%s 不是文件 (type: %s)", path, item.Type)
	}

	content, err := api.DecodeContent(item.Encoding, item.Content)
	if err != nil {
		return nil, fmt.Errorf("解码文件 %s 失败: %w", path, err)
	}
	return &api.FileContent{
		Path:    item.Path,
		SHA:     item.SHA,
		Content: content,
	}, nil
}

// PutFile 创建或更新文件
func (p *Provider) PutFile(ctx context.Context, owner, repo string, opts api.PutFileOptions) error {
	body := map[string]interface{}{
		"message": opts.Message,
		"content": api.EncodeContent(opts.Content),
	}
	if opts.SHA != "" {
		body["sha"] = opts.SHA
	}

	resp, err := p.client.R().SetContext(ctx).SetBody(body).Put(api.ContentPath(owner, repo, opts.Path))
	if err != nil {
		return fmt.Errorf("写入文件失败: %w", err)
	}
	if !resp.IsSuccessState() {
		return statusError("写入文件 "+opts.Path+" 失败", resp)
	}
	return nil
}

func statusError(msg string, resp *req.Response) error {
	return fmt.Errorf("%s (状态码: %d): %s", msg, resp.StatusCode, resp.String())
}
