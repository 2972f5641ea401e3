package builder

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/imroc/req/v3"

	"greenbook/internal/pkg/config"
)

const createSpaceMutation = `mutation CreateSpace($settings: JSONObject!) {
  createSpace(settings: $settings)
}`

// Client Builder.io 管理接口客户端
// 创建空间走 admin GraphQL 接口, 查询空间走 REST 接口, 均使用私钥认证
type Client struct {
	adminURL string
	apiURL   string
	client   *req.Client
}

// SpaceSettings 新空间设置
type SpaceSettings struct {
	Name              string `json:"name"`
	TemplateID        string `json:"templateId"`
	AllowBuilderSites bool   `json:"allowBuilderSites"`
	PreviewURL        string `json:"previewUrl"`
	SiteURL           string `json:"siteUrl"`
}

// APIKey 空间密钥
type APIKey struct {
	Type  string `json:"type"`
	Token string `json:"token"`
}

// Space 空间详情
type Space struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	APIKeys []APIKey `json:"apiKeys"`
}

// PublicKey 返回第一个 public 类型密钥, 没有时返回空串
func (s *Space) PublicKey() string {
	for _, k := range s.APIKeys {
		if k.Type == "public" {
			return k.Token
		}
	}
	return ""
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type createSpaceResponse struct {
	Data struct {
		CreateSpace string `json:"createSpace"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// NewClient 创建客户端
func NewClient(cfg *config.BuilderConfig) (*Client, error) {
	if cfg.PrivateKey == "" {
		return nil, fmt.Errorf("builder.private_key 不能为空")
	}

	client := req.C().
		SetTimeout(cfg.GetTimeout()).
		SetCommonBearerAuthToken(cfg.PrivateKey).
		SetCommonHeader("Accept", "application/json")

	return &Client{
		adminURL: strings.TrimSuffix(cfg.AdminURL, "/"),
		apiURL:   strings.TrimSuffix(cfg.APIURL, "/"),
		client:   client,
	}, nil
}

// CreateSpace 执行 createSpace mutation, 返回新空间 ID
func (c *Client) CreateSpace(ctx context.Context, settings SpaceSettings) (string, error) {
	var result createSpaceResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(&graphQLRequest{
			Query:     createSpaceMutation,
			Variables: map[string]interface{}{"settings": settings},
		}).
		SetSuccessResult(&result).
		Post(c.adminURL)
	if err != nil {
		return "", fmt.Errorf("createSpace 请求失败: %w", err)
	}
	if !resp.IsSuccessState() {
		return "", fmt.Errorf("createSpace 失败 (状态码: %d): %s", resp.StatusCode, resp.String())
	}
	if len(result.Errors) > 0 {
		return "", fmt.Errorf("createSpace 返回错误: %s", result.Errors[0].Message)
	}
	if result.Data.CreateSpace == "" {
		return "", fmt.Errorf("createSpace 未返回空间ID")
	}
	return result.Data.CreateSpace, nil
}

// GetSpace 查询空间详情
func (c *Client) GetSpace(ctx context.Context, spaceID string) (*Space, error) {
	var space Space
	resp, err := c.client.R().
		SetContext(ctx).
		SetSuccessResult(&space).
		Get(fmt.Sprintf("%s/v1/spaces/%s", c.apiURL, url.PathEscape(spaceID)))
	if err != nil {
		return nil, fmt.Errorf("查询空间失败: %w", err)
	}
	if !resp.IsSuccessState() {
		return nil, fmt.Errorf("查询空间失败 (状态码: %d): %s", resp.StatusCode, resp.String())
	}
	return &space, nil
}
