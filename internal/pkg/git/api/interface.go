package api

import "context"

// GitProvider Git平台提供者接口
type GitProvider interface {
	// GetPlatformType 获取平台类型
	GetPlatformType() PlatformType

	// TestConnection 测试连接
	TestConnection(ctx context.Context) error

	// GetCurrentUser 获取当前认证用户信息
	GetCurrentUser(ctx context.Context) (*UserInfo, error)

	// CreateRepository 创建仓库
	// 同名仓库已存在时返回 ErrNameExists
	CreateRepository(ctx context.Context, opts CreateRepositoryOptions) (*RepositoryInfo, error)

	// ListContents 列出目录下的条目, path 为空表示根目录
	ListContents(ctx context.Context, owner, repo, path string) ([]ContentEntry, error)

	// GetFile 读取文件内容与版本, 文件不存在时返回 ErrNotFound
	GetFile(ctx context.Context, owner, repo, path string) (*FileContent, error)

	// PutFile 创建或更新文件, 更新时 opts.SHA 必须为当前版本
	PutFile(ctx context.Context, owner, repo string, opts PutFileOptions) error
}
