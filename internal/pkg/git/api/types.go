package api

import (
	"errors"
	"time"
)

// PlatformType 平台类型
type PlatformType string

const (
	PlatformGitea  PlatformType = "gitea"
	PlatformGitHub PlatformType = "github"
)

var (
	// ErrNameExists 仓库名已被占用
	ErrNameExists = errors.New("repository name already exists")
	// ErrNotFound 仓库或文件不存在
	ErrNotFound = errors.New("not found")
)

// RepositoryInfo 仓库信息
type RepositoryInfo struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	CloneURL      string `json:"clone_url"`
	DefaultBranch string `json:"default_branch"`
	Private       bool   `json:"private"`
	Owner         string `json:"owner"`
	HTMLURL       string `json:"html_url"`
}

// UserInfo 用户信息
type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

// CreateRepositoryOptions 创建仓库参数
type CreateRepositoryOptions struct {
	Name     string
	Org      string // 为空时创建在当前用户下
	Private  bool
	AutoInit bool
}

// EntryType 仓库条目类型
type EntryType string

const (
	EntryFile    EntryType = "file"
	EntryDir     EntryType = "dir"
	EntrySymlink EntryType = "symlink"
	EntrySubmod  EntryType = "submodule"
)

// ContentEntry 目录条目
type ContentEntry struct {
	Name string    `json:"name"`
	Path string    `json:"path"`
	Type EntryType `json:"type"`
	SHA  string    `json:"sha"`
}

// FileContent 文件内容(已解码)与版本
type FileContent struct {
	Path    string
	SHA     string
	Content []byte
}

// PutFileOptions 写文件参数
type PutFileOptions struct {
	Path    string
	Content []byte
	Message string
	SHA     string // 为空表示新建
}

// ProviderConfig 通用平台配置
type ProviderConfig struct {
	BaseURL string // 平台API地址
	Token   string // 访问Token
	Timeout time.Duration
}
