package api

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
)

// ContentPath 拼接 contents 接口路径, path 按段转义
func ContentPath(owner, repo, path string) string {
	p := fmt.Sprintf("/repos/%s/%s/contents", url.PathEscape(owner), url.PathEscape(repo))
	path = strings.Trim(path, "/")
	if path == "" {
		return p
	}
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return p + "/" + strings.Join(segments, "/")
}

// DecodeContent 解码 contents 接口返回的文件内容, GitHub 的 base64 带换行
func DecodeContent(encoding, content string) ([]byte, error) {
	switch encoding {
	case "base64":
		cleaned := strings.NewReplacer("\n", "", "\r", "").Replace(content)
		return base64.StdEncoding.DecodeString(cleaned)
	case "", "none", "utf-8":
		return []byte(content), nil
	default:
		return nil, fmt.Errorf("不支持的内容编码: %s", encoding)
	}
}

// EncodeContent 按 contents 接口要求编码文件内容
func EncodeContent(content []byte) string {
	return base64.StdEncoding.EncodeToString(content)
}
