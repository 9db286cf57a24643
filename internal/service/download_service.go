package service

import (
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

// downloadHTTPClient 下载代理统一 HTTP 客户端。
var downloadHTTPClient = &http.Client{Timeout: 30 * time.Second}

// FetchRemotePhoto 代理抓取远端照片，返回上游响应与建议的下载文件名。
// 仅允许 http/https 链接；上游状态码由调用方原样透传。
func (s *AppService) FetchRemotePhoto(rawURL string) (*http.Response, string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, "", NewValidationError("下载地址不能为空")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, "", NewValidationError("下载地址必须是 http(s) 链接")
	}

	resp, err := downloadHTTPClient.Get(rawURL)
	if err != nil {
		return nil, "", NewInternalError("远端图片获取失败")
	}

	filename := path.Base(parsed.Path)
	if filename == "" || filename == "." || filename == "/" {
		filename = "photo"
	}
	return resp, filename, nil
}
