package service

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// 测试内容：验证远端照片代理下载的地址校验与文件名推导。
func TestFetchRemotePhoto(t *testing.T) {
	env := setupTestService(t)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))
	defer upstream.Close()

	resp, filename, err := env.svc.FetchRemotePhoto(upstream.URL + "/albums/haldi/001.jpg")
	if err != nil {
		t.Fatalf("FetchRemotePhoto: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if filename != "001.jpg" {
		t.Fatalf("期望文件名 001.jpg，实际为 %q", filename)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "jpeg-bytes" {
		t.Fatalf("非预期响应体: %q", body)
	}

	// 路径无文件名时回退默认名
	resp2, filename2, err := env.svc.FetchRemotePhoto(upstream.URL)
	if err != nil {
		t.Fatalf("FetchRemotePhoto(无路径): %v", err)
	}
	_ = resp2.Body.Close()
	if filename2 != "photo" {
		t.Fatalf("期望回退文件名 photo，实际为 %q", filename2)
	}
}

// 测试内容：验证非 http(s) 下载地址被拒绝。
func TestFetchRemotePhoto_RejectsInvalidURL(t *testing.T) {
	env := setupTestService(t)

	for _, raw := range []string{"", "   ", "ftp://example.com/a.jpg", "file:///etc/passwd"} {
		if _, _, err := env.svc.FetchRemotePhoto(raw); err == nil {
			t.Fatalf("期望地址 %q 被拒绝", raw)
		}
	}
}
