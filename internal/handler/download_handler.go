package handler

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"forever-captured-server/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

// DownloadPhoto 代理下载远端照片，绕过浏览器跨域限制。
// 上游失败状态原样透传。
func (h *Handler) DownloadPhoto(c *gin.Context) {
	resp, filename, err := h.appService.FetchRemotePhoto(c.Query("url"))
	if err != nil {
		httpx.WriteServiceError(c, err, "远端图片获取失败")
		return
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.JSON(resp.StatusCode, gin.H{"error": fmt.Sprintf("远端返回状态码 %d", resp.StatusCode)})
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", contentType)
	if cl := resp.Header.Get("Content-Length"); cl != "" {
		c.Header("Content-Length", cl)
	}

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, resp.Body); err != nil {
		// 响应头已写出，只能记录日志
		log.Printf("⚠️ 代理下载中断: %v", err)
	}
}
