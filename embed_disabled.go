//go:build !embed

package main

import (
	"io/fs"

	"github.com/gin-gonic/gin"
)

// GetFrontendAssets 不带 -tags embed 编译时走这里，只提供 API 服务。
// 相册前端由外部静态服务托管，非 API 路径的 SPA 回退直接返回 404。
func GetFrontendAssets() fs.FS {
	return nil
}

func setupFrontend(_ *gin.Engine, _ fs.FS) []byte {
	return nil
}
