package handler

import (
	"net/http"

	"forever-captured-server/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	appService *service.AppService
}

func New(appService *service.AppService) *Handler {
	return &Handler{appService: appService}
}

// currentGuest 从 JWT 中间件注入的上下文取出宾客身份。
// 返回 false 时已写入 401 响应。
func currentGuest(c *gin.Context) (uint, bool, bool) {
	guestID, exists := c.Get("id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到宾客信息"})
		return 0, false, false
	}
	gid, ok := guestID.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "无效的宾客ID类型"})
		return 0, false, false
	}

	isAdmin := false
	if value, exist := c.Get("admin"); exist {
		if admin, ok := value.(bool); ok {
			isAdmin = admin
		}
	}
	return gid, isAdmin, true
}
