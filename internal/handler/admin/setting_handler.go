package admin

import (
	"net/http"

	"forever-captured-server/internal/common/httpx"
	"forever-captured-server/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.appService.AdminListSettings()
	if err != nil {
		httpx.WriteServiceError(c, err, "设置加载失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var req struct {
		Settings []service.UpdateSettingPayload `json:"settings" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	if err := h.appService.AdminUpdateSettings(req.Settings); err != nil {
		httpx.WriteServiceError(c, err, "设置保存失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "设置已更新"})
}
