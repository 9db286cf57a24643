package admin

import (
	"net/http"

	"forever-captured-server/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetServerStats(c *gin.Context) {
	stats, err := h.appService.AdminGetServerStats()
	if err != nil {
		httpx.WriteServiceError(c, err, "统计数据加载失败")
		return
	}
	c.JSON(http.StatusOK, stats)
}
