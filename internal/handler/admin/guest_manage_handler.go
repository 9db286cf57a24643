package admin

import (
	"net/http"
	"strconv"

	"forever-captured-server/internal/common/httpx"
	"forever-captured-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListGuests(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	keyword := c.Query("keyword")

	list, err := h.appService.AdminListGuests(keyword, page, pageSize)
	if err != nil {
		httpx.WriteServiceError(c, err, "宾客列表加载失败")
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateGuestStatus 封禁/解封宾客，并清理状态缓存使其即时生效。
func (h *Handler) UpdateGuestStatus(c *gin.Context) {
	actorID, exists := c.Get("id")
	aid, ok := actorID.(uint)
	if !exists || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到宾客信息"})
		return
	}

	guestID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || guestID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id 参数错误"})
		return
	}

	var req struct {
		Status int `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	if err := h.appService.AdminUpdateGuestStatus(aid, uint(guestID), req.Status); err != nil {
		httpx.WriteServiceError(c, err, "账号状态更新失败")
		return
	}

	middleware.ClearGuestStatusCache(uint(guestID))
	c.JSON(http.StatusOK, gin.H{"message": "账号状态已更新"})
}
