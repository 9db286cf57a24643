package admin

import (
	"net/http"
	"strconv"

	"forever-captured-server/internal/common/httpx"
	"forever-captured-server/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateEvent(c *gin.Context) {
	var payload service.EventPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	event, err := h.appService.CreateEvent(payload)
	if err != nil {
		httpx.WriteServiceError(c, err, "日程保存失败")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "日程已创建", "event": event})
}

func (h *Handler) UpdateEvent(c *gin.Context) {
	eventID, ok := parseEventID(c)
	if !ok {
		return
	}

	var payload service.EventPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	event, err := h.appService.UpdateEvent(eventID, payload)
	if err != nil {
		httpx.WriteServiceError(c, err, "日程保存失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "日程已更新", "event": event})
}

func (h *Handler) DeleteEvent(c *gin.Context) {
	eventID, ok := parseEventID(c)
	if !ok {
		return
	}

	if err := h.appService.DeleteEvent(eventID); err != nil {
		httpx.WriteServiceError(c, err, "日程删除失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

func parseEventID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id 参数错误"})
		return 0, false
	}
	return uint(id), true
}
