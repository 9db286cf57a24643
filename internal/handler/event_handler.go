package handler

import (
	"net/http"

	"forever-captured-server/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.appService.ListEvents()
	if err != nil {
		httpx.WriteServiceError(c, err, "日程加载失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}
