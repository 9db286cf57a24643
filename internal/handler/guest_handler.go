package handler

import (
	"net/http"

	"forever-captured-server/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

type updateDisplayNameRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
}

func (h *Handler) GetProfile(c *gin.Context) {
	gid, _, ok := currentGuest(c)
	if !ok {
		return
	}

	profile, err := h.appService.GetGuestProfile(gid)
	if err != nil {
		httpx.WriteServiceError(c, err, "资料加载失败")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateDisplayName 修改昵称并返回新令牌。
func (h *Handler) UpdateDisplayName(c *gin.Context) {
	gid, isAdmin, ok := currentGuest(c)
	if !ok {
		return
	}

	var req updateDisplayNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "昵称不能为空"})
		return
	}

	token, err := h.appService.UpdateDisplayNameAndGenerateToken(gid, req.DisplayName, isAdmin)
	if err != nil {
		httpx.WriteServiceError(c, err, "昵称修改失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "昵称修改成功",
		"token":        token,
		"display_name": req.DisplayName,
	})
}

func (h *Handler) UploadAvatar(c *gin.Context) {
	gid, _, ok := currentGuest(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请选择文件"})
		return
	}

	avatarURL, err := h.appService.UploadAvatar(gid, file)
	if err != nil {
		httpx.WriteServiceError(c, err, "头像保存失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "头像已更新", "avatar": avatarURL})
}

func (h *Handler) RemoveAvatar(c *gin.Context) {
	gid, _, ok := currentGuest(c)
	if !ok {
		return
	}

	if err := h.appService.RemoveAvatar(gid); err != nil {
		httpx.WriteServiceError(c, err, "头像删除失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "头像已移除"})
}
