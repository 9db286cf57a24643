package handler

import (
	"net/http"
	"strconv"

	"forever-captured-server/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

type createPhotoRequest struct {
	URL      string `json:"url" binding:"required"`
	EventTag string `json:"event_tag"`
}

func (h *Handler) ListPhotos(c *gin.Context) {
	gid, _, ok := currentGuest(c)
	if !ok {
		return
	}

	photos, err := h.appService.ListPhotos(gid)
	if err != nil {
		httpx.WriteServiceError(c, err, "照片列表加载失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"photos": photos})
}

// CreatePhoto 登记外部直传照片。上传者取自会话身份，不信任请求体。
func (h *Handler) CreatePhoto(c *gin.Context) {
	gid, _, ok := currentGuest(c)
	if !ok {
		return
	}

	var req createPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "照片地址不能为空"})
		return
	}

	photo, err := h.appService.CreatePhoto(gid, req.URL, req.EventTag)
	if err != nil {
		httpx.WriteServiceError(c, err, "照片保存失败")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "照片已登记", "photo": photo})
}

func (h *Handler) UploadPhoto(c *gin.Context) {
	gid, _, ok := currentGuest(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请选择文件"})
		return
	}
	eventTag := c.PostForm("event_tag")

	photo, err := h.appService.UploadPhoto(gid, file, eventTag)
	if err != nil {
		httpx.WriteServiceError(c, err, "上传失败，请稍后重试")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "上传成功", "photo": photo})
}

func (h *Handler) ToggleLike(c *gin.Context) {
	gid, _, ok := currentGuest(c)
	if !ok {
		return
	}

	photoID, ok := parseIDParam(c)
	if !ok {
		return
	}

	photo, err := h.appService.ToggleLike(photoID, gid)
	if err != nil {
		httpx.WriteServiceError(c, err, "点赞操作失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"photo": photo})
}

func (h *Handler) DeletePhoto(c *gin.Context) {
	gid, isAdmin, ok := currentGuest(c)
	if !ok {
		return
	}

	photoID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.appService.DeletePhoto(photoID, gid, isAdmin); err != nil {
		httpx.WriteServiceError(c, err, "照片删除失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id 参数错误"})
		return 0, false
	}
	return uint(id), true
}
