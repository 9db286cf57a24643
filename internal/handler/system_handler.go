package handler

import (
	"net/http"
	"sync"

	"forever-captured-server/internal/common/httpx"
	"forever-captured-server/internal/service"

	"github.com/gin-gonic/gin"
)

var initLock sync.Mutex

func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func (h *Handler) GetWebInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.appService.GetWebInfo())
}

func (h *Handler) GetInitState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"initialized": h.appService.IsSystemInitialized(),
	})
}

func (h *Handler) Init(c *gin.Context) {
	// 加锁防止竞态条件，数据库侧还有 allow_init 乐观锁兜底
	initLock.Lock()
	defer initLock.Unlock()

	var initInfo struct {
		DisplayName     string `json:"display_name" binding:"required"`
		Password        string `json:"password" binding:"required"`
		SiteName        string `json:"site_name" binding:"required"`
		SiteDescription string `json:"site_description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&initInfo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}
	if h.appService.IsSystemInitialized() {
		c.JSON(http.StatusForbidden, gin.H{"error": "已初始化，无法重复初始化"})
		return
	}

	if err := h.appService.InitializeSystem(service.InitPayload{
		DisplayName:     initInfo.DisplayName,
		Password:        initInfo.Password,
		SiteName:        initInfo.SiteName,
		SiteDescription: initInfo.SiteDescription,
	}); err != nil {
		httpx.WriteServiceError(c, err, "初始化失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "初始化成功",
	})
}
