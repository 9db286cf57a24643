package router

import (
	adminhandler "forever-captured-server/internal/handler/admin"
	"forever-captured-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// registerAdminRoutes 管理端路由。日程的写操作统一收在这里做权限校验，
// 与宾客侧的只读 /schedule 分离。
func registerAdminRoutes(api *gin.RouterGroup, h *adminhandler.Handler) {
	adminGroup := api.Group("")
	adminGroup.Use(middleware.JWTAuth())
	adminGroup.Use(middleware.GuestStatusCheck())
	adminGroup.Use(middleware.AdminCheck())

	adminGroup.POST("/schedule", h.CreateEvent)
	adminGroup.PUT("/schedule/:id", h.UpdateEvent)
	adminGroup.DELETE("/schedule/:id", h.DeleteEvent)

	adminGroup.GET("/admin/stats", h.GetServerStats)

	adminGroup.GET("/admin/settings", h.GetSettings)
	adminGroup.PATCH("/admin/settings", h.UpdateSettings)

	adminGroup.GET("/admin/guests", h.ListGuests)
	adminGroup.PATCH("/admin/guests/:id/status", h.UpdateGuestStatus)
}
