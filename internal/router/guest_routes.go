package router

import (
	"forever-captured-server/internal/consts"
	"forever-captured-server/internal/handler"
	"forever-captured-server/internal/middleware"
	"forever-captured-server/internal/service"

	"github.com/gin-gonic/gin"
)

// registerGuestRoutes 登录宾客可见的业务路由。
func registerGuestRoutes(api *gin.RouterGroup, h *handler.Handler, appService *service.AppService) {
	guestGroup := api.Group("")
	guestGroup.Use(middleware.JWTAuth())
	guestGroup.Use(middleware.GuestStatusCheck())

	// 上传限流：读取配置
	uploadLimiter := middleware.RateLimitMiddleware(appService, consts.ConfigRateLimitUploadRPS, consts.ConfigRateLimitUploadBurst)
	uploadBodyLimit := middleware.UploadBodyLimitMiddleware(appService)

	guestGroup.GET("/images", h.ListPhotos)
	guestGroup.POST("/photos", h.CreatePhoto)
	guestGroup.PUT("/images/:id/like", h.ToggleLike)
	guestGroup.DELETE("/images/:id", h.DeletePhoto)
	guestGroup.POST("/upload", uploadBodyLimit, uploadLimiter, h.UploadPhoto)
	guestGroup.GET("/download", h.DownloadPhoto)

	guestGroup.GET("/schedule", h.ListEvents)

	guestGroup.GET("/user/profile", h.GetProfile)
	guestGroup.PATCH("/user/display_name", h.UpdateDisplayName)
	guestGroup.POST("/user/avatar", uploadBodyLimit, uploadLimiter, h.UploadAvatar)
	guestGroup.DELETE("/user/avatar", h.RemoveAvatar)
}
