package router

import (
	"forever-captured-server/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerPublicRoutes(api *gin.RouterGroup, h *handler.Handler) {
	api.GET("/ping", h.Ping)
	api.GET("/webinfo", h.GetWebInfo)
}
