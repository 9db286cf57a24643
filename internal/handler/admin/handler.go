package admin

import "forever-captured-server/internal/service"

type Handler struct {
	appService *service.AppService
}

func New(appService *service.AppService) *Handler {
	return &Handler{appService: appService}
}
