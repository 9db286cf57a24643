package di

import (
	"forever-captured-server/internal/router"
	"forever-captured-server/internal/service"
)

type Application struct {
	Router  *router.Router
	Service *service.AppService
}

func NewApplication(r *router.Router, s *service.AppService) *Application {
	return &Application{
		Router:  r,
		Service: s,
	}
}
