//go:build wireinject
// +build wireinject

package di

import (
	"forever-captured-server/internal/handler"
	adminhandler "forever-captured-server/internal/handler/admin"
	"forever-captured-server/internal/repository"
	"forever-captured-server/internal/router"
	"forever-captured-server/internal/service"

	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitializeApplication(gormDB *gorm.DB) (*Application, error) {
	wire.Build(
		repository.NewGuestRepository,
		repository.NewPhotoRepository,
		repository.NewEventRepository,
		repository.NewSettingRepository,
		repository.NewSystemRepository,
		repository.NewRepositories,
		service.NewAppService,
		handler.New,
		adminhandler.New,
		router.NewRouter,
		NewApplication,
	)
	return nil, nil
}
