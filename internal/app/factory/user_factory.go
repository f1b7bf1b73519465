package factory

import (
	"gorm.io/gorm"

	"github.com/somewherelostt/KaizenX/internal/config"
	"github.com/somewherelostt/KaizenX/internal/infrastructure/repository"
	"github.com/somewherelostt/KaizenX/internal/modules/user/handler"
	"github.com/somewherelostt/KaizenX/internal/modules/user/usecase"
)

func newUserFactory(cfg *config.Config, dbWrite *gorm.DB, dbRead *gorm.DB) *handler.UserHandler {
	userRepo := repository.NewUserRepository(dbWrite, dbRead)
	usecase := usecase.NewUserUsecase(userRepo, cfg.Auth)
	handler := handler.NewUserHandler(usecase, cfg.Upload)
	return handler
}
