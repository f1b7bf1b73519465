package factory

import (
	"gorm.io/gorm"

	"github.com/somewherelostt/KaizenX/internal/config"
	"github.com/somewherelostt/KaizenX/internal/infrastructure/repository"
	"github.com/somewherelostt/KaizenX/internal/modules/event/handler"
	"github.com/somewherelostt/KaizenX/internal/modules/event/usecase"
)

func newEventFactory(cfg *config.Config, dbWrite *gorm.DB, dbRead *gorm.DB) *handler.EventHandler {
	eventRepo := repository.NewEventRepository(dbWrite, dbRead)
	usecase := usecase.NewEventUsecase(eventRepo)
	handler := handler.NewEventHandler(usecase, cfg.Upload)
	return handler
}
