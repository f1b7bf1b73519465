package factory

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/somewherelostt/KaizenX/internal/infrastructure/repository"
	"github.com/somewherelostt/KaizenX/internal/modules/ticket/handler"
	"github.com/somewherelostt/KaizenX/internal/modules/ticket/store"
	"github.com/somewherelostt/KaizenX/internal/modules/ticket/usecase"
)

func newTicketFactory(dbWrite *gorm.DB, dbRead *gorm.DB, rdb redis.UniversalClient) *handler.TicketHandler {
	store := store.NewRedisTicketStore(rdb)
	eventRepo := repository.NewEventRepository(dbWrite, dbRead)
	ticketRepo := repository.NewTicketRepository(dbWrite, dbRead)
	usecase := usecase.NewTicketUsecase(eventRepo, ticketRepo, store)
	handler := handler.NewTicketHandler(usecase)
	return handler
}
