package factory

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/somewherelostt/KaizenX/internal/config"
	eventhandler "github.com/somewherelostt/KaizenX/internal/modules/event/handler"
	tickethandler "github.com/somewherelostt/KaizenX/internal/modules/ticket/handler"
	userhandler "github.com/somewherelostt/KaizenX/internal/modules/user/handler"
)

// Container holds the wired handlers the router needs.
type Container struct {
	EventHandler  *eventhandler.EventHandler
	UserHandler   *userhandler.UserHandler
	TicketHandler *tickethandler.TicketHandler
}

func Build(cfg *config.Config, dbWrite *gorm.DB, dbRead *gorm.DB, rdb redis.UniversalClient) *Container {
	return &Container{
		EventHandler:  newEventFactory(cfg, dbWrite, dbRead),
		UserHandler:   newUserFactory(cfg, dbWrite, dbRead),
		TicketHandler: newTicketFactory(dbWrite, dbRead, rdb),
	}
}
