package routes

import (
	"github.com/gofiber/fiber/v2"

	eventhandler "github.com/somewherelostt/KaizenX/internal/modules/event/handler"
	tickethandler "github.com/somewherelostt/KaizenX/internal/modules/ticket/handler"
)

func NewEventRoutes(routerEvents fiber.Router, handler *eventhandler.EventHandler, tickets *tickethandler.TicketHandler, requireAuth fiber.Handler) {
	routerEvents.Get("/", handler.List)
	routerEvents.Get("/:id", handler.Get)
	routerEvents.Get("/:id/tickets", tickets.ListByEvent)
	routerEvents.Post("/", requireAuth, handler.Create)
	routerEvents.Put("/:id", requireAuth, handler.Update)
	routerEvents.Delete("/:id", requireAuth, handler.Delete)
	routerEvents.Post("/:id/image", requireAuth, handler.UploadImage)
}
