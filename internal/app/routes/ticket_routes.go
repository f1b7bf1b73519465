package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/somewherelostt/KaizenX/internal/modules/ticket/handler"
)

func NewTicketRoutes(routerTickets fiber.Router, handler *handler.TicketHandler, requireAuth fiber.Handler) {
	routerTickets.Post("/", requireAuth, handler.Record)
}
