package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/somewherelostt/KaizenX/internal/app/factory"
	"github.com/somewherelostt/KaizenX/internal/app/middleware"
	"github.com/somewherelostt/KaizenX/internal/config"
)

func NewRoutes(app *fiber.App, cfg *config.Config, container *factory.Container) {
	requireAuth := middleware.RequireAuth(cfg.Auth)

	routerApi := app.Group("/api")

	// Register healthz routes
	healthzRoutes := routerApi.Group("/healthz")
	NewHealthzRoutes(healthzRoutes)

	// Auth + user routes
	NewUserRoutes(routerApi, container.UserHandler, requireAuth)

	// Event routes
	routerEvents := routerApi.Group("/events")
	NewEventRoutes(routerEvents, container.EventHandler, container.TicketHandler, requireAuth)

	// Ticket routes
	routerTickets := routerApi.Group("/tickets")
	NewTicketRoutes(routerTickets, container.TicketHandler, requireAuth)

	// Uploaded images are served statically
	app.Static(cfg.Upload.PublicPath, cfg.Upload.Dir)
}
