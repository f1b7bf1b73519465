package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/somewherelostt/KaizenX/internal/modules/user/handler"
)

func NewUserRoutes(routerApi fiber.Router, handler *handler.UserHandler, requireAuth fiber.Handler) {
	routerApi.Post("/register", handler.Register)
	routerApi.Post("/login", handler.Login)

	routerUsers := routerApi.Group("/users")
	routerUsers.Get("/me", requireAuth, handler.Me)
	routerUsers.Get("/", handler.List)
	routerUsers.Get("/:id", handler.Get)
	routerUsers.Put("/me", requireAuth, handler.Update)
	routerUsers.Post("/me/image", requireAuth, handler.UploadImage)
	routerUsers.Delete("/me", requireAuth, handler.Delete)
}
