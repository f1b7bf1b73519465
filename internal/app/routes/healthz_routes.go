package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/somewherelostt/KaizenX/pkg/response"
)

func NewHealthzRoutes(routerHealthz fiber.Router) {
	routerHealthz.Get("/", func(c *fiber.Ctx) error {
		return response.WriteSuccess(c, fiber.StatusOK, "API is healthy", nil)
	})
}
