package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskdesk/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	SetupHealthRoutes(app)

	api := app.Group("/api")

	SetupAuthRoutes(api, h)
	SetupTaskRoutes(api, h)
}
