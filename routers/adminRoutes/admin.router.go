package adminRoutes

import (
	adminControllers "eduportal/controllers/admin"
	"eduportal/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly)

	adminGroup.Get("/stats", adminControllers.Stats)
}
