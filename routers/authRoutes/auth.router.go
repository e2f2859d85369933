package authRoutes

import (
	authControllers "eduportal/controllers/auth"
	"eduportal/middleware"
	authValidators "eduportal/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Get("/me", middleware.JWTMiddleware, authControllers.Me)
	authGroup.Put("/password", middleware.JWTMiddleware, authValidators.ChangePassword(), authControllers.ChangePassword)
}
