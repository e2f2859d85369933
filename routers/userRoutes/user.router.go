package userRoutes

import (
	userControllers "eduportal/controllers/userControllers"
	"eduportal/middleware"
	"eduportal/validators"
	userValidators "eduportal/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/users", middleware.JWTMiddleware)

	userGroup.Get("/", middleware.AdminOnly, userValidators.List(), userControllers.ListUsers)
	userGroup.Post("/", middleware.AdminOnly, userValidators.Create(), userControllers.CreateUser)
	userGroup.Get("/:id", validators.ID(), userControllers.GetUser)
	userGroup.Put("/:id", validators.ID(), userValidators.Update(), userControllers.UpdateUser)
	userGroup.Delete("/:id", middleware.AdminOnly, validators.ID(), userControllers.DeleteUser)
}
