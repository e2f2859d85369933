package documentationRoutes

import (
	documentationControllers "eduportal/controllers/documentation"
	"eduportal/middleware"
	"eduportal/validators"
	documentationValidators "eduportal/validators/documentation"

	"github.com/gofiber/fiber/v2"
)

func SetupDocumentationRoutes(app *fiber.App) {
	docGroup := app.Group("/documentation")

	docGroup.Get("/", middleware.OptionalJWT, documentationValidators.List(), documentationControllers.ListDocumentation)
	docGroup.Post("/", middleware.JWTMiddleware, middleware.TeacherOrAdmin, documentationValidators.Create(), documentationControllers.CreateDocumentation)
	docGroup.Get("/:id", middleware.OptionalJWT, validators.ID(), documentationControllers.GetDocumentation)
	docGroup.Put("/:id", middleware.JWTMiddleware, validators.ID(), documentationValidators.Update(), documentationControllers.UpdateDocumentation)
	docGroup.Delete("/:id", middleware.JWTMiddleware, validators.ID(), documentationControllers.DeleteDocumentation)
	docGroup.Get("/:id/file", middleware.OptionalJWT, validators.ID(), documentationControllers.DocumentationFile)
	docGroup.Patch("/:id/moderation", middleware.JWTMiddleware, middleware.AdminOnly, validators.ID(), documentationValidators.Moderate(), documentationControllers.ModerateDocumentation)
}
