package conferenceRoutes

import (
	conferenceControllers "eduportal/controllers/conference"
	"eduportal/middleware"
	"eduportal/validators"
	conferenceValidators "eduportal/validators/conference"

	"github.com/gofiber/fiber/v2"
)

func SetupConferenceRoutes(app *fiber.App) {
	confGroup := app.Group("/conferences")

	confGroup.Get("/", conferenceValidators.List(), conferenceControllers.ListConferences)
	confGroup.Get("/:id", validators.ID(), conferenceControllers.GetConference)
	confGroup.Post("/", middleware.JWTMiddleware, middleware.TeacherOrAdmin, conferenceValidators.Create(), conferenceControllers.CreateConference)
	confGroup.Put("/:id", middleware.JWTMiddleware, middleware.TeacherOrAdmin, validators.ID(), conferenceValidators.Update(), conferenceControllers.UpdateConference)
	confGroup.Post("/:id/cancel", middleware.JWTMiddleware, middleware.TeacherOrAdmin, validators.ID(), conferenceControllers.CancelConference)
	confGroup.Delete("/:id", middleware.JWTMiddleware, middleware.TeacherOrAdmin, validators.ID(), conferenceControllers.DeleteConference)
}
