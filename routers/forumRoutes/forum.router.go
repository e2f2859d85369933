package forumRoutes

import (
	forumControllers "eduportal/controllers/forum"
	"eduportal/middleware"
	"eduportal/validators"
	forumValidators "eduportal/validators/forum"

	"github.com/gofiber/fiber/v2"
)

func SetupForumRoutes(app *fiber.App) {
	postGroup := app.Group("/forum/posts")

	postGroup.Get("/", forumValidators.ListPosts(), forumControllers.ListPosts)
	postGroup.Post("/", middleware.JWTMiddleware, forumValidators.CreatePost(), forumControllers.CreatePost)
	postGroup.Get("/:id", validators.ID(), forumControllers.GetPost)
	postGroup.Put("/:id", middleware.JWTMiddleware, validators.ID(), forumValidators.UpdatePost(), forumControllers.UpdatePost)
	postGroup.Delete("/:id", middleware.JWTMiddleware, validators.ID(), forumControllers.DeletePost)
	postGroup.Patch("/:id/pin", middleware.JWTMiddleware, middleware.AdminOnly, validators.ID(), forumValidators.Pin(), forumControllers.PinPost)

	postGroup.Get("/:id/comments", validators.ID(), validators.List(), forumControllers.ListComments)
	postGroup.Post("/:id/comments", middleware.JWTMiddleware, validators.ID(), forumValidators.Comment(), forumControllers.CreateComment)

	commentGroup := app.Group("/comments", middleware.JWTMiddleware)
	commentGroup.Put("/:id", validators.ID(), forumValidators.Comment(), forumControllers.UpdateComment)
	commentGroup.Delete("/:id", validators.ID(), forumControllers.DeleteComment)
}
