package routers

import (
	"eduportal/config"
	"eduportal/middleware"
	academicRoutes "eduportal/routers/academicRoutes"
	adminRoutes "eduportal/routers/adminRoutes"
	authRoutes "eduportal/routers/authRoutes"
	conferenceRoutes "eduportal/routers/conferenceRoutes"
	courseRoutes "eduportal/routers/courseRoutes"
	documentationRoutes "eduportal/routers/documentationRoutes"
	forumRoutes "eduportal/routers/forumRoutes"
	userRoutes "eduportal/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the Fiber app with the shared middleware and every route group.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		// multipart overhead on top of the largest accepted file
		BodyLimit: int(config.AppConfig.MaxUploadBytes()) + 1<<20,
	})

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",  // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Access log; silent in tests
	if config.AppConfig.AppEnv != "test" {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
		}))
	}

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	academicRoutes.SetupAcademicRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	documentationRoutes.SetupDocumentationRoutes(app)
	forumRoutes.SetupForumRoutes(app)
	conferenceRoutes.SetupConferenceRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	app.Use(func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Route not found!", nil)
	})

	return app
}
