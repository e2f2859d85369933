package adminController

import (
	"eduportal/middleware"
	"eduportal/services"

	"github.com/gofiber/fiber/v2"
)

// Stats returns the dashboard counters.
func Stats(c *fiber.Ctx) error {
	stats, err := services.AdminStats()
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", stats)
}
