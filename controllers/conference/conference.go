package conferenceController

import (
	"eduportal/middleware"
	"eduportal/services"
	"eduportal/validators"

	"github.com/gofiber/fiber/v2"
)

func ListConferences(c *fiber.Ctx) error {
	filter := c.Locals(validators.QueryKey).(*services.ConferenceFilter)

	conferences, pg, err := services.ListConferences(*filter, validators.PageOf(c))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.ListResponse(c, "Conferences fetched successfully!", conferences, pg)
}

func GetConference(c *fiber.Ctx) error {
	conference, err := services.GetConference(validators.IDOf(c, "id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Conference fetched successfully!", conference)
}

func CreateConference(c *fiber.Ctx) error {
	reqData := c.Locals(validators.BodyKey).(*services.ConferenceInput)

	conference, err := services.CreateConference(middleware.CurrentUser(c), *reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Conference created successfully!", conference)
}

func UpdateConference(c *fiber.Ctx) error {
	reqData := c.Locals(validators.BodyKey).(*services.ConferenceUpdateInput)

	conference, err := services.UpdateConference(middleware.CurrentUser(c), validators.IDOf(c, "id"), *reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Conference updated successfully!", conference)
}

func CancelConference(c *fiber.Ctx) error {
	conference, err := services.CancelConference(middleware.CurrentUser(c), validators.IDOf(c, "id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Conference cancelled successfully!", conference)
}

func DeleteConference(c *fiber.Ctx) error {
	if err := services.DeleteConference(middleware.CurrentUser(c), validators.IDOf(c, "id")); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Conference deleted successfully!", nil)
}
