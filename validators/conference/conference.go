package conferenceValidator

import (
	"time"

	"eduportal/middleware"
	"eduportal/services"
	"eduportal/validators"

	"github.com/gofiber/fiber/v2"
)

func List() fiber.Handler {
	return validators.Query[services.ConferenceFilter]()
}

// Create also rejects conferences that start in the past.
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(services.ConferenceInput)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := validators.Struct(reqData)
		if errors == nil {
			errors = make(map[string]string)
		}
		if _, failed := errors["starts_at"]; !failed && reqData.StartsAt.Before(time.Now()) {
			errors["starts_at"] = "starts_at must be in the future"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals(validators.BodyKey, reqData)
		return c.Next()
	}
}

func Update() fiber.Handler {
	return validators.Body[services.ConferenceUpdateInput]()
}
