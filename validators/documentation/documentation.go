package documentationValidator

import (
	"eduportal/middleware"
	"eduportal/services"
	"eduportal/validators"

	"github.com/gofiber/fiber/v2"
)

// FileField is the multipart field carrying the document.
const FileField = "file"

func List() fiber.Handler {
	return validators.Query[services.DocumentationFilter]()
}

func Create() fiber.Handler {
	return validators.Form[services.DocumentationInput](FileField)
}

func Update() fiber.Handler {
	return validators.Form[services.DocumentationUpdateInput](FileField)
}

// Moderate needs at least one of is_published and guest_viewable.
func Moderate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(services.ModerationInput)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if reqData.IsPublished == nil && reqData.GuestViewable == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"is_published": "is_published or guest_viewable is required",
			})
		}
		c.Locals(validators.BodyKey, reqData)
		return c.Next()
	}
}
