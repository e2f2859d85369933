package authValidator

import (
	"strings"

	"eduportal/middleware"
	"eduportal/services"
	"eduportal/validators"

	"github.com/gofiber/fiber/v2"
)

// Register validator middleware
func Register() fiber.Handler {
	return validators.Body[services.RegisterInput]()
}

// Login validator middleware
func Login() fiber.Handler {
	return validators.Body[services.LoginInput]()
}

// ChangePassword also rejects reusing the current password.
func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(services.ChangePasswordInput)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := validators.Struct(reqData)
		if errors == nil {
			errors = make(map[string]string)
		}
		if _, failed := errors["new_password"]; !failed && reqData.NewPassword == reqData.CurrentPassword {
			errors["new_password"] = "New password must differ from the current one!"
		}
		if strings.TrimSpace(reqData.NewPassword) != reqData.NewPassword {
			errors["new_password"] = "Password cannot start or end with spaces!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals(validators.BodyKey, reqData)
		return c.Next()
	}
}
