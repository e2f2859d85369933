package userValidator

import (
	"eduportal/services"
	"eduportal/validators"

	"github.com/gofiber/fiber/v2"
)

func List() fiber.Handler {
	return validators.Query[services.UserFilter]()
}

func Create() fiber.Handler {
	return validators.Body[services.CreateUserInput]()
}

func Update() fiber.Handler {
	return validators.Body[services.UpdateUserInput]()
}
