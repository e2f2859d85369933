package userController

import (
	"eduportal/middleware"
	"eduportal/services"
	"eduportal/validators"

	"github.com/gofiber/fiber/v2"
)

func ListUsers(c *fiber.Ctx) error {
	filter := c.Locals(validators.QueryKey).(*services.UserFilter)

	users, pg, err := services.ListUsers(*filter, validators.PageOf(c))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.ListResponse(c, "Users fetched successfully!", users, pg)
}

func CreateUser(c *fiber.Ctx) error {
	reqData := c.Locals(validators.BodyKey).(*services.CreateUserInput)

	user, err := services.CreateUser(*reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully!", user)
}

func GetUser(c *fiber.Ctx) error {
	user, err := services.FindUser(validators.IDOf(c, "id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", user)
}

func UpdateUser(c *fiber.Ctx) error {
	reqData := c.Locals(validators.BodyKey).(*services.UpdateUserInput)

	user, err := services.UpdateUser(middleware.CurrentUser(c), validators.IDOf(c, "id"), *reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully!", user)
}

func DeleteUser(c *fiber.Ctx) error {
	if err := services.DeleteUser(middleware.CurrentUser(c), validators.IDOf(c, "id")); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", nil)
}
