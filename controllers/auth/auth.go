package authController

import (
	"eduportal/middleware"
	"eduportal/models"
	"eduportal/services"
	"eduportal/validators"

	"github.com/gofiber/fiber/v2"
)

func tokenResponse(c *fiber.Ctx, status int, message string, user *models.User) error {
	token, err := middleware.GenerateJWT(user)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, status, true, message, fiber.Map{
		"user":  user,
		"token": token,
	})
}

func Register(c *fiber.Ctx) error {
	reqData := c.Locals(validators.BodyKey).(*services.RegisterInput)

	user, err := services.Register(*reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return tokenResponse(c, fiber.StatusCreated, "User registered successfully!", user)
}

func Login(c *fiber.Ctx) error {
	reqData := c.Locals(validators.BodyKey).(*services.LoginInput)

	user, err := services.Login(*reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return tokenResponse(c, fiber.StatusOK, "Login successful!", user)
}

func Me(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", middleware.CurrentUser(c))
}

func ChangePassword(c *fiber.Ctx) error {
	reqData := c.Locals(validators.BodyKey).(*services.ChangePasswordInput)

	if err := services.ChangePassword(middleware.CurrentUser(c), *reqData); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password updated successfully!", nil)
}
