package middleware

import (
	"eduportal/models"

	"github.com/gofiber/fiber/v2"
)

// RequireRoles returns a middleware that only lets users holding one of the roles through
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		role := models.RoleGuest
		if user != nil {
			role = user.Role
		}

		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}

		if user == nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: login required", nil)
		}
		return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}
}

// AdminOnly is RequireRoles(admin).
var AdminOnly = RequireRoles(models.RoleAdmin)

// TeacherOrAdmin is RequireRoles(teacher, admin).
var TeacherOrAdmin = RequireRoles(models.RoleTeacher, models.RoleAdmin)
