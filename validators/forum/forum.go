package forumValidator

import (
	"eduportal/middleware"
	"eduportal/services"
	"eduportal/validators"

	"github.com/gofiber/fiber/v2"
)

func ListPosts() fiber.Handler {
	return validators.Query[services.PostFilter]()
}

func CreatePost() fiber.Handler {
	return validators.Body[services.PostInput]()
}

func UpdatePost() fiber.Handler {
	return validators.Body[services.PostUpdateInput]()
}

// Pin reads {"pinned": bool}; an empty body pins.
func Pin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Pinned *bool `json:"pinned"`
		})
		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}
		c.Locals(validators.BodyKey, reqData.Pinned == nil || *reqData.Pinned)
		return c.Next()
	}
}

func Comment() fiber.Handler {
	return validators.Body[services.CommentInput]()
}
