package forumController

import (
	"eduportal/middleware"
	"eduportal/services"
	"eduportal/validators"

	"github.com/gofiber/fiber/v2"
)

func ListPosts(c *fiber.Ctx) error {
	filter := c.Locals(validators.QueryKey).(*services.PostFilter)

	posts, pg, err := services.ListPosts(*filter, validators.PageOf(c))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.ListResponse(c, "Posts fetched successfully!", posts, pg)
}

func GetPost(c *fiber.Ctx) error {
	post, err := services.GetPost(validators.IDOf(c, "id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post fetched successfully!", post)
}

func CreatePost(c *fiber.Ctx) error {
	reqData := c.Locals(validators.BodyKey).(*services.PostInput)

	post, err := services.CreatePost(middleware.CurrentUser(c), *reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Post created successfully!", post)
}

func UpdatePost(c *fiber.Ctx) error {
	reqData := c.Locals(validators.BodyKey).(*services.PostUpdateInput)

	post, err := services.UpdatePost(middleware.CurrentUser(c), validators.IDOf(c, "id"), *reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post updated successfully!", post)
}

func DeletePost(c *fiber.Ctx) error {
	if err := services.DeletePost(middleware.CurrentUser(c), validators.IDOf(c, "id")); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post deleted successfully!", nil)
}

func PinPost(c *fiber.Ctx) error {
	pinned := c.Locals(validators.BodyKey).(bool)

	post, err := services.PinPost(validators.IDOf(c, "id"), pinned)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post updated successfully!", post)
}

func ListComments(c *fiber.Ctx) error {
	comments, pg, err := services.ListComments(validators.IDOf(c, "id"), validators.PageOf(c))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.ListResponse(c, "Comments fetched successfully!", comments, pg)
}

func CreateComment(c *fiber.Ctx) error {
	reqData := c.Locals(validators.BodyKey).(*services.CommentInput)

	comment, err := services.CreateComment(middleware.CurrentUser(c), validators.IDOf(c, "id"), *reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Comment added successfully!", comment)
}

func UpdateComment(c *fiber.Ctx) error {
	reqData := c.Locals(validators.BodyKey).(*services.CommentInput)

	comment, err := services.UpdateComment(middleware.CurrentUser(c), validators.IDOf(c, "id"), *reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment updated successfully!", comment)
}

func DeleteComment(c *fiber.Ctx) error {
	if err := services.DeleteComment(middleware.CurrentUser(c), validators.IDOf(c, "id")); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment deleted successfully!", nil)
}
