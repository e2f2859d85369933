package documentationController

import (
	"eduportal/middleware"
	"eduportal/services"
	"eduportal/validators"
	documentationValidator "eduportal/validators/documentation"

	"github.com/gofiber/fiber/v2"
)

func ListDocumentation(c *fiber.Ctx) error {
	filter := c.Locals(validators.QueryKey).(*services.DocumentationFilter)

	docs, pg, err := services.ListDocumentation(middleware.CurrentUser(c), *filter, validators.PageOf(c))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.ListResponse(c, "Documentation fetched successfully!", docs, pg)
}

func GetDocumentation(c *fiber.Ctx) error {
	doc, err := services.GetDocumentation(middleware.CurrentUser(c), validators.IDOf(c, "id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Documentation fetched successfully!", doc)
}

func CreateDocumentation(c *fiber.Ctx) error {
	reqData := c.Locals(validators.BodyKey).(*services.DocumentationInput)

	doc, err := services.CreateDocumentation(c.UserContext(), middleware.CurrentUser(c), *reqData,
		validators.UploadOf(c, documentationValidator.FileField))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	message := "Documentation uploaded successfully!"
	if !doc.IsPublished {
		message = "Documentation uploaded and waiting for moderation!"
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, message, doc)
}

func UpdateDocumentation(c *fiber.Ctx) error {
	reqData := c.Locals(validators.BodyKey).(*services.DocumentationUpdateInput)

	doc, err := services.UpdateDocumentation(c.UserContext(), middleware.CurrentUser(c), validators.IDOf(c, "id"), *reqData,
		validators.UploadOf(c, documentationValidator.FileField))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Documentation updated successfully!", doc)
}

func ModerateDocumentation(c *fiber.Ctx) error {
	reqData := c.Locals(validators.BodyKey).(*services.ModerationInput)

	doc, err := services.ModerateDocumentation(validators.IDOf(c, "id"), *reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Documentation moderated successfully!", doc)
}

func DeleteDocumentation(c *fiber.Ctx) error {
	if err := services.DeleteDocumentation(c.UserContext(), middleware.CurrentUser(c), validators.IDOf(c, "id")); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Documentation deleted successfully!", nil)
}

func DocumentationFile(c *fiber.Ctx) error {
	file, err := services.DocumentationFile(middleware.CurrentUser(c), validators.IDOf(c, "id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.FileResponse(c, file)
}
