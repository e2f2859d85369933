package middleware

import (
	"fmt"

	"eduportal/logger"
	"eduportal/models"
	"eduportal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

// ErrorResponse answers with the status an AppError carries; anything else is
// logged and reported as a 500.
func ErrorResponse(c *fiber.Ctx, err error) error {
	var appErr *services.AppError
	if errors.As(err, &appErr) {
		return JsonResponse(c, appErr.Status, false, appErr.Message, nil)
	}
	logger.Log.Error("request failed",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
}

// ListResponse wraps a page of items with its pagination block.
func ListResponse(c *fiber.Ctx, message string, items interface{}, pg services.Pagination) error {
	return JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"items":      items,
		"pagination": pg,
	})
}

// FileResponse streams a stored file with its content type and original name.
func FileResponse(c *fiber.Ctx, file *models.File) error {
	rc, err := services.OpenFile(c.UserContext(), file)
	if err != nil {
		return ErrorResponse(c, err)
	}
	disposition := "attachment"
	if services.ServeInline(file.ContentType) {
		disposition = "inline"
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("%s; filename=%q", disposition, file.Filename))
	return c.SendStream(rc, int(file.Size))
}
