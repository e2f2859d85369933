package courseValidator

import (
	"eduportal/middleware"
	"eduportal/services"
	"eduportal/validators"

	"github.com/gofiber/fiber/v2"
)

// Multipart fields carrying files
const (
	CoverField    = "cover"
	PdfField      = "pdf"
	DocumentField = "document"
)

func List() fiber.Handler {
	return validators.Query[services.CourseFilter]()
}

// CreateCourse accepts JSON or a multipart form with an optional cover image.
func CreateCourse() fiber.Handler {
	return validators.Form[services.CourseInput](CoverField)
}

func UpdateCourse() fiber.Handler {
	return validators.Form[services.CourseUpdateInput](CoverField)
}

// Publish reads {"is_published": bool}; an empty body publishes.
func Publish() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			IsPublished *bool `json:"is_published"`
		})
		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}
		published := reqData.IsPublished == nil || *reqData.IsPublished
		c.Locals(validators.BodyKey, published)
		return c.Next()
	}
}

func CreateLesson() fiber.Handler {
	return validators.Form[services.LessonInput](PdfField, CoverField, DocumentField)
}

func UpdateLesson() fiber.Handler {
	return validators.Form[services.LessonUpdateInput](PdfField, CoverField, DocumentField)
}

// LessonFile checks the slot parameter of /lessons/:id/:slot.
func LessonFile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch c.Params("slot") {
		case services.LessonPDF, services.LessonCover, services.LessonDocument:
			return c.Next()
		}
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Unknown lesson file!", nil)
	}
}

func EnrollmentStatus() fiber.Handler {
	return validators.Body[services.EnrollmentStatusInput]()
}
