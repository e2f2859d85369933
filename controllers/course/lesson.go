package courseController

import (
	"eduportal/middleware"
	"eduportal/services"
	"eduportal/validators"
	courseValidator "eduportal/validators/course"

	"github.com/gofiber/fiber/v2"
)

func lessonUploads(c *fiber.Ctx) services.LessonUploads {
	return services.LessonUploads{
		Pdf:      validators.UploadOf(c, courseValidator.PdfField),
		Cover:    validators.UploadOf(c, courseValidator.CoverField),
		Document: validators.UploadOf(c, courseValidator.DocumentField),
	}
}

func ListLessons(c *fiber.Ctx) error {
	lessons, err := services.ListLessons(middleware.CurrentUser(c), validators.IDOf(c, "id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", lessons)
}

func GetLesson(c *fiber.Ctx) error {
	lesson, err := services.GetLesson(middleware.CurrentUser(c), validators.IDOf(c, "id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", lesson)
}

func CreateLesson(c *fiber.Ctx) error {
	reqData := c.Locals(validators.BodyKey).(*services.LessonInput)

	lesson, err := services.CreateLesson(c.UserContext(), middleware.CurrentUser(c), validators.IDOf(c, "id"), *reqData, lessonUploads(c))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

func UpdateLesson(c *fiber.Ctx) error {
	reqData := c.Locals(validators.BodyKey).(*services.LessonUpdateInput)

	lesson, err := services.UpdateLesson(c.UserContext(), middleware.CurrentUser(c), validators.IDOf(c, "id"), *reqData, lessonUploads(c))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

func DeleteLesson(c *fiber.Ctx) error {
	if err := services.DeleteLesson(c.UserContext(), middleware.CurrentUser(c), validators.IDOf(c, "id")); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}

// LessonFile streams the pdf, cover or document of a lesson.
func LessonFile(c *fiber.Ctx) error {
	file, err := services.LessonFile(middleware.CurrentUser(c), validators.IDOf(c, "id"), c.Params("slot"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.FileResponse(c, file)
}
