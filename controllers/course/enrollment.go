package courseController

import (
	"eduportal/middleware"
	"eduportal/services"
	"eduportal/validators"

	"github.com/gofiber/fiber/v2"
)

func Enroll(c *fiber.Ctx) error {
	enrollment, err := services.Enroll(middleware.CurrentUser(c), validators.IDOf(c, "id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled successfully!", enrollment)
}

func Unenroll(c *fiber.Ctx) error {
	if err := services.Unenroll(middleware.CurrentUser(c), validators.IDOf(c, "id")); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unenrolled successfully!", nil)
}

func MyEnrollments(c *fiber.Ctx) error {
	enrollments, pg, err := services.MyEnrollments(middleware.CurrentUser(c), validators.PageOf(c))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.ListResponse(c, "Enrollments fetched successfully!", enrollments, pg)
}

func CourseEnrollments(c *fiber.Ctx) error {
	enrollments, pg, err := services.CourseEnrollments(middleware.CurrentUser(c), validators.IDOf(c, "id"), validators.PageOf(c))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.ListResponse(c, "Enrollments fetched successfully!", enrollments, pg)
}

func CompleteLesson(c *fiber.Ctx) error {
	enrollment, err := services.CompleteLesson(middleware.CurrentUser(c), validators.IDOf(c, "id"), validators.IDOf(c, "lesson_id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as completed!", enrollment)
}

func Progress(c *fiber.Ctx) error {
	progress, err := services.EnrollmentProgress(middleware.CurrentUser(c), validators.IDOf(c, "id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", progress)
}

func SetEnrollmentStatus(c *fiber.Ctx) error {
	reqData := c.Locals(validators.BodyKey).(*services.EnrollmentStatusInput)

	enrollment, err := services.SetEnrollmentStatus(middleware.CurrentUser(c), validators.IDOf(c, "id"), reqData.Status)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment updated successfully!", enrollment)
}
