package courseController

import (
	"eduportal/middleware"
	"eduportal/services"
	"eduportal/validators"
	courseValidator "eduportal/validators/course"

	"github.com/gofiber/fiber/v2"
)

func ListCourses(c *fiber.Ctx) error {
	filter := c.Locals(validators.QueryKey).(*services.CourseFilter)

	courses, pg, err := services.ListCourses(middleware.CurrentUser(c), *filter, validators.PageOf(c))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.ListResponse(c, "Courses fetched successfully!", courses, pg)
}

func GetCourse(c *fiber.Ctx) error {
	course, err := services.GetCourse(middleware.CurrentUser(c), validators.IDOf(c, "id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

func CreateCourse(c *fiber.Ctx) error {
	reqData := c.Locals(validators.BodyKey).(*services.CourseInput)

	course, err := services.CreateCourse(c.UserContext(), middleware.CurrentUser(c), *reqData,
		validators.UploadOf(c, courseValidator.CoverField))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

func UpdateCourse(c *fiber.Ctx) error {
	reqData := c.Locals(validators.BodyKey).(*services.CourseUpdateInput)

	course, err := services.UpdateCourse(c.UserContext(), middleware.CurrentUser(c), validators.IDOf(c, "id"), *reqData,
		validators.UploadOf(c, courseValidator.CoverField))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

func PublishCourse(c *fiber.Ctx) error {
	published := c.Locals(validators.BodyKey).(bool)

	course, err := services.SetCoursePublished(middleware.CurrentUser(c), validators.IDOf(c, "id"), published)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	message := "Course published successfully!"
	if !published {
		message = "Course unpublished successfully!"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, course)
}

func DeleteCourse(c *fiber.Ctx) error {
	if err := services.DeleteCourse(c.UserContext(), middleware.CurrentUser(c), validators.IDOf(c, "id")); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

func CourseCover(c *fiber.Ctx) error {
	file, err := services.CourseCover(middleware.CurrentUser(c), validators.IDOf(c, "id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.FileResponse(c, file)
}
