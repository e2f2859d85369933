package courseRoutes

import (
	courseControllers "eduportal/controllers/course"
	"eduportal/middleware"
	"eduportal/validators"
	courseValidators "eduportal/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	courseGroup.Get("/", middleware.OptionalJWT, courseValidators.List(), courseControllers.ListCourses)
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.TeacherOrAdmin, courseValidators.CreateCourse(), courseControllers.CreateCourse)
	courseGroup.Get("/:id", middleware.OptionalJWT, validators.ID(), courseControllers.GetCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.TeacherOrAdmin, validators.ID(), courseValidators.UpdateCourse(), courseControllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.TeacherOrAdmin, validators.ID(), courseControllers.DeleteCourse)
	courseGroup.Patch("/:id/publish", middleware.JWTMiddleware, middleware.TeacherOrAdmin, validators.ID(), courseValidators.Publish(), courseControllers.PublishCourse)
	courseGroup.Get("/:id/cover", middleware.OptionalJWT, validators.ID(), courseControllers.CourseCover)

	// Lessons of a course
	courseGroup.Get("/:id/lessons", middleware.OptionalJWT, validators.ID(), courseControllers.ListLessons)
	courseGroup.Post("/:id/lessons", middleware.JWTMiddleware, middleware.TeacherOrAdmin, validators.ID(), courseValidators.CreateLesson(), courseControllers.CreateLesson)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.ID(), courseControllers.Enroll)
	courseGroup.Delete("/:id/enroll", middleware.JWTMiddleware, validators.ID(), courseControllers.Unenroll)
	courseGroup.Get("/:id/enrollments", middleware.JWTMiddleware, middleware.TeacherOrAdmin, validators.ID(), validators.List(), courseControllers.CourseEnrollments)

	lessonGroup := app.Group("/lessons")
	lessonGroup.Get("/:id", middleware.OptionalJWT, validators.ID(), courseControllers.GetLesson)
	lessonGroup.Put("/:id", middleware.JWTMiddleware, middleware.TeacherOrAdmin, validators.ID(), courseValidators.UpdateLesson(), courseControllers.UpdateLesson)
	lessonGroup.Delete("/:id", middleware.JWTMiddleware, middleware.TeacherOrAdmin, validators.ID(), courseControllers.DeleteLesson)
	lessonGroup.Get("/:id/:slot", middleware.OptionalJWT, validators.ID(), courseValidators.LessonFile(), courseControllers.LessonFile)

	enrollmentGroup := app.Group("/enrollments", middleware.JWTMiddleware)
	enrollmentGroup.Get("/me", validators.List(), courseControllers.MyEnrollments)
	enrollmentGroup.Get("/:id/progress", validators.ID(), courseControllers.Progress)
	enrollmentGroup.Post("/:id/lessons/:lesson_id/complete", validators.ID("id", "lesson_id"), courseControllers.CompleteLesson)
	enrollmentGroup.Patch("/:id/status", middleware.TeacherOrAdmin, validators.ID(), courseValidators.EnrollmentStatus(), courseControllers.SetEnrollmentStatus)
}
