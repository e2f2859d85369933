package academicRoutes

import (
	academicControllers "eduportal/controllers/academic"
	"eduportal/middleware"
	"eduportal/validators"
	academicValidators "eduportal/validators/academic"

	"github.com/gofiber/fiber/v2"
)

// collection is the handler set of one taxonomy resource.
type collection interface {
	List(c *fiber.Ctx) error
	Get(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

// mount registers public reads and admin writes for a collection.
func mount(app *fiber.App, path string, h collection, list, body fiber.Handler) {
	group := app.Group(path)

	group.Get("/", list, h.List)
	group.Get("/:id", validators.ID(), h.Get)
	group.Post("/", middleware.JWTMiddleware, middleware.AdminOnly, body, h.Create)
	group.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly, validators.ID(), body, h.Update)
	group.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly, validators.ID(), h.Delete)
}

func SetupAcademicRoutes(app *fiber.App) {
	mount(app, "/faculties", academicControllers.Faculties, academicValidators.ListAcademic(), academicValidators.Faculty())
	mount(app, "/degree-programs", academicControllers.DegreePrograms, academicValidators.ListAcademic(), academicValidators.DegreeProgram())
	mount(app, "/asignaturas", academicControllers.Asignaturas, academicValidators.ListAcademic(), academicValidators.Asignatura())
	mount(app, "/subject-areas", academicControllers.SubjectAreas, academicValidators.ListTaxonomy(), academicValidators.SubjectArea())
	mount(app, "/subjects", academicControllers.Subjects, academicValidators.ListTaxonomy(), academicValidators.Subject())
	mount(app, "/levels", academicControllers.Levels, validators.List(), academicValidators.Level())
}
