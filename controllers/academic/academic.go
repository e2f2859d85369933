package academicController

import (
	"eduportal/middleware"
	"eduportal/models"
	"eduportal/services"
	"eduportal/validators"

	"github.com/gofiber/fiber/v2"
)

// crud builds the five handlers of a taxonomy collection. F is the list
// filter stored by the query validator, In the validated body.
type crud[T any, F any, In any] struct {
	name   string // singular, capitalized
	plural string
	list   func(F, services.Page) ([]T, services.Pagination, error)
	get    func(uint) (*T, error)
	create func(In) (*T, error)
	update func(uint, In) (*T, error)
	remove func(uint) error
}

func (r crud[T, F, In]) List(c *fiber.Ctx) error {
	var filter F
	if f, ok := c.Locals(validators.QueryKey).(*F); ok {
		filter = *f
	}
	items, pg, err := r.list(filter, validators.PageOf(c))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.ListResponse(c, r.plural+" fetched successfully!", items, pg)
}

func (r crud[T, F, In]) Get(c *fiber.Ctx) error {
	item, err := r.get(validators.IDOf(c, "id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, r.name+" fetched successfully!", item)
}

func (r crud[T, F, In]) Create(c *fiber.Ctx) error {
	reqData := c.Locals(validators.BodyKey).(*In)

	item, err := r.create(*reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, r.name+" created successfully!", item)
}

func (r crud[T, F, In]) Update(c *fiber.Ctx) error {
	reqData := c.Locals(validators.BodyKey).(*In)

	item, err := r.update(validators.IDOf(c, "id"), *reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, r.name+" updated successfully!", item)
}

func (r crud[T, F, In]) Delete(c *fiber.Ctx) error {
	if err := r.remove(validators.IDOf(c, "id")); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, r.name+" deleted successfully!", nil)
}

var Faculties = crud[models.Faculty, services.AcademicFilter, services.FacultyInput]{
	name: "Faculty", plural: "Faculties",
	list: services.ListFaculties, get: services.GetFaculty,
	create: services.CreateFaculty, update: services.UpdateFaculty, remove: services.DeleteFaculty,
}

var DegreePrograms = crud[models.DegreeProgram, services.AcademicFilter, services.DegreeProgramInput]{
	name: "Degree program", plural: "Degree programs",
	list: services.ListDegreePrograms, get: services.GetDegreeProgram,
	create: services.CreateDegreeProgram, update: services.UpdateDegreeProgram, remove: services.DeleteDegreeProgram,
}

var Asignaturas = crud[models.Asignatura, services.AcademicFilter, services.AsignaturaInput]{
	name: "Asignatura", plural: "Asignaturas",
	list: services.ListAsignaturas, get: services.GetAsignatura,
	create: services.CreateAsignatura, update: services.UpdateAsignatura, remove: services.DeleteAsignatura,
}

var SubjectAreas = crud[models.SubjectArea, services.TaxonomyFilter, services.SubjectAreaInput]{
	name: "Subject area", plural: "Subject areas",
	list: services.ListSubjectAreas, get: services.GetSubjectArea,
	create: services.CreateSubjectArea, update: services.UpdateSubjectArea, remove: services.DeleteSubjectArea,
}

var Subjects = crud[models.Subject, services.TaxonomyFilter, services.SubjectInput]{
	name: "Subject", plural: "Subjects",
	list: services.ListSubjects, get: services.GetSubject,
	create: services.CreateSubject, update: services.UpdateSubject, remove: services.DeleteSubject,
}

var Levels = crud[models.Level, struct{}, services.LevelInput]{
	name: "Level", plural: "Levels",
	list: func(_ struct{}, p services.Page) ([]models.Level, services.Pagination, error) {
		return services.ListLevels(p)
	},
	get: services.GetLevel, create: services.CreateLevel, update: services.UpdateLevel, remove: services.DeleteLevel,
}
