package academicValidator

import (
	"eduportal/services"
	"eduportal/validators"

	"github.com/gofiber/fiber/v2"
)

func ListAcademic() fiber.Handler {
	return validators.Query[services.AcademicFilter]()
}

func ListTaxonomy() fiber.Handler {
	return validators.Query[services.TaxonomyFilter]()
}

func Faculty() fiber.Handler {
	return validators.Body[services.FacultyInput]()
}

func DegreeProgram() fiber.Handler {
	return validators.Body[services.DegreeProgramInput]()
}

func Asignatura() fiber.Handler {
	return validators.Body[services.AsignaturaInput]()
}

func SubjectArea() fiber.Handler {
	return validators.Body[services.SubjectAreaInput]()
}

func Subject() fiber.Handler {
	return validators.Body[services.SubjectInput]()
}

func Level() fiber.Handler {
	return validators.Body[services.LevelInput]()
}
