package services

import (
	"strings"

	"eduportal/models"

	"github.com/pkg/errors"
)

type FacultyInput struct {
	Name        string `json:"name" validate:"required,notblank,min=2,max=120"`
	Code        string `json:"code" validate:"max=20"`
	Description string `json:"description" validate:"max=2000"`
}

type DegreeProgramInput struct {
	Name          string `json:"name" validate:"required,notblank,min=2,max=120"`
	Code          string `json:"code" validate:"max=20"`
	DurationYears int    `json:"duration_years" validate:"min=0,max=12"`
	FacultyID     uint   `json:"faculty_id" validate:"required"`
}

type AsignaturaInput struct {
	Name            string `json:"name" validate:"required,notblank,min=2,max=120"`
	Code            string `json:"code" validate:"required,notblank,max=20"`
	Year            int    `json:"year" validate:"min=0,max=12"`
	Semester        int    `json:"semester" validate:"min=0,max=2"`
	Credits         int    `json:"credits" validate:"min=0,max=60"`
	DegreeProgramID uint   `json:"degree_program_id" validate:"required"`
}

type AcademicFilter struct {
	FacultyID       uint   `query:"faculty_id"`
	DegreeProgramID uint   `query:"degree_program_id"`
	Search          string `query:"search"`
}

// Faculties

func ListFaculties(f AcademicFilter, p Page) ([]models.Faculty, Pagination, error) {
	q := db().Model(&models.Faculty{})
	if f.Search != "" {
		q = q.Where("LOWER(name) LIKE ?", likePattern(f.Search))
	}
	var out []models.Faculty
	pg, err := paginate(q, p, "name asc", &out)
	return out, pg, err
}

func GetFaculty(id uint) (*models.Faculty, error) {
	var faculty models.Faculty
	if err := first(&faculty, id, "Faculty", "DegreePrograms"); err != nil {
		return nil, err
	}
	return &faculty, nil
}

func CreateFaculty(in FacultyInput) (*models.Faculty, error) {
	faculty := models.Faculty{}
	if err := saveFaculty(&faculty, in); err != nil {
		return nil, err
	}
	return &faculty, nil
}

func UpdateFaculty(id uint, in FacultyInput) (*models.Faculty, error) {
	var faculty models.Faculty
	if err := first(&faculty, id, "Faculty"); err != nil {
		return nil, err
	}
	if err := saveFaculty(&faculty, in); err != nil {
		return nil, err
	}
	return &faculty, nil
}

func saveFaculty(faculty *models.Faculty, in FacultyInput) error {
	exists, err := taken(&models.Faculty{}, faculty.ID, "LOWER(name) = ?", normalizeName(in.Name))
	if err != nil {
		return err
	}
	if exists {
		return Conflict("A faculty with this name already exists!")
	}
	faculty.Name = strings.TrimSpace(in.Name)
	faculty.Code = strings.TrimSpace(in.Code)
	faculty.Description = in.Description
	return errors.Wrap(db().Omit("DegreePrograms").Save(faculty).Error, "saving faculty")
}

func DeleteFaculty(id uint) error {
	var faculty models.Faculty
	if err := first(&faculty, id, "Faculty"); err != nil {
		return err
	}
	used, err := inUse(&models.DegreeProgram{}, "faculty_id", id)
	if err != nil {
		return err
	}
	if used {
		return Conflict("Faculty still has degree programs!")
	}
	return errors.Wrap(db().Delete(&faculty).Error, "deleting faculty")
}

// Degree programs

func ListDegreePrograms(f AcademicFilter, p Page) ([]models.DegreeProgram, Pagination, error) {
	q := db().Model(&models.DegreeProgram{})
	if f.FacultyID != 0 {
		q = q.Where("faculty_id = ?", f.FacultyID)
	}
	if f.Search != "" {
		q = q.Where("LOWER(name) LIKE ?", likePattern(f.Search))
	}
	var out []models.DegreeProgram
	pg, err := paginate(q, p, "name asc", &out, "Faculty")
	return out, pg, err
}

func GetDegreeProgram(id uint) (*models.DegreeProgram, error) {
	var program models.DegreeProgram
	if err := first(&program, id, "Degree program", "Faculty", "Asignaturas"); err != nil {
		return nil, err
	}
	return &program, nil
}

func CreateDegreeProgram(in DegreeProgramInput) (*models.DegreeProgram, error) {
	program := models.DegreeProgram{}
	if err := saveDegreeProgram(&program, in); err != nil {
		return nil, err
	}
	return GetDegreeProgram(program.ID)
}

func UpdateDegreeProgram(id uint, in DegreeProgramInput) (*models.DegreeProgram, error) {
	var program models.DegreeProgram
	if err := first(&program, id, "Degree program"); err != nil {
		return nil, err
	}
	if err := saveDegreeProgram(&program, in); err != nil {
		return nil, err
	}
	return GetDegreeProgram(program.ID)
}

func saveDegreeProgram(program *models.DegreeProgram, in DegreeProgramInput) error {
	if err := requireRef(&models.Faculty{}, &in.FacultyID, "Faculty"); err != nil {
		return err
	}
	exists, err := taken(&models.DegreeProgram{}, program.ID, "faculty_id = ? AND LOWER(name) = ?", in.FacultyID, normalizeName(in.Name))
	if err != nil {
		return err
	}
	if exists {
		return Conflict("This faculty already has a degree program with this name!")
	}
	program.Name = strings.TrimSpace(in.Name)
	program.Code = strings.TrimSpace(in.Code)
	program.DurationYears = in.DurationYears
	program.FacultyID = in.FacultyID
	program.Faculty = nil
	return errors.Wrap(db().Omit("Asignaturas").Save(program).Error, "saving degree program")
}

func DeleteDegreeProgram(id uint) error {
	var program models.DegreeProgram
	if err := first(&program, id, "Degree program"); err != nil {
		return err
	}
	used, err := inUse(&models.Asignatura{}, "degree_program_id", id)
	if err != nil {
		return err
	}
	if used {
		return Conflict("Degree program still has asignaturas!")
	}
	return errors.Wrap(db().Delete(&program).Error, "deleting degree program")
}

// Asignaturas

func ListAsignaturas(f AcademicFilter, p Page) ([]models.Asignatura, Pagination, error) {
	q := db().Model(&models.Asignatura{})
	if f.DegreeProgramID != 0 {
		q = q.Where("degree_program_id = ?", f.DegreeProgramID)
	}
	if f.Search != "" {
		pattern := likePattern(f.Search)
		q = q.Where("LOWER(name) LIKE ? OR LOWER(code) LIKE ?", pattern, pattern)
	}
	var out []models.Asignatura
	pg, err := paginate(q, p, "year asc, semester asc, name asc", &out, "DegreeProgram")
	return out, pg, err
}

func GetAsignatura(id uint) (*models.Asignatura, error) {
	var asignatura models.Asignatura
	if err := first(&asignatura, id, "Asignatura", "DegreeProgram", "DegreeProgram.Faculty"); err != nil {
		return nil, err
	}
	return &asignatura, nil
}

func CreateAsignatura(in AsignaturaInput) (*models.Asignatura, error) {
	asignatura := models.Asignatura{}
	if err := saveAsignatura(&asignatura, in); err != nil {
		return nil, err
	}
	return GetAsignatura(asignatura.ID)
}

func UpdateAsignatura(id uint, in AsignaturaInput) (*models.Asignatura, error) {
	var asignatura models.Asignatura
	if err := first(&asignatura, id, "Asignatura"); err != nil {
		return nil, err
	}
	if err := saveAsignatura(&asignatura, in); err != nil {
		return nil, err
	}
	return GetAsignatura(asignatura.ID)
}

func saveAsignatura(asignatura *models.Asignatura, in AsignaturaInput) error {
	if err := requireRef(&models.DegreeProgram{}, &in.DegreeProgramID, "Degree program"); err != nil {
		return err
	}
	exists, err := taken(&models.Asignatura{}, asignatura.ID, "degree_program_id = ? AND LOWER(code) = ?", in.DegreeProgramID, normalizeName(in.Code))
	if err != nil {
		return err
	}
	if exists {
		return Conflict("This degree program already has an asignatura with this code!")
	}
	asignatura.Name = strings.TrimSpace(in.Name)
	asignatura.Code = strings.TrimSpace(in.Code)
	asignatura.Year = in.Year
	asignatura.Semester = in.Semester
	asignatura.Credits = in.Credits
	asignatura.DegreeProgramID = in.DegreeProgramID
	asignatura.DegreeProgram = nil
	return errors.Wrap(db().Save(asignatura).Error, "saving asignatura")
}

func DeleteAsignatura(id uint) error {
	var asignatura models.Asignatura
	if err := first(&asignatura, id, "Asignatura"); err != nil {
		return err
	}
	return errors.Wrap(db().Delete(&asignatura).Error, "deleting asignatura")
}
