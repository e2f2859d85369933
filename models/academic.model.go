package models

import "gorm.io/gorm"

// Faculty is a school within the institution (Facultad).
type Faculty struct {
	gorm.Model
	Name           string          `json:"name" gorm:"not null"`
	Code           string          `json:"code"`
	Description    string          `json:"description" gorm:"type:text"`
	DegreePrograms []DegreeProgram `json:"degree_programs,omitempty"`
}

// DegreeProgram is a Carrera offered by a faculty.
type DegreeProgram struct {
	gorm.Model
	Name          string       `json:"name" gorm:"not null"`
	Code          string       `json:"code"`
	DurationYears int          `json:"duration_years" gorm:"default:0"`
	FacultyID     uint         `json:"faculty_id" gorm:"index;not null"`
	Faculty       *Faculty     `json:"faculty,omitempty"`
	Asignaturas   []Asignatura `json:"asignaturas,omitempty"`
}

// Asignatura is a subject taught within a degree program.
type Asignatura struct {
	gorm.Model
	Name            string         `json:"name" gorm:"not null"`
	Code            string         `json:"code" gorm:"not null"`
	Year            int            `json:"year" gorm:"default:1"`
	Semester        int            `json:"semester" gorm:"default:1"`
	Credits         int            `json:"credits" gorm:"default:0"`
	DegreeProgramID uint           `json:"degree_program_id" gorm:"index;not null"`
	DegreeProgram   *DegreeProgram `json:"degree_program,omitempty"`
}
