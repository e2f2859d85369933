package course

import (
	"eduportal/models"

	"gorm.io/gorm"
)

// Lesson is an ordered unit of a course with optional PDF, cover and content document blobs
type Lesson struct {
	gorm.Model
	CourseID       uint         `json:"course_id" gorm:"index;not null"`
	Course         *Course      `json:"course,omitempty"`
	Title          string       `json:"title" gorm:"not null"`
	Description    string       `json:"description" gorm:"type:text"`
	Content        string       `json:"content" gorm:"type:text"`
	Order          int          `json:"order" gorm:"column:order_index;default:0"`
	PdfFileID      *uint        `json:"pdf_file_id"`
	PdfFile        *models.File `json:"pdf_file,omitempty"`
	CoverFileID    *uint        `json:"cover_file_id"`
	CoverFile      *models.File `json:"cover_file,omitempty"`
	DocumentFileID *uint        `json:"document_file_id"`
	DocumentFile   *models.File `json:"document_file,omitempty"`
}
