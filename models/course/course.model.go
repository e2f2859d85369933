package course

import (
	"eduportal/models"

	"gorm.io/gorm"
)

// Course represents a learning course owned by a teacher
type Course struct {
	gorm.Model
	Title       string          `json:"title" gorm:"not null"`
	Description string          `json:"description" gorm:"type:text"`
	TeacherID   uint            `json:"teacher_id" gorm:"index;not null"`
	Teacher     *models.User    `json:"teacher,omitempty"`
	SubjectID   *uint           `json:"subject_id" gorm:"index"`
	Subject     *models.Subject `json:"subject,omitempty"`
	LevelID     *uint           `json:"level_id" gorm:"index"`
	Level       *models.Level   `json:"level,omitempty"`
	CoverFileID *uint           `json:"cover_file_id"`
	CoverFile   *models.File    `json:"cover_file,omitempty"`
	IsPublished bool            `json:"is_published" gorm:"default:false"`
	Lessons     []Lesson        `json:"lessons,omitempty"`
}

// OwnedBy reports whether the user is the course teacher.
func (c *Course) OwnedBy(u *models.User) bool {
	return u != nil && c.TeacherID == u.ID
}
