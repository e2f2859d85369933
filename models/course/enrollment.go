package course

import (
	"time"

	"eduportal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
	EnrollmentDropped   = "dropped"
)

// Enrollment links a user to a course and tracks the lessons they completed
type Enrollment struct {
	gorm.Model
	UserID           uint                      `json:"user_id" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	User             *models.User              `json:"user,omitempty"`
	CourseID         uint                      `json:"course_id" gorm:"uniqueIndex:idx_enrollment_user_course;index;not null"`
	Course           *Course                   `json:"course,omitempty"`
	CompletedLessons datatypes.JSONSlice[uint] `json:"completed_lessons"`
	Status           string                    `json:"status" gorm:"default:'active'"`
	EnrolledAt       time.Time                 `json:"enrolled_at"`
	CompletedAt      *time.Time                `json:"completed_at"`
}

// HasCompleted reports whether the lesson is in the completed list.
func (e *Enrollment) HasCompleted(lessonID uint) bool {
	for _, id := range e.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}
