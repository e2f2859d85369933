package services

import (
	"time"

	"eduportal/models"
	"eduportal/models/course"
	"eduportal/notify"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EnrollmentStatusInput struct {
	Status string `json:"status" validate:"required,oneof=active completed dropped"`
}

// Progress summarizes how far an enrollment has gone through its course.
type Progress struct {
	EnrollmentID uint    `json:"enrollment_id"`
	CourseID     uint    `json:"course_id"`
	Status       string  `json:"status"`
	Completed    int     `json:"completed"`
	Total        int     `json:"total"`
	Percent      float64 `json:"percent"`
}

func isEnrolled(actor *models.User, courseID uint) (bool, error) {
	if actor == nil {
		return false, nil
	}
	var n int64
	err := db().Model(&course.Enrollment{}).
		Where("user_id = ? AND course_id = ? AND status <> ?", actor.ID, courseID, course.EnrollmentDropped).
		Count(&n).Error
	return n > 0, errors.Wrap(err, "checking enrollment")
}

// Enroll registers the actor in a published course; a dropped enrollment is reactivated.
func Enroll(actor *models.User, courseID uint) (*course.Enrollment, error) {
	var c course.Course
	if err := first(&c, courseID, "Course"); err != nil {
		return nil, err
	}
	if !c.IsPublished {
		return nil, NotFound("Course")
	}

	var e course.Enrollment
	err := db().Where("user_id = ? AND course_id = ?", actor.ID, c.ID).First(&e).Error
	switch {
	case err == nil && e.Status != course.EnrollmentDropped:
		return nil, Conflict("User already enrolled in this course!")
	case err == nil:
		e.Status = course.EnrollmentActive
		e.EnrolledAt = time.Now()
		e.CompletedAt = nil
		if err := refreshCompletion(db(), &e); err != nil {
			return nil, errors.Wrap(err, "reactivating enrollment")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		e = course.Enrollment{
			UserID:           actor.ID,
			CourseID:         c.ID,
			CompletedLessons: datatypes.JSONSlice[uint]{},
			Status:           course.EnrollmentActive,
			EnrolledAt:       time.Now(),
		}
		if err := db().Omit(clause.Associations).Create(&e).Error; err != nil {
			return nil, errors.Wrap(err, "creating enrollment")
		}
	default:
		return nil, errors.Wrap(err, "loading enrollment")
	}

	go notify.Current.Enrolled(actor.Name, actor.Email, c.Title)

	e.Course = &c
	return &e, nil
}

// Unenroll marks the actor's enrollment as dropped.
func Unenroll(actor *models.User, courseID uint) error {
	var e course.Enrollment
	err := db().Where("user_id = ? AND course_id = ? AND status <> ?", actor.ID, courseID, course.EnrollmentDropped).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound("Enrollment")
	}
	if err != nil {
		return errors.Wrap(err, "loading enrollment")
	}
	return errors.Wrap(db().Model(&e).Update("status", course.EnrollmentDropped).Error, "dropping enrollment")
}

func MyEnrollments(actor *models.User, p Page) ([]course.Enrollment, Pagination, error) {
	q := db().Model(&course.Enrollment{}).Where("user_id = ?", actor.ID)
	var out []course.Enrollment
	pg, err := paginate(q, p, "enrolled_at desc", &out, "Course", "Course.Teacher")
	return out, pg, err
}

func CourseEnrollments(actor *models.User, courseID uint, p Page) ([]course.Enrollment, Pagination, error) {
	if _, err := manageableCourse(actor, courseID); err != nil {
		return nil, Pagination{}, err
	}
	q := db().Model(&course.Enrollment{}).Where("course_id = ?", courseID)
	var out []course.Enrollment
	pg, err := paginate(q, p, "enrolled_at desc", &out, "User")
	return out, pg, err
}

func loadEnrollment(id uint) (*course.Enrollment, error) {
	var e course.Enrollment
	if err := first(&e, id, "Enrollment", "Course"); err != nil {
		return nil, err
	}
	return &e, nil
}

// CompleteLesson records a completed lesson; completing every lesson completes the enrollment.
func CompleteLesson(actor *models.User, enrollmentID, lessonID uint) (*course.Enrollment, error) {
	e, err := loadEnrollment(enrollmentID)
	if err != nil {
		return nil, err
	}
	if e.UserID != actor.ID {
		return nil, errNotAllowed
	}
	if e.Status == course.EnrollmentDropped {
		return nil, BadRequest("Enrollment was dropped!")
	}

	var n int64
	if err := db().Model(&course.Lesson{}).Where("id = ? AND course_id = ?", lessonID, e.CourseID).Count(&n).Error; err != nil {
		return nil, errors.Wrap(err, "checking lesson")
	}
	if n == 0 {
		return nil, BadRequest("Lesson does not belong to this course!")
	}

	if !e.HasCompleted(lessonID) {
		e.CompletedLessons = append(e.CompletedLessons, lessonID)
	}
	if err := refreshCompletion(db(), e); err != nil {
		return nil, errors.Wrap(err, "saving progress")
	}
	return e, nil
}

// refreshCompletion recomputes the completed state of an active enrollment and saves it.
func refreshCompletion(tx *gorm.DB, e *course.Enrollment) error {
	if e.CompletedLessons == nil {
		e.CompletedLessons = datatypes.JSONSlice[uint]{}
	}
	if e.Status != course.EnrollmentDropped {
		var total int64
		if err := tx.Model(&course.Lesson{}).Where("course_id = ?", e.CourseID).Count(&total).Error; err != nil {
			return err
		}
		if total > 0 && int64(len(e.CompletedLessons)) >= total {
			if e.Status != course.EnrollmentCompleted {
				now := time.Now()
				e.Status = course.EnrollmentCompleted
				e.CompletedAt = &now
			}
		} else {
			e.Status = course.EnrollmentActive
			e.CompletedAt = nil
		}
	}
	return tx.Omit(clause.Associations).Save(e).Error
}

func EnrollmentProgress(actor *models.User, id uint) (*Progress, error) {
	e, err := loadEnrollment(id)
	if err != nil {
		return nil, err
	}
	if e.UserID != actor.ID && !canManageCourse(actor, e.Course) {
		return nil, errNotAllowed
	}

	var total int64
	if err := db().Model(&course.Lesson{}).Where("course_id = ?", e.CourseID).Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "counting lessons")
	}
	p := &Progress{
		EnrollmentID: e.ID,
		CourseID:     e.CourseID,
		Status:       e.Status,
		Completed:    len(e.CompletedLessons),
		Total:        int(total),
	}
	if total > 0 {
		p.Percent = float64(p.Completed) * 100 / float64(total)
	}
	return p, nil
}

// SetEnrollmentStatus lets the course owner or an admin override the status.
func SetEnrollmentStatus(actor *models.User, id uint, status string) (*course.Enrollment, error) {
	e, err := loadEnrollment(id)
	if err != nil {
		return nil, err
	}
	if !canManageCourse(actor, e.Course) {
		return nil, errNotAllowed
	}
	e.Status = status
	switch status {
	case course.EnrollmentCompleted:
		if e.CompletedAt == nil {
			now := time.Now()
			e.CompletedAt = &now
		}
	default:
		e.CompletedAt = nil
	}
	if err := db().Omit(clause.Associations).Save(e).Error; err != nil {
		return nil, errors.Wrap(err, "updating enrollment")
	}
	return e, nil
}
