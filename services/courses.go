package services

import (
	"context"
	"strings"

	"eduportal/models"
	"eduportal/models/course"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CourseInput struct {
	Title       string `json:"title" form:"title" validate:"required,notblank,min=3,max=150"`
	Description string `json:"description" form:"description" validate:"max=5000"`
	SubjectID   *uint  `json:"subject_id" form:"subject_id"`
	LevelID     *uint  `json:"level_id" form:"level_id"`
	TeacherID   *uint  `json:"teacher_id" form:"teacher_id"`
	IsPublished *bool  `json:"is_published" form:"is_published"`
}

type CourseUpdateInput struct {
	Title       string `json:"title" form:"title" validate:"omitempty,notblank,min=3,max=150"`
	Description string `json:"description" form:"description" validate:"max=5000"`
	SubjectID   *uint  `json:"subject_id" form:"subject_id"`
	LevelID     *uint  `json:"level_id" form:"level_id"`
	TeacherID   *uint  `json:"teacher_id" form:"teacher_id"`
	IsPublished *bool  `json:"is_published" form:"is_published"`
}

type CourseFilter struct {
	SubjectID uint   `query:"subject_id"`
	LevelID   uint   `query:"level_id"`
	TeacherID uint   `query:"teacher_id"`
	Search    string `query:"search"`
}

var coursePreloads = []string{"Teacher", "Subject", "Level", "CoverFile"}

// visibleCourses restricts q to the courses the actor may see.
func visibleCourses(q *gorm.DB, actor *models.User) *gorm.DB {
	switch {
	case actor.IsAdmin():
		return q
	case actor.CanTeach():
		return q.Where("courses.is_published = ? OR courses.teacher_id = ?", true, actor.ID)
	default:
		return q.Where("courses.is_published = ?", true)
	}
}

func canSeeCourse(actor *models.User, c *course.Course) bool {
	return c.IsPublished || actor.IsAdmin() || c.OwnedBy(actor)
}

func canManageCourse(actor *models.User, c *course.Course) bool {
	return actor.IsAdmin() || c.OwnedBy(actor)
}

func ListCourses(actor *models.User, f CourseFilter, p Page) ([]course.Course, Pagination, error) {
	q := visibleCourses(db().Model(&course.Course{}), actor)
	if f.SubjectID != 0 {
		q = q.Where("subject_id = ?", f.SubjectID)
	}
	if f.LevelID != 0 {
		q = q.Where("level_id = ?", f.LevelID)
	}
	if f.TeacherID != 0 {
		q = q.Where("teacher_id = ?", f.TeacherID)
	}
	if f.Search != "" {
		pattern := likePattern(f.Search)
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var courses []course.Course
	pg, err := paginate(q, p, "created_at desc", &courses, coursePreloads...)
	return courses, pg, err
}

// loadCourse fetches a course and hides it from actors who may not see it.
func loadCourse(actor *models.User, id uint, preloads ...string) (*course.Course, error) {
	var c course.Course
	if err := first(&c, id, "Course", preloads...); err != nil {
		return nil, err
	}
	if !canSeeCourse(actor, &c) {
		return nil, NotFound("Course")
	}
	return &c, nil
}

// manageableCourse fetches a course the actor owns or administers.
func manageableCourse(actor *models.User, id uint) (*course.Course, error) {
	c, err := loadCourse(actor, id)
	if err != nil {
		return nil, err
	}
	if !canManageCourse(actor, c) {
		return nil, errNotAllowed
	}
	return c, nil
}

func GetCourse(actor *models.User, id uint) (*course.Course, error) {
	c, err := loadCourse(actor, id, coursePreloads...)
	if err != nil {
		return nil, err
	}
	if err := db().Where("course_id = ?", c.ID).Order("order_index asc").
		Select("id", "created_at", "updated_at", "course_id", "title", "description", "order_index").
		Find(&c.Lessons).Error; err != nil {
		return nil, errors.Wrap(err, "loading lessons")
	}
	return c, nil
}

func checkCourseRefs(subjectID, levelID *uint) error {
	if err := requireRef(&models.Subject{}, subjectID, "Subject"); err != nil {
		return err
	}
	return requireRef(&models.Level{}, levelID, "Level")
}

// resolveTeacher returns the owner for a course: the actor, or the teacher an admin assigned.
func resolveTeacher(actor *models.User, teacherID *uint) (uint, error) {
	if teacherID == nil || *teacherID == actor.ID {
		return actor.ID, nil
	}
	if !actor.IsAdmin() {
		return 0, Forbidden("Only admins can assign a course to another teacher!")
	}
	teacher, err := FindUser(*teacherID)
	if err != nil {
		var appErr *AppError
		if errors.As(err, &appErr) {
			return 0, BadRequest("Teacher does not exist!")
		}
		return 0, err
	}
	if !teacher.CanTeach() {
		return 0, BadRequest("Assigned user is not a teacher!")
	}
	return teacher.ID, nil
}

func courseTitleTaken(title string, excludeID uint) error {
	exists, err := taken(&course.Course{}, excludeID, "LOWER(title) = ?", normalizeName(title))
	if err != nil {
		return err
	}
	if exists {
		return Conflict("A course with this title already exists!")
	}
	return nil
}

func CreateCourse(ctx context.Context, actor *models.User, in CourseInput, cover *Upload) (*course.Course, error) {
	if err := checkCourseRefs(in.SubjectID, in.LevelID); err != nil {
		return nil, err
	}
	teacherID, err := resolveTeacher(actor, in.TeacherID)
	if err != nil {
		return nil, err
	}
	if err := courseTitleTaken(in.Title, 0); err != nil {
		return nil, err
	}

	file, err := SaveUpload(ctx, actor.ID, cover, "cover", AcceptImage)
	if err != nil {
		return nil, err
	}

	c := course.Course{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		TeacherID:   teacherID,
		SubjectID:   in.SubjectID,
		LevelID:     in.LevelID,
		IsPublished: in.IsPublished != nil && *in.IsPublished,
	}
	if file != nil {
		c.CoverFileID = &file.ID
	}
	if err := db().Omit(clause.Associations).Create(&c).Error; err != nil {
		RemoveFile(ctx, c.CoverFileID)
		return nil, errors.Wrap(err, "creating course")
	}
	return GetCourse(actor, c.ID)
}

func UpdateCourse(ctx context.Context, actor *models.User, id uint, in CourseUpdateInput, cover *Upload) (*course.Course, error) {
	c, err := manageableCourse(actor, id)
	if err != nil {
		return nil, err
	}
	if err := checkCourseRefs(in.SubjectID, in.LevelID); err != nil {
		return nil, err
	}
	if in.TeacherID != nil {
		teacherID, err := resolveTeacher(actor, in.TeacherID)
		if err != nil {
			return nil, err
		}
		c.TeacherID = teacherID
	}
	if in.Title != "" && normalizeName(in.Title) != normalizeName(c.Title) {
		if err := courseTitleTaken(in.Title, c.ID); err != nil {
			return nil, err
		}
		c.Title = strings.TrimSpace(in.Title)
	}

	// Update only provided fields
	if in.Description != "" {
		c.Description = in.Description
	}
	if in.SubjectID != nil {
		c.SubjectID = in.SubjectID
	}
	if in.LevelID != nil {
		c.LevelID = in.LevelID
	}
	if in.IsPublished != nil {
		c.IsPublished = *in.IsPublished
	}

	oldCover := c.CoverFileID
	file, err := SaveUpload(ctx, actor.ID, cover, "cover", AcceptImage)
	if err != nil {
		return nil, err
	}
	if file != nil {
		c.CoverFileID = &file.ID
	}

	if err := db().Omit(clause.Associations).Save(c).Error; err != nil {
		if file != nil {
			RemoveFile(ctx, &file.ID)
		}
		return nil, errors.Wrap(err, "updating course")
	}
	if file != nil {
		RemoveFile(ctx, oldCover)
	}
	return GetCourse(actor, c.ID)
}

func SetCoursePublished(actor *models.User, id uint, published bool) (*course.Course, error) {
	c, err := manageableCourse(actor, id)
	if err != nil {
		return nil, err
	}
	if err := db().Model(c).Update("is_published", published).Error; err != nil {
		return nil, errors.Wrap(err, "publishing course")
	}
	return GetCourse(actor, c.ID)
}

// DeleteCourse removes the course with its lessons, enrollments and blobs.
func DeleteCourse(ctx context.Context, actor *models.User, id uint) error {
	c, err := manageableCourse(actor, id)
	if err != nil {
		return err
	}

	var lessons []course.Lesson
	if err := db().Where("course_id = ?", c.ID).Find(&lessons).Error; err != nil {
		return errors.Wrap(err, "loading lessons")
	}

	err = db().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", c.ID).Delete(&course.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", c.ID).Delete(&course.Lesson{}).Error; err != nil {
			return err
		}
		return tx.Delete(c).Error
	})
	if err != nil {
		return errors.Wrap(err, "deleting course")
	}

	for _, l := range lessons {
		removeLessonFiles(ctx, &l)
	}
	RemoveFile(ctx, c.CoverFileID)
	return nil
}

// CourseCover returns the cover metadata of a visible course.
func CourseCover(actor *models.User, id uint) (*models.File, error) {
	c, err := loadCourse(actor, id)
	if err != nil {
		return nil, err
	}
	return loadFile(c.CoverFileID)
}
