package services

import (
	"context"
	"strings"

	"eduportal/models"
	"eduportal/models/course"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LessonInput struct {
	Title       string `json:"title" form:"title" validate:"required,notblank,min=3,max=150"`
	Description string `json:"description" form:"description" validate:"max=5000"`
	Content     string `json:"content" form:"content"`
	Order       int    `json:"order" form:"order" validate:"min=0"`
}

type LessonUpdateInput struct {
	Title       string `json:"title" form:"title" validate:"omitempty,notblank,min=3,max=150"`
	Description string `json:"description" form:"description" validate:"max=5000"`
	Content     string `json:"content" form:"content"`
	Order       int    `json:"order" form:"order" validate:"min=0"`
}

// LessonUploads carries the optional blobs of a lesson.
type LessonUploads struct {
	Pdf      *Upload
	Cover    *Upload
	Document *Upload
}

const (
	LessonPDF      = "pdf"
	LessonCover    = "cover"
	LessonDocument = "document"
)

var lessonPreloads = []string{"PdfFile", "CoverFile", "DocumentFile"}

func ListLessons(actor *models.User, courseID uint) ([]course.Lesson, error) {
	if _, err := loadCourse(actor, courseID); err != nil {
		return nil, err
	}
	var lessons []course.Lesson
	q := db().Where("course_id = ?", courseID).Order("order_index asc, id asc")
	for _, pl := range lessonPreloads {
		q = q.Preload(pl)
	}
	if err := q.Find(&lessons).Error; err != nil {
		return nil, errors.Wrap(err, "loading lessons")
	}
	return lessons, nil
}

// loadLesson fetches a lesson together with its course, honoring course visibility.
func loadLesson(actor *models.User, id uint) (*course.Lesson, *course.Course, error) {
	var l course.Lesson
	if err := first(&l, id, "Lesson", lessonPreloads...); err != nil {
		return nil, nil, err
	}
	c, err := loadCourse(actor, l.CourseID)
	if err != nil {
		var appErr *AppError
		if errors.As(err, &appErr) {
			return nil, nil, NotFound("Lesson")
		}
		return nil, nil, err
	}
	return &l, c, nil
}

func GetLesson(actor *models.User, id uint) (*course.Lesson, error) {
	l, c, err := loadLesson(actor, id)
	if err != nil {
		return nil, err
	}
	l.Course = c
	return l, nil
}

func lessonTitleTaken(courseID uint, title string, excludeID uint) error {
	exists, err := taken(&course.Lesson{}, excludeID, "course_id = ? AND LOWER(title) = ?", courseID, normalizeName(title))
	if err != nil {
		return err
	}
	if exists {
		return Conflict("This course already has a lesson with this title!")
	}
	return nil
}

// saveLessonUploads stores whichever blobs were sent and returns the new file ids.
func saveLessonUploads(ctx context.Context, uploaderID uint, ups LessonUploads) (map[string]*models.File, error) {
	saved := map[string]*models.File{}
	slots := []struct {
		name   string
		up     *Upload
		accept Accept
	}{
		{LessonPDF, ups.Pdf, AcceptPDF},
		{LessonCover, ups.Cover, AcceptImage},
		{LessonDocument, ups.Document, AcceptAny},
	}
	for _, s := range slots {
		file, err := SaveUpload(ctx, uploaderID, s.up, s.name, s.accept)
		if err != nil {
			for _, f := range saved {
				RemoveFile(ctx, &f.ID)
			}
			return nil, err
		}
		if file != nil {
			saved[s.name] = file
		}
	}
	return saved, nil
}

func CreateLesson(ctx context.Context, actor *models.User, courseID uint, in LessonInput, ups LessonUploads) (*course.Lesson, error) {
	c, err := manageableCourse(actor, courseID)
	if err != nil {
		return nil, err
	}
	if err := lessonTitleTaken(c.ID, in.Title, 0); err != nil {
		return nil, err
	}

	// Get the next order index if not provided
	order := in.Order
	if order == 0 {
		var maxOrder int
		if err := db().Model(&course.Lesson{}).Where("course_id = ?", c.ID).
			Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder).Error; err != nil {
			return nil, errors.Wrap(err, "computing lesson order")
		}
		order = maxOrder + 1
	}

	saved, err := saveLessonUploads(ctx, actor.ID, ups)
	if err != nil {
		return nil, err
	}

	l := course.Lesson{
		CourseID:    c.ID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Content:     in.Content,
		Order:       order,
	}
	assignLessonFiles(&l, saved)

	err = db().Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&l).Error; err != nil {
			return err
		}
		// a new lesson reopens finished enrollments
		var finished []course.Enrollment
		if err := tx.Where("course_id = ? AND status = ?", c.ID, course.EnrollmentCompleted).Find(&finished).Error; err != nil {
			return err
		}
		for i := range finished {
			if err := refreshCompletion(tx, &finished[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		for _, f := range saved {
			RemoveFile(ctx, &f.ID)
		}
		return nil, errors.Wrap(err, "creating lesson")
	}
	return GetLesson(actor, l.ID)
}

func assignLessonFiles(l *course.Lesson, saved map[string]*models.File) {
	if f, ok := saved[LessonPDF]; ok {
		l.PdfFileID = &f.ID
	}
	if f, ok := saved[LessonCover]; ok {
		l.CoverFileID = &f.ID
	}
	if f, ok := saved[LessonDocument]; ok {
		l.DocumentFileID = &f.ID
	}
}

func UpdateLesson(ctx context.Context, actor *models.User, id uint, in LessonUpdateInput, ups LessonUploads) (*course.Lesson, error) {
	l, c, err := loadLesson(actor, id)
	if err != nil {
		return nil, err
	}
	if !canManageCourse(actor, c) {
		return nil, errNotAllowed
	}
	if in.Title != "" && normalizeName(in.Title) != normalizeName(l.Title) {
		if err := lessonTitleTaken(c.ID, in.Title, l.ID); err != nil {
			return nil, err
		}
		l.Title = strings.TrimSpace(in.Title)
	}
	if in.Description != "" {
		l.Description = in.Description
	}
	if in.Content != "" {
		l.Content = in.Content
	}
	if in.Order > 0 {
		l.Order = in.Order
	}

	saved, err := saveLessonUploads(ctx, actor.ID, ups)
	if err != nil {
		return nil, err
	}
	replaced := []*uint{}
	if _, ok := saved[LessonPDF]; ok {
		replaced = append(replaced, l.PdfFileID)
	}
	if _, ok := saved[LessonCover]; ok {
		replaced = append(replaced, l.CoverFileID)
	}
	if _, ok := saved[LessonDocument]; ok {
		replaced = append(replaced, l.DocumentFileID)
	}
	assignLessonFiles(l, saved)

	if err := db().Omit(clause.Associations).Save(l).Error; err != nil {
		for _, f := range saved {
			RemoveFile(ctx, &f.ID)
		}
		return nil, errors.Wrap(err, "updating lesson")
	}
	for _, old := range replaced {
		RemoveFile(ctx, old)
	}
	return GetLesson(actor, l.ID)
}

// DeleteLesson removes the lesson, its blobs, and its id from every enrollment.
func DeleteLesson(ctx context.Context, actor *models.User, id uint) error {
	l, c, err := loadLesson(actor, id)
	if err != nil {
		return err
	}
	if !canManageCourse(actor, c) {
		return errNotAllowed
	}

	err = db().Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(l).Error; err != nil {
			return err
		}
		var enrollments []course.Enrollment
		if err := tx.Where("course_id = ?", c.ID).Find(&enrollments).Error; err != nil {
			return err
		}
		for i := range enrollments {
			e := &enrollments[i]
			kept := datatypes.JSONSlice[uint]{}
			for _, done := range e.CompletedLessons {
				if done != l.ID {
					kept = append(kept, done)
				}
			}
			e.CompletedLessons = kept
			if err := refreshCompletion(tx, e); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "deleting lesson")
	}

	removeLessonFiles(ctx, l)
	return nil
}

func removeLessonFiles(ctx context.Context, l *course.Lesson) {
	RemoveFile(ctx, l.PdfFileID)
	RemoveFile(ctx, l.CoverFileID)
	RemoveFile(ctx, l.DocumentFileID)
}

// LessonFile returns the blob metadata of a lesson slot. Covers follow course
// visibility; the PDF and content document need an enrollment or course rights.
func LessonFile(actor *models.User, id uint, slot string) (*models.File, error) {
	l, c, err := loadLesson(actor, id)
	if err != nil {
		return nil, err
	}

	switch slot {
	case LessonCover:
		return loadFile(l.CoverFileID)
	case LessonPDF, LessonDocument:
		if !canManageCourse(actor, c) {
			enrolled, err := isEnrolled(actor, c.ID)
			if err != nil {
				return nil, err
			}
			if !enrolled {
				return nil, Forbidden("Enroll in the course to access its lessons!")
			}
		}
		if slot == LessonPDF {
			return loadFile(l.PdfFileID)
		}
		return loadFile(l.DocumentFileID)
	default:
		return nil, NotFound("File")
	}
}
