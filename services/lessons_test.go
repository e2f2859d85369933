package services

import (
	"context"
	"net/http"
	"testing"

	"eduportal/models/course"
	"eduportal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessonOrderAndTitles(t *testing.T) {
	testutil.Setup(t)
	ctx := context.Background()
	teacher := testutil.Teacher(t)
	student := testutil.Student(t)
	c := publishedCourse(t, teacher, "Ordered")

	first, err := CreateLesson(ctx, teacher, c.ID, LessonInput{Title: "One"}, LessonUploads{})
	require.NoError(t, err)
	second, err := CreateLesson(ctx, teacher, c.ID, LessonInput{Title: "Two"}, LessonUploads{})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Order)
	assert.Equal(t, 2, second.Order)

	_, err = CreateLesson(ctx, teacher, c.ID, LessonInput{Title: "one"}, LessonUploads{})
	requireStatus(t, err, http.StatusConflict)

	_, err = CreateLesson(ctx, student, c.ID, LessonInput{Title: "Sneaky"}, LessonUploads{})
	requireStatus(t, err, http.StatusForbidden)

	_, err = UpdateLesson(ctx, teacher, first.ID, LessonUpdateInput{Order: 5}, LessonUploads{})
	require.NoError(t, err)

	lessons, err := ListLessons(student, c.ID)
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Equal(t, "Two", lessons[0].Title)
	assert.Equal(t, "One", lessons[1].Title)

	detail, err := GetCourse(nil, c.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Lessons, 2)
}

func TestLessonFiles(t *testing.T) {
	testutil.Setup(t)
	ctx := context.Background()
	teacher := testutil.Teacher(t)
	student := testutil.Student(t)
	c := publishedCourse(t, teacher, "Files")

	_, err := CreateLesson(ctx, teacher, c.ID, LessonInput{Title: "Bad"}, LessonUploads{Pdf: upload("x.png", "image/png", "png")})
	requireStatus(t, err, http.StatusUnprocessableEntity)

	l, err := CreateLesson(ctx, teacher, c.ID, LessonInput{Title: "Reading"}, LessonUploads{
		Pdf:      upload("notes.pdf", "application/pdf", "%PDF"),
		Cover:    upload("c.png", "image/png", "png"),
		Document: upload("slides.pptx", "application/vnd.ms-powerpoint", "pptx"),
	})
	require.NoError(t, err)
	require.NotNil(t, l.PdfFile)
	require.NotNil(t, l.CoverFile)
	require.NotNil(t, l.DocumentFile)

	cover, err := LessonFile(nil, l.ID, LessonCover)
	require.NoError(t, err)
	assert.Equal(t, l.CoverFile.ID, cover.ID)

	_, err = LessonFile(student, l.ID, LessonPDF)
	requireStatus(t, err, http.StatusForbidden)

	_, err = Enroll(student, c.ID)
	require.NoError(t, err)
	pdf, err := LessonFile(student, l.ID, LessonPDF)
	require.NoError(t, err)
	assert.Equal(t, "notes.pdf", pdf.Filename)

	updated, err := UpdateLesson(ctx, teacher, l.ID, LessonUpdateInput{}, LessonUploads{Pdf: upload("v2.pdf", "application/pdf", "%PDF-2")})
	require.NoError(t, err)
	assert.Equal(t, "v2.pdf", updated.PdfFile.Filename)
	assert.Equal(t, l.CoverFile.ID, updated.CoverFile.ID)
	_, err = OpenFile(ctx, l.PdfFile)
	requireStatus(t, err, http.StatusNotFound)
}

func TestDeleteLessonUpdatesProgress(t *testing.T) {
	testutil.Setup(t)
	ctx := context.Background()
	teacher := testutil.Teacher(t)
	student := testutil.Student(t)
	c := publishedCourse(t, teacher, "Progress")

	done, err := CreateLesson(ctx, teacher, c.ID, LessonInput{Title: "Done"}, LessonUploads{})
	require.NoError(t, err)
	pending, err := CreateLesson(ctx, teacher, c.ID, LessonInput{Title: "Pending"}, LessonUploads{})
	require.NoError(t, err)

	e, err := Enroll(student, c.ID)
	require.NoError(t, err)
	e, err = CompleteLesson(student, e.ID, done.ID)
	require.NoError(t, err)
	assert.Equal(t, course.EnrollmentActive, e.Status)

	require.NoError(t, DeleteLesson(ctx, teacher, pending.ID))

	p, err := EnrollmentProgress(student, e.ID)
	require.NoError(t, err)
	assert.Equal(t, course.EnrollmentCompleted, p.Status)
	assert.Equal(t, 1, p.Total)
	assert.Equal(t, float64(100), p.Percent)

	require.NoError(t, DeleteLesson(ctx, teacher, done.ID))
	p, err = EnrollmentProgress(student, e.ID)
	require.NoError(t, err)
	assert.Equal(t, course.EnrollmentActive, p.Status)
	assert.Zero(t, p.Completed)
}
