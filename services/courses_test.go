package services

import (
	"context"
	"io"
	"net/http"
	"testing"

	"eduportal/models"
	"eduportal/models/course"
	"eduportal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publishedCourse(t *testing.T, owner *models.User, title string) *course.Course {
	t.Helper()
	c, err := CreateCourse(context.Background(), owner, CourseInput{Title: title, IsPublished: ptr(true)}, nil)
	require.NoError(t, err)
	return c
}

func TestCreateCourse(t *testing.T) {
	testutil.Setup(t)
	ctx := context.Background()
	admin := testutil.Admin(t)
	teacher := testutil.Teacher(t)
	student := testutil.Student(t)

	c, err := CreateCourse(ctx, teacher, CourseInput{Title: "Go básico"}, upload("cover.PNG", "image/png", "png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, teacher.ID, c.TeacherID)
	assert.False(t, c.IsPublished)
	require.NotNil(t, c.CoverFile)
	assert.Equal(t, "cover.PNG", c.CoverFile.Filename)
	assert.Equal(t, int64(9), c.CoverFile.Size)

	_, err = CreateCourse(ctx, teacher, CourseInput{Title: "GO BÁSICO"}, nil)
	requireStatus(t, err, http.StatusConflict)

	_, err = CreateCourse(ctx, teacher, CourseInput{Title: "Bad cover"}, upload("cover.pdf", "application/pdf", "%PDF"))
	requireStatus(t, err, http.StatusUnprocessableEntity)

	_, err = CreateCourse(ctx, teacher, CourseInput{Title: "Someone else's", TeacherID: &admin.ID}, nil)
	requireStatus(t, err, http.StatusForbidden)

	_, err = CreateCourse(ctx, admin, CourseInput{Title: "For a student", TeacherID: &student.ID}, nil)
	requireStatus(t, err, http.StatusBadRequest)

	assigned, err := CreateCourse(ctx, admin, CourseInput{Title: "Assigned", TeacherID: &teacher.ID}, nil)
	require.NoError(t, err)
	assert.Equal(t, teacher.ID, assigned.TeacherID)

	_, err = CreateCourse(ctx, teacher, CourseInput{Title: "Bad subject", SubjectID: ptr(uint(77))}, nil)
	requireStatus(t, err, http.StatusBadRequest)
}

func TestCourseVisibility(t *testing.T) {
	testutil.Setup(t)
	ctx := context.Background()
	admin := testutil.Admin(t)
	teacher := testutil.Teacher(t)
	other := testutil.CreateUser(t, models.RoleTeacher, "other@portal.test")
	student := testutil.Student(t)

	draft, err := CreateCourse(ctx, teacher, CourseInput{Title: "Draft"}, nil)
	require.NoError(t, err)
	publishedCourse(t, other, "Public")

	count := func(actor *models.User) int64 {
		_, pg, err := ListCourses(actor, CourseFilter{}, Page{})
		require.NoError(t, err)
		return pg.Total
	}
	assert.Equal(t, int64(1), count(nil))
	assert.Equal(t, int64(1), count(student))
	assert.Equal(t, int64(2), count(teacher))
	assert.Equal(t, int64(1), count(other))
	assert.Equal(t, int64(2), count(admin))

	_, err = GetCourse(student, draft.ID)
	requireStatus(t, err, http.StatusNotFound)

	_, err = UpdateCourse(ctx, other, draft.ID, CourseUpdateInput{Title: "Mine now"}, nil)
	requireStatus(t, err, http.StatusNotFound)

	published, err := SetCoursePublished(teacher, draft.ID, true)
	require.NoError(t, err)
	assert.True(t, published.IsPublished)

	_, err = UpdateCourse(ctx, other, draft.ID, CourseUpdateInput{Title: "Mine now"}, nil)
	requireStatus(t, err, http.StatusForbidden)

	found, _, err := ListCourses(nil, CourseFilter{Search: "dra"}, Page{})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, draft.ID, found[0].ID)
}

func TestUpdateCourseReplacesCover(t *testing.T) {
	testutil.Setup(t)
	ctx := context.Background()
	teacher := testutil.Teacher(t)

	c, err := CreateCourse(ctx, teacher, CourseInput{Title: "Covers"}, upload("a.png", "image/png", "old"))
	require.NoError(t, err)
	oldCover := c.CoverFile

	updated, err := UpdateCourse(ctx, teacher, c.ID, CourseUpdateInput{Description: "new text"}, upload("b.jpg", "image/jpeg", "new-cover"))
	require.NoError(t, err)
	assert.Equal(t, "new text", updated.Description)
	require.NotNil(t, updated.CoverFile)
	assert.NotEqual(t, oldCover.ID, updated.CoverFile.ID)

	_, err = OpenFile(ctx, oldCover)
	requireStatus(t, err, http.StatusNotFound)

	file, err := CourseCover(teacher, c.ID)
	require.NoError(t, err)
	rc, err := OpenFile(ctx, file)
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "new-cover", string(body))
}

func TestUploadTooLarge(t *testing.T) {
	testutil.Setup(t)
	teacher := testutil.Teacher(t)

	big := upload("big.png", "image/png", string(make([]byte, (1<<20)+1)))
	_, err := CreateCourse(context.Background(), teacher, CourseInput{Title: "Huge"}, big)
	requireStatus(t, err, http.StatusRequestEntityTooLarge)

	// a lying size header is still caught while streaming
	big = upload("big.png", "image/png", string(make([]byte, (1<<20)+1)))
	big.Size = 10
	_, err = CreateCourse(context.Background(), teacher, CourseInput{Title: "Huge"}, big)
	requireStatus(t, err, http.StatusRequestEntityTooLarge)
}

func TestDeleteCourseCascades(t *testing.T) {
	testutil.Setup(t)
	ctx := context.Background()
	teacher := testutil.Teacher(t)
	student := testutil.Student(t)

	c := publishedCourse(t, teacher, "Cascade")
	lesson, err := CreateLesson(ctx, teacher, c.ID, LessonInput{Title: "Intro"}, LessonUploads{Pdf: upload("intro.pdf", "application/pdf", "%PDF-1.4")})
	require.NoError(t, err)
	_, err = Enroll(student, c.ID)
	require.NoError(t, err)

	requireStatus(t, DeleteCourse(ctx, student, c.ID), http.StatusForbidden)
	require.NoError(t, DeleteCourse(ctx, teacher, c.ID))

	_, err = GetLesson(teacher, lesson.ID)
	requireStatus(t, err, http.StatusNotFound)
	mine, pg, err := MyEnrollments(student, Page{})
	require.NoError(t, err)
	assert.Empty(t, mine)
	assert.Zero(t, pg.Total)
	_, err = OpenFile(ctx, lesson.PdfFile)
	requireStatus(t, err, http.StatusNotFound)
}
