package services

import (
	"context"
	"testing"
	"time"

	"eduportal/models"
	"eduportal/models/course"
	"eduportal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminStats(t *testing.T) {
	testutil.Setup(t)
	ctx := context.Background()
	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	frozenClock(t, now)
	testutil.Admin(t)
	teacher := testutil.Teacher(t)
	student := testutil.Student(t)

	c := publishedCourse(t, teacher, "Stats")
	_, err := CreateCourse(ctx, teacher, CourseInput{Title: "Hidden"}, nil)
	require.NoError(t, err)
	_, err = Enroll(student, c.ID)
	require.NoError(t, err)
	_, err = CreateDocumentation(ctx, student, DocumentationInput{Title: "Pending doc"}, upload("a.png", "image/png", "png"))
	require.NoError(t, err)
	_, err = CreatePost(student, PostInput{Title: "Hola", Content: "mundo"})
	require.NoError(t, err)
	_, err = CreateConference(teacher, ConferenceInput{Title: "Next week", StartsAt: now.Add(7 * 24 * time.Hour)})
	require.NoError(t, err)
	_, err = CreateConference(teacher, ConferenceInput{Title: "Last week", StartsAt: now.Add(-7 * 24 * time.Hour)})
	require.NoError(t, err)

	s, err := AdminStats()
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{models.RoleAdmin: 1, models.RoleTeacher: 1, models.RoleStudent: 1}, s.UsersByRole)
	assert.Equal(t, CourseStats{Total: 2, Published: 1}, s.Courses)
	assert.Equal(t, map[string]int64{course.EnrollmentActive: 1}, s.EnrollmentsByStatus)
	assert.Equal(t, int64(1), s.PendingDocumentation)
	assert.Equal(t, int64(1), s.ForumPosts)
	assert.Equal(t, int64(1), s.UpcomingConferences)
}

func TestAdminStatsReportsEveryRole(t *testing.T) {
	testutil.Setup(t)
	testutil.Admin(t)

	s, err := AdminStats()
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{models.RoleAdmin: 1, models.RoleTeacher: 0, models.RoleStudent: 0}, s.UsersByRole)
}
