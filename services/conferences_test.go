package services

import (
	"net/http"
	"testing"
	"time"

	"eduportal/models"
	"eduportal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frozenClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := clock
	clock = func() time.Time { return at }
	t.Cleanup(func() { clock = prev })
}

func TestConferences(t *testing.T) {
	testutil.Setup(t)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	frozenClock(t, now)
	teacher := testutil.Teacher(t)
	other := testutil.CreateUser(t, models.RoleTeacher, "other@portal.test")
	admin := testutil.Admin(t)

	tomorrow := now.Add(24 * time.Hour)
	talk, err := CreateConference(teacher, ConferenceInput{Title: "Charla de Go", StartsAt: tomorrow})
	require.NoError(t, err)
	assert.Equal(t, 60, talk.DurationMinutes)
	assert.Equal(t, models.ConferenceScheduled, talk.Status)
	require.NotNil(t, talk.Organizer)

	_, err = CreateConference(other, ConferenceInput{Title: "charla de go", StartsAt: tomorrow.Add(3 * time.Hour)})
	requireStatus(t, err, http.StatusConflict)

	// same title on another day is fine
	_, err = CreateConference(other, ConferenceInput{Title: "Charla de Go", StartsAt: tomorrow.Add(24 * time.Hour)})
	require.NoError(t, err)

	_, err = CreateConference(other, ConferenceInput{Title: "Ayer", StartsAt: now.Add(-48 * time.Hour)})
	require.NoError(t, err)

	all, pg, err := ListConferences(ConferenceFilter{}, Page{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), pg.Total)
	assert.Equal(t, "Ayer", all[0].Title)

	upcoming, _, err := ListConferences(ConferenceFilter{Upcoming: true}, Page{})
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, talk.ID, upcoming[0].ID)

	_, err = UpdateConference(other, talk.ID, ConferenceUpdateInput{Title: "Mine"})
	requireStatus(t, err, http.StatusForbidden)

	moved, err := UpdateConference(teacher, talk.ID, ConferenceUpdateInput{DurationMinutes: 90, Location: ptr("Aula 4")})
	require.NoError(t, err)
	assert.Equal(t, 90, moved.DurationMinutes)
	assert.Equal(t, "Aula 4", moved.Location)

	cancelled, err := CancelConference(admin, talk.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ConferenceCancelled, cancelled.Status)
	_, err = CancelConference(teacher, talk.ID)
	requireStatus(t, err, http.StatusConflict)

	// a cancelled conference frees its title for that day
	_, err = CreateConference(other, ConferenceInput{Title: "Charla de Go", StartsAt: tomorrow})
	require.NoError(t, err)

	require.NoError(t, DeleteConference(teacher, talk.ID))
	_, err = GetConference(talk.ID)
	requireStatus(t, err, http.StatusNotFound)
}

func TestFinishPastConferences(t *testing.T) {
	testutil.Setup(t)
	teacher := testutil.Teacher(t)
	now := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)

	ended, err := CreateConference(teacher, ConferenceInput{Title: "Ended", StartsAt: now.Add(-2 * time.Hour)})
	require.NoError(t, err)
	running, err := CreateConference(teacher, ConferenceInput{Title: "Running", StartsAt: now.Add(-30 * time.Minute), DurationMinutes: 120})
	require.NoError(t, err)
	later, err := CreateConference(teacher, ConferenceInput{Title: "Later", StartsAt: now.Add(time.Hour)})
	require.NoError(t, err)

	n, err := FinishPastConferences(now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	for id, want := range map[uint]string{
		ended.ID:   models.ConferenceFinished,
		running.ID: models.ConferenceScheduled,
		later.ID:   models.ConferenceScheduled,
	} {
		c, err := GetConference(id)
		require.NoError(t, err)
		assert.Equal(t, want, c.Status, c.Title)
	}

	n, err = FinishPastConferences(now)
	require.NoError(t, err)
	assert.Zero(t, n)
}
