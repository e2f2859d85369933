package utils

import (
	"testing"
	"time"

	"eduportal/models"
	"eduportal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepConferences(t *testing.T) {
	db := testutil.Setup(t)
	teacher := testutil.Teacher(t)
	now := time.Now().UTC()

	past := models.Conference{Title: "Yesterday", StartsAt: now.Add(-26 * time.Hour), DurationMinutes: 60, OrganizerID: teacher.ID}
	running := models.Conference{Title: "Running", StartsAt: now.Add(-10 * time.Minute), DurationMinutes: 60, OrganizerID: teacher.ID}
	future := models.Conference{Title: "Tomorrow", StartsAt: now.Add(24 * time.Hour), DurationMinutes: 60, OrganizerID: teacher.ID}
	for _, c := range []*models.Conference{&past, &running, &future} {
		require.NoError(t, db.Create(c).Error)
	}

	SweepConferences()

	status := func(id uint) string {
		var c models.Conference
		require.NoError(t, db.First(&c, id).Error)
		return c.Status
	}
	assert.Equal(t, models.ConferenceFinished, status(past.ID))
	assert.Equal(t, models.ConferenceScheduled, status(running.ID))
	assert.Equal(t, models.ConferenceScheduled, status(future.ID))
}

func TestStartConferenceSchedulerRejectsBadSpec(t *testing.T) {
	_, err := StartConferenceScheduler("every now and then")
	assert.Error(t, err)

	c, err := StartConferenceScheduler("@every 1h")
	require.NoError(t, err)
	c.Stop()
}
