package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ConferenceScheduled = "scheduled"
	ConferenceFinished  = "finished"
	ConferenceCancelled = "cancelled"
)

type Conference struct {
	gorm.Model
	Title           string    `json:"title" gorm:"not null"`
	Description     string    `json:"description" gorm:"type:text"`
	Speaker         string    `json:"speaker"`
	StartsAt        time.Time `json:"starts_at" gorm:"index"`
	DurationMinutes int       `json:"duration_minutes" gorm:"default:60"`
	Location        string    `json:"location"`
	MeetingURL      string    `json:"meeting_url"`
	SubjectID       *uint     `json:"subject_id" gorm:"index"`
	Subject         *Subject  `json:"subject,omitempty"`
	OrganizerID     uint      `json:"organizer_id" gorm:"index;not null"`
	Organizer       *User     `json:"organizer,omitempty"`
	Status          string    `json:"status" gorm:"index;default:'scheduled'"`
}

// EndsAt is the start time plus the duration.
func (c *Conference) EndsAt() time.Time {
	return c.StartsAt.Add(time.Duration(c.DurationMinutes) * time.Minute)
}
