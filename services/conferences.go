package services

import (
	"strings"
	"time"

	"eduportal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm/clause"
)

type ConferenceInput struct {
	Title           string    `json:"title" validate:"required,notblank,min=3,max=200"`
	Description     string    `json:"description" validate:"max=5000"`
	Speaker         string    `json:"speaker" validate:"max=150"`
	StartsAt        time.Time `json:"starts_at" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"omitempty,min=1,max=1440"`
	Location        string    `json:"location" validate:"max=255"`
	MeetingURL      string    `json:"meeting_url" validate:"omitempty,url"`
	SubjectID       *uint     `json:"subject_id"`
}

type ConferenceUpdateInput struct {
	Title           string     `json:"title" validate:"omitempty,notblank,min=3,max=200"`
	Description     *string    `json:"description" validate:"omitempty,max=5000"`
	Speaker         *string    `json:"speaker" validate:"omitempty,max=150"`
	StartsAt        *time.Time `json:"starts_at"`
	DurationMinutes int        `json:"duration_minutes" validate:"omitempty,min=1,max=1440"`
	Location        *string    `json:"location" validate:"omitempty,max=255"`
	MeetingURL      *string    `json:"meeting_url" validate:"omitempty,url"`
	SubjectID       *uint      `json:"subject_id"`
}

type ConferenceFilter struct {
	Upcoming  bool   `query:"upcoming"`
	SubjectID uint   `query:"subject_id"`
	Status    string `query:"status" validate:"omitempty,oneof=scheduled finished cancelled"`
}

var conferencePreloads = []string{"Subject", "Organizer"}

// clock is replaced in tests.
var clock = time.Now

func ListConferences(f ConferenceFilter, p Page) ([]models.Conference, Pagination, error) {
	q := db().Model(&models.Conference{})
	if f.Upcoming {
		q = q.Where("status = ? AND starts_at > ?", models.ConferenceScheduled, clock().UTC())
	}
	if f.SubjectID != 0 {
		q = q.Where("subject_id = ?", f.SubjectID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var out []models.Conference
	pg, err := paginate(q, p, "starts_at asc", &out, conferencePreloads...)
	return out, pg, err
}

func GetConference(id uint) (*models.Conference, error) {
	var conf models.Conference
	if err := first(&conf, id, "Conference", conferencePreloads...); err != nil {
		return nil, err
	}
	return &conf, nil
}

// conferenceTitleTaken checks the title against the other live conferences
// starting on the same UTC day.
func conferenceTitleTaken(title string, startsAt time.Time, excludeID uint) error {
	day := startsAt.UTC().Truncate(24 * time.Hour)
	dup, err := taken(&models.Conference{}, excludeID,
		"LOWER(title) = ? AND starts_at >= ? AND starts_at < ? AND status <> ?",
		normalizeName(title), day, day.Add(24*time.Hour), models.ConferenceCancelled)
	if err != nil {
		return err
	}
	if dup {
		return Conflict("A conference with this title already exists on that day!")
	}
	return nil
}

func CreateConference(actor *models.User, in ConferenceInput) (*models.Conference, error) {
	if err := requireRef(&models.Subject{}, in.SubjectID, "Subject"); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(in.Title)
	if err := conferenceTitleTaken(title, in.StartsAt, 0); err != nil {
		return nil, err
	}
	duration := in.DurationMinutes
	if duration == 0 {
		duration = 60
	}
	conf := models.Conference{
		Title:           title,
		Description:     in.Description,
		Speaker:         in.Speaker,
		StartsAt:        in.StartsAt.UTC(),
		DurationMinutes: duration,
		Location:        in.Location,
		MeetingURL:      in.MeetingURL,
		SubjectID:       in.SubjectID,
		OrganizerID:     actor.ID,
		Status:          models.ConferenceScheduled,
	}
	if err := db().Omit(clause.Associations).Create(&conf).Error; err != nil {
		return nil, errors.Wrap(err, "creating conference")
	}
	return GetConference(conf.ID)
}

func organizedConference(actor *models.User, id uint) (*models.Conference, error) {
	var conf models.Conference
	if err := first(&conf, id, "Conference"); err != nil {
		return nil, err
	}
	if conf.OrganizerID != actor.ID && !actor.IsAdmin() {
		return nil, errNotAllowed
	}
	return &conf, nil
}

func UpdateConference(actor *models.User, id uint, in ConferenceUpdateInput) (*models.Conference, error) {
	conf, err := organizedConference(actor, id)
	if err != nil {
		return nil, err
	}
	if conf.Status != models.ConferenceScheduled {
		return nil, Conflict("Only scheduled conferences can be edited!")
	}
	if err := requireRef(&models.Subject{}, in.SubjectID, "Subject"); err != nil {
		return nil, err
	}

	if in.Title != "" {
		conf.Title = strings.TrimSpace(in.Title)
	}
	if in.StartsAt != nil {
		conf.StartsAt = in.StartsAt.UTC()
	}
	if err := conferenceTitleTaken(conf.Title, conf.StartsAt, conf.ID); err != nil {
		return nil, err
	}
	if in.Description != nil {
		conf.Description = *in.Description
	}
	if in.Speaker != nil {
		conf.Speaker = *in.Speaker
	}
	if in.DurationMinutes != 0 {
		conf.DurationMinutes = in.DurationMinutes
	}
	if in.Location != nil {
		conf.Location = *in.Location
	}
	if in.MeetingURL != nil {
		conf.MeetingURL = *in.MeetingURL
	}
	if in.SubjectID != nil {
		conf.SubjectID = in.SubjectID
	}

	if err := db().Omit(clause.Associations).Save(conf).Error; err != nil {
		return nil, errors.Wrap(err, "updating conference")
	}
	return GetConference(conf.ID)
}

func CancelConference(actor *models.User, id uint) (*models.Conference, error) {
	conf, err := organizedConference(actor, id)
	if err != nil {
		return nil, err
	}
	if conf.Status != models.ConferenceScheduled {
		return nil, Conflict("Only scheduled conferences can be cancelled!")
	}
	if err := db().Model(conf).Update("status", models.ConferenceCancelled).Error; err != nil {
		return nil, errors.Wrap(err, "cancelling conference")
	}
	return GetConference(conf.ID)
}

func DeleteConference(actor *models.User, id uint) error {
	conf, err := organizedConference(actor, id)
	if err != nil {
		return err
	}
	return errors.Wrap(db().Delete(conf).Error, "deleting conference")
}

// FinishPastConferences marks every scheduled conference that ended before
// at as finished and returns how many rows changed.
func FinishPastConferences(at time.Time) (int64, error) {
	at = at.UTC()
	var due []models.Conference
	if err := db().Where("status = ? AND starts_at < ?", models.ConferenceScheduled, at).
		Find(&due).Error; err != nil {
		return 0, errors.Wrap(err, "loading scheduled conferences")
	}

	var ids []uint
	for _, c := range due {
		if !c.EndsAt().After(at) {
			ids = append(ids, c.ID)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}
	res := db().Model(&models.Conference{}).Where("id IN ?", ids).
		Update("status", models.ConferenceFinished)
	return res.RowsAffected, errors.Wrap(res.Error, "finishing conferences")
}
