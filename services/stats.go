package services

import (
	"eduportal/models"
	"eduportal/models/course"

	"github.com/pkg/errors"
)

type CourseStats struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
}

type Stats struct {
	UsersByRole          map[string]int64 `json:"users_by_role"`
	Courses              CourseStats      `json:"courses"`
	EnrollmentsByStatus  map[string]int64 `json:"enrollments_by_status"`
	PendingDocumentation int64            `json:"pending_documentation"`
	ForumPosts           int64            `json:"forum_posts"`
	UpcomingConferences  int64            `json:"upcoming_conferences"`
}

type groupCount struct {
	Bucket string
	Total  int64
}

func countBy(model interface{}, column string) (map[string]int64, error) {
	var rows []groupCount
	err := db().Model(model).
		Select(column + " AS bucket, COUNT(*) AS total").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrapf(err, "counting by %s", column)
	}
	out := map[string]int64{}
	for _, r := range rows {
		out[r.Bucket] = r.Total
	}
	return out, nil
}

// AdminStats collects the dashboard counters.
func AdminStats() (*Stats, error) {
	var (
		s   Stats
		err error
	)
	if s.UsersByRole, err = countBy(&models.User{}, "role"); err != nil {
		return nil, err
	}
	// every role is reported, even with no users
	for _, role := range models.Roles {
		if _, ok := s.UsersByRole[role]; !ok {
			s.UsersByRole[role] = 0
		}
	}
	if s.EnrollmentsByStatus, err = countBy(&course.Enrollment{}, "status"); err != nil {
		return nil, err
	}

	counts := []struct {
		dst   *int64
		model interface{}
		where []interface{}
	}{
		{&s.Courses.Total, &course.Course{}, nil},
		{&s.Courses.Published, &course.Course{}, []interface{}{"is_published = ?", true}},
		{&s.PendingDocumentation, &models.Documentation{}, []interface{}{"is_published = ?", false}},
		{&s.ForumPosts, &models.ForumPost{}, nil},
		{&s.UpcomingConferences, &models.Conference{}, []interface{}{"status = ? AND starts_at > ?", models.ConferenceScheduled, clock().UTC()}},
	}
	for _, c := range counts {
		q := db().Model(c.model)
		if len(c.where) > 0 {
			q = q.Where(c.where[0], c.where[1:]...)
		}
		if err := q.Count(c.dst).Error; err != nil {
			return nil, errors.Wrap(err, "counting dashboard rows")
		}
	}
	return &s, nil
}
