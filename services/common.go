package services

import (
	"strings"

	"eduportal/database"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Page is a 1-based page request.
type Page struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

// Normalize fills defaults and clamps the limit.
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

func db() *gorm.DB {
	return database.Database.Db
}

// paginate counts the rows matched by q and loads one page of them into out.
func paginate(q *gorm.DB, p Page, order string, out interface{}, preloads ...string) (Pagination, error) {
	p = p.Normalize()
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return Pagination{}, errors.Wrap(err, "counting rows")
	}

	f := q
	for _, pl := range preloads {
		f = f.Preload(pl)
	}
	if err := f.Order(order).Offset(p.Offset()).Limit(p.Limit).Find(out).Error; err != nil {
		return Pagination{}, errors.Wrap(err, "loading page")
	}
	return Pagination{Total: total, Page: p.Page, Limit: p.Limit}, nil
}

// first loads one row by id, mapping a missing row to a NotFound error.
func first(out interface{}, id uint, what string, preloads ...string) error {
	q := db()
	for _, pl := range preloads {
		q = q.Preload(pl)
	}
	err := q.First(out, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(what)
	}
	return errors.Wrapf(err, "loading %s %d", what, id)
}

// requireRef checks that an optional reference points at an existing row.
func requireRef(model interface{}, id *uint, what string) error {
	if id == nil {
		return nil
	}
	var n int64
	if err := db().Model(model).Where("id = ?", *id).Count(&n).Error; err != nil {
		return errors.Wrapf(err, "checking %s", what)
	}
	if n == 0 {
		return BadRequest(what + " does not exist!")
	}
	return nil
}

// taken reports whether another row of model already matches the condition.
func taken(model interface{}, excludeID uint, query string, args ...interface{}) (bool, error) {
	q := db().Model(model).Where(query, args...)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, errors.Wrap(err, "checking uniqueness")
	}
	return n > 0, nil
}

// inUse reports whether any row of model references the value through column.
func inUse(model interface{}, column string, id uint) (bool, error) {
	var n int64
	if err := db().Model(model).Where(column+" = ?", id).Count(&n).Error; err != nil {
		return false, errors.Wrap(err, "checking references")
	}
	return n > 0, nil
}

func likePattern(s string) string {
	return "%" + strings.ToLower(strings.TrimSpace(s)) + "%"
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
