package services

import (
	"strings"

	"eduportal/models"
	"eduportal/models/course"

	"github.com/pkg/errors"
)

type SubjectAreaInput struct {
	Name        string `json:"name" validate:"required,notblank,min=2,max=120"`
	Description string `json:"description" validate:"max=2000"`
}

type SubjectInput struct {
	Name        string `json:"name" validate:"required,notblank,min=2,max=120"`
	Description string `json:"description" validate:"max=2000"`
	AreaID      *uint  `json:"area_id"`
}

type LevelInput struct {
	Name  string `json:"name" validate:"required,notblank,min=2,max=80"`
	Order int    `json:"order" validate:"min=0"`
}

type TaxonomyFilter struct {
	AreaID uint   `query:"area_id"`
	Search string `query:"search"`
}

// Subject areas

func ListSubjectAreas(f TaxonomyFilter, p Page) ([]models.SubjectArea, Pagination, error) {
	q := db().Model(&models.SubjectArea{})
	if f.Search != "" {
		q = q.Where("LOWER(name) LIKE ?", likePattern(f.Search))
	}
	var out []models.SubjectArea
	pg, err := paginate(q, p, "name asc", &out)
	return out, pg, err
}

func GetSubjectArea(id uint) (*models.SubjectArea, error) {
	var area models.SubjectArea
	if err := first(&area, id, "Subject area", "Subjects"); err != nil {
		return nil, err
	}
	return &area, nil
}

func CreateSubjectArea(in SubjectAreaInput) (*models.SubjectArea, error) {
	area := models.SubjectArea{}
	if err := saveSubjectArea(&area, in); err != nil {
		return nil, err
	}
	return &area, nil
}

func UpdateSubjectArea(id uint, in SubjectAreaInput) (*models.SubjectArea, error) {
	var area models.SubjectArea
	if err := first(&area, id, "Subject area"); err != nil {
		return nil, err
	}
	if err := saveSubjectArea(&area, in); err != nil {
		return nil, err
	}
	return &area, nil
}

func saveSubjectArea(area *models.SubjectArea, in SubjectAreaInput) error {
	exists, err := taken(&models.SubjectArea{}, area.ID, "LOWER(name) = ?", normalizeName(in.Name))
	if err != nil {
		return err
	}
	if exists {
		return Conflict("A subject area with this name already exists!")
	}
	area.Name = strings.TrimSpace(in.Name)
	area.Description = in.Description
	return errors.Wrap(db().Omit("Subjects").Save(area).Error, "saving subject area")
}

func DeleteSubjectArea(id uint) error {
	var area models.SubjectArea
	if err := first(&area, id, "Subject area"); err != nil {
		return err
	}
	used, err := inUse(&models.Subject{}, "area_id", id)
	if err != nil {
		return err
	}
	if used {
		return Conflict("Subject area still has subjects!")
	}
	return errors.Wrap(db().Delete(&area).Error, "deleting subject area")
}

// Subjects

func ListSubjects(f TaxonomyFilter, p Page) ([]models.Subject, Pagination, error) {
	q := db().Model(&models.Subject{})
	if f.AreaID != 0 {
		q = q.Where("area_id = ?", f.AreaID)
	}
	if f.Search != "" {
		q = q.Where("LOWER(name) LIKE ?", likePattern(f.Search))
	}
	var out []models.Subject
	pg, err := paginate(q, p, "name asc", &out, "Area")
	return out, pg, err
}

func GetSubject(id uint) (*models.Subject, error) {
	var subject models.Subject
	if err := first(&subject, id, "Subject", "Area"); err != nil {
		return nil, err
	}
	return &subject, nil
}

func CreateSubject(in SubjectInput) (*models.Subject, error) {
	subject := models.Subject{}
	if err := saveSubject(&subject, in); err != nil {
		return nil, err
	}
	return GetSubject(subject.ID)
}

func UpdateSubject(id uint, in SubjectInput) (*models.Subject, error) {
	var subject models.Subject
	if err := first(&subject, id, "Subject"); err != nil {
		return nil, err
	}
	if err := saveSubject(&subject, in); err != nil {
		return nil, err
	}
	return GetSubject(subject.ID)
}

func saveSubject(subject *models.Subject, in SubjectInput) error {
	if err := requireRef(&models.SubjectArea{}, in.AreaID, "Subject area"); err != nil {
		return err
	}
	exists, err := taken(&models.Subject{}, subject.ID, "LOWER(name) = ?", normalizeName(in.Name))
	if err != nil {
		return err
	}
	if exists {
		return Conflict("A subject with this name already exists!")
	}
	subject.Name = strings.TrimSpace(in.Name)
	subject.Description = in.Description
	subject.AreaID = in.AreaID
	subject.Area = nil
	return errors.Wrap(db().Save(subject).Error, "saving subject")
}

func DeleteSubject(id uint) error {
	var subject models.Subject
	if err := first(&subject, id, "Subject"); err != nil {
		return err
	}
	for _, ref := range []interface{}{&course.Course{}, &models.Documentation{}, &models.ForumPost{}, &models.Conference{}} {
		used, err := inUse(ref, "subject_id", id)
		if err != nil {
			return err
		}
		if used {
			return Conflict("Subject is still used by courses, documentation, posts or conferences!")
		}
	}
	return errors.Wrap(db().Delete(&subject).Error, "deleting subject")
}

// Levels

func ListLevels(p Page) ([]models.Level, Pagination, error) {
	var out []models.Level
	pg, err := paginate(db().Model(&models.Level{}), p, "sort_order asc, name asc", &out)
	return out, pg, err
}

func GetLevel(id uint) (*models.Level, error) {
	var level models.Level
	if err := first(&level, id, "Level"); err != nil {
		return nil, err
	}
	return &level, nil
}

func CreateLevel(in LevelInput) (*models.Level, error) {
	level := models.Level{}
	if err := saveLevel(&level, in); err != nil {
		return nil, err
	}
	return &level, nil
}

func UpdateLevel(id uint, in LevelInput) (*models.Level, error) {
	level, err := GetLevel(id)
	if err != nil {
		return nil, err
	}
	if err := saveLevel(level, in); err != nil {
		return nil, err
	}
	return level, nil
}

func saveLevel(level *models.Level, in LevelInput) error {
	exists, err := taken(&models.Level{}, level.ID, "LOWER(name) = ?", normalizeName(in.Name))
	if err != nil {
		return err
	}
	if exists {
		return Conflict("A level with this name already exists!")
	}
	level.Name = strings.TrimSpace(in.Name)
	level.Order = in.Order
	return errors.Wrap(db().Save(level).Error, "saving level")
}

func DeleteLevel(id uint) error {
	level, err := GetLevel(id)
	if err != nil {
		return err
	}
	for _, ref := range []interface{}{&course.Course{}, &models.Documentation{}} {
		used, err := inUse(ref, "level_id", id)
		if err != nil {
			return err
		}
		if used {
			return Conflict("Level is still used by courses or documentation!")
		}
	}
	return errors.Wrap(db().Delete(level).Error, "deleting level")
}
