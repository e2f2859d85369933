package services

import (
	"context"
	"strings"

	"eduportal/models"
	"eduportal/notify"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DocumentationInput struct {
	Title       string `json:"title" form:"title" validate:"required,notblank,min=3,max=150"`
	Description string `json:"description" form:"description" validate:"max=5000"`
	SubjectID   *uint  `json:"subject_id" form:"subject_id"`
	LevelID     *uint  `json:"level_id" form:"level_id"`
}

type DocumentationUpdateInput struct {
	Title       string `json:"title" form:"title" validate:"omitempty,notblank,min=3,max=150"`
	Description string `json:"description" form:"description" validate:"max=5000"`
	SubjectID   *uint  `json:"subject_id" form:"subject_id"`
	LevelID     *uint  `json:"level_id" form:"level_id"`
}

type ModerationInput struct {
	IsPublished   *bool `json:"is_published"`
	GuestViewable *bool `json:"guest_viewable"`
}

type DocumentationFilter struct {
	SubjectID uint   `query:"subject_id"`
	LevelID   uint   `query:"level_id"`
	FileType  string `query:"file_type" validate:"omitempty,oneof=image pdf video"`
	Search    string `query:"search"`
	Pending   bool   `query:"pending"`
}

var documentationPreloads = []string{"File", "Subject", "Level", "Uploader"}

// documentationFileType maps a content type to image, pdf or video; "" means unsupported.
func documentationFileType(contentType string) string {
	ct := baseType(contentType)
	switch {
	case isRasterImage(ct):
		return models.FileTypeImage
	case ct == "application/pdf":
		return models.FileTypePDF
	case strings.HasPrefix(ct, "video/"):
		return models.FileTypeVideo
	}
	return ""
}

// visibleDocumentation restricts q to the items the actor may see.
func visibleDocumentation(q *gorm.DB, actor *models.User) *gorm.DB {
	switch {
	case actor == nil:
		return q.Where("is_published = ? AND guest_viewable = ?", true, true)
	case actor.IsAdmin():
		return q
	default:
		return q.Where("is_published = ? OR uploader_id = ?", true, actor.ID)
	}
}

func canSeeDocumentation(actor *models.User, d *models.Documentation) bool {
	switch {
	case actor == nil:
		return d.IsPublished && d.GuestViewable
	case actor.IsAdmin():
		return true
	default:
		return d.IsPublished || d.UploaderID == actor.ID
	}
}

func ListDocumentation(actor *models.User, f DocumentationFilter, p Page) ([]models.Documentation, Pagination, error) {
	q := visibleDocumentation(db().Model(&models.Documentation{}), actor)
	if f.SubjectID != 0 {
		q = q.Where("subject_id = ?", f.SubjectID)
	}
	if f.LevelID != 0 {
		q = q.Where("level_id = ?", f.LevelID)
	}
	if f.FileType != "" {
		q = q.Where("file_type = ?", f.FileType)
	}
	if f.Pending && actor.IsAdmin() {
		q = q.Where("is_published = ?", false)
	}
	if f.Search != "" {
		pattern := likePattern(f.Search)
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var out []models.Documentation
	pg, err := paginate(q, p, "created_at desc", &out, documentationPreloads...)
	return out, pg, err
}

func GetDocumentation(actor *models.User, id uint) (*models.Documentation, error) {
	var d models.Documentation
	if err := first(&d, id, "Documentation", documentationPreloads...); err != nil {
		return nil, err
	}
	if !canSeeDocumentation(actor, &d) {
		return nil, NotFound("Documentation")
	}
	return &d, nil
}

func CreateDocumentation(ctx context.Context, actor *models.User, in DocumentationInput, up *Upload) (*models.Documentation, error) {
	if up == nil {
		return nil, Unprocessable("A file is required!")
	}
	if err := checkCourseRefs(in.SubjectID, in.LevelID); err != nil {
		return nil, err
	}
	file, err := SaveUpload(ctx, actor.ID, up, "file", AcceptDocumentation)
	if err != nil {
		return nil, err
	}

	d := models.Documentation{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		FileID:      file.ID,
		FileType:    documentationFileType(file.ContentType),
		SubjectID:   in.SubjectID,
		LevelID:     in.LevelID,
		UploaderID:  actor.ID,
		IsPublished: actor.IsAdmin(),
	}
	if err := db().Omit(clause.Associations).Create(&d).Error; err != nil {
		RemoveFile(ctx, &file.ID)
		return nil, errors.Wrap(err, "creating documentation")
	}

	if !d.IsPublished {
		go notify.Current.PendingModeration(d.ID, d.Title, actor.Email)
	}
	return GetDocumentation(actor, d.ID)
}

// UpdateDocumentation edits metadata and optionally replaces the file. A
// non-admin edit sends the item back to moderation.
func UpdateDocumentation(ctx context.Context, actor *models.User, id uint, in DocumentationUpdateInput, up *Upload) (*models.Documentation, error) {
	d, err := GetDocumentation(actor, id)
	if err != nil {
		return nil, err
	}
	if d.UploaderID != actor.ID && !actor.IsAdmin() {
		return nil, errNotAllowed
	}
	if err := checkCourseRefs(in.SubjectID, in.LevelID); err != nil {
		return nil, err
	}

	if in.Title != "" {
		d.Title = strings.TrimSpace(in.Title)
	}
	if in.Description != "" {
		d.Description = in.Description
	}
	if in.SubjectID != nil {
		d.SubjectID = in.SubjectID
	}
	if in.LevelID != nil {
		d.LevelID = in.LevelID
	}

	oldFileID := d.FileID
	file, err := SaveUpload(ctx, actor.ID, up, "file", AcceptDocumentation)
	if err != nil {
		return nil, err
	}
	if file != nil {
		d.FileID = file.ID
		d.FileType = documentationFileType(file.ContentType)
	}

	requeued := !actor.IsAdmin() && d.IsPublished
	if !actor.IsAdmin() {
		d.IsPublished = false
	}

	if err := db().Omit(clause.Associations).Save(d).Error; err != nil {
		if file != nil {
			RemoveFile(ctx, &file.ID)
		}
		return nil, errors.Wrap(err, "updating documentation")
	}
	if file != nil {
		RemoveFile(ctx, &oldFileID)
	}
	if requeued {
		go notify.Current.PendingModeration(d.ID, d.Title, actor.Email)
	}
	return GetDocumentation(actor, d.ID)
}

// ModerateDocumentation sets the publish and guest flags (admin only).
func ModerateDocumentation(id uint, in ModerationInput) (*models.Documentation, error) {
	var d models.Documentation
	if err := first(&d, id, "Documentation"); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if in.IsPublished != nil {
		updates["is_published"] = *in.IsPublished
	}
	if in.GuestViewable != nil {
		updates["guest_viewable"] = *in.GuestViewable
	}
	if len(updates) > 0 {
		if err := db().Model(&d).Updates(updates).Error; err != nil {
			return nil, errors.Wrap(err, "moderating documentation")
		}
	}
	var reloaded models.Documentation
	if err := first(&reloaded, id, "Documentation", documentationPreloads...); err != nil {
		return nil, err
	}
	return &reloaded, nil
}

func DeleteDocumentation(ctx context.Context, actor *models.User, id uint) error {
	d, err := GetDocumentation(actor, id)
	if err != nil {
		return err
	}
	if d.UploaderID != actor.ID && !actor.IsAdmin() {
		return errNotAllowed
	}
	if err := db().Delete(d).Error; err != nil {
		return errors.Wrap(err, "deleting documentation")
	}
	return RemoveFile(ctx, &d.FileID)
}

// DocumentationFile returns the blob metadata of a visible item.
func DocumentationFile(actor *models.User, id uint) (*models.File, error) {
	d, err := GetDocumentation(actor, id)
	if err != nil {
		return nil, err
	}
	return loadFile(&d.FileID)
}
