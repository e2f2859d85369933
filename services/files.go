package services

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"eduportal/config"
	"eduportal/logger"
	"eduportal/models"
	"eduportal/storage"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Upload is a file received from a client.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// Accept reports whether a content type is allowed for an upload slot.
type Accept func(contentType string) bool

func AcceptPDF(ct string) bool   { return baseType(ct) == "application/pdf" }
func AcceptImage(ct string) bool { return isRasterImage(baseType(ct)) }
func AcceptAny(ct string) bool   { return true }

// isRasterImage excludes SVG, which can carry script.
func isRasterImage(ct string) bool {
	return strings.HasPrefix(ct, "image/") && ct != "image/svg+xml"
}

// ServeInline reports whether a stored file may be shown in the browser.
// Everything else is sent as an attachment.
func ServeInline(ct string) bool {
	ct = baseType(ct)
	return ct == "application/pdf" || isRasterImage(ct) || strings.HasPrefix(ct, "video/")
}

// AcceptDocumentation allows images, PDFs and videos.
func AcceptDocumentation(ct string) bool {
	return documentationFileType(ct) != ""
}

func baseType(ct string) string {
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}

func maxUpload() int64 {
	if config.AppConfig == nil {
		return 50 << 20
	}
	return config.AppConfig.MaxUploadBytes()
}

// SaveUpload streams the upload into the file store and records its metadata.
func SaveUpload(ctx context.Context, uploaderID uint, up *Upload, field string, accept Accept) (*models.File, error) {
	if up == nil {
		return nil, nil
	}
	if !accept(up.ContentType) {
		return nil, Unprocessable("Unsupported file type for " + field + "!")
	}
	limit := maxUpload()
	if up.Size > limit {
		return nil, TooLarge("File " + field + " is too large!")
	}

	key := uuid.NewString() + strings.ToLower(filepath.Ext(up.Filename))
	n, err := storage.Files.Put(ctx, key, io.LimitReader(up.Reader, limit+1))
	if err != nil {
		return nil, errors.Wrap(err, "storing upload")
	}
	if n > limit {
		deleteBlob(ctx, key)
		return nil, TooLarge("File " + field + " is too large!")
	}

	file := models.File{
		Filename:    filepath.Base(up.Filename),
		ContentType: baseType(up.ContentType),
		Size:        n,
		StorageKey:  key,
		UploaderID:  uploaderID,
	}
	if err := db().Create(&file).Error; err != nil {
		deleteBlob(ctx, key)
		return nil, errors.Wrap(err, "recording upload")
	}
	return &file, nil
}

// RemoveFile deletes the metadata row and the blob behind it.
func RemoveFile(ctx context.Context, fileID *uint) error {
	if fileID == nil {
		return nil
	}
	var file models.File
	if err := db().First(&file, *fileID).Error; err != nil {
		return nil
	}
	if err := db().Unscoped().Delete(&file).Error; err != nil {
		return errors.Wrap(err, "deleting file row")
	}
	deleteBlob(ctx, file.StorageKey)
	return nil
}

// OpenFile streams a stored blob.
func OpenFile(ctx context.Context, file *models.File) (io.ReadCloser, error) {
	rc, err := storage.Files.Get(ctx, file.StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, NotFound("File")
	}
	return rc, errors.Wrap(err, "opening blob")
}

func loadFile(id *uint) (*models.File, error) {
	if id == nil {
		return nil, NotFound("File")
	}
	var file models.File
	if err := first(&file, *id, "File"); err != nil {
		return nil, err
	}
	return &file, nil
}

func deleteBlob(ctx context.Context, key string) {
	if err := storage.Files.Delete(ctx, key); err != nil && !errors.Is(err, storage.ErrNotFound) {
		logger.Log.Warn("deleting blob failed", zap.String("key", key), zap.Error(err))
	}
}
