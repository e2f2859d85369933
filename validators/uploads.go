package validators

import (
	"mime/multipart"

	"eduportal/middleware"
	"eduportal/services"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
)

// Uploads opens the named multipart file fields and stores them under
// UploadsKey as map[string]*services.Upload. Missing fields are skipped; the
// files stay open until the rest of the chain returns.
func Uploads(fields ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return withUploads(c, fields)
	}
}

// Form is Body followed by Uploads, for endpoints that take JSON or a
// multipart form with files.
func Form[T any](fields ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(T)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if errs := Struct(reqData); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals(BodyKey, reqData)
		return withUploads(c, fields)
	}
}

func withUploads(c *fiber.Ctx, fields []string) error {
	uploads := map[string]*services.Upload{}
	form, err := c.MultipartForm()
	if err != nil {
		// not a multipart request, so nothing was uploaded
		c.Locals(UploadsKey, uploads)
		return c.Next()
	}

	var opened []multipart.File
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()

	for _, field := range fields {
		headers := form.File[field]
		if len(headers) == 0 {
			continue
		}
		if len(headers) > 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{field: "only one file is allowed"})
		}
		fh := headers[0]
		f, err := fh.Open()
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid file upload!", nil)
		}
		opened = append(opened, f)

		contentType, err := detectContentType(fh, f)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid file upload!", nil)
		}
		uploads[field] = &services.Upload{
			Filename:    fh.Filename,
			ContentType: contentType,
			Size:        fh.Size,
			Reader:      f,
		}
	}

	c.Locals(UploadsKey, uploads)
	return c.Next()
}

// detectContentType trusts the part header unless it is missing or generic,
// in which case the first bytes are sniffed.
func detectContentType(fh *multipart.FileHeader, f multipart.File) (string, error) {
	ct := fh.Header.Get("Content-Type")
	if ct != "" && ct != "application/octet-stream" {
		return ct, nil
	}
	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return "", err
	}
	if _, err := f.Seek(0, 0); err != nil {
		return "", err
	}
	return mt.String(), nil
}

// UploadOf returns the upload stored for field, or nil.
func UploadOf(c *fiber.Ctx, field string) *services.Upload {
	uploads, _ := c.Locals(UploadsKey).(map[string]*services.Upload)
	return uploads[field]
}
