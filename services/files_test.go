package services

import (
	"context"
	"net/http"
	"testing"

	"eduportal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestScriptableImagesRejected(t *testing.T) {
	testutil.Setup(t)
	ctx := context.Background()
	teacher := testutil.Teacher(t)
	svg := `<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`

	_, err := CreateDocumentation(ctx, teacher, DocumentationInput{Title: "Diagram"}, upload("x.svg", "image/svg+xml", svg))
	requireStatus(t, err, http.StatusUnprocessableEntity)

	_, err = CreateCourse(ctx, teacher, CourseInput{Title: "Vector art"}, upload("x.svg", "image/svg+xml; charset=utf-8", svg))
	requireStatus(t, err, http.StatusUnprocessableEntity)
}

func TestServeInline(t *testing.T) {
	cases := map[string]bool{
		"application/pdf":          true,
		"image/png":                true,
		"IMAGE/JPEG":               true,
		"video/mp4":                true,
		"image/svg+xml":            false,
		"text/html; charset=utf-8": false,
		"application/xhtml+xml":    false,
		"application/zip":          false,
		"":                         false,
	}
	for ct, inline := range cases {
		assert.Equal(t, inline, ServeInline(ct), ct)
	}
}
