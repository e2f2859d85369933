package services

import (
	"context"
	"net/http"
	"testing"

	"eduportal/models"
	"eduportal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentationModeration(t *testing.T) {
	testutil.Setup(t)
	ctx := context.Background()
	admin := testutil.Admin(t)
	teacher := testutil.Teacher(t)
	student := testutil.Student(t)

	_, err := CreateDocumentation(ctx, teacher, DocumentationInput{Title: "No file"}, nil)
	requireStatus(t, err, http.StatusUnprocessableEntity)

	_, err = CreateDocumentation(ctx, teacher, DocumentationInput{Title: "Zip"}, upload("a.zip", "application/zip", "zip"))
	requireStatus(t, err, http.StatusUnprocessableEntity)

	official, err := CreateDocumentation(ctx, admin, DocumentationInput{Title: "Reglamento"}, upload("r.pdf", "application/pdf", "%PDF"))
	require.NoError(t, err)
	assert.True(t, official.IsPublished)
	assert.Equal(t, models.FileTypePDF, official.FileType)

	pending, err := CreateDocumentation(ctx, teacher, DocumentationInput{Title: "Apuntes"}, upload("clase.mp4", "video/mp4", "mp4"))
	require.NoError(t, err)
	assert.False(t, pending.IsPublished)
	assert.Equal(t, models.FileTypeVideo, pending.FileType)

	total := func(actor *models.User, f DocumentationFilter) int64 {
		_, pg, err := ListDocumentation(actor, f, Page{})
		require.NoError(t, err)
		return pg.Total
	}
	assert.Equal(t, int64(0), total(nil, DocumentationFilter{}))
	assert.Equal(t, int64(1), total(student, DocumentationFilter{}))
	assert.Equal(t, int64(2), total(teacher, DocumentationFilter{}))
	assert.Equal(t, int64(2), total(admin, DocumentationFilter{}))
	assert.Equal(t, int64(1), total(admin, DocumentationFilter{Pending: true}))
	assert.Equal(t, int64(1), total(admin, DocumentationFilter{FileType: models.FileTypeVideo}))

	_, err = GetDocumentation(student, pending.ID)
	requireStatus(t, err, http.StatusNotFound)

	moderated, err := ModerateDocumentation(pending.ID, ModerationInput{IsPublished: ptr(true), GuestViewable: ptr(true)})
	require.NoError(t, err)
	assert.True(t, moderated.IsPublished)
	assert.True(t, moderated.GuestViewable)
	assert.Equal(t, int64(1), total(nil, DocumentationFilter{}))

	file, err := DocumentationFile(nil, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, "clase.mp4", file.Filename)

	// an uploader edit goes back to moderation
	edited, err := UpdateDocumentation(ctx, teacher, pending.ID, DocumentationUpdateInput{Title: "Apuntes v2"}, nil)
	require.NoError(t, err)
	assert.False(t, edited.IsPublished)
	assert.Equal(t, int64(0), total(nil, DocumentationFilter{}))

	_, err = UpdateDocumentation(ctx, student, official.ID, DocumentationUpdateInput{Title: "Mine"}, nil)
	requireStatus(t, err, http.StatusForbidden)
}

func TestDeleteDocumentationRemovesBlob(t *testing.T) {
	testutil.Setup(t)
	ctx := context.Background()
	teacher := testutil.Teacher(t)
	student := testutil.Student(t)

	d, err := CreateDocumentation(ctx, teacher, DocumentationInput{Title: "Mapa"}, upload("mapa.png", "image/png", "png"))
	require.NoError(t, err)
	assert.Equal(t, models.FileTypeImage, d.FileType)

	requireStatus(t, DeleteDocumentation(ctx, student, d.ID), http.StatusNotFound)
	require.NoError(t, DeleteDocumentation(ctx, teacher, d.ID))

	_, err = OpenFile(ctx, d.File)
	requireStatus(t, err, http.StatusNotFound)
	_, err = GetDocumentation(teacher, d.ID)
	requireStatus(t, err, http.StatusNotFound)
}
