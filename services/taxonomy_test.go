package services

import (
	"context"
	"net/http"
	"testing"

	"eduportal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectsAndAreas(t *testing.T) {
	testutil.Setup(t)

	area, err := CreateSubjectArea(SubjectAreaInput{Name: "Ciencias exactas"})
	require.NoError(t, err)
	_, err = CreateSubjectArea(SubjectAreaInput{Name: "CIENCIAS EXACTAS"})
	requireStatus(t, err, http.StatusConflict)

	_, err = CreateSubject(SubjectInput{Name: "Matemática", AreaID: ptr(area.ID + 9)})
	requireStatus(t, err, http.StatusBadRequest)

	math, err := CreateSubject(SubjectInput{Name: "Matemática", AreaID: &area.ID})
	require.NoError(t, err)
	require.NotNil(t, math.Area)
	assert.Equal(t, area.ID, math.Area.ID)

	_, err = CreateSubject(SubjectInput{Name: "Historia"})
	require.NoError(t, err)

	list, pg, err := ListSubjects(TaxonomyFilter{AreaID: area.ID}, Page{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), pg.Total)
	assert.Equal(t, "Matemática", list[0].Name)

	requireStatus(t, DeleteSubjectArea(area.ID), http.StatusConflict)

	renamed, err := UpdateSubject(math.ID, SubjectInput{Name: "Matemáticas"})
	require.NoError(t, err)
	assert.Nil(t, renamed.AreaID)
	require.NoError(t, DeleteSubjectArea(area.ID))
}

func TestDeleteReferencedSubjectAndLevel(t *testing.T) {
	testutil.Setup(t)
	teacher := testutil.Teacher(t)

	subject, err := CreateSubject(SubjectInput{Name: "Química"})
	require.NoError(t, err)
	level, err := CreateLevel(LevelInput{Name: "Secundaria", Order: 2})
	require.NoError(t, err)

	c, err := CreateCourse(context.Background(), teacher, CourseInput{Title: "Química orgánica", SubjectID: &subject.ID, LevelID: &level.ID}, nil)
	require.NoError(t, err)

	requireStatus(t, DeleteSubject(subject.ID), http.StatusConflict)
	requireStatus(t, DeleteLevel(level.ID), http.StatusConflict)

	require.NoError(t, DeleteCourse(context.Background(), teacher, c.ID))
	require.NoError(t, DeleteSubject(subject.ID))
	require.NoError(t, DeleteLevel(level.ID))
}

func TestLevelsOrdered(t *testing.T) {
	testutil.Setup(t)

	_, err := CreateLevel(LevelInput{Name: "Universitaria", Order: 3})
	require.NoError(t, err)
	_, err = CreateLevel(LevelInput{Name: "Primaria", Order: 1})
	require.NoError(t, err)
	_, err = CreateLevel(LevelInput{Name: "primaria"})
	requireStatus(t, err, http.StatusConflict)

	levels, _, err := ListLevels(Page{})
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, "Primaria", levels[0].Name)
	assert.Equal(t, "Universitaria", levels[1].Name)
}
