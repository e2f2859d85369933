package services

import (
	"net/http"
	"testing"

	"eduportal/models"
	"eduportal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	testutil.Setup(t)

	user, err := Register(RegisterInput{Name: " Ana ", Email: "Ana@Example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "Ana", user.Name)
	assert.NotEqual(t, "password123", user.Password)

	_, err = Register(RegisterInput{Name: "Other", Email: "ANA@example.com", Password: "password123"})
	requireStatus(t, err, http.StatusConflict)

	_, err = Login(LoginInput{Email: "ana@example.com", Password: "wrong-password"})
	requireStatus(t, err, http.StatusUnauthorized)

	_, err = Login(LoginInput{Email: "nobody@example.com", Password: "password123"})
	requireStatus(t, err, http.StatusUnauthorized)

	logged, err := Login(LoginInput{Email: "ANA@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
	assert.NotNil(t, logged.LastLogin)
}

func TestChangePassword(t *testing.T) {
	testutil.Setup(t)
	student := testutil.Student(t)

	err := ChangePassword(student, ChangePasswordInput{CurrentPassword: "nope", NewPassword: "brand-new-pass"})
	requireStatus(t, err, http.StatusUnauthorized)

	require.NoError(t, ChangePassword(student, ChangePasswordInput{CurrentPassword: testutil.Password, NewPassword: "brand-new-pass"}))

	_, err = Login(LoginInput{Email: student.Email, Password: testutil.Password})
	requireStatus(t, err, http.StatusUnauthorized)
	_, err = Login(LoginInput{Email: student.Email, Password: "brand-new-pass"})
	assert.NoError(t, err)
}

func TestUpdateUser(t *testing.T) {
	testutil.Setup(t)
	admin := testutil.Admin(t)
	student := testutil.Student(t)
	teacher := testutil.Teacher(t)

	t.Run("self edit", func(t *testing.T) {
		updated, err := UpdateUser(student, student.ID, UpdateUserInput{Name: "Lucia", Bio: "hi"})
		require.NoError(t, err)
		assert.Equal(t, "Lucia", updated.Name)
		assert.Equal(t, "hi", updated.Bio)
	})

	t.Run("other user", func(t *testing.T) {
		_, err := UpdateUser(student, teacher.ID, UpdateUserInput{Name: "Hacked"})
		requireStatus(t, err, http.StatusForbidden)
	})

	t.Run("role change needs admin", func(t *testing.T) {
		_, err := UpdateUser(student, student.ID, UpdateUserInput{Role: models.RoleAdmin})
		requireStatus(t, err, http.StatusForbidden)

		updated, err := UpdateUser(admin, student.ID, UpdateUserInput{Role: models.RoleTeacher})
		require.NoError(t, err)
		assert.Equal(t, models.RoleTeacher, updated.Role)
	})

	t.Run("email taken", func(t *testing.T) {
		_, err := UpdateUser(student, student.ID, UpdateUserInput{Email: "TEACHER@portal.test"})
		requireStatus(t, err, http.StatusConflict)
	})
}

func TestDeleteUser(t *testing.T) {
	testutil.Setup(t)
	admin := testutil.Admin(t)
	student := testutil.Student(t)

	requireStatus(t, DeleteUser(admin, admin.ID), http.StatusBadRequest)
	require.NoError(t, DeleteUser(admin, student.ID))

	_, err := FindUser(student.ID)
	requireStatus(t, err, http.StatusNotFound)
	requireStatus(t, DeleteUser(admin, student.ID), http.StatusNotFound)
}

func TestListUsers(t *testing.T) {
	testutil.Setup(t)
	testutil.Admin(t)
	testutil.Teacher(t)
	testutil.Student(t)
	testutil.CreateUser(t, models.RoleStudent, "maria@portal.test")

	users, pg, err := ListUsers(UserFilter{Role: models.RoleStudent}, Page{})
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, Pagination{Total: 2, Page: 1, Limit: 10}, pg)

	users, _, err = ListUsers(UserFilter{Search: "MARIA"}, Page{})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "maria@portal.test", users[0].Email)

	users, pg, err = ListUsers(UserFilter{}, Page{Page: 2, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, int64(4), pg.Total)
}

func TestPageNormalize(t *testing.T) {
	assert.Equal(t, Page{Page: 1, Limit: 10}, Page{}.Normalize())
	assert.Equal(t, Page{Page: 3, Limit: 100}, Page{Page: 3, Limit: 500}.Normalize())
	assert.Equal(t, 20, Page{Page: 3, Limit: 10}.Offset())
}
