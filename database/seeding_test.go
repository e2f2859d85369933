package database

import (
	"testing"

	"eduportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeed(t *testing.T) {
	db, err := Open("sqlite", "file:seedtest?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	require.NoError(t, Seed(db, "Root@Portal.io", "supersecret", bcrypt.MinCost))

	var levels []models.Level
	require.NoError(t, db.Order("sort_order asc").Find(&levels).Error)
	require.Len(t, levels, len(defaultLevels))
	assert.Equal(t, "Primaria", levels[0].Name)

	var admin models.User
	require.NoError(t, db.Where("role = ?", models.RoleAdmin).First(&admin).Error)
	assert.Equal(t, "root@portal.io", admin.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("supersecret")))

	// a second run neither duplicates levels nor creates a second admin
	require.NoError(t, Seed(db, "other@portal.io", "supersecret", bcrypt.MinCost))

	var count int64
	db.Model(&models.Level{}).Count(&count)
	assert.Equal(t, int64(len(defaultLevels)), count)
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open("oracle", "")
	assert.Error(t, err)
}
