package database

import (
	"strings"

	"eduportal/logger"
	"eduportal/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var defaultLevels = []string{"Primaria", "Secundaria", "Universitaria", "Posgrado"}

// Seed inserts the default levels when the table is empty and creates the
// first admin when none exists and credentials are configured.
func Seed(db *gorm.DB, adminEmail, adminPassword string, cost int) error {
	var count int64
	if err := db.Model(&models.Level{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		levels := make([]models.Level, len(defaultLevels))
		for i, name := range defaultLevels {
			levels[i] = models.Level{Name: name, Order: i + 1}
		}
		if err := db.Create(&levels).Error; err != nil {
			return err
		}
	}

	if adminEmail == "" || adminPassword == "" {
		return nil
	}
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), cost)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:     "Admin",
		Email:    strings.ToLower(strings.TrimSpace(adminEmail)),
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logger.Log.Info("seeded admin user", zap.String("email", admin.Email))
	return nil
}
