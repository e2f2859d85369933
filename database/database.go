package database

import (
	"fmt"

	"eduportal/config"
	"eduportal/logger"
	"eduportal/models"
	"eduportal/models/course"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb opens the configured store, migrates it, seeds defaults and
// publishes it as the global Database.
func ConnectDb() {
	cfg := config.AppConfig

	db, err := Open(cfg.DBDriver, buildDSN(cfg))
	if err != nil {
		logger.Log.Fatal("failed to connect to database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		logger.Log.Fatal("failed to get database instance", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	if err := Migrate(db); err != nil {
		logger.Log.Fatal("migration failed", zap.Error(err))
	}

	if err := Seed(db, cfg.AdminEmail, cfg.AdminPassword, cfg.SaltRound); err != nil {
		logger.Log.Error("seeding failed", zap.Error(err))
	}

	Database = DbInstance{Db: db}
}

// Open returns a GORM handle for the driver (postgres, mysql or sqlite).
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	// Rows are soft-deleted while their blobs are removed, so references are
	// checked in the services instead of by FK constraints.
	return gorm.Open(dialector, &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
}

// Migrate performs schema migrations for every portal model.
func Migrate(db *gorm.DB) error {
	logger.Log.Info("running migrations")

	err := db.AutoMigrate(
		&models.User{},
		&models.File{},
		&models.Faculty{},
		&models.DegreeProgram{},
		&models.Asignatura{},
		&models.SubjectArea{},
		&models.Subject{},
		&models.Level{},
		&course.Course{},
		&course.Lesson{},
		&course.Enrollment{},
		&models.Documentation{},
		&models.ForumPost{},
		&models.Comment{},
		&models.Conference{},
	)
	if err != nil {
		return err
	}

	logger.Log.Info("migrations completed")
	return nil
}

func buildDSN(cfg *config.Config) string {
	if cfg.DBDSN != "" {
		return cfg.DBDSN
	}
	switch cfg.DBDriver {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
	case "sqlite":
		return cfg.DBName + ".db"
	default:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
	}
}
