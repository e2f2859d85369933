// Package testutil wires an in-memory portal for package tests.
package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"eduportal/config"
	"eduportal/database"
	"eduportal/models"
	"eduportal/notify"
	"eduportal/storage"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var dbSeq int64

// Password is the plain password of every user created by CreateUser.
const Password = "secret-pass-123"

// Mailer records messages instead of sending them.
type Mailer struct {
	sent int64
}

func (m *Mailer) Send(notify.Message) error {
	atomic.AddInt64(&m.sent, 1)
	return nil
}

func (m *Mailer) Sent() int64 {
	return atomic.LoadInt64(&m.sent)
}

// Setup gives the test a fresh SQLite database, a disk file store in a
// temporary directory, a test config and a silent notifier.
func Setup(t *testing.T) *gorm.DB {
	t.Helper()

	config.AppConfig = &config.Config{
		AppEnv:        "test",
		JWTKey:        "test-secret",
		JWTTTLHours:   1,
		SaltRound:     bcrypt.MinCost,
		StorageDriver: "disk",
		MaxUploadMB:   1,
	}

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, atomic.AddInt64(&dbSeq, 1))
	db, err := database.Open("sqlite", dsn)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	database.Database = database.DbInstance{Db: db}

	store, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)
	storage.Files = store

	notify.Current = &notify.Notifier{Mailer: &Mailer{}}
	return db
}

// CreateUser inserts a user with the given role and Password.
func CreateUser(t *testing.T, role, email string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Name:     strings.Split(email, "@")[0],
		Email:    strings.ToLower(email),
		Password: string(hash),
		Role:     role,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	return &user
}

func Admin(t *testing.T) *models.User {
	return CreateUser(t, models.RoleAdmin, "admin@portal.test")
}

func Teacher(t *testing.T) *models.User {
	return CreateUser(t, models.RoleTeacher, "teacher@portal.test")
}

func Student(t *testing.T) *models.User {
	return CreateUser(t, models.RoleStudent, "student@portal.test")
}
