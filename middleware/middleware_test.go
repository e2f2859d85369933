package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eduportal/config"
	"eduportal/database"
	"eduportal/models"
	"eduportal/services"
	"eduportal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp() *fiber.App {
	app := fiber.New()
	whoami := func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.SendString(models.RoleGuest)
		}
		return c.SendString(user.Role)
	}
	app.Get("/optional", OptionalJWT, whoami)
	app.Get("/private", JWTMiddleware, whoami)
	app.Get("/teach", OptionalJWT, TeacherOrAdmin, whoami)
	app.Get("/app-error", func(c *fiber.Ctx) error {
		return ErrorResponse(c, errors.Wrap(services.Conflict("Already there!"), "creating"))
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return ErrorResponse(c, errors.New("database exploded"))
	})
	return app
}

func get(t *testing.T, app *fiber.App, path, authHeader string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestJWTMiddleware(t *testing.T) {
	testutil.Setup(t)
	app := testApp()
	student := testutil.Student(t)

	tok, err := GenerateJWT(student)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get(t, app, "/optional", ""))
	assert.Equal(t, http.StatusOK, get(t, app, "/optional", "Bearer "+tok))
	assert.Equal(t, http.StatusUnauthorized, get(t, app, "/optional", "Bearer broken"))

	assert.Equal(t, http.StatusUnauthorized, get(t, app, "/private", ""))
	assert.Equal(t, http.StatusUnauthorized, get(t, app, "/private", tok))
	assert.Equal(t, http.StatusOK, get(t, app, "/private", "Bearer "+tok))

	t.Run("expired token", func(t *testing.T) {
		claims := jwt.MapClaims{"userId": student.ID, "exp": time.Now().Add(-time.Minute).Unix()}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.AppConfig.JWTKey))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, get(t, app, "/private", "Bearer "+expired))
	})

	t.Run("foreign key", func(t *testing.T) {
		claims := jwt.MapClaims{"userId": student.ID, "exp": time.Now().Add(time.Hour).Unix()}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, get(t, app, "/private", "Bearer "+forged))
	})

	t.Run("deleted user", func(t *testing.T) {
		gone := testutil.CreateUser(t, models.RoleStudent, "gone@portal.test")
		goneTok, err := GenerateJWT(gone)
		require.NoError(t, err)
		require.NoError(t, database.Database.Db.Delete(gone).Error)
		assert.Equal(t, http.StatusUnauthorized, get(t, app, "/private", "Bearer "+goneTok))
	})
}

func TestRequireRoles(t *testing.T) {
	testutil.Setup(t)
	app := testApp()

	bearer := func(u *models.User) string {
		tok, err := GenerateJWT(u)
		require.NoError(t, err)
		return "Bearer " + tok
	}

	assert.Equal(t, http.StatusUnauthorized, get(t, app, "/teach", ""))
	assert.Equal(t, http.StatusForbidden, get(t, app, "/teach", bearer(testutil.Student(t))))
	assert.Equal(t, http.StatusOK, get(t, app, "/teach", bearer(testutil.Teacher(t))))
	assert.Equal(t, http.StatusOK, get(t, app, "/teach", bearer(testutil.Admin(t))))
}

func TestErrorResponse(t *testing.T) {
	testutil.Setup(t)
	app := testApp()

	assert.Equal(t, http.StatusConflict, get(t, app, "/app-error", ""))
	assert.Equal(t, http.StatusInternalServerError, get(t, app, "/boom", ""))
}
