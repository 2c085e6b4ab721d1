package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lms/config"
	"lms/middleware"
	"lms/models"
	"lms/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingOrMalformedToken(t *testing.T) {
	app := testutil.Setup(t)

	status, _ := testutil.Request(t, app, http.MethodGet, "/api/users/profile", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	status, _ = testutil.Request(t, app, http.MethodGet, "/api/users/profile", "not-a-jwt", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestExpiredTokenRejected(t *testing.T) {
	app := testutil.Setup(t)

	_, userID := testutil.Register(t, app, "Student S", "s@example.com", "student")

	claims := jwt.MapClaims{
		"userId": userID,
		"role":   "student",
		"iat":    time.Now().Add(-48 * time.Hour).Unix(),
		"exp":    time.Now().Add(-24 * time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.AppConfig.JWTKey))
	require.NoError(t, err)

	status, body := testutil.Request(t, app, http.MethodGet, "/api/users/profile", expired, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid or expired token", body["message"])
}

func TestTokenForDeletedUserRejected(t *testing.T) {
	app := testutil.Setup(t)

	token, err := middleware.GenerateJWT(4242, models.RoleStudent)
	require.NoError(t, err)

	status, _ := testutil.Request(t, app, http.MethodGet, "/api/users/profile", token, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestRoleGate(t *testing.T) {
	app := testutil.Setup(t)

	teacher, _ := testutil.Register(t, app, "Teacher T", "t@example.com", "teacher")
	student, _ := testutil.Register(t, app, "Student S", "s@example.com", "student")

	// Student on a teacher route
	status, _ := testutil.Request(t, app, http.MethodGet, "/api/courses/teacher/my-courses", student, nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	// Teacher on a student route
	status, _ = testutil.Request(t, app, http.MethodGet, "/api/enrollments/my-courses", teacher, nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	// Matching roles pass through
	status, _ = testutil.Request(t, app, http.MethodGet, "/api/courses/teacher/my-courses", teacher, nil)
	assert.Equal(t, fiber.StatusOK, status)
	status, _ = testutil.Request(t, app, http.MethodGet, "/api/enrollments/my-courses", student, nil)
	assert.Equal(t, fiber.StatusOK, status)
}
