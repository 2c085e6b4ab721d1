package userController_test

import (
	"net/http"
	"testing"

	"lms/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRegisterAndProfile(t *testing.T) {
	app := testutil.Setup(t)

	status, body := testutil.Request(t, app, http.MethodPost, "/api/users/register", "", map[string]interface{}{
		"name":     "Alice Teacher",
		"email":    "alice@example.com",
		"password": "secret123",
		"role":     "teacher",
	})
	assert.Equal(t, fiber.StatusCreated, status)
	assert.NotEmpty(t, body["token"])

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "alice@example.com", user["email"])
	assert.Equal(t, "teacher", user["role"])
	assert.NotContains(t, user, "password")

	status, profile := testutil.Request(t, app, http.MethodGet, "/api/users/profile", body["token"].(string), nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Alice Teacher", profile["name"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := testutil.Setup(t)

	testutil.Register(t, app, "Bob", "bob@example.com", "student")

	status, body := testutil.Request(t, app, http.MethodPost, "/api/users/register", "", map[string]interface{}{
		"name":     "Bob Again",
		"email":    "bob@example.com",
		"password": "secret123",
		"role":     "student",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "User already exists", body["message"])
}

func TestRegisterValidation(t *testing.T) {
	app := testutil.Setup(t)

	cases := []map[string]interface{}{
		{"name": "X", "email": "not-an-email", "password": "secret123", "role": "student"},
		{"name": "X", "email": "x@example.com", "password": "short", "role": "student"},
		{"name": "X", "email": "x@example.com", "password": "secret123", "role": "admin"},
		{"email": "x@example.com", "password": "secret123", "role": "student"},
	}
	for _, payload := range cases {
		status, _ := testutil.Request(t, app, http.MethodPost, "/api/users/register", "", payload)
		assert.Equal(t, fiber.StatusBadRequest, status)
	}
}

func TestLogin(t *testing.T) {
	app := testutil.Setup(t)

	testutil.Register(t, app, "Carol", "carol@example.com", "student")

	status, body := testutil.Request(t, app, http.MethodPost, "/api/users/login", "", map[string]interface{}{
		"email":    "carol@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", body["message"])

	status, body = testutil.Request(t, app, http.MethodPost, "/api/users/login", "", map[string]interface{}{
		"email":    "unknown@example.com",
		"password": "secret123",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", body["message"])

	status, body = testutil.Request(t, app, http.MethodPost, "/api/users/login", "", map[string]interface{}{
		"email":    "carol@example.com",
		"password": "secret123",
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, body["token"])
}
