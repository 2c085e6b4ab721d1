package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lms/config"
	"lms/database"
	courseRoutes "lms/routers/courseRoutes"
	discussionRoutes "lms/routers/discussionRoutes"
	enrollmentRoutes "lms/routers/enrollmentRoutes"
	gradeRoutes "lms/routers/gradeRoutes"
	lessonRoutes "lms/routers/lessonRoutes"
	progressRoutes "lms/routers/progressRoutes"
	userRoutes "lms/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Setup builds a fiber app over a fresh in-memory sqlite database with all
// routes mounted. Each test gets its own database, named after the test so
// shared-cache connections do not leak between tests.
func Setup(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	lessonRoutes.SetupLessonRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	progressRoutes.SetupProgressRoutes(app)
	discussionRoutes.SetupDiscussionRoutes(app)
	gradeRoutes.SetupGradeRoutes(app)

	return app
}

// Request performs a JSON round-trip against the app and decodes the body.
func Request(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

// RequestList is Request for endpoints whose success body is a bare array.
func RequestList(t *testing.T, app *fiber.App, method, path, token string) (int, []map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	var result []map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

// Register creates an account through the API and returns its token and id.
func Register(t *testing.T, app *fiber.App, name, email, role string) (string, uint) {
	t.Helper()

	status, body := Request(t, app, http.MethodPost, "/api/users/register", "", map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": "secret123",
		"role":     role,
	})
	if status != fiber.StatusCreated {
		t.Fatalf("register %s failed with status %d: %v", email, status, body)
	}

	token := body["token"].(string)
	user := body["user"].(map[string]interface{})
	return token, uint(user["ID"].(float64))
}

// CreateCourse creates a course as the given teacher and returns its id.
func CreateCourse(t *testing.T, app *fiber.App, token, title, description string) uint {
	t.Helper()

	status, body := Request(t, app, http.MethodPost, "/api/courses", token, map[string]interface{}{
		"title":       title,
		"description": description,
	})
	if status != fiber.StatusCreated {
		t.Fatalf("create course %q failed with status %d: %v", title, status, body)
	}

	course := body["course"].(map[string]interface{})
	return uint(course["ID"].(float64))
}
