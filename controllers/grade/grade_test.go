package gradeController_test

import (
	"fmt"
	"net/http"
	"testing"

	"lms/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeRangeRejected(t *testing.T) {
	app := testutil.Setup(t)

	teacher, _ := testutil.Register(t, app, "Teacher T", "t@example.com", "teacher")
	_, studentID := testutil.Register(t, app, "Student S", "s@example.com", "student")
	courseID := testutil.CreateCourse(t, app, teacher, "Algebra", "Intro")

	for _, grade := range []float64{-1, 101} {
		status, _ := testutil.Request(t, app, http.MethodPost, "/api/grades", teacher, map[string]interface{}{
			"studentId": studentID,
			"courseId":  courseID,
			"grade":     grade,
		})
		assert.Equal(t, fiber.StatusBadRequest, status, "grade %v must be rejected", grade)
	}

	// Missing grade is rejected too
	status, _ := testutil.Request(t, app, http.MethodPost, "/api/grades", teacher, map[string]interface{}{
		"studentId": studentID,
		"courseId":  courseID,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestAssignGradeUpserts(t *testing.T) {
	app := testutil.Setup(t)

	teacher, teacherID := testutil.Register(t, app, "Teacher T", "t@example.com", "teacher")
	_, studentID := testutil.Register(t, app, "Student S", "s@example.com", "student")
	courseID := testutil.CreateCourse(t, app, teacher, "Algebra", "Intro")

	status, _ := testutil.Request(t, app, http.MethodPost, "/api/grades", teacher, map[string]interface{}{
		"studentId": studentID,
		"courseId":  courseID,
		"grade":     85,
		"feedback":  "Good work",
	})
	require.Equal(t, fiber.StatusOK, status)

	// Second assignment replaces the row, never duplicates it
	status, body := testutil.Request(t, app, http.MethodPost, "/api/grades", teacher, map[string]interface{}{
		"studentId": studentID,
		"courseId":  courseID,
		"grade":     85,
		"feedback":  "Even better",
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Grade assigned successfully", body["message"])

	status, grades := testutil.RequestList(t, app, http.MethodGet, fmt.Sprintf("/api/grades/course/%d", courseID), teacher)
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, grades, 1)
	assert.Equal(t, float64(85), grades[0]["grade"])
	assert.Equal(t, "Even better", grades[0]["feedback"])
	assert.Equal(t, float64(teacherID), grades[0]["gradedById"])

	student := grades[0]["student"].(map[string]interface{})
	assert.Equal(t, "Student S", student["name"])
}

func TestAssignGradeOwnershipChecked(t *testing.T) {
	app := testutil.Setup(t)

	owner, _ := testutil.Register(t, app, "Owner", "owner@example.com", "teacher")
	other, _ := testutil.Register(t, app, "Other", "other@example.com", "teacher")
	_, studentID := testutil.Register(t, app, "Student S", "s@example.com", "student")
	courseID := testutil.CreateCourse(t, app, owner, "Algebra", "Intro")

	status, body := testutil.Request(t, app, http.MethodPost, "/api/grades", other, map[string]interface{}{
		"studentId": studentID,
		"courseId":  courseID,
		"grade":     50,
	})
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "Not authorized to grade this course", body["message"])

	status, _ = testutil.Request(t, app, http.MethodPost, "/api/grades", owner, map[string]interface{}{
		"studentId": studentID,
		"courseId":  9999,
		"grade":     50,
	})
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = testutil.Request(t, app, http.MethodGet, fmt.Sprintf("/api/grades/course/%d", courseID), other, nil)
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestMyGradesResolvesCourseAndGrader(t *testing.T) {
	app := testutil.Setup(t)

	teacher, _ := testutil.Register(t, app, "Teacher T", "t@example.com", "teacher")
	student, studentID := testutil.Register(t, app, "Student S", "s@example.com", "student")
	courseID := testutil.CreateCourse(t, app, teacher, "Algebra", "Intro")

	status, _ := testutil.Request(t, app, http.MethodPost, "/api/grades", teacher, map[string]interface{}{
		"studentId": studentID,
		"courseId":  courseID,
		"grade":     92,
		"feedback":  "Excellent",
	})
	require.Equal(t, fiber.StatusOK, status)

	status, grades := testutil.RequestList(t, app, http.MethodGet, "/api/grades/my-grades", student)
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, grades, 1)

	course := grades[0]["course"].(map[string]interface{})
	assert.Equal(t, "Algebra", course["title"])
	gradedBy := grades[0]["gradedBy"].(map[string]interface{})
	assert.Equal(t, "Teacher T", gradedBy["name"])
}
