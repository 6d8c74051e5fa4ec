package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/food-adda-backend/models"
)

func enrollmentInput() map[string]any {
	return map[string]any{
		"courseId":     "course-1",
		"courseName":   "Basic Cooking Fundamentals",
		"instructor":   "Chef Maria Rodriguez",
		"price":        299,
		"studentName":  "Nguyen Van A",
		"studentEmail": "a@example.com",
		"studentPhone": "0900000000",
	}
}

func TestCreateSubmissionIsPublic(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/submissions", "", enrollmentInput())
	requireStatus(t, w, http.StatusCreated)

	created := decodeBody[models.FormSubmission](t, w)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.SubmittedAt.IsZero())
	assert.Equal(t, "Basic Cooking Fundamentals", created.CourseName)
}

func TestCreateSubmissionMissingField(t *testing.T) {
	r := setupRouter(t)

	input := enrollmentInput()
	delete(input, "studentEmail")

	w := doJSON(t, r, http.MethodPost, "/api/submissions", "", input)
	requireStatus(t, w, http.StatusBadRequest)
}

func TestListSubmissionsRequiresToken(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/admin/submissions", "", nil)
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestListAndDeleteSubmissionsAsAdmin(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	w := doJSON(t, r, http.MethodPost, "/api/submissions", "", enrollmentInput())
	requireStatus(t, w, http.StatusCreated)
	created := decodeBody[models.FormSubmission](t, w)

	w = doJSON(t, r, http.MethodGet, "/api/admin/submissions", token, nil)
	requireStatus(t, w, http.StatusOK)
	list := decodeBody[[]models.FormSubmission](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	w = doJSON(t, r, http.MethodDelete, "/api/admin/submissions/"+created.ID, token, nil)
	requireStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodGet, "/api/admin/submissions", token, nil)
	requireStatus(t, w, http.StatusOK)
	list = decodeBody[[]models.FormSubmission](t, w)
	assert.Empty(t, list)
}

func TestStatsCountsCollections(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/foods", token, classicBurgerInput())
	requireStatus(t, w, http.StatusCreated)
	w = doJSON(t, r, http.MethodPost, "/api/submissions", "", enrollmentInput())
	requireStatus(t, w, http.StatusCreated)

	w = doJSON(t, r, http.MethodGet, "/api/admin/stats", token, nil)
	requireStatus(t, w, http.StatusOK)

	stats := decodeBody[map[string]int](t, w)
	assert.Equal(t, 1, stats["foods"])
	assert.Equal(t, 0, stats["courses"])
	assert.Equal(t, 1, stats["submissions"])
}
