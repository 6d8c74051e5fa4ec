package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/food-adda-backend/models"
	"github.com/vnkhanh/food-adda-backend/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.Open(t.TempDir())
}

func sampleFood() *models.FoodItem {
	return &models.FoodItem{
		Name:        "Classic Burger",
		Category:    models.CategoryBurgers,
		Image:       "https://example.com/burger.jpg",
		Price:       12.99,
		Rating:      4.8,
		Description: "Juicy beef patty",
		Ingredients: []string{"Beef Patty", "Cheese"},
	}
}

func TestInsertAndGet(t *testing.T) {
	db := newTestStore(t)

	created, err := db.Foods.Insert(sampleFood())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := db.Foods.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestListGrowsByOne(t *testing.T) {
	db := newTestStore(t)

	before, err := db.Foods.List()
	require.NoError(t, err)
	assert.Empty(t, before)

	created, err := db.Foods.Insert(sampleFood())
	require.NoError(t, err)

	after, err := db.Foods.List()
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, created.ID, after[len(after)-1].ID)
	assert.Equal(t, "Classic Burger", after[len(after)-1].Name)
}

func TestGetMissing(t *testing.T) {
	db := newTestStore(t)

	_, err := db.Foods.Get("khong-ton-tai")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateChangesOnlySuppliedField(t *testing.T) {
	db := newTestStore(t)

	created, err := db.Foods.Insert(sampleFood())
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	updated, err := db.Foods.Update(created.ID, func(food *models.FoodItem) error {
		food.Price = 10.99
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 10.99, updated.Price)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Category, updated.Category)
	assert.Equal(t, created.Ingredients, updated.Ingredients)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt), "updatedAt phải tiến lên sau update")

	got, err := db.Foods.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 10.99, got.Price)
}

func TestUpdateCannotMoveIDOrCreatedAt(t *testing.T) {
	db := newTestStore(t)

	created, err := db.Foods.Insert(sampleFood())
	require.NoError(t, err)

	updated, err := db.Foods.Update(created.ID, func(food *models.FoodItem) error {
		// payload cố tình ghi đè các field bất biến
		food.ID = "id-khac"
		food.CreatedAt = time.Now().Add(-24 * time.Hour)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateMissingLeavesCollectionUntouched(t *testing.T) {
	db := newTestStore(t)

	created, err := db.Foods.Insert(sampleFood())
	require.NoError(t, err)

	_, err = db.Foods.Update("khong-ton-tai", func(food *models.FoodItem) error {
		food.Price = 1
		return nil
	})
	assert.ErrorIs(t, err, store.ErrNotFound)

	after, err := db.Foods.List()
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, created, after[0])
}

func TestDeleteTwice(t *testing.T) {
	db := newTestStore(t)

	created, err := db.Foods.Insert(sampleFood())
	require.NoError(t, err)

	deleted, err := db.Foods.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	list, err := db.Foods.List()
	require.NoError(t, err)
	assert.Empty(t, list)

	// Xóa lần hai: không còn gì để xóa
	deleted, err = db.Foods.Delete(created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMissingFileIsEmptyCollection(t *testing.T) {
	db := store.Open(filepath.Join(t.TempDir(), "chua-ton-tai"))

	list, err := db.Courses.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCorruptFileIsHardError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "foods.json"), []byte("{not json]"), 0o644))

	db := store.Open(dir)
	_, err := db.Foods.List()
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNotFound)
}

func TestLoadRejectsUnknownEnumValue(t *testing.T) {
	dir := t.TempDir()

	// File bị sửa tay với category ngoài danh sách cho phép
	badFood := `[{"id":"1","name":"Sushi Roll","category":"Sushi","image":"x","price":9.99,
		"rating":4.0,"description":"d","ingredients":[],
		"createdAt":"2024-01-01T00:00:00Z","updatedAt":"2024-01-01T00:00:00Z"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "foods.json"), []byte(badFood), 0o644))

	badCourse := `[{"id":"2","title":"T","instructor":"I","duration":"8 weeks","level":"Master",
		"price":299,"createdAt":"2024-01-01T00:00:00Z","updatedAt":"2024-01-01T00:00:00Z"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "courses.json"), []byte(badCourse), 0o644))

	db := store.Open(dir)

	_, err := db.Foods.List()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Sushi")

	_, err = db.Courses.List()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Master")
}

func TestFindAdminByUsername(t *testing.T) {
	db := newTestStore(t)

	created, err := db.Admins.Insert(&models.Admin{
		Username:     "admin",
		Email:        "admin@foodadda.com",
		PasswordHash: "x",
	})
	require.NoError(t, err)

	found, err := db.FindAdminByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = db.FindAdminByUsername("khong-co")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSubmissionKeepsSnapshotAfterCourseDelete(t *testing.T) {
	db := newTestStore(t)

	course, err := db.Courses.Insert(&models.Course{
		Title:      "Basic Cooking Fundamentals",
		Instructor: "Chef Maria Rodriguez",
		Duration:   "8 weeks",
		Level:      models.LevelBeginner,
		Price:      299,
	})
	require.NoError(t, err)

	sub, err := db.Submissions.Insert(&models.FormSubmission{
		CourseID:     course.ID,
		CourseName:   course.Title,
		Instructor:   course.Instructor,
		Price:        course.Price,
		StudentName:  "Nguyen Van A",
		StudentEmail: "a@example.com",
	})
	require.NoError(t, err)
	assert.False(t, sub.SubmittedAt.IsZero())

	deleted, err := db.Courses.Delete(course.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	// Bản đăng ký vẫn giữ nguyên snapshot dù khóa học đã xóa
	got, err := db.Submissions.Get(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, "Basic Cooking Fundamentals", got.CourseName)
	assert.Equal(t, 299.0, got.Price)
}
