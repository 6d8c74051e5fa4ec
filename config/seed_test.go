package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/food-adda-backend/config"
	"github.com/vnkhanh/food-adda-backend/services"
	"github.com/vnkhanh/food-adda-backend/store"
)

func TestSeedDefaultData(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := store.Open(t.TempDir())

	require.NoError(t, config.SeedDefaultData(db))

	foods, err := db.Foods.List()
	require.NoError(t, err)
	assert.Len(t, foods, 3)
	assert.Equal(t, "Classic Burger", foods[0].Name)

	courses, err := db.Courses.List()
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Basic Cooking Fundamentals", courses[0].Title)

	// Admin mặc định đăng nhập được
	_, err = services.AuthenticateAdmin(db, "admin", "admin123")
	assert.NoError(t, err)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := store.Open(t.TempDir())

	require.NoError(t, config.SeedDefaultData(db))
	require.NoError(t, config.SeedDefaultData(db))

	foods, err := db.Foods.List()
	require.NoError(t, err)
	assert.Len(t, foods, 3)

	admins, err := db.Admins.List()
	require.NoError(t, err)
	assert.Len(t, admins, 1)
}
