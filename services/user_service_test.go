package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sproutly/config"
	"sproutly/models"
)

func swapTestConfigDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserMetrics{},
		&models.NutritionGoals{},
		&models.SelectedProgram{},
	))
	orig := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = orig })
}

func newTestUser(t *testing.T) *models.User {
	t.Helper()
	user := &models.User{Email: "test@sproutly.app", Password: "-", FullName: "Test"}
	require.NoError(t, config.DB.Create(user).Error)
	return user
}

func TestUpdateMetricsDerivesTarget(t *testing.T) {
	swapTestConfigDB(t)
	user := newTestUser(t)

	metrics, err := UpdateMetrics(user, MetricsRequest{
		WeightKg: 70, HeightCm: 170, Age: 30,
		Gender: "male", ActivityLevel: "moderate", Goal: "lose",
	})
	require.NoError(t, err)
	assert.Equal(t, 2007, metrics.TargetCalories)

	var reloaded models.User
	require.NoError(t, config.DB.First(&reloaded, user.ID).Error)
	assert.True(t, reloaded.Onboarded)
}

func TestUpdateMetricsOverwritesWholesale(t *testing.T) {
	swapTestConfigDB(t)
	user := newTestUser(t)

	_, err := UpdateMetrics(user, MetricsRequest{
		WeightKg: 70, HeightCm: 170, Age: 30,
		Gender: "male", ActivityLevel: "moderate", Goal: "lose",
	})
	require.NoError(t, err)

	// A sparse payload replaces the whole snapshot; nothing from the
	// previous row leaks through, and the target degrades to the default.
	_, err = UpdateMetrics(user, MetricsRequest{Goal: "maintain"})
	require.NoError(t, err)

	stored, err := GetMetrics(user.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.WeightKg)
	assert.Zero(t, stored.HeightCm)
	assert.Zero(t, stored.Age)
	assert.Empty(t, stored.Gender)
	assert.Equal(t, "maintain", stored.Goal)
	assert.Equal(t, 2000, stored.TargetCalories)

	var count int64
	config.DB.Model(&models.UserMetrics{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestGoalsForUserPrefersDerivedTarget(t *testing.T) {
	swapTestConfigDB(t)
	user := newTestUser(t)

	_, err := UpdateMetrics(user, MetricsRequest{
		WeightKg: 70, HeightCm: 170, Age: 30,
		Gender: "male", ActivityLevel: "moderate", Goal: "lose",
	})
	require.NoError(t, err)

	goals := GoalsForUser(user.ID)
	assert.InDelta(t, 2007, goals.Calories, 0.001)
	assert.InDelta(t, DefaultGoals.Protein, goals.Protein, 0.001)

	// Stored overrides win per field.
	_, err = UpsertGoals(user.ID, GoalsRequest{Protein: 150})
	require.NoError(t, err)
	goals = GoalsForUser(user.ID)
	assert.InDelta(t, 150, goals.Protein, 0.001)
	assert.InDelta(t, 2007, goals.Calories, 0.001)
}
