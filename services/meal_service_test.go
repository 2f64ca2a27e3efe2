package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sproutly/models"
)

func newTestMealService(t *testing.T) *MealService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Meal{}, &models.MealItem{}))
	return NewMealService(db, NewFoodService(NewVisionService()))
}

func TestAddMealScalesMacros(t *testing.T) {
	svc := newTestMealService(t)

	meal, err := svc.AddMeal(1, "lunch", time.Now(), "", []MealItemRequest{
		{FoodID: "chicken-breast", Grams: 200},
		{FoodID: "white-rice", Grams: 150},
	})
	require.NoError(t, err)
	require.Len(t, meal.Items, 2)

	// Chicken breast is 165 kcal / 31 g protein per 100 g.
	chicken := meal.Items[0]
	assert.Equal(t, "Chicken Breast", chicken.FoodLabel)
	assert.InDelta(t, 330, chicken.Calories, 0.001)
	assert.InDelta(t, 62, chicken.Protein, 0.001)

	rice := meal.Items[1]
	assert.InDelta(t, 195, rice.Calories, 0.001)
	assert.InDelta(t, 42, rice.Carbs, 0.001)
}

func TestAddMealUnknownFood(t *testing.T) {
	svc := newTestMealService(t)

	_, err := svc.AddMeal(1, "lunch", time.Now(), "", []MealItemRequest{
		{FoodID: "unobtainium", Grams: 100},
	})
	assert.Error(t, err)
}

func TestListMealsFiltersByDayAndUser(t *testing.T) {
	svc := newTestMealService(t)
	today := time.Date(2026, 3, 10, 13, 0, 0, 0, time.Local)
	yesterday := today.AddDate(0, 0, -1)

	_, err := svc.AddMeal(1, "breakfast", today, "", []MealItemRequest{{FoodID: "oats", Grams: 40}})
	require.NoError(t, err)
	_, err = svc.AddMeal(1, "dinner", yesterday, "", []MealItemRequest{{FoodID: "pasta", Grams: 200}})
	require.NoError(t, err)
	_, err = svc.AddMeal(2, "lunch", today, "", []MealItemRequest{{FoodID: "pizza", Grams: 200}})
	require.NoError(t, err)

	meals, err := svc.ListMeals(1, today)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "breakfast", meals[0].Type)
	require.Len(t, meals[0].Items, 1)
}

func TestGetMealScopedToOwner(t *testing.T) {
	svc := newTestMealService(t)

	meal, err := svc.AddMeal(1, "snack", time.Now(), "", []MealItemRequest{{FoodID: "apple", Grams: 180}})
	require.NoError(t, err)

	_, err = svc.GetMeal(2, meal.ID)
	assert.ErrorIs(t, err, ErrMealNotFound)
}

func TestUpdateMealReplacesItems(t *testing.T) {
	svc := newTestMealService(t)

	meal, err := svc.AddMeal(1, "lunch", time.Now(), "", []MealItemRequest{
		{FoodID: "pizza", Grams: 400},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateMeal(1, meal.ID, "dinner", []MealItemRequest{
		{FoodID: "salmon", Grams: 140},
		{FoodID: "mixed-salad", Grams: 120},
	})
	require.NoError(t, err)
	assert.Equal(t, "dinner", updated.Type)
	require.Len(t, updated.Items, 2)

	reloaded, err := svc.GetMeal(1, meal.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 2)
	assert.Equal(t, "salmon", reloaded.Items[0].FoodID)
}

func TestDeleteMeal(t *testing.T) {
	svc := newTestMealService(t)

	meal, err := svc.AddMeal(1, "snack", time.Now(), "", []MealItemRequest{{FoodID: "almonds", Grams: 30}})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMeal(1, meal.ID))
	_, err = svc.GetMeal(1, meal.ID)
	assert.ErrorIs(t, err, ErrMealNotFound)

	var count int64
	svc.db.Model(&models.MealItem{}).Where("meal_id = ?", meal.ID).Count(&count)
	assert.Zero(t, count)
}

func TestConsumptionForDate(t *testing.T) {
	svc := newTestMealService(t)
	day := time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)

	_, err := svc.AddMeal(1, "breakfast", day, "", []MealItemRequest{{FoodID: "egg", Grams: 100}})
	require.NoError(t, err)
	_, err = svc.AddMeal(1, "lunch", day.Add(5*time.Hour), "", []MealItemRequest{{FoodID: "chicken-breast", Grams: 100}})
	require.NoError(t, err)

	c, err := svc.ConsumptionForDate(1, day)
	require.NoError(t, err)
	assert.InDelta(t, 320, c.Calories, 0.001)
	assert.InDelta(t, 44, c.Protein, 0.001)

	// Water comes from its own log, never from meals.
	assert.Zero(t, c.Water)
}

func TestConsumptionForDateEmpty(t *testing.T) {
	svc := newTestMealService(t)

	c, err := svc.ConsumptionForDate(1, time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.Consumption{}, c)
}
