package models

import "gorm.io/gorm"

// NutritionGoals holds a user's overrides for the five tracked daily
// targets. Missing rows (and non-positive fields) fall back to the fixed
// defaults in the progress service.
type NutritionGoals struct {
	gorm.Model
	UserID   uint    `gorm:"uniqueIndex;not null"`
	Calories float64 // kcal
	Protein  float64 // g
	Carbs    float64 // g
	Fat      float64 // g
	Water    float64 // glasses
}
