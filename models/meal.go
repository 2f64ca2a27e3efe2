package models

import (
	"time"

	"gorm.io/gorm"
)

// One Meal (breakfast/lunch/...)
type Meal struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	Type     string    `gorm:"size:20"` // "breakfast"|"lunch"|"dinner"|"snack"
	AteAt    time.Time `gorm:"index"`
	PhotoURL string    // set when the meal was logged from a photo
	Items    []MealItem
}

// MealItem stores the macro snapshot for one food at logging time, scaled
// from the bundled per-100g lookup table.
type MealItem struct {
	gorm.Model
	MealID    uint   `gorm:"index;not null"`
	FoodID    string `gorm:"size:64;not null"`
	FoodLabel string
	Grams     float64
	Calories  float64
	Protein   float64
	Carbs     float64
	Fat       float64
}
