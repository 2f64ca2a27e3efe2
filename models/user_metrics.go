package models

import "gorm.io/gorm"

// UserMetrics is the single current snapshot of a user's body metrics,
// overwritten wholesale on every goal change. No history is kept.
type UserMetrics struct {
	gorm.Model
	UserID         uint    `gorm:"uniqueIndex;not null"`
	WeightKg       float64
	HeightCm       float64
	Age            int
	Gender         string `gorm:"size:10"` // "male" | "female" | "other"
	ActivityLevel  string `gorm:"size:10"` // "sedentary" | "moderate" | "active"
	Goal           string `gorm:"size:10"` // "lose" | "maintain" | "gain"
	TargetCalories int    // derived at write time
}
