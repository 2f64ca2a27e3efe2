package models

import "gorm.io/gorm"

type CalorieRange struct {
	Min int `json:"min" validate:"gt=0"`
	Max int `json:"max" validate:"gtefield=Min"`
}

// MacroDistribution is the designed macro split in percent. The three
// values are meant to sum to ~100 but this is not enforced.
type MacroDistribution struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

type SampleDay struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
	Snack     string `json:"snack,omitempty"`
}

// MealProgram is a catalog entry. The catalog is bundled with the binary,
// immutable, and its order is the tie-break at every recommendation tier.
type MealProgram struct {
	ID                string            `json:"id" validate:"required"`
	Name              string            `json:"name" validate:"required"`
	Description       string            `json:"description"`
	TargetGoal        string            `json:"target_goal" validate:"oneof=lose maintain gain"`
	ActivityLevels    []string          `json:"activity_levels" validate:"min=1,dive,oneof=sedentary moderate active"`
	CalorieRange      CalorieRange      `json:"calorie_range"`
	MacroDistribution MacroDistribution `json:"macro_distribution"`
	SampleDays        []SampleDay       `json:"sample_days"`
	Tags              []string          `json:"tags"`
}

func (p MealProgram) SuitableFor(activityLevel string) bool {
	for _, a := range p.ActivityLevels {
		if a == activityLevel {
			return true
		}
	}
	return false
}

// SelectedProgram references a catalog program by id, one row per user,
// overwritten on each selection.
type SelectedProgram struct {
	gorm.Model
	UserID    uint   `gorm:"uniqueIndex;not null"`
	ProgramID string `gorm:"size:64;not null"`
}
