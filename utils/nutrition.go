package utils

import "math"

const (
	GoalLose     = "lose"
	GoalMaintain = "maintain"
	GoalGain     = "gain"

	// DefaultTargetCalories is what callers substitute when the calculator
	// chain degrades to zero on incomplete metrics.
	DefaultTargetCalories = 2000

	calorieAdjustment = 500
)

// TDEE multipliers. Unrecognized activity levels fall back to sedentary.
var activityFactors = map[string]float64{
	"sedentary": 1.2,
	"moderate":  1.55,
	"active":    1.725,
}

// CalculateBMR implements the Mifflin-St Jeor equation. Incomplete input
// degrades to 0 instead of erroring; callers apply their own default.
func CalculateBMR(weightKg, heightCm float64, age int, gender string) float64 {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return 0
	}
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == "male" {
		return bmr + 5
	}
	// "female", "other" and anything unrecognized share the same offset.
	return bmr - 161
}

func CalculateTDEE(bmr float64, activityLevel string) int {
	if bmr <= 0 {
		return 0
	}
	factor, ok := activityFactors[activityLevel]
	if !ok {
		factor = activityFactors["sedentary"]
	}
	return int(math.Round(bmr * factor))
}

func CalculateTargetCalories(tdee int, goal string) int {
	if tdee <= 0 {
		return 0
	}
	switch goal {
	case GoalLose:
		return tdee - calorieAdjustment
	case GoalGain:
		return tdee + calorieAdjustment
	default:
		return tdee
	}
}

// CalculateBMI expects height in centimeters and weight in kilograms.
// Unlike the target chain above it is only used for display, so implausible
// input yields 0 rather than a category.
func CalculateBMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 || weightKg <= 0 {
		return 0
	}
	h := heightCm / 100.0
	return math.Round(weightKg/(h*h)*10) / 10
}

func BMICategory(bmi float64) string {
	switch {
	case bmi <= 0:
		return ""
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obesity"
	}
}
