package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBMR(t *testing.T) {
	// 70 kg, 170 cm, 30 y: 700 + 1062.5 - 150 = 1612.5 base.
	male := CalculateBMR(70, 170, 30, "male")
	female := CalculateBMR(70, 170, 30, "female")

	assert.InDelta(t, 1617.5, male, 0.001)
	assert.InDelta(t, 1451.5, female, 0.001)
	assert.InDelta(t, 166, male-female, 0.001)

	// Unrecognized genders share the female offset.
	assert.Equal(t, female, CalculateBMR(70, 170, 30, "other"))
	assert.Equal(t, female, CalculateBMR(70, 170, 30, ""))
}

func TestCalculateBMRIncompleteInput(t *testing.T) {
	assert.Zero(t, CalculateBMR(0, 170, 30, "male"))
	assert.Zero(t, CalculateBMR(70, 0, 30, "male"))
	assert.Zero(t, CalculateBMR(70, 170, 0, "male"))
	assert.Zero(t, CalculateBMR(-70, 170, 30, "male"))
}

func TestCalculateTDEE(t *testing.T) {
	assert.Equal(t, 1941, CalculateTDEE(1617.5, "sedentary"))
	assert.Equal(t, 2507, CalculateTDEE(1617.5, "moderate"))
	assert.Equal(t, 2790, CalculateTDEE(1617.5, "active"))

	// Unknown level falls back to the sedentary factor.
	assert.Equal(t, CalculateTDEE(1617.5, "sedentary"), CalculateTDEE(1617.5, "couch"))

	assert.Zero(t, CalculateTDEE(0, "moderate"))
	assert.Zero(t, CalculateTDEE(-100, "moderate"))
}

func TestCalculateTargetCalories(t *testing.T) {
	assert.Equal(t, 2000, CalculateTargetCalories(2500, GoalLose))
	assert.Equal(t, 2500, CalculateTargetCalories(2500, GoalMaintain))
	assert.Equal(t, 3000, CalculateTargetCalories(2500, GoalGain))

	// Unknown goal maintains.
	assert.Equal(t, 2500, CalculateTargetCalories(2500, "bulk-hard"))

	// Zero TDEE propagates so callers can substitute the default.
	assert.Zero(t, CalculateTargetCalories(0, GoalLose))
}

func TestTargetChainEndToEnd(t *testing.T) {
	bmr := CalculateBMR(70, 170, 30, "male")
	tdee := CalculateTDEE(bmr, "moderate")
	assert.Equal(t, 2507, tdee)
	assert.Equal(t, 2007, CalculateTargetCalories(tdee, GoalLose))
}

func TestCalculateBMI(t *testing.T) {
	assert.InDelta(t, 24.2, CalculateBMI(170, 70), 0.001)
	assert.Zero(t, CalculateBMI(0, 70))
	assert.Zero(t, CalculateBMI(170, 0))

	assert.Equal(t, "Normal weight", BMICategory(24.2))
	assert.Equal(t, "Underweight", BMICategory(18.4))
	assert.Equal(t, "Overweight", BMICategory(25.0))
	assert.Equal(t, "Obesity", BMICategory(31.0))
	assert.Equal(t, "", BMICategory(0))
}
