package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sproutly/models"
)

func TestCatalogIsValid(t *testing.T) {
	require.NoError(t, ValidateCatalog())
	require.NotEmpty(t, ProgramCatalog)
}

func TestCatalogEntries(t *testing.T) {
	for _, p := range ProgramCatalog {
		t.Run(p.ID, func(t *testing.T) {
			assert.Greater(t, p.CalorieRange.Min, 0)
			assert.GreaterOrEqual(t, p.CalorieRange.Max, p.CalorieRange.Min)
			assert.NotEmpty(t, p.ActivityLevels)

			// Macro splits are designed to sum to roughly 100%.
			sum := p.MacroDistribution.Protein + p.MacroDistribution.Carbs + p.MacroDistribution.Fat
			assert.InDelta(t, 100, sum, 2)

			assert.NotEmpty(t, p.SampleDays)
		})
	}
}

func TestCatalogCoversEveryGoal(t *testing.T) {
	goals := map[string]bool{}
	for _, p := range ProgramCatalog {
		goals[p.TargetGoal] = true
	}
	assert.True(t, goals["lose"])
	assert.True(t, goals["maintain"])
	assert.True(t, goals["gain"])
}

func TestFindProgram(t *testing.T) {
	p, ok := FindProgram("low-calorie")
	require.True(t, ok)
	assert.Equal(t, "Low Calorie", p.Name)

	_, ok = FindProgram("no-such-program")
	assert.False(t, ok)
}

func TestValidateCatalogRejectsDuplicates(t *testing.T) {
	orig := ProgramCatalog
	defer func() { ProgramCatalog = orig }()

	ProgramCatalog = append(append([]models.MealProgram{}, orig...), orig[0])
	assert.Error(t, ValidateCatalog())
}
