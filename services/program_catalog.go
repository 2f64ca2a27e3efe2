package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"sproutly/models"
)

// ProgramCatalog is the bundled, immutable meal-program catalog. It is
// never created or mutated at runtime; slice order is the tie-break at
// every recommendation tier.
var ProgramCatalog = []models.MealProgram{
	{
		ID:             "low-calorie",
		Name:           "Low Calorie",
		Description:    "A gentle deficit built around filling, low-density foods.",
		TargetGoal:     "lose",
		ActivityLevels: []string{"sedentary", "moderate"},
		CalorieRange:   models.CalorieRange{Min: 1400, Max: 1900},
		MacroDistribution: models.MacroDistribution{
			Protein: 30, Carbs: 40, Fat: 30,
		},
		SampleDays: []models.SampleDay{
			{Breakfast: "Greek yogurt with berries", Lunch: "Chicken and quinoa bowl", Dinner: "Baked salmon with greens", Snack: "Apple"},
			{Breakfast: "Veggie omelette", Lunch: "Lentil soup with rye bread", Dinner: "Turkey stir-fry", Snack: "Cottage cheese"},
		},
		Tags: []string{"deficit", "beginner-friendly"},
	},
	{
		ID:             "high-protein-cut",
		Name:           "High-Protein Cut",
		Description:    "Aggressive protein intake to protect muscle while cutting.",
		TargetGoal:     "lose",
		ActivityLevels: []string{"active"},
		CalorieRange:   models.CalorieRange{Min: 1700, Max: 2200},
		MacroDistribution: models.MacroDistribution{
			Protein: 40, Carbs: 30, Fat: 30,
		},
		SampleDays: []models.SampleDay{
			{Breakfast: "Egg white scramble with oats", Lunch: "Grilled chicken salad", Dinner: "Lean beef with rice", Snack: "Protein shake"},
		},
		Tags: []string{"deficit", "strength"},
	},
	{
		ID:             "balanced-maintenance",
		Name:           "Balanced Maintenance",
		Description:    "An even macro split for holding steady.",
		TargetGoal:     "maintain",
		ActivityLevels: []string{"sedentary", "moderate"},
		CalorieRange:   models.CalorieRange{Min: 1800, Max: 2400},
		MacroDistribution: models.MacroDistribution{
			Protein: 25, Carbs: 45, Fat: 30,
		},
		SampleDays: []models.SampleDay{
			{Breakfast: "Oatmeal with banana", Lunch: "Tuna wrap", Dinner: "Chicken curry with rice", Snack: "Mixed nuts"},
			{Breakfast: "Smoothie bowl", Lunch: "Falafel bowl", Dinner: "Pasta with turkey meatballs"},
		},
		Tags: []string{"balanced"},
	},
	{
		ID:             "active-balance",
		Name:           "Active Balance",
		Description:    "Maintenance calories with extra carbs for training days.",
		TargetGoal:     "maintain",
		ActivityLevels: []string{"moderate", "active"},
		CalorieRange:   models.CalorieRange{Min: 2200, Max: 2800},
		MacroDistribution: models.MacroDistribution{
			Protein: 25, Carbs: 50, Fat: 25,
		},
		SampleDays: []models.SampleDay{
			{Breakfast: "Overnight oats with peanut butter", Lunch: "Burrito bowl", Dinner: "Salmon with sweet potato", Snack: "Banana"},
		},
		Tags: []string{"balanced", "training"},
	},
	{
		ID:             "plant-forward",
		Name:           "Plant Forward",
		Description:    "Mostly plants, kept flexible for any schedule.",
		TargetGoal:     "maintain",
		ActivityLevels: []string{"sedentary", "moderate", "active"},
		CalorieRange:   models.CalorieRange{Min: 1900, Max: 2500},
		MacroDistribution: models.MacroDistribution{
			Protein: 20, Carbs: 55, Fat: 25,
		},
		SampleDays: []models.SampleDay{
			{Breakfast: "Tofu scramble", Lunch: "Chickpea salad", Dinner: "Veggie chili with cornbread", Snack: "Hummus and carrots"},
		},
		Tags: []string{"vegetarian", "flexible"},
	},
	{
		ID:             "lean-bulk",
		Name:           "Lean Bulk",
		Description:    "A controlled surplus for steady muscle gain.",
		TargetGoal:     "gain",
		ActivityLevels: []string{"moderate", "active"},
		CalorieRange:   models.CalorieRange{Min: 2600, Max: 3200},
		MacroDistribution: models.MacroDistribution{
			Protein: 30, Carbs: 45, Fat: 25,
		},
		SampleDays: []models.SampleDay{
			{Breakfast: "Eggs, toast and avocado", Lunch: "Chicken pasta", Dinner: "Steak with potatoes", Snack: "Trail mix"},
		},
		Tags: []string{"surplus", "strength"},
	},
	{
		ID:             "mass-builder",
		Name:           "Mass Builder",
		Description:    "High-volume eating for hard gainers on heavy programs.",
		TargetGoal:     "gain",
		ActivityLevels: []string{"active"},
		CalorieRange:   models.CalorieRange{Min: 3000, Max: 3600},
		MacroDistribution: models.MacroDistribution{
			Protein: 30, Carbs: 50, Fat: 20,
		},
		SampleDays: []models.SampleDay{
			{Breakfast: "Bagel with eggs and cheese", Lunch: "Double chicken rice bowl", Dinner: "Salmon, rice and olive oil drizzle", Snack: "Mass shake"},
		},
		Tags: []string{"surplus", "high-volume"},
	},
	{
		ID:             "keto-cut",
		Name:           "Keto Cut",
		Description:    "Very low carb deficit for those who prefer fat-heavy meals.",
		TargetGoal:     "lose",
		ActivityLevels: []string{"moderate", "active"},
		CalorieRange:   models.CalorieRange{Min: 1600, Max: 2100},
		MacroDistribution: models.MacroDistribution{
			Protein: 25, Carbs: 10, Fat: 65,
		},
		SampleDays: []models.SampleDay{
			{Breakfast: "Eggs with bacon", Lunch: "Cobb salad", Dinner: "Pork chops with cauliflower mash", Snack: "Cheese"},
		},
		Tags: []string{"keto", "deficit"},
	},
}

// ValidateCatalog runs once at startup; a broken catalog is a packaging
// error, not a runtime condition.
func ValidateCatalog() error {
	v := validator.New()
	seen := make(map[string]bool, len(ProgramCatalog))
	for i, p := range ProgramCatalog {
		if err := v.Struct(p); err != nil {
			return fmt.Errorf("program %d (%s): %w", i, p.ID, err)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate program id %q", p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

func FindProgram(id string) (models.MealProgram, bool) {
	for _, p := range ProgramCatalog {
		if p.ID == id {
			return p, true
		}
	}
	return models.MealProgram{}, false
}
