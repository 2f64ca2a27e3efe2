package services

import "sproutly/models"

// foodTable is the bundled nutrition lookup table, per 100 g.
var foodTable = []models.FoodItem{
	{ID: "chicken-breast", Label: "Chicken Breast", Category: "protein", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, ServingGrams: 150, Aliases: []string{"chicken", "grilled chicken"}},
	{ID: "salmon", Label: "Salmon", Category: "protein", Calories: 208, Protein: 20, Carbs: 0, Fat: 13, ServingGrams: 140, Aliases: []string{"fish"}},
	{ID: "egg", Label: "Egg", Category: "protein", Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11, ServingGrams: 50, Aliases: []string{"eggs", "boiled egg"}},
	{ID: "tofu", Label: "Tofu", Category: "protein", Calories: 76, Protein: 8, Carbs: 1.9, Fat: 4.8, ServingGrams: 120},
	{ID: "lean-beef", Label: "Lean Beef", Category: "protein", Calories: 250, Protein: 26, Carbs: 0, Fat: 15, ServingGrams: 150, Aliases: []string{"beef", "steak"}},
	{ID: "white-rice", Label: "White Rice", Category: "grain", Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, ServingGrams: 180, Aliases: []string{"rice"}},
	{ID: "brown-rice", Label: "Brown Rice", Category: "grain", Calories: 112, Protein: 2.6, Carbs: 24, Fat: 0.9, ServingGrams: 180},
	{ID: "oats", Label: "Oats", Category: "grain", Calories: 389, Protein: 17, Carbs: 66, Fat: 6.9, ServingGrams: 40, Aliases: []string{"oatmeal", "porridge"}},
	{ID: "pasta", Label: "Pasta", Category: "grain", Calories: 131, Protein: 5, Carbs: 25, Fat: 1.1, ServingGrams: 200, Aliases: []string{"spaghetti", "noodles"}},
	{ID: "whole-wheat-bread", Label: "Whole Wheat Bread", Category: "grain", Calories: 247, Protein: 13, Carbs: 41, Fat: 3.4, ServingGrams: 60, Aliases: []string{"bread", "toast"}},
	{ID: "potato", Label: "Potato", Category: "vegetable", Calories: 77, Protein: 2, Carbs: 17, Fat: 0.1, ServingGrams: 200, Aliases: []string{"potatoes", "baked potato"}},
	{ID: "broccoli", Label: "Broccoli", Category: "vegetable", Calories: 34, Protein: 2.8, Carbs: 6.6, Fat: 0.4, ServingGrams: 100},
	{ID: "mixed-salad", Label: "Mixed Salad", Category: "vegetable", Calories: 20, Protein: 1.4, Carbs: 3.7, Fat: 0.2, ServingGrams: 120, Aliases: []string{"salad", "greens"}},
	{ID: "avocado", Label: "Avocado", Category: "fruit", Calories: 160, Protein: 2, Carbs: 8.5, Fat: 14.7, ServingGrams: 100},
	{ID: "banana", Label: "Banana", Category: "fruit", Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3, ServingGrams: 120},
	{ID: "apple", Label: "Apple", Category: "fruit", Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2, ServingGrams: 180},
	{ID: "greek-yogurt", Label: "Greek Yogurt", Category: "dairy", Calories: 59, Protein: 10, Carbs: 3.6, Fat: 0.4, ServingGrams: 170, Aliases: []string{"yogurt"}},
	{ID: "cheddar-cheese", Label: "Cheddar Cheese", Category: "dairy", Calories: 403, Protein: 25, Carbs: 1.3, Fat: 33, ServingGrams: 30, Aliases: []string{"cheese"}},
	{ID: "almonds", Label: "Almonds", Category: "snack", Calories: 579, Protein: 21, Carbs: 22, Fat: 50, ServingGrams: 30, Aliases: []string{"nuts"}},
	{ID: "pizza", Label: "Pizza", Category: "snack", Calories: 266, Protein: 11, Carbs: 33, Fat: 10, ServingGrams: 200, Aliases: []string{"pizza slice"}},
}
