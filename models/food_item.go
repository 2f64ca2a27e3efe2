package models

// FoodItem is an entry of the bundled nutrition lookup table. Macro values
// are per 100 g; ServingGrams is the assumed portion when a meal is logged
// from a photo and no quantity is given.
type FoodItem struct {
	ID           string   `json:"id"`
	Label        string   `json:"label"`
	Category     string   `json:"category"`
	Calories     float64  `json:"calories"`
	Protein      float64  `json:"protein"`
	Carbs        float64  `json:"carbs"`
	Fat          float64  `json:"fat"`
	ServingGrams float64  `json:"serving_grams"`
	Aliases      []string `json:"aliases,omitempty"`
}
