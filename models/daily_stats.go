package models

// NutrientProgress is a consumed/goal pair for one tracked metric.
type NutrientProgress struct {
	Consumed float64 `json:"consumed"`
	Goal     float64 `json:"goal"`
}

// DailyStats is one calendar day's snapshot inside the rolling windows.
// Date is a plain YYYY-MM-DD key. The JSON shape is the persisted schema
// and must stay stable for round-tripping.
type DailyStats struct {
	Date     string           `json:"date"`
	Calories NutrientProgress `json:"calories"`
	Protein  NutrientProgress `json:"protein"`
	Carbs    NutrientProgress `json:"carbs"`
	Fat      NutrientProgress `json:"fat"`
	Water    NutrientProgress `json:"water"`
	GoalsMet int              `json:"goals_met"` // 0-5
}

// Consumption is a day's total intake fed into the accumulator.
type Consumption struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Water    float64 `json:"water"`
}

// GoalSet is the five daily targets the accumulator scores against.
type GoalSet struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Water    float64 `json:"water"`
}
