package services

import (
	"sproutly/models"
	"sproutly/utils"
)

const DefaultRecommendationLimit = 3

// tier A tolerance around a program's calorie range, tier C is wider.
const (
	strictCalorieMargin  = 200
	relaxedCalorieMargin = 300
)

type RecService struct {
	catalog []models.MealProgram
}

func NewRecService() *RecService {
	return &RecService{catalog: ProgramCatalog}
}

// NewRecServiceWithCatalog exists for tests that need a controlled catalog.
func NewRecServiceWithCatalog(catalog []models.MealProgram) *RecService {
	return &RecService{catalog: catalog}
}

// ResolveTarget returns the calorie target to match programs against.
// It prefers the stored target and falls back to computing one from the
// metrics; a fully-zero profile degrades to the app-wide default.
func (s *RecService) ResolveTarget(m models.UserMetrics) int {
	if m.TargetCalories > 0 {
		return m.TargetCalories
	}
	bmr := utils.CalculateBMR(m.WeightKg, m.HeightCm, m.Age, m.Gender)
	tdee := utils.CalculateTDEE(bmr, m.ActivityLevel)
	target := utils.CalculateTargetCalories(tdee, m.Goal)
	if target <= 0 {
		return utils.DefaultTargetCalories
	}
	return target
}

// Recommend walks a four-tier cascade, relaxing one constraint per tier,
// and never returns an empty list while the catalog has entries.
func (s *RecService) Recommend(m models.UserMetrics, limit int) []models.MealProgram {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}
	target := s.ResolveTarget(m)

	matched := s.filter(func(p models.MealProgram) bool {
		return p.TargetGoal == m.Goal &&
			p.SuitableFor(m.ActivityLevel) &&
			inRange(target, p.CalorieRange, strictCalorieMargin)
	})
	if len(matched) == 0 {
		matched = s.filter(func(p models.MealProgram) bool {
			return p.TargetGoal == m.Goal
		})
	}
	if len(matched) == 0 {
		matched = s.filter(func(p models.MealProgram) bool {
			return inRange(target, p.CalorieRange, relaxedCalorieMargin)
		})
	}
	if len(matched) == 0 {
		matched = append(matched, s.catalog...)
	}

	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

func (s *RecService) filter(keep func(models.MealProgram) bool) []models.MealProgram {
	var out []models.MealProgram
	for _, p := range s.catalog {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func inRange(target int, r models.CalorieRange, margin int) bool {
	return target >= r.Min-margin && target <= r.Max+margin
}
