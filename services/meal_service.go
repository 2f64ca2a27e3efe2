package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"sproutly/models"
)

var ErrMealNotFound = errors.New("meal not found")

type MealService struct {
	db    *gorm.DB
	foods *FoodService
}

func NewMealService(db *gorm.DB, foods *FoodService) *MealService {
	return &MealService{db: db, foods: foods}
}

// MealItemRequest is one food entry in an add/update request.
type MealItemRequest struct {
	FoodID string  `json:"food_id" binding:"required"`
	Grams  float64 `json:"grams" binding:"required,gt=0"`
}

func (s *MealService) AddMeal(userID uint, mealType string, ateAt time.Time, photoURL string, items []MealItemRequest) (*models.Meal, error) {
	meal := &models.Meal{
		UserID:   userID,
		Type:     mealType,
		AteAt:    ateAt,
		PhotoURL: photoURL,
	}
	for _, req := range items {
		item, err := s.buildMealItem(req)
		if err != nil {
			return nil, err
		}
		meal.Items = append(meal.Items, item)
	}
	if err := s.db.Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) GetMeal(userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.Preload("Items").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) ListMeals(userID uint, date time.Time) ([]models.Meal, error) {
	return s.ListMealsByDateRange(userID, dayStartLocal(date), dayStartLocal(date).AddDate(0, 0, 1))
}

func (s *MealService) ListMealsByDateRange(userID uint, from, to time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.Preload("Items").
		Where("user_id = ? AND ate_at >= ? AND ate_at < ?", userID, from, to).
		Order("ate_at ASC").
		Find(&meals).Error
	return meals, err
}

// UpdateMeal replaces the item list wholesale; partial item edits are not
// supported.
func (s *MealService) UpdateMeal(userID, mealID uint, mealType string, items []MealItemRequest) (*models.Meal, error) {
	meal, err := s.GetMeal(userID, mealID)
	if err != nil {
		return nil, err
	}

	newItems := make([]models.MealItem, 0, len(items))
	for _, req := range items {
		item, err := s.buildMealItem(req)
		if err != nil {
			return nil, err
		}
		item.MealID = meal.ID
		newItems = append(newItems, item)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.MealItem{}).Error; err != nil {
			return err
		}
		if mealType != "" {
			meal.Type = mealType
		}
		meal.Items = nil
		if err := tx.Save(meal).Error; err != nil {
			return err
		}
		if len(newItems) > 0 {
			if err := tx.Create(&newItems).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	meal.Items = newItems
	return meal, nil
}

func (s *MealService) DeleteMeal(userID, mealID uint) error {
	meal, err := s.GetMeal(userID, mealID)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.MealItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(meal).Error
	})
}

// ConsumptionForDate sums the macro snapshots of every meal logged on the
// given local calendar day. Water is tracked separately and stays zero.
func (s *MealService) ConsumptionForDate(userID uint, date time.Time) (models.Consumption, error) {
	meals, err := s.ListMeals(userID, date)
	if err != nil {
		return models.Consumption{}, err
	}
	var c models.Consumption
	for _, m := range meals {
		for _, it := range m.Items {
			c.Calories += it.Calories
			c.Protein += it.Protein
			c.Carbs += it.Carbs
			c.Fat += it.Fat
		}
	}
	return c, nil
}

func (s *MealService) buildMealItem(req MealItemRequest) (models.MealItem, error) {
	food, ok := s.foods.Lookup(req.FoodID)
	if !ok {
		return models.MealItem{}, fmt.Errorf("unknown food %q", req.FoodID)
	}
	factor := req.Grams / 100
	return models.MealItem{
		FoodID:    food.ID,
		FoodLabel: food.Label,
		Grams:     req.Grams,
		Calories:  food.Calories * factor,
		Protein:   food.Protein * factor,
		Carbs:     food.Carbs * factor,
		Fat:       food.Fat * factor,
	}, nil
}
