package services

import (
	"errors"

	"gorm.io/gorm"

	"sproutly/config"
	"sproutly/models"
	"sproutly/utils"
)

var ErrUserNotFound = errors.New("user not found")

// MetricsRequest is the onboarding / settings payload. All fields are
// optional; missing ones come through as zero and the calculator chain
// degrades per field.
type MetricsRequest struct {
	WeightKg      float64 `json:"weight_kg" binding:"omitempty,gte=0"`
	HeightCm      float64 `json:"height_cm" binding:"omitempty,gte=0"`
	Age           int     `json:"age" binding:"omitempty,gte=0"`
	Gender        string  `json:"gender" binding:"omitempty,oneof=male female other"`
	ActivityLevel string  `json:"activity_level" binding:"omitempty,oneof=sedentary moderate active"`
	Goal          string  `json:"goal" binding:"omitempty,oneof=lose maintain gain"`
}

// UserProfile is the aggregate the profile screen renders.
type UserProfile struct {
	ID              uint                `json:"id"`
	Email           string              `json:"email"`
	FullName        string              `json:"full_name"`
	Guest           bool                `json:"guest"`
	Onboarded       bool                `json:"onboarded"`
	Metrics         *models.UserMetrics `json:"metrics,omitempty"`
	BMI             float64             `json:"bmi,omitempty"`
	BMICategory     string              `json:"bmi_category,omitempty"`
	SelectedProgram *models.MealProgram `json:"selected_program,omitempty"`
}

func GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := config.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserProfile(user *models.User) (*UserProfile, error) {
	profile := &UserProfile{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Guest:     user.Guest,
		Onboarded: user.Onboarded,
	}

	metrics, err := GetMetrics(user.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if metrics != nil {
		profile.Metrics = metrics
		profile.BMI = utils.CalculateBMI(metrics.HeightCm, metrics.WeightKg)
		profile.BMICategory = utils.BMICategory(profile.BMI)
	}

	if program, err := SelectedProgramFor(user.ID); err == nil && program != nil {
		profile.SelectedProgram = program
	}
	return profile, nil
}

// UpdateMetrics overwrites the metrics snapshot and re-derives the calorie
// target. A profile too sparse to compute from keeps the app default so
// downstream screens always have a target to show.
func UpdateMetrics(user *models.User, req MetricsRequest) (*models.UserMetrics, error) {
	bmr := utils.CalculateBMR(req.WeightKg, req.HeightCm, req.Age, req.Gender)
	tdee := utils.CalculateTDEE(bmr, req.ActivityLevel)
	target := utils.CalculateTargetCalories(tdee, req.Goal)
	if target <= 0 {
		target = utils.DefaultTargetCalories
	}

	metrics := models.UserMetrics{
		UserID:         user.ID,
		WeightKg:       req.WeightKg,
		HeightCm:       req.HeightCm,
		Age:            req.Age,
		Gender:         req.Gender,
		ActivityLevel:  req.ActivityLevel,
		Goal:           req.Goal,
		TargetCalories: target,
	}
	// Map-based assign so zero-valued fields overwrite too; the snapshot
	// is replaced wholesale, never merged with the previous row.
	err := config.DB.
		Where(models.UserMetrics{UserID: user.ID}).
		Assign(map[string]any{
			"weight_kg":       metrics.WeightKg,
			"height_cm":       metrics.HeightCm,
			"age":             metrics.Age,
			"gender":          metrics.Gender,
			"activity_level":  metrics.ActivityLevel,
			"goal":            metrics.Goal,
			"target_calories": metrics.TargetCalories,
		}).
		FirstOrCreate(&models.UserMetrics{}).Error
	if err != nil {
		return nil, err
	}

	if !user.Onboarded {
		if err := config.DB.Model(user).Update("onboarded", true).Error; err != nil {
			return nil, err
		}
	}
	return &metrics, nil
}

func GetMetrics(userID uint) (*models.UserMetrics, error) {
	var metrics models.UserMetrics
	if err := config.DB.Where("user_id = ?", userID).First(&metrics).Error; err != nil {
		return nil, err
	}
	return &metrics, nil
}

// GoalsRequest carries per-field overrides; non-positive fields keep the
// defaults.
type GoalsRequest struct {
	Calories float64 `json:"calories" binding:"omitempty,gte=0"`
	Protein  float64 `json:"protein" binding:"omitempty,gte=0"`
	Carbs    float64 `json:"carbs" binding:"omitempty,gte=0"`
	Fat      float64 `json:"fat" binding:"omitempty,gte=0"`
	Water    float64 `json:"water" binding:"omitempty,gte=0"`
}

func UpsertGoals(userID uint, req GoalsRequest) (*models.NutritionGoals, error) {
	goals := models.NutritionGoals{
		UserID:   userID,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		Water:    req.Water,
	}
	err := config.DB.
		Where(models.NutritionGoals{UserID: userID}).
		Assign(goals).
		FirstOrCreate(&models.NutritionGoals{}).Error
	if err != nil {
		return nil, err
	}
	return &goals, nil
}

// GoalsForUser resolves the effective goal set: stored overrides where
// positive, defaults everywhere else. The calorie default prefers the
// derived target from the metrics snapshot.
func GoalsForUser(userID uint) models.GoalSet {
	goals := DefaultGoals
	if metrics, err := GetMetrics(userID); err == nil && metrics.TargetCalories > 0 {
		goals.Calories = float64(metrics.TargetCalories)
	}

	var stored models.NutritionGoals
	if err := config.DB.Where("user_id = ?", userID).First(&stored).Error; err != nil {
		return goals
	}
	if stored.Calories > 0 {
		goals.Calories = stored.Calories
	}
	if stored.Protein > 0 {
		goals.Protein = stored.Protein
	}
	if stored.Carbs > 0 {
		goals.Carbs = stored.Carbs
	}
	if stored.Fat > 0 {
		goals.Fat = stored.Fat
	}
	if stored.Water > 0 {
		goals.Water = stored.Water
	}
	return goals
}

func SelectProgram(userID uint, programID string) (*models.MealProgram, error) {
	program, ok := FindProgram(programID)
	if !ok {
		return nil, errors.New("unknown program id")
	}
	err := config.DB.
		Where(models.SelectedProgram{UserID: userID}).
		Assign(models.SelectedProgram{ProgramID: programID}).
		FirstOrCreate(&models.SelectedProgram{}).Error
	if err != nil {
		return nil, err
	}
	return &program, nil
}

func SelectedProgramFor(userID uint) (*models.MealProgram, error) {
	var sel models.SelectedProgram
	err := config.DB.Where("user_id = ?", userID).First(&sel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	program, ok := FindProgram(sel.ProgramID)
	if !ok {
		return nil, nil
	}
	return &program, nil
}
