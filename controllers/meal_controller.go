package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sproutly/middlewares"
	"sproutly/models"
	"sproutly/services"
	"sproutly/utils"
)

type MealController struct {
	meals    *services.MealService
	foods    *services.FoodService
	progress *services.ProgressService
	log      *zap.Logger
}

func NewMealController(meals *services.MealService, foods *services.FoodService, progress *services.ProgressService, log *zap.Logger) *MealController {
	return &MealController{meals: meals, foods: foods, progress: progress, log: log}
}

type addMealRequest struct {
	Type  string                     `json:"type" binding:"required,oneof=breakfast lunch dinner snack"`
	AteAt *time.Time                 `json:"ate_at"`
	Items []services.MealItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (mc *MealController) AddMeal(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req addMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ateAt := time.Now()
	if req.AteAt != nil {
		ateAt = *req.AteAt
	}

	meal, err := mc.meals.AddMeal(user.ID, req.Type, ateAt, "", req.Items)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mc.refreshProgress(user)
	c.JSON(http.StatusCreated, meal)
}

func (mc *MealController) ListMeals(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}
	meals, err := mc.meals.ListMeals(user.ID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "meal list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (mc *MealController) GetMeal(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := mealID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}
	meal, err := mc.meals.GetMeal(user.ID, id)
	if errors.Is(err, services.ErrMealNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "meal load failed"})
		return
	}
	c.JSON(http.StatusOK, meal)
}

type updateMealRequest struct {
	Type  string                     `json:"type" binding:"omitempty,oneof=breakfast lunch dinner snack"`
	Items []services.MealItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (mc *MealController) UpdateMeal(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := mealID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}
	var req updateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	meal, err := mc.meals.UpdateMeal(user.ID, id, req.Type, req.Items)
	if errors.Is(err, services.ErrMealNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mc.refreshProgress(user)
	c.JSON(http.StatusOK, meal)
}

func (mc *MealController) DeleteMeal(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := mealID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}
	err = mc.meals.DeleteMeal(user.ID, id)
	if errors.Is(err, services.ErrMealNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "meal delete failed"})
		return
	}
	mc.refreshProgress(user)
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

type logMealPhotoRequest struct {
	Type  string `json:"type" binding:"required,oneof=breakfast lunch dinner snack"`
	Image string `json:"image" binding:"required"`
}

// LogMealPhoto recognizes foods in the photo and logs a meal from the
// matches at their default serving sizes. The photo upload is best
// effort; a storage failure still logs the meal, just without a URL.
func (mc *MealController) LogMealPhoto(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req logMealPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	matches, err := mc.foods.RecognizeFood(req.Image)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(matches) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no recognizable food in photo"})
		return
	}

	photoURL, err := utils.UploadMealPhoto(req.Image, user.ID)
	if err != nil {
		mc.log.Warn("photo upload failed", zap.Uint("user_id", user.ID), zap.Error(err))
		photoURL = ""
	}

	items := make([]services.MealItemRequest, 0, len(matches))
	for _, m := range matches {
		items = append(items, services.MealItemRequest{
			FoodID: m.Food.ID,
			Grams:  m.Food.ServingGrams,
		})
	}
	meal, err := mc.meals.AddMeal(user.ID, req.Type, time.Now(), photoURL, items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "meal save failed"})
		return
	}
	mc.refreshProgress(user)
	c.JSON(http.StatusCreated, gin.H{
		"meal":    meal,
		"matches": matches,
	})
}

// refreshProgress keeps today's snapshot current after any meal change.
// Failures are logged, not surfaced; the meal write already succeeded.
func (mc *MealController) refreshProgress(user *models.User) {
	if _, err := mc.progress.Refresh(user, services.GoalsForUser(user.ID)); err != nil {
		mc.log.Warn("progress refresh failed", zap.Uint("user_id", user.ID), zap.Error(err))
	}
}

func mealID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
