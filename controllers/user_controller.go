package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sproutly/middlewares"
	"sproutly/services"
	"sproutly/utils"
)

type UserController struct {
	log *zap.Logger
}

func NewUserController(log *zap.Logger) *UserController {
	return &UserController{log: log}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	profile, err := services.GetUserProfile(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile load failed"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateMetrics replaces the body-metrics snapshot and returns the derived
// calorie target alongside it.
func (uc *UserController) UpdateMetrics(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req services.MetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	metrics, err := services.UpdateMetrics(user, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "metrics update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"metrics":         metrics,
		"target_calories": metrics.TargetCalories,
	})
}

func (uc *UserController) UpdateGoals(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req services.GoalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	goals, err := services.UpsertGoals(user.ID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "goals update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"goals":     goals,
		"effective": services.GoalsForUser(user.ID),
	})
}

// SendWeeklySummary mails the user their current stats digest.
func (uc *UserController) SendWeeklySummary(progress *services.ProgressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middlewares.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if user.Guest {
			c.JSON(http.StatusForbidden, gin.H{"error": "guests have no email on file"})
			return
		}
		stats, err := progress.Stats(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "stats load failed"})
			return
		}
		if err := utils.SendWeeklySummaryEmail(user.Email, stats); err != nil {
			uc.log.Warn("summary mail failed", zap.Uint("user_id", user.ID), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "mail delivery failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"sent": true})
	}
}
