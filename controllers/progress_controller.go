package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sproutly/middlewares"
	"sproutly/services"
)

type ProgressController struct {
	progress *services.ProgressService
}

func NewProgressController(progress *services.ProgressService) *ProgressController {
	return &ProgressController{progress: progress}
}

// Refresh recomputes today's consumption from logged meals and water and
// reruns the accumulator. Safe to call any number of times per day.
func (pc *ProgressController) Refresh(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	stats, err := pc.progress.Refresh(user, services.GoalsForUser(user.ID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "progress update failed"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (pc *ProgressController) Get(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	stats, err := pc.progress.Stats(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stats load failed"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (pc *ProgressController) Weekly(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	stats, err := pc.progress.Stats(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stats load failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": stats.WeeklyStats})
}

func (pc *ProgressController) Monthly(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	stats, err := pc.progress.Stats(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stats load failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": stats.MonthlyStats})
}
