package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sproutly/middlewares"
	"sproutly/models"
	"sproutly/services"
)

type ProgramController struct {
	rec *services.RecService
}

func NewProgramController(rec *services.RecService) *ProgramController {
	return &ProgramController{rec: rec}
}

func (pc *ProgramController) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"programs": services.ProgramCatalog})
}

// Recommendations matches the catalog against the caller's stored
// metrics. A user with no metrics row still gets results through the
// cascade's fallback tiers.
func (pc *ProgramController) Recommendations(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	limit := services.DefaultRecommendationLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	metrics := models.UserMetrics{}
	if m, err := services.GetMetrics(user.ID); err == nil {
		metrics = *m
	}

	recs := pc.rec.Recommend(metrics, limit)
	c.JSON(http.StatusOK, gin.H{
		"target_calories": pc.rec.ResolveTarget(metrics),
		"programs":        recs,
	})
}

type selectProgramRequest struct {
	ProgramID string `json:"program_id" binding:"required"`
}

func (pc *ProgramController) Select(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req selectProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	program, err := services.SelectProgram(user.ID, req.ProgramID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"selected": program})
}

func (pc *ProgramController) Selected(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	program, err := services.SelectedProgramFor(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	if program == nil {
		c.JSON(http.StatusOK, gin.H{"selected": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"selected": program})
}
