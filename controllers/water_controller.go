package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sproutly/middlewares"
	"sproutly/services"
)

type WaterController struct {
	water    *services.WaterService
	progress *services.ProgressService
	log      *zap.Logger
}

func NewWaterController(water *services.WaterService, progress *services.ProgressService, log *zap.Logger) *WaterController {
	return &WaterController{water: water, progress: progress, log: log}
}

type waterRequest struct {
	Glasses float64 `json:"glasses" binding:"gte=0"`
}

// UpdateWater sets today's absolute glass count and reruns the
// accumulator so water goal changes show up immediately.
func (wc *WaterController) UpdateWater(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req waterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log, err := wc.water.UpsertGlasses(user.ID, time.Now(), req.Glasses)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "water update failed"})
		return
	}
	if _, err := wc.progress.Refresh(user, services.GoalsForUser(user.ID)); err != nil {
		wc.log.Warn("progress refresh failed", zap.Uint("user_id", user.ID), zap.Error(err))
	}
	c.JSON(http.StatusOK, log)
}
