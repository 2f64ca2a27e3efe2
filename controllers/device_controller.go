package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sproutly/middlewares"
	"sproutly/services"
)

type DeviceController struct {
	push *services.PushService
}

func NewDeviceController(push *services.PushService) *DeviceController {
	return &DeviceController{push: push}
}

type registerDeviceRequest struct {
	Platform string `json:"platform" binding:"required,oneof=android ios"`
	Token    string `json:"token" binding:"required"`
}

func (dc *DeviceController) Register(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req registerDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	device, err := dc.push.RegisterDevice(user.ID, req.Platform, req.Token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "device registration failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"device_id": device.ID,
		"enabled":   device.Enabled,
	})
}

type toggleNotificationsRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

func (dc *DeviceController) ToggleNotifications(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var req toggleNotificationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := dc.push.SetEnabled(user.ID, *req.Enabled); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"enabled": *req.Enabled})
}
