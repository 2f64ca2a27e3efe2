package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sproutly/services"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := services.RegisterUser(req.Email, req.Password, req.FullName)
	if errors.Is(err, services.ErrEmailTaken) {
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"full_name": user.FullName,
		},
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := services.AuthenticateUser(req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	if errors.Is(err, services.ErrAccountDisabled) {
		c.JSON(http.StatusForbidden, gin.H{"error": "account disabled"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"full_name": user.FullName,
			"onboarded": user.Onboarded,
		},
	})
}

// GuestSession issues a token for a throwaway on-device account.
func (ac *AuthController) GuestSession(c *gin.Context) {
	user, token, err := services.StartGuestSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "guest session failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"token":     token,
		"guest_key": user.GuestKey,
	})
}
