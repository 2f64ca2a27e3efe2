package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sproutly/config"
	"sproutly/models"
	"sproutly/utils"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account disabled")
)

func RegisterUser(email, password, fullName string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", err
	}
	user := &models.User{
		Email:    email,
		Password: hash,
		FullName: fullName,
	}
	if err := config.DB.Create(user).Error; err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, false)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func AuthenticateUser(email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := config.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}
	if user.Disabled {
		return nil, "", ErrAccountDisabled
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, false)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// StartGuestSession creates a throwaway account bound to a fresh guest
// key. Guests can log meals and water like anyone else but their stats
// only ever touch the on-device store.
func StartGuestSession() (*models.User, string, error) {
	key := uuid.NewString()
	user := &models.User{
		Email:    fmt.Sprintf("guest-%s@guest.local", key),
		Password: "-",
		FullName: "Guest",
		Guest:    true,
		GuestKey: key,
	}
	if err := config.DB.Create(user).Error; err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, true)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
