package models

import (
	"fmt"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	FullName  string
	Guest     bool   `gorm:"default:false"`
	GuestKey  string `gorm:"size:64;index"`
	Onboarded bool
	Disabled  bool
}

// StatsKey namespaces this account's stats snapshot. Guests keep their
// session key so on-device state survives an eventual sign-up.
func (u *User) StatsKey() string {
	if u.Guest && u.GuestKey != "" {
		return "guest:" + u.GuestKey
	}
	return fmt.Sprintf("user:%d", u.ID)
}
