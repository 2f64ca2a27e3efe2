package models

import (
	"time"

	"gorm.io/gorm"
)

type DailyWaterLog struct {
	gorm.Model
	UserID  uint      `gorm:"index;not null"`
	Date    time.Time `gorm:"index;not null"` // truncated to local midnight
	Glasses float64
}
