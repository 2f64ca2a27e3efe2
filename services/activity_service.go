package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"sproutly/models"
)

// dayStartLocal truncates to local midnight; water rows and meal listings
// are keyed by the user's local calendar day.
func dayStartLocal(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

type WaterService struct {
	db *gorm.DB
}

func NewWaterService(db *gorm.DB) *WaterService {
	return &WaterService{db: db}
}

// UpsertGlasses sets the day's absolute glass count, one row per user per day.
func (s *WaterService) UpsertGlasses(userID uint, date time.Time, glasses float64) (*models.DailyWaterLog, error) {
	if glasses < 0 {
		glasses = 0
	}
	day := dayStartLocal(date)
	var log models.DailyWaterLog
	err := s.db.
		Where(models.DailyWaterLog{UserID: userID, Date: day}).
		Assign(map[string]any{"glasses": glasses}).
		FirstOrCreate(&log).Error
	if err != nil {
		return nil, err
	}
	log.Glasses = glasses
	return &log, nil
}

func (s *WaterService) GlassesForDate(userID uint, date time.Time) (float64, error) {
	var log models.DailyWaterLog
	err := s.db.
		Where("user_id = ? AND date = ?", userID, dayStartLocal(date)).
		First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return log.Glasses, nil
}
