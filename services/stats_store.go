package services

import (
	"encoding/json"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"sproutly/models"
	"sproutly/utils"
)

// StatsStore persists accumulator snapshots keyed by a stats key
// ("user:<id>" or "guest:<key>"). Load never returns a nil stats value
// together with a nil error.
type StatsStore interface {
	Load(key string) (*models.UserStats, error)
	Save(key string, stats *models.UserStats) error
}

// RemoteStatsStore keeps snapshots in postgres. Any storage failure is
// logged and rerouted to the fallback store so a sync outage never costs
// the user a day of progress.
type RemoteStatsStore struct {
	db       *gorm.DB
	fallback StatsStore
	log      *zap.Logger
}

func NewRemoteStatsStore(db *gorm.DB, fallback StatsStore, log *zap.Logger) *RemoteStatsStore {
	return &RemoteStatsStore{db: db, fallback: fallback, log: log}
}

func (s *RemoteStatsStore) Load(key string) (*models.UserStats, error) {
	var rec models.StatsRecord
	err := s.db.Where("key = ?", key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		stats := models.NewUserStats()
		if saveErr := s.Save(key, stats); saveErr != nil {
			return nil, saveErr
		}
		return stats, nil
	}
	if err != nil {
		s.log.Warn("remote stats load failed, using local copy",
			zap.String("key", key), zap.Error(err))
		utils.StoreFallbacks.WithLabelValues("load").Inc()
		return s.fallback.Load(key)
	}
	return decodeStats(rec.Data)
}

func (s *RemoteStatsStore) Save(key string, stats *models.UserStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	err = s.db.
		Where(models.StatsRecord{Key: key}).
		Assign(models.StatsRecord{Data: data}).
		FirstOrCreate(&models.StatsRecord{}).Error
	if err != nil {
		s.log.Warn("remote stats save failed, writing local copy",
			zap.String("key", key), zap.Error(err))
		utils.StoreFallbacks.WithLabelValues("save").Inc()
		return s.fallback.Save(key, stats)
	}
	return nil
}

// LocalStatsStore is the on-device sqlite store. Guests use it directly;
// signed-in users only reach it through the remote store's fallback path.
type LocalStatsStore struct {
	db *gorm.DB
}

func NewLocalStatsStore(db *gorm.DB) *LocalStatsStore {
	return &LocalStatsStore{db: db}
}

func (s *LocalStatsStore) Load(key string) (*models.UserStats, error) {
	var rec models.LocalRecord
	err := s.db.Where("key = ?", key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		stats := models.NewUserStats()
		if saveErr := s.Save(key, stats); saveErr != nil {
			return nil, saveErr
		}
		return stats, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeStats(rec.Data)
}

func (s *LocalStatsStore) Save(key string, stats *models.UserStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.db.
		Where(models.LocalRecord{Key: key}).
		Assign(models.LocalRecord{Data: data}).
		FirstOrCreate(&models.LocalRecord{}).Error
}

func decodeStats(data []byte) (*models.UserStats, error) {
	stats := models.NewUserStats()
	if len(data) == 0 {
		return stats, nil
	}
	if err := json.Unmarshal(data, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

var (
	_ StatsStore = (*RemoteStatsStore)(nil)
	_ StatsStore = (*LocalStatsStore)(nil)
)
