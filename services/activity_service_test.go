package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sproutly/models"
)

func newTestWaterService(t *testing.T) *WaterService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.DailyWaterLog{}))
	return NewWaterService(db)
}

func TestUpsertGlasses(t *testing.T) {
	svc := newTestWaterService(t)
	day := time.Date(2026, 3, 10, 15, 30, 0, 0, time.Local)

	log, err := svc.UpsertGlasses(1, day, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 3, log.Glasses)

	// Same day overwrites, it does not add.
	log, err = svc.UpsertGlasses(1, day.Add(2*time.Hour), 5)
	require.NoError(t, err)
	assert.EqualValues(t, 5, log.Glasses)

	var count int64
	svc.db.Model(&models.DailyWaterLog{}).Count(&count)
	assert.EqualValues(t, 1, count)

	glasses, err := svc.GlassesForDate(1, day)
	require.NoError(t, err)
	assert.EqualValues(t, 5, glasses)
}

func TestGlassesForDateDefaultsToZero(t *testing.T) {
	svc := newTestWaterService(t)

	glasses, err := svc.GlassesForDate(1, time.Now())
	require.NoError(t, err)
	assert.Zero(t, glasses)
}

func TestUpsertGlassesClampsNegative(t *testing.T) {
	svc := newTestWaterService(t)

	log, err := svc.UpsertGlasses(1, time.Now(), -2)
	require.NoError(t, err)
	assert.Zero(t, log.Glasses)
}

func TestDayStartLocal(t *testing.T) {
	ts := time.Date(2026, 3, 10, 23, 59, 59, 0, time.Local)
	start := dayStartLocal(ts)
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, ts.Day(), start.Day())
	assert.Equal(t, time.Local, start.Location())
}
