package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sproutly/models"
)

func newRemoteTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.StatsRecord{}))
	return db
}

func TestLocalStatsStoreRoundTrip(t *testing.T) {
	store := NewLocalStatsStore(newTestStatsDB(t))

	stats := models.NewUserStats()
	stats.StreakDays = 4
	stats.PlantStage = models.StageFlowering
	stats.PlantProgress = 40
	stats.WeeklyStats = append(stats.WeeklyStats, models.DailyStats{Date: "2026-03-10", GoalsMet: 3})

	require.NoError(t, store.Save("guest:abc", stats))

	loaded, err := store.Load("guest:abc")
	require.NoError(t, err)
	assert.Equal(t, stats, loaded)
}

func TestLocalStatsStoreInitializesMissingKey(t *testing.T) {
	store := NewLocalStatsStore(newTestStatsDB(t))

	loaded, err := store.Load("guest:new")
	require.NoError(t, err)
	assert.Equal(t, models.NewUserStats(), loaded)

	// The fresh snapshot was persisted, not just returned.
	var rec models.LocalRecord
	require.NoError(t, store.db.Where("key = ?", "guest:new").First(&rec).Error)
	assert.NotEmpty(t, rec.Data)
}

func TestLocalStatsStoreWritesBlobToRow(t *testing.T) {
	store := NewLocalStatsStore(newTestStatsDB(t))

	stats := models.NewUserStats()
	stats.StreakDays = 4
	require.NoError(t, store.Save("guest:raw", stats))

	// The snapshot must land in the Data column itself; an empty blob
	// would decode as fresh defaults and silently lose the state.
	var rec models.LocalRecord
	require.NoError(t, store.db.Where("key = ?", "guest:raw").First(&rec).Error)
	require.NotEmpty(t, rec.Data)

	decoded, err := decodeStats(rec.Data)
	require.NoError(t, err)
	assert.Equal(t, 4, decoded.StreakDays)

	// Same check for the found-row update path.
	stats.StreakDays = 6
	require.NoError(t, store.Save("guest:raw", stats))
	require.NoError(t, store.db.Where("key = ?", "guest:raw").First(&rec).Error)
	decoded, err = decodeStats(rec.Data)
	require.NoError(t, err)
	assert.Equal(t, 6, decoded.StreakDays)
}

func TestLocalStatsStoreOverwrites(t *testing.T) {
	store := NewLocalStatsStore(newTestStatsDB(t))

	first := models.NewUserStats()
	first.StreakDays = 1
	require.NoError(t, store.Save("user:1", first))

	second := models.NewUserStats()
	second.StreakDays = 2
	require.NoError(t, store.Save("user:1", second))

	loaded, err := store.Load("user:1")
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.StreakDays)

	var count int64
	store.db.Model(&models.LocalRecord{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRemoteStatsStoreRoundTrip(t *testing.T) {
	local := NewLocalStatsStore(newTestStatsDB(t))
	remote := NewRemoteStatsStore(newRemoteTestDB(t), local, zap.NewNop())

	stats := models.NewUserStats()
	stats.StreakDays = 9
	require.NoError(t, remote.Save("user:7", stats))

	loaded, err := remote.Load("user:7")
	require.NoError(t, err)
	assert.Equal(t, 9, loaded.StreakDays)

	// Nothing leaked into the fallback store.
	var count int64
	local.db.Model(&models.LocalRecord{}).Count(&count)
	assert.Zero(t, count)
}

func TestRemoteStatsStoreFallsBackWhenRemoteDies(t *testing.T) {
	local := NewLocalStatsStore(newTestStatsDB(t))
	remoteDB := newRemoteTestDB(t)
	remote := NewRemoteStatsStore(remoteDB, local, zap.NewNop())

	// Kill the remote connection; every call after this errors.
	sqlDB, err := remoteDB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	stats := models.NewUserStats()
	stats.StreakDays = 3
	require.NoError(t, remote.Save("user:5", stats))

	loaded, err := remote.Load("user:5")
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.StreakDays)

	// The snapshot landed in the local store.
	direct, err := local.Load("user:5")
	require.NoError(t, err)
	assert.Equal(t, 3, direct.StreakDays)
}
