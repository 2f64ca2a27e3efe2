package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// PlantStage is the 7-step growth ladder. It only ever moves forward and
// saturates at Mature.
type PlantStage int

const (
	StageSeed PlantStage = iota
	StageSprout
	StageSmallPlant
	StageMediumPlant
	StageLargePlant
	StageFlowering
	StageMature
)

var stageNames = [...]string{
	"seed", "sprout", "small_plant", "medium_plant",
	"large_plant", "flowering", "mature",
}

func (s PlantStage) String() string {
	if s < StageSeed || s > StageMature {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageNames[s]
}

func (s PlantStage) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PlantStage) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	for i, n := range stageNames {
		if n == name {
			*s = PlantStage(i)
			return nil
		}
	}
	return fmt.Errorf("unknown plant stage %q", name)
}

// UserStats is the full accumulator state for one user or guest session.
// Its JSON encoding is what gets persisted and must round-trip unchanged.
//
// GoalsCredited records how many goals were already converted into plant
// growth for LastUpdated's date, so re-running the accumulator within the
// same day only applies the positive delta.
type UserStats struct {
	StreakDays    int          `json:"streak_days"`
	PlantStage    PlantStage   `json:"plant_stage"`
	PlantProgress int          `json:"plant_progress"` // [0,100); pinned at 100 once Mature
	GoalsCredited int          `json:"goals_credited"`
	WeeklyStats   []DailyStats `json:"weekly_stats"`
	MonthlyStats  []DailyStats `json:"monthly_stats"`
	LastUpdated   string       `json:"last_updated"` // YYYY-MM-DD
}

func NewUserStats() *UserStats {
	return &UserStats{
		WeeklyStats:  []DailyStats{},
		MonthlyStats: []DailyStats{},
	}
}

// StatsRecord stores a UserStats snapshot as an opaque JSON blob, one row
// per stats key.
type StatsRecord struct {
	gorm.Model
	Key  string `gorm:"uniqueIndex;size:80;not null"`
	Data []byte
}

// LocalRecord is the on-device fallback row (sqlite file), keyed by the
// same stats key or the fixed guest key.
type LocalRecord struct {
	Key       string `gorm:"primaryKey;size:80"`
	Data      []byte
	UpdatedAt time.Time
}
