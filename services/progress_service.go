package services

import (
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"sproutly/models"
	"sproutly/utils"
)

const (
	weeklyWindowCap  = 7
	monthlyWindowCap = 30
	progressPerGoal  = 20
	stageThreshold   = 100
	dateLayout       = "2006-01-02"
)

// DefaultGoals backs any target the user has not set.
var DefaultGoals = models.GoalSet{
	Calories: 2000,
	Protein:  120,
	Carbs:    250,
	Fat:      65,
	Water:    8,
}

// ProgressService runs the daily accumulator: scores a day's intake
// against the goal set, maintains the rolling windows, and grows the
// plant. Signed-in users read and write the remote store; guests stay
// on the local one.
type ProgressService struct {
	remote StatsStore
	local  StatsStore
	meals  *MealService
	water  *WaterService
	hub    *ProgressHub
	push   *PushService
	log    *zap.Logger
	now    func() time.Time
}

func NewProgressService(remote, local StatsStore, meals *MealService, water *WaterService, hub *ProgressHub, push *PushService, log *zap.Logger) *ProgressService {
	return &ProgressService{
		remote: remote,
		local:  local,
		meals:  meals,
		water:  water,
		hub:    hub,
		push:   push,
		log:    log,
		now:    time.Now,
	}
}

func (s *ProgressService) storeFor(user *models.User) StatsStore {
	if user.Guest {
		return s.local
	}
	return s.remote
}

// CountGoalsMet scores the five daily goals. Calories counts within a 5%
// band either side of target, protein and water are floors, carbs and fat
// are ceilings with 5% headroom. A zero goal never counts.
func CountGoalsMet(c models.Consumption, g models.GoalSet) int {
	met := 0
	if g.Calories > 0 && math.Abs(c.Calories-g.Calories) <= 0.05*g.Calories {
		met++
	}
	if g.Protein > 0 && c.Protein >= 0.95*g.Protein {
		met++
	}
	if g.Carbs > 0 && c.Carbs <= 1.05*g.Carbs {
		met++
	}
	if g.Fat > 0 && c.Fat <= 1.05*g.Fat {
		met++
	}
	if g.Water > 0 && c.Water >= g.Water {
		met++
	}
	return met
}

func buildDailyStats(date string, c models.Consumption, g models.GoalSet) models.DailyStats {
	return models.DailyStats{
		Date:     date,
		Calories: models.NutrientProgress{Consumed: c.Calories, Goal: g.Calories},
		Protein:  models.NutrientProgress{Consumed: c.Protein, Goal: g.Protein},
		Carbs:    models.NutrientProgress{Consumed: c.Carbs, Goal: g.Carbs},
		Fat:      models.NutrientProgress{Consumed: c.Fat, Goal: g.Fat},
		Water:    models.NutrientProgress{Consumed: c.Water, Goal: g.Water},
		GoalsMet: CountGoalsMet(c, g),
	}
}

// upsertWindow replaces the entry with the same date or appends, keeps
// the window sorted by date, and evicts the oldest entries past cap.
// YYYY-MM-DD sorts chronologically as a plain string.
func upsertWindow(window []models.DailyStats, day models.DailyStats, limit int) []models.DailyStats {
	replaced := false
	for i := range window {
		if window[i].Date == day.Date {
			window[i] = day
			replaced = true
			break
		}
	}
	if !replaced {
		window = append(window, day)
	}
	sort.Slice(window, func(i, j int) bool { return window[i].Date < window[j].Date })
	if len(window) > limit {
		window = window[len(window)-limit:]
	}
	return window
}

// advancePlant converts newly credited goals into growth. Each goal is
// worth progressPerGoal points; every full stageThreshold advances one
// stage and carries the remainder. At Mature the bar pins at 100.
func advancePlant(stats *models.UserStats, credited int) {
	if stats.PlantStage >= models.StageMature {
		stats.PlantProgress = stageThreshold
		return
	}
	stats.PlantProgress += credited * progressPerGoal
	for stats.PlantProgress >= stageThreshold {
		if stats.PlantStage >= models.StageMature {
			stats.PlantProgress = stageThreshold
			return
		}
		stats.PlantStage++
		stats.PlantProgress -= stageThreshold
	}
	if stats.PlantStage >= models.StageMature {
		stats.PlantProgress = stageThreshold
	}
}

// RecordDailyProgress applies one day's consumption to the user's stats.
// Running it several times for the same date is safe: only the positive
// delta in goals met since the last run is credited, and the streak moves
// at most once per date.
func (s *ProgressService) RecordDailyProgress(user *models.User, c models.Consumption, g models.GoalSet) (*models.UserStats, error) {
	utils.ProgressRuns.Inc()
	store := s.storeFor(user)
	key := user.StatsKey()

	stats, err := store.Load(key)
	if err != nil {
		return nil, err
	}

	today := s.now().Format(dateLayout)
	if stats.LastUpdated != today {
		stats.GoalsCredited = 0
	}

	day := buildDailyStats(today, c, g)
	stats.WeeklyStats = upsertWindow(stats.WeeklyStats, day, weeklyWindowCap)
	stats.MonthlyStats = upsertWindow(stats.MonthlyStats, day, monthlyWindowCap)

	prevStage := stats.PlantStage
	prevStreak := stats.StreakDays

	met := day.GoalsMet
	if delta := met - stats.GoalsCredited; delta > 0 {
		advancePlant(stats, delta)
		if stats.GoalsCredited == 0 {
			stats.StreakDays++
		}
		stats.GoalsCredited = met
	} else if met == 0 && stats.GoalsCredited == 0 {
		stats.StreakDays = 0
	}
	stats.LastUpdated = today

	if err := store.Save(key, stats); err != nil {
		return nil, err
	}

	s.notifyMilestones(user, stats, prevStage, prevStreak)
	if s.hub != nil {
		s.hub.BroadcastStats(key, stats)
	}
	return stats, nil
}

// Refresh recomputes today's consumption from logged meals and water and
// runs the accumulator against the user's current goals.
func (s *ProgressService) Refresh(user *models.User, goals models.GoalSet) (*models.UserStats, error) {
	today := s.now()
	c, err := s.meals.ConsumptionForDate(user.ID, today)
	if err != nil {
		return nil, err
	}
	glasses, err := s.water.GlassesForDate(user.ID, today)
	if err != nil {
		return nil, err
	}
	c.Water = glasses
	return s.RecordDailyProgress(user, c, goals)
}

// Stats returns the stored snapshot without running the accumulator.
func (s *ProgressService) Stats(user *models.User) (*models.UserStats, error) {
	return s.storeFor(user).Load(user.StatsKey())
}

func (s *ProgressService) notifyMilestones(user *models.User, stats *models.UserStats, prevStage models.PlantStage, prevStreak int) {
	if s.push == nil || user.Guest {
		return
	}
	if stats.PlantStage > prevStage {
		if err := s.push.NotifyStageAdvance(user.ID, stats.PlantStage); err != nil {
			s.log.Warn("stage push failed", zap.Uint("user_id", user.ID), zap.Error(err))
		}
	}
	if stats.StreakDays > prevStreak {
		if err := s.push.NotifyStreakMilestone(user.ID, stats.StreakDays); err != nil {
			s.log.Warn("streak push failed", zap.Uint("user_id", user.ID), zap.Error(err))
		}
	}
}
