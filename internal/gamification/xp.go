// Package gamification derives level, XP, rank and multipliers from the
// task completion history. Nothing here is persisted; every value is
// recomputed from the log on each query.
package gamification

import (
	"math"
	"time"

	"github.com/limbo/momentum/internal/scoring"
	"github.com/limbo/momentum/internal/streak"
	"github.com/limbo/momentum/pkg/entity"
)

const MaxLevel = 50

// XPForLevel gives the cumulative XP required to reach a level.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return int(50*math.Pow(float64(level), 1.8) + 25*float64(level))
}

// LevelForXP inverts the XP curve, capped at MaxLevel.
func LevelForXP(totalXP int) int {
	level := 1
	for level < MaxLevel && totalXP >= XPForLevel(level+1) {
		level++
	}
	return level
}

var complexityMultipliers = map[int]float64{
	1: 1.0,
	2: 1.2,
	3: 1.5,
	4: 2.0,
	5: 2.5,
}

type streakTier struct {
	days       int
	multiplier float64
}

// Highest tier at or below the streak applies.
var streakTiers = []streakTier{
	{365, 3.0},
	{180, 2.5},
	{90, 2.0},
	{60, 1.8},
	{30, 1.6},
	{14, 1.4},
	{7, 1.25},
	{3, 1.1},
}

func StreakMultiplier(days int) float64 {
	for _, tier := range streakTiers {
		if days >= tier.days {
			return tier.multiplier
		}
	}
	return 1.0
}

const (
	earlyBirdHour       = 7
	nightOwlHour        = 22
	earlyBirdMultiplier = 1.2
	nightOwlMultiplier  = 1.1
	challengeMultiplier = 1.3
)

func timeOfDayMultiplier(completedAt *time.Time) float64 {
	if completedAt == nil {
		return 1.0
	}
	switch hour := completedAt.Hour(); {
	case hour < earlyBirdHour:
		return earlyBirdMultiplier
	case hour >= nightOwlHour:
		return nightOwlMultiplier
	default:
		return 1.0
	}
}

// TaskXP computes the XP a completed instance is worth given the streak
// in effect on its date and whether that date's challenge was completed.
func TaskXP(row *entity.DailyTaskDetail, streakDays int, challengeCompleted bool) int {
	base := float64(scoring.TaskPoints(row.Complexity, row.CognitiveLoad, row.TimeEstimate))
	xp := base * complexityMultipliers[row.Complexity]
	xp *= StreakMultiplier(streakDays)
	xp *= timeOfDayMultiplier(row.CompletedAt)
	if challengeCompleted {
		xp *= challengeMultiplier
	}
	return int(math.Round(xp))
}

var milestoneBonuses = []struct {
	level int
	bonus int
}{
	{5, 100}, {10, 250}, {15, 500}, {20, 1000},
	{25, 2000}, {30, 3500}, {40, 5000}, {50, 10000},
}

// MilestoneXP is the one-time bonus XP accumulated by reaching a level.
func MilestoneXP(level int) int {
	total := 0
	for _, m := range milestoneBonuses {
		if level >= m.level {
			total += m.bonus
		}
	}
	return total
}

// NextMilestone returns the next milestone level past the given one, or
// 0 when every milestone has been reached.
func NextMilestone(level int) int {
	for _, m := range milestoneBonuses {
		if level < m.level {
			return m.level
		}
	}
	return 0
}

// TotalXP folds the complete history into one XP figure. Challenge
// completions are passed as the set of dates whose challenge was done.
func TotalXP(rows []*entity.DailyTaskDetail, challengeDates map[string]bool) int {
	completedDates := make([]time.Time, 0, len(rows))
	for _, row := range rows {
		if row.Status == entity.StatusCompleted {
			completedDates = append(completedDates, row.ScheduledDate)
		}
	}
	total := 0
	for _, row := range rows {
		if row.Status != entity.StatusCompleted {
			continue
		}
		dayStreak := streak.Current(completedDates, row.ScheduledDate)
		dateKey := row.ScheduledDate.Format("2006-01-02")
		total += TaskXP(row, dayStreak, challengeDates[dateKey])
	}
	return total
}

type Progress struct {
	Level      int     `json:"level"`
	TotalXP    int     `json:"total_xp"`
	CurrentXP  int     `json:"current_xp"`
	XPNeeded   int     `json:"xp_needed"`
	Percentage float64 `json:"percentage"`
}

// XPProgress breaks total XP into progress within the current level.
func XPProgress(totalXP int) Progress {
	level := LevelForXP(totalXP)
	floor := XPForLevel(level)
	if level >= MaxLevel {
		return Progress{
			Level:      MaxLevel,
			TotalXP:    totalXP,
			CurrentXP:  totalXP - floor,
			XPNeeded:   0,
			Percentage: 100,
		}
	}
	ceil := XPForLevel(level + 1)
	span := ceil - floor
	into := totalXP - floor
	pct := 0.0
	if span > 0 {
		pct = math.Round(float64(into)/float64(span)*10000) / 100
	}
	return Progress{
		Level:      level,
		TotalXP:    totalXP,
		CurrentXP:  into,
		XPNeeded:   span - into,
		Percentage: pct,
	}
}
