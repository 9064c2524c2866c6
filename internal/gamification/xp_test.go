package gamification_test

import (
	"testing"
	"time"

	"github.com/limbo/momentum/internal/gamification"
	"github.com/limbo/momentum/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestXPCurve(t *testing.T) {
	assert.Equal(t, 0, gamification.XPForLevel(1))
	// 50*2^1.8 + 25*2 = 174.1 -> 224
	assert.Equal(t, 224, gamification.XPForLevel(2))
	prev := 0
	for level := 1; level <= 50; level++ {
		xp := gamification.XPForLevel(level)
		assert.GreaterOrEqual(t, xp, prev, "curve must be monotonic at level %d", level)
		prev = xp
	}
}

func TestLevelForXP(t *testing.T) {
	assert.Equal(t, 1, gamification.LevelForXP(0))
	assert.Equal(t, 1, gamification.LevelForXP(gamification.XPForLevel(2)-1))
	assert.Equal(t, 2, gamification.LevelForXP(gamification.XPForLevel(2)))
	assert.Equal(t, 50, gamification.LevelForXP(gamification.XPForLevel(50)))
	assert.Equal(t, 50, gamification.LevelForXP(gamification.XPForLevel(50)*10))
}

func TestLevelRoundTrip(t *testing.T) {
	for level := 1; level <= 50; level++ {
		assert.Equal(t, level, gamification.LevelForXP(gamification.XPForLevel(level)))
	}
}

func TestStreakMultiplier(t *testing.T) {
	cases := map[int]float64{
		0: 1.0, 2: 1.0, 3: 1.1, 6: 1.1, 7: 1.25, 13: 1.25,
		14: 1.4, 30: 1.6, 60: 1.8, 90: 2.0, 180: 2.5, 365: 3.0, 1000: 3.0,
	}
	for days, want := range cases {
		assert.Equal(t, want, gamification.StreakMultiplier(days), "streak %d", days)
	}
}

func TestTaskXP(t *testing.T) {
	noon := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	row := &entity.DailyTaskDetail{
		DailyTask:     entity.DailyTask{Status: entity.StatusCompleted, CompletedAt: &noon},
		Complexity:    3,
		CognitiveLoad: entity.LoadDeepWork,
		TimeEstimate:  60,
	}
	// 80 points * 1.5 complexity = 120, no other multipliers
	assert.Equal(t, 120, gamification.TaskXP(row, 0, false))
	// with a week-long streak: 120 * 1.25
	assert.Equal(t, 150, gamification.TaskXP(row, 7, false))
	// completed challenge day: 120 * 1.3
	assert.Equal(t, 156, gamification.TaskXP(row, 0, true))

	early := time.Date(2025, 6, 15, 6, 30, 0, 0, time.UTC)
	row.CompletedAt = &early
	assert.Equal(t, 144, gamification.TaskXP(row, 0, false))

	late := time.Date(2025, 6, 15, 22, 5, 0, 0, time.UTC)
	row.CompletedAt = &late
	assert.Equal(t, 132, gamification.TaskXP(row, 0, false))
}

func TestMilestoneXP(t *testing.T) {
	assert.Equal(t, 0, gamification.MilestoneXP(4))
	assert.Equal(t, 100, gamification.MilestoneXP(5))
	assert.Equal(t, 350, gamification.MilestoneXP(12))
	assert.Equal(t, 22350, gamification.MilestoneXP(50))
	assert.Equal(t, 5, gamification.NextMilestone(1))
	assert.Equal(t, 40, gamification.NextMilestone(30))
	assert.Equal(t, 0, gamification.NextMilestone(50))
}

func TestTotalXPUsesStreakAtCompletionDate(t *testing.T) {
	day := func(n int) time.Time { return time.Date(2025, 6, 10+n, 0, 0, 0, 0, time.UTC) }
	rows := make([]*entity.DailyTaskDetail, 0, 3)
	for i := 0; i < 3; i++ {
		d := day(i)
		done := d.Add(12 * time.Hour)
		rows = append(rows, &entity.DailyTaskDetail{
			DailyTask: entity.DailyTask{
				Status:        entity.StatusCompleted,
				ScheduledDate: d,
				CompletedAt:   &done,
			},
			Complexity:    1,
			CognitiveLoad: entity.LoadAdmin,
			TimeEstimate:  30,
		})
	}
	// day streaks are 1, 2 and 3; the third day picks up the 1.1x tier.
	// per-task base: 15 points * 1.0 complexity = 15; 15 * 1.1 rounds to 17
	want := 15 + 15 + 17
	assert.Equal(t, want, gamification.TotalXP(rows, nil))
}

func TestXPProgress(t *testing.T) {
	p := gamification.XPProgress(0)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 0, p.CurrentXP)
	assert.Equal(t, gamification.XPForLevel(2), p.XPNeeded)

	top := gamification.XPProgress(gamification.XPForLevel(50) + 5)
	assert.Equal(t, 50, top.Level)
	assert.Equal(t, 0, top.XPNeeded)
	assert.Equal(t, float64(100), top.Percentage)
}

func TestRankForLevel(t *testing.T) {
	assert.Equal(t, "Novice", gamification.RankForLevel(1).Title)
	assert.Equal(t, "Skilled", gamification.RankForLevel(10).Title)
	assert.Equal(t, "Master", gamification.RankForLevel(20).Title)
	assert.Equal(t, "The One", gamification.RankForLevel(50).Title)
	assert.Equal(t, "The One", gamification.RankForLevel(99).Title)
	assert.Equal(t, "Novice", gamification.RankForLevel(0).Title)
	assert.Equal(t, gamification.TierLegendary, gamification.RankForLevel(45).Tier)
}
