package challenge

import (
	"time"

	"github.com/limbo/momentum/internal/streak"
	"github.com/limbo/momentum/pkg/entity"
)

// Context captures the recent-history signals the scorer weighs when
// picking a challenge for a date.
type Context struct {
	Date               time.Time
	IsWeekend          bool
	IsMonday           bool
	IsFriday           bool
	CurrentStreak      int
	HasStreak          bool
	MissedYesterday    bool
	YesterdayCompleted int
	AvgDailyTasks      float64
	AvgCompletionRate  float64
	CognitiveRates     map[string]float64
	HasRollovers       bool
	RecentChallenges   []string
	TotalCompleted     int
	UserLevel          int
}

// BuildContext derives selection context for target from up to two
// weeks of instance history ending on target. recent holds challenge
// ids already served in the preceding week, newest first.
func BuildContext(target time.Time, history []*entity.DailyTaskDetail, recent []string, totalCompleted int) *Context {
	target = dayStart(target)
	ctx := &Context{
		Date:             target,
		IsWeekend:        target.Weekday() == time.Saturday || target.Weekday() == time.Sunday,
		IsMonday:         target.Weekday() == time.Monday,
		IsFriday:         target.Weekday() == time.Friday,
		CognitiveRates:   map[string]float64{},
		RecentChallenges: recent,
		TotalCompleted:   totalCompleted,
		UserLevel:        levelForTotal(totalCompleted),
	}

	yesterday := target.AddDate(0, 0, -1)
	var completedDates []time.Time
	scheduledYesterday := 0
	for _, row := range history {
		day := dayStart(row.ScheduledDate)
		if day.Equal(yesterday) {
			scheduledYesterday++
			if row.Status == entity.StatusCompleted {
				ctx.YesterdayCompleted++
			}
		}
		if day.Equal(target) && row.RolledOverCount > 0 {
			ctx.HasRollovers = true
		}
		if row.Status == entity.StatusCompleted && day.Before(target) {
			completedDates = append(completedDates, day)
		}
	}
	ctx.CurrentStreak = streak.Current(completedDates, yesterday)
	ctx.HasStreak = ctx.CurrentStreak > 0
	ctx.MissedYesterday = scheduledYesterday > 0 && ctx.YesterdayCompleted == 0

	ctx.AvgDailyTasks, ctx.AvgCompletionRate = recentAverages(history, target, 14)
	ctx.CognitiveRates = categoryRates(history, target, 7)
	return ctx
}

// recentAverages computes mean completions per active day and mean
// completion rate over the days window ending the day before target.
func recentAverages(history []*entity.DailyTaskDetail, target time.Time, days int) (avgTasks, avgRate float64) {
	cutoff := target.AddDate(0, 0, -days)
	type dayAgg struct{ scheduled, completed int }
	perDay := map[time.Time]*dayAgg{}
	for _, row := range history {
		day := dayStart(row.ScheduledDate)
		if !day.Before(target) || day.Before(cutoff) {
			continue
		}
		agg := perDay[day]
		if agg == nil {
			agg = &dayAgg{}
			perDay[day] = agg
		}
		agg.scheduled++
		if row.Status == entity.StatusCompleted {
			agg.completed++
		}
	}
	if len(perDay) == 0 {
		return 0, 0
	}
	var totalCompleted int
	var rateSum float64
	for _, agg := range perDay {
		totalCompleted += agg.completed
		rateSum += float64(agg.completed) / float64(agg.scheduled) * 100
	}
	n := float64(len(perDay))
	return float64(totalCompleted) / n, rateSum / n
}

// categoryRates computes per-load completion rates in percent over the
// days window ending the day before target.
func categoryRates(history []*entity.DailyTaskDetail, target time.Time, days int) map[string]float64 {
	cutoff := target.AddDate(0, 0, -days)
	scheduled := map[string]int{}
	completed := map[string]int{}
	for _, row := range history {
		day := dayStart(row.ScheduledDate)
		if !day.Before(target) || day.Before(cutoff) {
			continue
		}
		scheduled[row.CognitiveLoad]++
		if row.Status == entity.StatusCompleted {
			completed[row.CognitiveLoad]++
		}
	}
	rates := make(map[string]float64, len(scheduled))
	for load, count := range scheduled {
		rates[load] = float64(completed[load]) / float64(count) * 100
	}
	return rates
}

func levelForTotal(total int) int {
	switch {
	case total < 10:
		return 1
	case total < 50:
		return 2
	case total < 150:
		return 3
	default:
		return 4
	}
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
