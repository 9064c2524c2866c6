package achievement

import (
	"sort"
	"time"

	"github.com/limbo/momentum/internal/scoring"
	"github.com/limbo/momentum/internal/streak"
	"github.com/limbo/momentum/pkg/entity"
)

// Stats is the aggregate every definition is evaluated against. Built
// once per check from the full instance history.
type Stats struct {
	TotalCompleted      int
	CurrentStreak       int
	LongestStreak       int
	TotalPoints         int
	BestDailyPoints     int
	CognitiveCounts     map[string]int
	EarlyBirdCount      int
	NightOwlCount       int
	FastFinishCount     int
	Complexity5Count    int
	ComebackCount       int
	PerfectDays         int
	ChallengesCompleted int
	WeekendCount        int
	MondayMorningCount  int
	BalancedDays        int
	StreakRuns7         int
	SprintCount         int
	PenaltyFreeDays     int
}

type dayAgg struct {
	total      int
	completed  int
	points     int
	penalties  int
	categories map[string]struct{}
	doneAt     []time.Time
}

// BuildStats folds the full history into the aggregate the unlock
// predicates consume. Challenge completions come from challenge history
// and are passed in separately.
func BuildStats(rows []*entity.DailyTaskDetail, today time.Time, challengesCompleted int) *Stats {
	stats := &Stats{
		CognitiveCounts:     make(map[string]int),
		ChallengesCompleted: challengesCompleted,
	}
	days := make(map[string]*dayAgg)
	completedDates := make([]time.Time, 0, len(rows))

	for _, row := range rows {
		key := row.ScheduledDate.Format("2006-01-02")
		agg := days[key]
		if agg == nil {
			agg = &dayAgg{categories: make(map[string]struct{})}
			days[key] = agg
		}
		agg.total++
		agg.penalties += row.PenaltyPoints

		if row.Status != entity.StatusCompleted {
			continue
		}
		agg.completed++
		agg.categories[row.CognitiveLoad] = struct{}{}
		points := scoring.TaskPoints(row.Complexity, row.CognitiveLoad, row.TimeEstimate)
		agg.points += points

		stats.TotalCompleted++
		stats.TotalPoints += points
		stats.CognitiveCounts[row.CognitiveLoad]++
		completedDates = append(completedDates, row.ScheduledDate)

		if row.Complexity == 5 {
			stats.Complexity5Count++
		}
		if row.RolledOverCount > 0 {
			stats.ComebackCount++
		}
		switch wd := row.ScheduledDate.Weekday(); wd {
		case time.Saturday, time.Sunday:
			stats.WeekendCount++
		}
		if row.CompletedAt != nil {
			agg.doneAt = append(agg.doneAt, *row.CompletedAt)
			hour := row.CompletedAt.Hour()
			if hour < 7 {
				stats.EarlyBirdCount++
			}
			if hour >= 22 {
				stats.NightOwlCount++
			}
			if row.ScheduledDate.Weekday() == time.Monday && hour < 12 {
				stats.MondayMorningCount++
			}
		}
		if row.ActualTime != nil && row.TimeEstimate > 0 && *row.ActualTime*2 <= row.TimeEstimate {
			stats.FastFinishCount++
		}
	}

	stats.CurrentStreak = streak.Current(completedDates, today)
	stats.LongestStreak = streak.Longest(completedDates)
	stats.StreakRuns7 = countRunsOfAtLeast(completedDates, 7)

	dayKeys := make([]string, 0, len(days))
	for key := range days {
		dayKeys = append(dayKeys, key)
	}
	sort.Strings(dayKeys)

	penaltyFreeRun := 0
	for _, key := range dayKeys {
		agg := days[key]
		if agg.points > stats.BestDailyPoints {
			stats.BestDailyPoints = agg.points
		}
		if agg.total > 0 && agg.completed == agg.total {
			stats.PerfectDays++
		}
		if len(agg.categories) >= 4 {
			stats.BalancedDays++
		}
		if agg.penalties == 0 {
			penaltyFreeRun++
			if penaltyFreeRun > stats.PenaltyFreeDays {
				stats.PenaltyFreeDays = penaltyFreeRun
			}
		} else {
			penaltyFreeRun = 0
		}
		stats.SprintCount = max(stats.SprintCount, sprintSize(agg.doneAt))
	}
	return stats
}

// countRunsOfAtLeast reports how many distinct consecutive-day runs
// reach the given length.
func countRunsOfAtLeast(dates []time.Time, length int) int {
	if len(dates) == 0 {
		return 0
	}
	seen := make(map[string]time.Time, len(dates))
	for _, d := range dates {
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		seen[day.Format("2006-01-02")] = day
	}
	days := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	runs := 0
	run := 1
	for i := 1; i <= len(days); i++ {
		if i < len(days) && int(days[i].Sub(days[i-1]).Hours()/24) == 1 {
			run++
			continue
		}
		if run >= length {
			runs++
		}
		run = 1
	}
	return runs
}

// sprintSize finds the largest number of completions within any
// two-hour span of one day.
func sprintSize(doneAt []time.Time) int {
	if len(doneAt) == 0 {
		return 0
	}
	sort.Slice(doneAt, func(i, j int) bool { return doneAt[i].Before(doneAt[j]) })
	best := 0
	for i := range doneAt {
		count := 0
		for j := i; j < len(doneAt); j++ {
			if doneAt[j].Sub(doneAt[i]) < 2*time.Hour {
				count++
			}
		}
		if count > best {
			best = count
		}
	}
	return best
}
