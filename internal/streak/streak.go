// Package streak computes consecutive-day completion runs from the set
// of dates that have at least one completed task.
package streak

import (
	"sort"
	"time"
)

// Milestones streaks are measured against, in days.
var Milestones = []int{3, 7, 14, 21, 30, 60, 90, 180, 365}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Current walks backwards from today. A today with no completion yet
// does not break the run; counting simply starts at yesterday.
func Current(completedDates []time.Time, today time.Time) int {
	if len(completedDates) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(completedDates))
	for _, d := range completedDates {
		set[dayKey(d)] = struct{}{}
	}
	check := today
	if _, ok := set[dayKey(check)]; !ok {
		check = check.AddDate(0, 0, -1)
	}
	count := 0
	for {
		if _, ok := set[dayKey(check)]; !ok {
			break
		}
		count++
		check = check.AddDate(0, 0, -1)
	}
	return count
}

// Longest scans all distinct completion dates ascending looking for
// runs of exactly-one-day gaps.
func Longest(completedDates []time.Time) int {
	if len(completedDates) == 0 {
		return 0
	}
	seen := make(map[string]time.Time, len(completedDates))
	for _, d := range completedDates {
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		seen[dayKey(day)] = day
	}
	days := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest := 1
	run := 1
	for i := 1; i < len(days); i++ {
		gap := int(days[i].Sub(days[i-1]).Hours() / 24)
		if gap == 1 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}

// DaysToNextMilestone reports how far the current streak is from the
// next milestone, or 0 when past every milestone.
func DaysToNextMilestone(current int) int {
	for _, m := range Milestones {
		if current < m {
			return m - current
		}
	}
	return 0
}
