package challenge

import (
	"sort"
	"time"

	"github.com/limbo/momentum/internal/scoring"
	"github.com/limbo/momentum/pkg/entity"
)

// CheckCompletion reports whether the requirement is satisfied by the
// date's instance rows. ctx supplies the history signals some
// requirements compare against.
func CheckCompletion(def Definition, rows []*entity.DailyTaskDetail, ctx *Context) bool {
	req := def.Requirement
	done := completedRows(rows)

	switch req.Type {
	case ReqTaskCount:
		return len(done) >= req.Count

	case ReqCognitiveCount:
		n := 0
		for _, row := range done {
			if row.CognitiveLoad == req.Load {
				n++
			}
		}
		return n >= req.Count

	case ReqCognitiveTime:
		minutes := 0
		for _, row := range done {
			if row.CognitiveLoad != req.Load {
				continue
			}
			if row.ActualTime != nil {
				minutes += *row.ActualTime
			} else {
				minutes += row.TimeEstimate
			}
		}
		return minutes >= req.Minutes

	case ReqClearCategory:
		seen := false
		for _, row := range rows {
			if row.CognitiveLoad != req.Load {
				continue
			}
			seen = true
			if row.Status != entity.StatusCompleted {
				return false
			}
		}
		return seen

	case ReqAllCategories:
		return len(completedLoads(done)) >= len(entity.CognitiveLoads())

	case ReqCategoryCount:
		return len(completedLoads(done)) >= req.Count

	case ReqDailyPoints:
		points := 0
		for _, row := range done {
			points += scoring.TaskPoints(row.Complexity, row.CognitiveLoad, row.TimeEstimate)
		}
		return points >= req.Points

	case ReqZeroPenalties:
		if len(done) == 0 {
			return false
		}
		for _, row := range rows {
			if row.PenaltyPoints > 0 {
				return false
			}
		}
		return true

	case ReqPositiveNet:
		net := 0
		for _, row := range rows {
			net += scoring.NetPoints(row)
		}
		return len(done) > 0 && net > 0

	case ReqPerfectCompletion:
		return len(rows) > 0 && len(done) == len(rows)

	case ReqClearRollover:
		for _, row := range done {
			if row.RolledOverCount > 0 {
				return true
			}
		}
		return false

	case ReqClearAllRollovers:
		seen := false
		for _, row := range rows {
			if row.RolledOverCount == 0 {
				continue
			}
			seen = true
			if row.Status != entity.StatusCompleted {
				return false
			}
		}
		return seen

	case ReqNoRollovers:
		for _, row := range rows {
			if row.RolledOverCount > 0 {
				return false
			}
		}
		return len(done) > 0

	case ReqMaintainStreak:
		return len(done) >= 1

	case ReqExtendStreak:
		return len(done) >= req.Count

	case ReqWeekendTasks:
		return ctx.IsWeekend && len(done) >= req.Count

	case ReqMondayTasks:
		return ctx.IsMonday && len(done) >= req.Count

	case ReqFridayClear:
		return ctx.IsFriday && len(rows) > 0 && len(done) == len(rows)

	case ReqCompleteBeforeHour:
		for _, row := range done {
			if row.CompletedAt != nil && row.CompletedAt.Hour() < req.Hour {
				return true
			}
		}
		return false

	case ReqTasksBeforeHour:
		n := 0
		for _, row := range done {
			if row.CompletedAt != nil && row.CompletedAt.Hour() < req.Hour {
				n++
			}
		}
		return n >= req.Count

	case ReqAllBeforeHour:
		if len(rows) == 0 || len(done) != len(rows) {
			return false
		}
		for _, row := range done {
			if row.CompletedAt == nil || row.CompletedAt.Hour() >= req.Hour {
				return false
			}
		}
		return true

	case ReqCompleteAfterHour:
		for _, row := range done {
			if row.CompletedAt != nil && row.CompletedAt.Hour() >= req.Hour {
				return true
			}
		}
		return false

	case ReqWithinEstimate:
		for _, row := range done {
			if row.ActualTime != nil && row.TimeEstimate > 0 && *row.ActualTime <= row.TimeEstimate {
				return true
			}
		}
		return false

	case ReqBeatEstimate:
		for _, row := range done {
			if row.ActualTime == nil || row.TimeEstimate <= 0 {
				continue
			}
			limit := row.TimeEstimate * (100 - req.Percentage) / 100
			if *row.ActualTime <= limit {
				return true
			}
		}
		return false

	case ReqFirstTaskQuick:
		first := firstCompleted(done)
		return first != nil && first.ActualTime != nil && *first.ActualTime <= req.Minutes

	case ReqSprint:
		return sprintMet(done, req.Count, req.Hours)

	case ReqBeatYesterday:
		return len(done) > ctx.YesterdayCompleted

	case ReqBeatAverage:
		return ctx.AvgDailyTasks > 0 && float64(len(done)) > ctx.AvgDailyTasks

	case ReqBreakRecovery:
		return ctx.MissedYesterday && len(done) >= 1

	case ReqComplexityTask:
		for _, row := range done {
			if row.Complexity >= req.Complexity {
				return true
			}
		}
		return false

	case ReqHighComplexityCount:
		n := 0
		for _, row := range done {
			if row.Complexity >= req.Complexity {
				n++
			}
		}
		return n >= req.Count

	case ReqLowComplexityCount:
		n := 0
		for _, row := range done {
			if row.Complexity <= req.Complexity {
				n++
			}
		}
		return n >= req.Count

	case ReqComplexityVariety:
		levels := map[int]bool{}
		for _, row := range done {
			levels[row.Complexity] = true
		}
		return len(levels) >= req.Count

	case ReqMinComplexityDay:
		if len(done) == 0 {
			return false
		}
		for _, row := range done {
			if row.Complexity < req.Complexity {
				return false
			}
		}
		return true
	}
	return false
}

func completedRows(rows []*entity.DailyTaskDetail) []*entity.DailyTaskDetail {
	var done []*entity.DailyTaskDetail
	for _, row := range rows {
		if row.Status == entity.StatusCompleted {
			done = append(done, row)
		}
	}
	return done
}

func completedLoads(done []*entity.DailyTaskDetail) map[string]bool {
	loads := map[string]bool{}
	for _, row := range done {
		loads[row.CognitiveLoad] = true
	}
	return loads
}

func firstCompleted(done []*entity.DailyTaskDetail) *entity.DailyTaskDetail {
	var first *entity.DailyTaskDetail
	for _, row := range done {
		if row.CompletedAt == nil {
			continue
		}
		if first == nil || row.CompletedAt.Before(*first.CompletedAt) {
			first = row
		}
	}
	return first
}

// sprintMet checks for count completions inside any window of the
// given hours.
func sprintMet(done []*entity.DailyTaskDetail, count, hours int) bool {
	var times []time.Time
	for _, row := range done {
		if row.CompletedAt != nil {
			times = append(times, *row.CompletedAt)
		}
	}
	if len(times) < count {
		return false
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	window := time.Duration(hours) * time.Hour
	for i := 0; i+count-1 < len(times); i++ {
		if times[i+count-1].Sub(times[i]) <= window {
			return true
		}
	}
	return false
}
