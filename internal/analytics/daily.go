// Package analytics derives trend, insight and burnout reports from
// raw daily instance rows. Everything here is pure computation;
// services feed it repository rows.
package analytics

import (
	"sort"
	"time"

	"github.com/limbo/momentum/internal/scoring"
	"github.com/limbo/momentum/pkg/entity"
)

// DailyStat is one day's aggregate over its instance rows.
type DailyStat struct {
	Date              time.Time `json:"date"`
	Scheduled         int       `json:"scheduled"`
	Completed         int       `json:"completed"`
	Abandoned         int       `json:"abandoned"`
	Rate              float64   `json:"completion_rate"`
	Points            int       `json:"points"`
	Penalties         int       `json:"penalties"`
	NetPoints         int       `json:"net_points"`
	DeepWorkMinutes   int       `json:"deep_work_minutes"`
	ComplexitySum     int       `json:"complexity_sum"`
	AvgSchedComplex   float64   `json:"avg_scheduled_complexity"`
	AvgDoneComplex    float64   `json:"avg_completed_complexity"`
	EveningDone       int       `json:"evening_completions"`
	RolledTwicePlus   int       `json:"chronic_rollovers"`
	CompletedDeepWork int       `json:"deep_work_completions"`
}

// BuildDailyStats folds rows into per-day aggregates sorted by date.
func BuildDailyStats(rows []*entity.DailyTaskDetail) []DailyStat {
	perDay := map[time.Time]*DailyStat{}
	for _, row := range rows {
		day := dayStart(row.ScheduledDate)
		stat := perDay[day]
		if stat == nil {
			stat = &DailyStat{Date: day}
			perDay[day] = stat
		}
		stat.Scheduled++
		stat.ComplexitySum += row.Complexity
		stat.Penalties += row.PenaltyPoints
		if row.RolledOverCount >= 2 {
			stat.RolledTwicePlus++
		}
		if row.Status == entity.StatusAbandoned {
			stat.Abandoned++
		}
		if row.Status == entity.StatusCompleted {
			stat.Completed++
			stat.Points += scoring.TaskPoints(row.Complexity, row.CognitiveLoad, row.TimeEstimate)
			if row.CognitiveLoad == entity.LoadDeepWork {
				stat.CompletedDeepWork++
				if row.ActualTime != nil {
					stat.DeepWorkMinutes += *row.ActualTime
				} else {
					stat.DeepWorkMinutes += row.TimeEstimate
				}
			}
			if row.CompletedAt != nil && row.CompletedAt.Hour() >= 20 {
				stat.EveningDone++
			}
		}
	}

	stats := make([]DailyStat, 0, len(perDay))
	for _, stat := range perDay {
		stat.Rate = float64(stat.Completed) / float64(stat.Scheduled) * 100
		stat.NetPoints = stat.Points - stat.Penalties
		stat.AvgSchedComplex = float64(stat.ComplexitySum) / float64(stat.Scheduled)
		stat.AvgDoneComplex = avgCompletedComplexity(rows, stat.Date)
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Date.Before(stats[j].Date) })
	return stats
}

func avgCompletedComplexity(rows []*entity.DailyTaskDetail, day time.Time) float64 {
	sum, n := 0, 0
	for _, row := range rows {
		if row.Status == entity.StatusCompleted && dayStart(row.ScheduledDate).Equal(day) {
			sum += row.Complexity
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func rates(stats []DailyStat) []float64 {
	out := make([]float64, len(stats))
	for i, s := range stats {
		out[i] = s.Rate
	}
	return out
}
