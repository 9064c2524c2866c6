package analytics

import (
	"math"
	"sort"
	"time"

	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/streak"
	"github.com/limbo/momentum/pkg/entity"
)

const minBurnoutRows = 5

type Indicator struct {
	Name   string  `json:"name"`
	Weight int     `json:"weight"`
	Score  float64 `json:"score"`
}

type BurnoutReport struct {
	RiskScore          float64     `json:"risk_score"`
	RiskLevel          string      `json:"risk_level"`
	Indicators         []Indicator `json:"indicators"`
	EnergyReserves     float64     `json:"energy_reserves"`
	WorkLifeBalance    float64     `json:"work_life_balance"`
	Resilience         float64     `json:"resilience"`
	StressAccumulation float64     `json:"stress_accumulation"`
	Recommendations    []string    `json:"recommendations"`
	Trajectory         string      `json:"trajectory"`
}

var recommendations = map[string]string{
	"declining_performance":     "Completion rates are sliding. Cut tomorrow's list in half and rebuild momentum with small wins.",
	"excessive_workload":        "You are scheduling more than you can finish. Cap the daily list and move the rest out.",
	"chronic_rollover":          "Tasks are rolling over repeatedly. Break the oldest ones into smaller pieces or drop them.",
	"deep_work_overload":        "Deep work is crowding out everything else. Alternate heavy blocks with lighter admin work.",
	"no_rest_days":              "Every day in the window has scheduled work. Block at least one full rest day per week.",
	"time_estimation_collapse":  "Tasks keep running far past their estimates. Pad estimates or split large tasks.",
	"abandonment_increase":      "Abandonment is climbing. Review whether abandoned tasks should have been scheduled at all.",
	"weekend_erosion":           "Weekends are turning into workdays. Protect them to recover capacity.",
	"evening_work_creep":        "Work is creeping past 8 PM. Set a hard stop and move late tasks to the morning.",
	"complexity_avoidance":      "Hard tasks are piling up unfinished. Schedule one hard task first thing while energy is high.",
	"streak_breaking":           "A long streak just broke. Restart with a single easy task rather than a full list.",
	"point_stagnation":          "Daily points are trending down. Revisit complexity mix so wins stay meaningful.",
}

// AssessBurnout scores the 12 risk indicators over the window's rows.
func AssessBurnout(rows []*entity.DailyTaskDetail, days int, today time.Time) (*BurnoutReport, error) {
	if len(rows) < minBurnoutRows {
		return nil, errorvalues.ErrNotEnoughData
	}
	stats := BuildDailyStats(rows)

	indicators := []Indicator{
		{"declining_performance", 12, decliningPerformance(stats)},
		{"excessive_workload", 10, excessiveWorkload(stats)},
		{"chronic_rollover", 10, chronicRollover(rows)},
		{"deep_work_overload", 9, deepWorkOverload(rows, stats)},
		{"no_rest_days", 9, noRestDays(stats, days)},
		{"time_estimation_collapse", 8, estimationCollapse(rows)},
		{"abandonment_increase", 8, abandonmentShare(rows)},
		{"weekend_erosion", 8, weekendErosion(stats)},
		{"evening_work_creep", 7, eveningCreep(rows)},
		{"complexity_avoidance", 7, complexityAvoidanceScore(stats)},
		{"streak_breaking", 6, streakBreaking(rows, today)},
		{"point_stagnation", 6, pointStagnation(stats)},
	}

	var weighted, totalWeight float64
	for i := range indicators {
		indicators[i].Score = round2(clamp(indicators[i].Score, 0, 100))
		weighted += indicators[i].Score * float64(indicators[i].Weight)
		totalWeight += float64(indicators[i].Weight)
	}
	risk := weighted / totalWeight

	report := &BurnoutReport{
		RiskScore:          round2(risk),
		RiskLevel:          riskLevel(risk),
		Indicators:         indicators,
		EnergyReserves:     round2(clamp(100-risk*0.9-noRestDays(stats, days)*0.1, 0, 100)),
		WorkLifeBalance:    round2(clamp(100-(weekendErosion(stats)+eveningCreep(rows)+noRestDays(stats, days))/3, 0, 100)),
		Resilience:         round2(resilience(rows, stats)),
		StressAccumulation: round2(stressAccumulation(stats)),
		Recommendations:    recommend(indicators),
		Trajectory:         trajectory(stats),
	}
	return report, nil
}

func riskLevel(score float64) string {
	switch {
	case score < 15:
		return "thriving"
	case score < 30:
		return "healthy"
	case score < 50:
		return "caution"
	case score < 70:
		return "elevated"
	case score < 85:
		return "high"
	default:
		return "critical"
	}
}

func decliningPerformance(stats []DailyStat) float64 {
	if len(stats) < 4 {
		return 0
	}
	half := len(stats) / 2
	first := mean(rates(stats[:half])) / 100
	second := mean(rates(stats[half:])) / 100
	return (first - second) * 200
}

func excessiveWorkload(stats []DailyStat) float64 {
	total := 0
	for _, s := range stats {
		total += s.Scheduled
	}
	avg := float64(total) / float64(len(stats))
	switch {
	case avg > 10:
		return (avg - 10) * 15
	case avg > 7:
		return (avg - 7) * 10
	}
	return 0
}

func chronicRollover(rows []*entity.DailyTaskDetail) float64 {
	chronic := 0
	for _, row := range rows {
		if row.RolledOverCount >= 2 {
			chronic++
		}
	}
	return float64(chronic) / float64(len(rows)) * 200
}

func deepWorkOverload(rows []*entity.DailyTaskDetail, stats []DailyStat) float64 {
	done, deep := 0, 0
	for _, row := range rows {
		if row.Status == entity.StatusCompleted {
			done++
			if row.CognitiveLoad == entity.LoadDeepWork {
				deep++
			}
		}
	}
	score := 0.0
	if done > 0 {
		share := float64(deep) / float64(done)
		if share > 0.5 {
			score = (share - 0.5) * 200
		}
	}
	for _, s := range stats {
		if s.DeepWorkMinutes > 300 {
			over := float64(s.DeepWorkMinutes-300) / 3
			if over > score {
				score = over
			}
		}
	}
	return score
}

func noRestDays(stats []DailyStat, days int) float64 {
	if days <= 0 {
		days = len(stats)
	}
	return float64(len(stats)) / float64(days) * 100
}

func estimationCollapse(rows []*entity.DailyTaskDetail) float64 {
	timed, over := 0, 0
	for _, row := range rows {
		if row.Status != entity.StatusCompleted || row.ActualTime == nil || row.TimeEstimate <= 0 {
			continue
		}
		timed++
		if float64(*row.ActualTime) > float64(row.TimeEstimate)*1.5 {
			over++
		}
	}
	if timed < 5 {
		return 0
	}
	return float64(over) / float64(timed) * 150
}

func abandonmentShare(rows []*entity.DailyTaskDetail) float64 {
	abandoned := 0
	for _, row := range rows {
		if row.Status == entity.StatusAbandoned {
			abandoned++
		}
	}
	return float64(abandoned) / float64(len(rows)) * 200
}

func weekendErosion(stats []DailyStat) float64 {
	weekendWork := 0
	for _, s := range stats {
		if wd := s.Date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weekendWork++
		}
	}
	share := float64(weekendWork) / float64(len(stats))
	if share > 2.0/7.0*1.5 {
		return (share - 2.0/7.0) * 200
	}
	return 0
}

func eveningCreep(rows []*entity.DailyTaskDetail) float64 {
	done, evening := 0, 0
	for _, row := range rows {
		if row.Status != entity.StatusCompleted || row.CompletedAt == nil {
			continue
		}
		done++
		if row.CompletedAt.Hour() >= 20 {
			evening++
		}
	}
	if done == 0 {
		return 0
	}
	return float64(evening) / float64(done) * 150
}

func complexityAvoidanceScore(stats []DailyStat) float64 {
	var scheduled, completed []float64
	for _, s := range stats {
		if s.Scheduled > 0 {
			scheduled = append(scheduled, s.AvgSchedComplex)
		}
		if s.Completed > 0 {
			completed = append(completed, s.AvgDoneComplex)
		}
	}
	if len(scheduled) == 0 || len(completed) == 0 {
		return 0
	}
	gap := mean(scheduled) - mean(completed)
	if gap > 0.3 {
		return gap * 150
	}
	return 0
}

func streakBreaking(rows []*entity.DailyTaskDetail, today time.Time) float64 {
	var completedDates []time.Time
	for _, row := range rows {
		if row.Status == entity.StatusCompleted {
			completedDates = append(completedDates, row.ScheduledDate)
		}
	}
	longest := streak.Longest(completedDates)
	current := streak.Current(completedDates, today)
	if current > 0 {
		return 0
	}
	switch {
	case longest >= 5:
		return 60
	case longest >= 3:
		return 30
	}
	return 0
}

func pointStagnation(stats []DailyStat) float64 {
	if len(stats) < 10 {
		return 0
	}
	first := 0.0
	for _, s := range stats[:5] {
		first += float64(s.Points)
	}
	last := 0.0
	for _, s := range stats[len(stats)-5:] {
		last += float64(s.Points)
	}
	if first == 0 {
		return 0
	}
	change := (last - first) / first
	if change < -0.2 {
		return math.Abs(change) * 150
	}
	return 0
}

func resilience(rows []*entity.DailyTaskDetail, stats []DailyStat) float64 {
	rolledDone, rolled := 0, 0
	for _, row := range rows {
		if row.RolledOverCount > 0 {
			rolled++
			if row.Status == entity.StatusCompleted {
				rolledDone++
			}
		}
	}
	recovery := 50.0
	if rolled > 0 {
		recovery = float64(rolledDone) / float64(rolled) * 100
	}

	// bouncing back after a weak day counts more than never dipping
	rebounds, dips := 0, 0
	for i := 1; i < len(stats); i++ {
		if stats[i-1].Rate < 50 {
			dips++
			if stats[i].Rate >= 70 {
				rebounds++
			}
		}
	}
	bounce := 50.0
	if dips > 0 {
		bounce = float64(rebounds) / float64(dips) * 100
	}
	return (recovery + bounce) / 2
}

// stressAccumulation runs a leaky integrator over daily load with a
// 0.9 decay per day.
func stressAccumulation(stats []DailyStat) float64 {
	stress := 0.0
	for _, s := range stats {
		load := float64(s.Scheduled)*3 + float64(s.ComplexitySum)
		relief := float64(s.Completed) * 4
		stress = stress*0.9 + load - relief
		if stress < 0 {
			stress = 0
		}
	}
	return clamp(stress, 0, 100)
}

func recommend(indicators []Indicator) []string {
	ranked := make([]Indicator, 0, len(indicators))
	for _, ind := range indicators {
		if ind.Score >= 30 {
			ranked = append(ranked, ind)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Weight > ranked[j].Weight
	})
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}
	out := make([]string, 0, len(ranked))
	for _, ind := range ranked {
		out = append(out, recommendations[ind.Name])
	}
	return out
}

func trajectory(stats []DailyStat) string {
	if len(stats) < 6 {
		return "stable"
	}
	half := len(stats) / 2
	diff := mean(rates(stats[half:])) - mean(rates(stats[:half]))
	switch {
	case diff > 5:
		return "improving"
	case diff < -5:
		return "worsening"
	default:
		return "stable"
	}
}
