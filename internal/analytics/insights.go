package analytics

import (
	"fmt"
	"sort"
	"time"

	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/pkg/entity"
)

const minInsightRows = 10

type Insight struct {
	Kind   string `json:"kind"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type Pairing struct {
	First       string  `json:"first"`
	Second      string  `json:"second"`
	DaysPaired  int     `json:"days_paired"`
	SuccessRate float64 `json:"success_rate"`
}

type InsightReport struct {
	Performance     []Insight `json:"performance"`
	Timing          []Insight `json:"timing"`
	HiddenPatterns  []Insight `json:"hidden_patterns"`
	Optimization    []Insight `json:"optimization"`
	Procrastination []Insight `json:"procrastination"`
	DNA             []string  `json:"productivity_dna"`
	Pairings        []Pairing `json:"task_pairings"`
}

// GenerateInsights inspects the window's rows for actionable signals.
func GenerateInsights(rows []*entity.DailyTaskDetail) (*InsightReport, error) {
	if len(rows) < minInsightRows {
		return nil, errorvalues.ErrNotEnoughData
	}
	report := &InsightReport{
		Performance:     performanceInsights(rows),
		Timing:          timingInsights(rows),
		HiddenPatterns:  hiddenPatterns(rows),
		Optimization:    optimizationInsights(rows),
		Procrastination: procrastinationInsights(rows),
		DNA:             productivityDNA(rows),
		Pairings:        taskPairings(rows),
	}
	return report, nil
}

func performanceInsights(rows []*entity.DailyTaskDetail) []Insight {
	var out []Insight
	for _, load := range entity.CognitiveLoads() {
		done, all := 0, 0
		for _, row := range rows {
			if row.CognitiveLoad != load {
				continue
			}
			all++
			if row.Status == entity.StatusCompleted {
				done++
			}
		}
		if all < 3 {
			continue
		}
		rate := float64(done) / float64(all) * 100
		if rate >= 85 {
			out = append(out, Insight{
				Kind:   "strength",
				Title:  "Category strength",
				Detail: fmt.Sprintf("%s tasks complete at %.0f%%", load, rate),
			})
		} else if rate < 50 {
			out = append(out, Insight{
				Kind:   "alert",
				Title:  "Category struggle",
				Detail: fmt.Sprintf("%s tasks complete at only %.0f%%", load, rate),
			})
		}
	}

	if best, worst, gap, ok := complexitySweetSpot(rows); ok && gap > 30 {
		out = append(out, Insight{
			Kind:   "sweet_spot",
			Title:  "Complexity sweet spot",
			Detail: fmt.Sprintf("complexity %d tasks complete %.0f points better than complexity %d", best, gap, worst),
		})
	}
	return out
}

func complexitySweetSpot(rows []*entity.DailyTaskDetail) (best, worst int, gap float64, ok bool) {
	type agg struct{ done, all int }
	byComplexity := map[int]*agg{}
	for _, row := range rows {
		a := byComplexity[row.Complexity]
		if a == nil {
			a = &agg{}
			byComplexity[row.Complexity] = a
		}
		a.all++
		if row.Status == entity.StatusCompleted {
			a.done++
		}
	}
	bestRate, worstRate := -1.0, 101.0
	for complexity, a := range byComplexity {
		if a.all < 3 {
			continue
		}
		rate := float64(a.done) / float64(a.all) * 100
		if rate > bestRate {
			bestRate, best = rate, complexity
		}
		if rate < worstRate {
			worstRate, worst = rate, complexity
		}
	}
	if bestRate < 0 || worstRate > 100 || best == worst {
		return 0, 0, 0, false
	}
	return best, worst, bestRate - worstRate, true
}

func timingInsights(rows []*entity.DailyTaskDetail) []Insight {
	var out []Insight

	byHour := map[int]int{}
	for _, row := range rows {
		if row.Status == entity.StatusCompleted && row.CompletedAt != nil {
			byHour[row.CompletedAt.Hour()]++
		}
	}
	if len(byHour) > 0 {
		peak, peakCount := 0, 0
		for hour, count := range byHour {
			if count > peakCount || (count == peakCount && hour < peak) {
				peak, peakCount = hour, count
			}
		}
		out = append(out, Insight{
			Kind:   "peak_hour",
			Title:  "Peak completion hour",
			Detail: fmt.Sprintf("most tasks finish around %02d:00", peak),
		})
	}

	stats := BuildDailyStats(rows)
	byWeekday := map[time.Weekday][]float64{}
	for _, s := range stats {
		byWeekday[s.Date.Weekday()] = append(byWeekday[s.Date.Weekday()], s.Rate)
	}
	if len(byWeekday) > 1 {
		bestDay, bestRate := time.Sunday, -1.0
		for day, rs := range byWeekday {
			if avg := mean(rs); avg > bestRate {
				bestDay, bestRate = day, avg
			}
		}
		out = append(out, Insight{
			Kind:   "best_weekday",
			Title:  "Strongest day",
			Detail: fmt.Sprintf("%s averages %.0f%% completion", bestDay, bestRate),
		})
	}
	return out
}

func hiddenPatterns(rows []*entity.DailyTaskDetail) []Insight {
	var out []Insight

	if load, rate, ok := firstTaskEffect(rows); ok && rate >= 60 {
		out = append(out, Insight{
			Kind:   "first_task",
			Title:  "Opening move",
			Detail: fmt.Sprintf("days started with a %s task average %.0f%% completion", load, rate),
		})
	}

	rolledOnce, rolledAgain := 0, 0
	for _, row := range rows {
		if row.RolledOverCount >= 1 {
			rolledOnce++
		}
		if row.RolledOverCount >= 2 {
			rolledAgain++
		}
	}
	if rolledOnce >= 5 {
		spiral := float64(rolledAgain) / float64(rolledOnce)
		if spiral > 0.3 {
			out = append(out, Insight{
				Kind:   "rollover_spiral",
				Title:  "Rollover spiral",
				Detail: fmt.Sprintf("%.0f%% of rolled over tasks roll over again", spiral*100),
			})
		}
	}

	freshRate, rolledRate := splitRates(rows)
	if rolledRate > 0 && freshRate/rolledRate >= 1.3 {
		out = append(out, Insight{
			Kind:   "same_day_advantage",
			Title:  "Same-day advantage",
			Detail: fmt.Sprintf("fresh tasks complete %.1fx more often than rolled over ones", freshRate/rolledRate),
		})
	}
	return out
}

// firstTaskEffect finds the load that, opened with, yields the best
// average day rate over at least three days.
func firstTaskEffect(rows []*entity.DailyTaskDetail) (string, float64, bool) {
	firstLoad := map[time.Time]string{}
	firstAt := map[time.Time]time.Time{}
	for _, row := range rows {
		if row.Status != entity.StatusCompleted || row.CompletedAt == nil {
			continue
		}
		day := dayStart(row.ScheduledDate)
		if at, ok := firstAt[day]; !ok || row.CompletedAt.Before(at) {
			firstAt[day] = *row.CompletedAt
			firstLoad[day] = row.CognitiveLoad
		}
	}

	stats := BuildDailyStats(rows)
	byLoad := map[string][]float64{}
	for _, s := range stats {
		if load, ok := firstLoad[s.Date]; ok {
			byLoad[load] = append(byLoad[load], s.Rate)
		}
	}
	bestLoad, bestRate := "", -1.0
	for load, rs := range byLoad {
		if len(rs) < 3 {
			continue
		}
		if avg := mean(rs); avg > bestRate {
			bestLoad, bestRate = load, avg
		}
	}
	return bestLoad, bestRate, bestLoad != ""
}

func splitRates(rows []*entity.DailyTaskDetail) (fresh, rolled float64) {
	var freshDone, freshAll, rolledDone, rolledAll int
	for _, row := range rows {
		if row.RolledOverCount == 0 {
			freshAll++
			if row.Status == entity.StatusCompleted {
				freshDone++
			}
		} else {
			rolledAll++
			if row.Status == entity.StatusCompleted {
				rolledDone++
			}
		}
	}
	if freshAll > 0 {
		fresh = float64(freshDone) / float64(freshAll) * 100
	}
	if rolledAll > 0 {
		rolled = float64(rolledDone) / float64(rolledAll) * 100
	}
	return fresh, rolled
}

func optimizationInsights(rows []*entity.DailyTaskDetail) []Insight {
	var out []Insight

	if ratio, ok := fragmentationCost(rows); ok && ratio > 1.3 {
		out = append(out, Insight{
			Kind:   "batching",
			Title:  "Batch similar work",
			Detail: fmt.Sprintf("tasks on fragmented days take %.1fx longer than on focused days", ratio),
		})
	}

	stats := BuildDailyStats(rows)
	overloaded := 0
	for _, s := range stats {
		if s.ComplexitySum > 15 {
			overloaded++
		}
	}
	if len(stats) > 0 && float64(overloaded)/float64(len(stats)) > 0.3 {
		out = append(out, Insight{
			Kind:   "complexity_overload",
			Title:  "Complexity overload",
			Detail: fmt.Sprintf("%d of %d days carry a complexity budget above 15", overloaded, len(stats)),
		})
	}

	if bias, ok := estimationBias(rows); ok && (bias > 1.4 || bias < 0.6) {
		out = append(out, Insight{
			Kind:   "time_calibration",
			Title:  "Recalibrate estimates",
			Detail: fmt.Sprintf("actual time runs %.1fx estimates", bias),
		})
	}
	return out
}

// fragmentationCost compares actual/estimate ratios on days touching
// three or more categories against focused days.
func fragmentationCost(rows []*entity.DailyTaskDetail) (float64, bool) {
	loadsPerDay := map[time.Time]map[string]bool{}
	for _, row := range rows {
		day := dayStart(row.ScheduledDate)
		if loadsPerDay[day] == nil {
			loadsPerDay[day] = map[string]bool{}
		}
		loadsPerDay[day][row.CognitiveLoad] = true
	}

	var fragmented, focused []float64
	for _, row := range rows {
		if row.Status != entity.StatusCompleted || row.ActualTime == nil || row.TimeEstimate <= 0 {
			continue
		}
		ratio := float64(*row.ActualTime) / float64(row.TimeEstimate)
		if len(loadsPerDay[dayStart(row.ScheduledDate)]) >= 3 {
			fragmented = append(fragmented, ratio)
		} else {
			focused = append(focused, ratio)
		}
	}
	if len(fragmented) < 3 || len(focused) < 3 || mean(focused) == 0 {
		return 0, false
	}
	return mean(fragmented) / mean(focused), true
}

func procrastinationInsights(rows []*entity.DailyTaskDetail) []Insight {
	var out []Insight

	type bucket struct{ rolled, all int }
	buckets := map[string]*bucket{}
	for _, row := range rows {
		key := fmt.Sprintf("%s/complexity %d", row.CognitiveLoad, row.Complexity)
		b := buckets[key]
		if b == nil {
			b = &bucket{}
			buckets[key] = b
		}
		b.all++
		if row.RolledOverCount > 0 {
			b.rolled++
		}
	}
	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		b := buckets[key]
		if b.all < 5 {
			continue
		}
		rate := float64(b.rolled) / float64(b.all)
		if rate > 0.4 {
			out = append(out, Insight{
				Kind:   "avoidance",
				Title:  "Avoidance pattern",
				Detail: fmt.Sprintf("%s tasks roll over %.0f%% of the time", key, rate*100),
			})
		}
	}

	lateDone, done := 0, 0
	for _, row := range rows {
		if row.Status != entity.StatusCompleted || row.CompletedAt == nil {
			continue
		}
		done++
		if row.CompletedAt.Hour() >= 21 {
			lateDone++
		}
	}
	if done > 0 {
		share := float64(lateDone) / float64(done)
		if share > 0.3 {
			out = append(out, Insight{
				Kind:   "deadline_pressure",
				Title:  "Deadline pressure",
				Detail: fmt.Sprintf("%.0f%% of completions land after 9 PM", share*100),
			})
		}
	}
	return out
}

// productivityDNA labels the working style with threshold classifiers.
func productivityDNA(rows []*entity.DailyTaskDetail) []string {
	var done, early, late, weekend, deepWork, complex5, rolledDone int
	var complexitySum int
	var ratios []float64
	for _, row := range rows {
		if row.Status != entity.StatusCompleted {
			continue
		}
		done++
		complexitySum += row.Complexity
		if row.Complexity == 5 {
			complex5++
		}
		if row.CognitiveLoad == entity.LoadDeepWork {
			deepWork++
		}
		if row.RolledOverCount > 0 {
			rolledDone++
		}
		if row.CompletedAt != nil {
			if row.CompletedAt.Hour() < 9 {
				early++
			}
			if row.CompletedAt.Hour() >= 21 {
				late++
			}
			if wd := row.CompletedAt.Weekday(); wd == time.Saturday || wd == time.Sunday {
				weekend++
			}
		}
		if row.ActualTime != nil && row.TimeEstimate > 0 {
			ratios = append(ratios, float64(*row.ActualTime)/float64(row.TimeEstimate))
		}
	}
	if done == 0 {
		return nil
	}

	stats := BuildDailyStats(rows)
	var rateSum float64
	balanced := 0
	for _, s := range stats {
		rateSum += s.Rate
		if s.Scheduled > 0 && s.Completed == s.Scheduled {
			balanced++
		}
	}
	avgRate := rateSum / float64(len(stats))

	var traits []string
	n := float64(done)
	if float64(early)/n >= 0.3 {
		traits = append(traits, "early_bird")
	}
	if float64(late)/n >= 0.3 {
		traits = append(traits, "night_owl")
	}
	if float64(deepWork)/n >= 0.4 {
		traits = append(traits, "deep_diver")
	}
	if len(ratios) >= 3 && mean(ratios) < 0.8 {
		traits = append(traits, "sprinter")
	}
	if len(ratios) >= 3 && mean(ratios) > 1.3 {
		traits = append(traits, "deep_deliberator")
	}
	if avgRate >= 85 {
		traits = append(traits, "finisher")
	}
	if float64(rolledDone)/n >= 0.2 {
		traits = append(traits, "comeback_artist")
	}
	if float64(complexitySum)/n >= 3.5 {
		traits = append(traits, "challenge_hunter")
	}
	if float64(complex5)/n >= 0.15 {
		traits = append(traits, "boss_fighter")
	}
	if float64(weekend)/n >= 0.25 {
		traits = append(traits, "weekend_warrior")
	}
	return traits
}

// taskPairings finds task pairs habitually completed together.
func taskPairings(rows []*entity.DailyTaskDetail) []Pairing {
	type dayTask struct {
		title     string
		completed bool
	}
	perDay := map[time.Time][]dayTask{}
	for _, row := range rows {
		day := dayStart(row.ScheduledDate)
		perDay[day] = append(perDay[day], dayTask{row.Title, row.Status == entity.StatusCompleted})
	}

	type pairKey struct{ a, b string }
	paired := map[pairKey]int{}
	bothDone := map[pairKey]int{}
	for _, tasks := range perDay {
		for i := 0; i < len(tasks); i++ {
			for j := i + 1; j < len(tasks); j++ {
				a, b := tasks[i], tasks[j]
				if a.title == b.title {
					continue
				}
				key := pairKey{a.title, b.title}
				if key.a > key.b {
					key.a, key.b = key.b, key.a
				}
				paired[key]++
				if a.completed && b.completed {
					bothDone[key]++
				}
			}
		}
	}

	var out []Pairing
	for key, days := range paired {
		if days < 5 {
			continue
		}
		rate := float64(bothDone[key]) / float64(days)
		if rate >= 0.8 {
			out = append(out, Pairing{First: key.a, Second: key.b, DaysPaired: days, SuccessRate: round2(rate)})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DaysPaired != out[j].DaysPaired {
			return out[i].DaysPaired > out[j].DaysPaired
		}
		return out[i].First < out[j].First
	})
	return out
}
