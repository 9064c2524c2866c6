package achievement

// metricValue extracts the current progress figure for a definition.
func metricValue(def Definition, stats *Stats) int {
	switch def.Metric {
	case MetricTasksCompleted:
		return stats.TotalCompleted
	case MetricStreak:
		return max(stats.CurrentStreak, stats.LongestStreak)
	case MetricBestDailyPoints:
		return stats.BestDailyPoints
	case MetricTotalPoints:
		return stats.TotalPoints
	case MetricDeepWorkCount:
		return stats.CognitiveCounts["deep_work"]
	case MetricLearningCount:
		return stats.CognitiveCounts["learning"]
	case MetricAdminCount:
		return stats.CognitiveCounts["admin"]
	case MetricBalancedDays:
		return stats.BalancedDays
	case MetricEarlyBirdCount:
		return stats.EarlyBirdCount
	case MetricNightOwlCount:
		return stats.NightOwlCount
	case MetricFastFinishCount:
		return stats.FastFinishCount
	case MetricPerfectDays:
		return stats.PerfectDays
	case MetricComebackCount:
		return stats.ComebackCount
	case MetricComplexity5Count:
		return stats.Complexity5Count
	case MetricChallengesCompleted:
		return stats.ChallengesCompleted
	case MetricWeekendCount:
		return stats.WeekendCount
	case MetricVariety:
		total := 0
		for _, count := range stats.CognitiveCounts {
			total += count
		}
		return total
	case MetricMondayMorningCount:
		return stats.MondayMorningCount
	case MetricStreakRecoveries:
		return stats.StreakRuns7
	case MetricSprintCount:
		return stats.SprintCount
	case MetricPenaltyFreeDays:
		return stats.PenaltyFreeDays
	}
	return 0
}

// Met reports whether a definition's requirement is satisfied.
func Met(def Definition, stats *Stats) bool {
	if def.Metric == MetricVariety {
		// Needs both the volume and 25 completions in every category.
		if metricValue(def, stats) < def.Requirement {
			return false
		}
		for _, load := range []string{"deep_work", "active_work", "admin", "learning"} {
			if stats.CognitiveCounts[load] < 25 {
				return false
			}
		}
		return true
	}
	return metricValue(def, stats) >= def.Requirement
}

// Evaluate returns the definitions newly satisfied by stats, skipping
// anything already unlocked. Callers persist the result; running the
// same check twice therefore unlocks nothing the second time.
func Evaluate(stats *Stats, unlocked map[string]bool) []Definition {
	var newly []Definition
	for _, def := range Definitions {
		if unlocked[def.ID] {
			continue
		}
		if Met(def, stats) {
			newly = append(newly, def)
		}
	}
	return newly
}

type Progress struct {
	Current    int `json:"current"`
	Target     int `json:"target"`
	Percentage int `json:"percentage"`
}

// ProgressFor reports how close a definition is to unlocking, capped
// at 100 percent.
func ProgressFor(def Definition, stats *Stats) Progress {
	current := metricValue(def, stats)
	pct := 0
	if def.Requirement > 0 {
		pct = min(100, current*100/def.Requirement)
	}
	return Progress{Current: current, Target: def.Requirement, Percentage: pct}
}

// ByID looks up a static definition.
func ByID(id string) (Definition, bool) {
	for _, def := range Definitions {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}
