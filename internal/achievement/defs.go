// Package achievement evaluates declarative unlock conditions against
// aggregate completion statistics. Definitions are static data; the
// only persisted state is the unlock record per id.
package achievement

// Metric selects which aggregate statistic a definition is checked
// against. One evaluator per metric, no dynamic dispatch.
type Metric int

const (
	MetricTasksCompleted Metric = iota
	MetricStreak
	MetricBestDailyPoints
	MetricTotalPoints
	MetricDeepWorkCount
	MetricLearningCount
	MetricAdminCount
	MetricBalancedDays
	MetricEarlyBirdCount
	MetricNightOwlCount
	MetricFastFinishCount
	MetricPerfectDays
	MetricComebackCount
	MetricComplexity5Count
	MetricChallengesCompleted
	MetricWeekendCount
	MetricVariety
	MetricMondayMorningCount
	MetricStreakRecoveries
	MetricSprintCount
	MetricPenaltyFreeDays
)

type TierInfo struct {
	Icon       string  `json:"icon"`
	Color      string  `json:"color"`
	Multiplier float64 `json:"multiplier"`
}

var Tiers = map[string]TierInfo{
	"bronze":   {"🥉", "#cd7f32", 1.0},
	"silver":   {"🥈", "#c0c0c0", 1.5},
	"gold":     {"🥇", "#ffd700", 2.0},
	"platinum": {"💠", "#e5e4e2", 3.0},
	"diamond":  {"💎", "#b9f2ff", 5.0},
}

type Definition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Tier        string `json:"tier"`
	Metric      Metric `json:"-"`
	Requirement int    `json:"requirement"`
	Points      int    `json:"points"`
	Hidden      bool   `json:"hidden"`
}

// TierPoints is the point value persisted at unlock time.
func (d Definition) TierPoints() int {
	tier, ok := Tiers[d.Tier]
	if !ok {
		tier = Tiers["bronze"]
	}
	return int(float64(d.Points) * tier.Multiplier)
}

var Definitions = []Definition{
	// Task completion
	{"first_task", "First Steps", "Complete your very first task", "👶", "tasks", "bronze", MetricTasksCompleted, 1, 10, false},
	{"task_10", "Getting Warmed Up", "Complete 10 tasks", "🏃", "tasks", "bronze", MetricTasksCompleted, 10, 25, false},
	{"task_50", "Half Century", "Complete 50 tasks", "🎯", "tasks", "silver", MetricTasksCompleted, 50, 75, false},
	{"task_100", "Centurion", "Complete 100 tasks", "💯", "tasks", "gold", MetricTasksCompleted, 100, 150, false},
	{"task_250", "Task Titan", "Complete 250 tasks", "🗿", "tasks", "platinum", MetricTasksCompleted, 250, 300, false},
	{"task_500", "Half Millennium", "Complete 500 tasks", "🏛️", "tasks", "platinum", MetricTasksCompleted, 500, 500, false},
	{"task_1000", "Task God", "Complete 1000 tasks", "⚜️", "tasks", "diamond", MetricTasksCompleted, 1000, 1000, false},

	// Streaks: current or longest, either satisfies
	{"streak_3", "Spark", "Maintain a 3-day streak", "🔥", "streak", "bronze", MetricStreak, 3, 30, false},
	{"streak_7", "Week Warrior", "Maintain a 7-day streak", "⭐", "streak", "silver", MetricStreak, 7, 75, false},
	{"streak_14", "Fortnight Force", "Maintain a 14-day streak", "🌟", "streak", "gold", MetricStreak, 14, 150, false},
	{"streak_30", "Monthly Master", "Maintain a 30-day streak", "👑", "streak", "platinum", MetricStreak, 30, 400, false},
	{"streak_60", "Unstoppable", "Maintain a 60-day streak", "🦁", "streak", "platinum", MetricStreak, 60, 750, false},
	{"streak_90", "Quarter Legend", "Maintain a 90-day streak", "🏆", "streak", "diamond", MetricStreak, 90, 1200, false},
	{"streak_180", "Half-Year Hero", "Maintain a 180-day streak", "🦸", "streak", "diamond", MetricStreak, 180, 2500, false},
	{"streak_365", "Year of Excellence", "Maintain a 365-day streak", "🌠", "streak", "diamond", MetricStreak, 365, 5000, false},

	// Points
	{"points_100_day", "Century Day", "Earn 100 points in a single day", "💯", "points", "silver", MetricBestDailyPoints, 100, 50, false},
	{"points_200_day", "Double Century", "Earn 200 points in a single day", "🔥", "points", "gold", MetricBestDailyPoints, 200, 100, false},
	{"points_500_total", "Point Collector", "Earn 500 total points", "🪙", "points", "silver", MetricTotalPoints, 500, 75, false},
	{"points_2500_total", "Point Hoarder", "Earn 2,500 total points", "💰", "points", "gold", MetricTotalPoints, 2500, 200, false},
	{"points_10000_total", "Point Master", "Earn 10,000 total points", "💎", "points", "platinum", MetricTotalPoints, 10000, 500, false},
	{"points_50000_total", "Point Legend", "Earn 50,000 total points", "👑", "points", "diamond", MetricTotalPoints, 50000, 2000, false},

	// Cognitive load
	{"deep_work_10", "Focus Finder", "Complete 10 deep work tasks", "🧠", "cognitive", "bronze", MetricDeepWorkCount, 10, 50, false},
	{"deep_work_50", "Deep Thinker", "Complete 50 deep work tasks", "🎓", "cognitive", "silver", MetricDeepWorkCount, 50, 150, false},
	{"deep_work_100", "Mind Master", "Complete 100 deep work tasks", "🧙", "cognitive", "gold", MetricDeepWorkCount, 100, 300, false},
	{"learning_25", "Knowledge Seeker", "Complete 25 learning tasks", "📚", "cognitive", "silver", MetricLearningCount, 25, 100, false},
	{"learning_100", "Eternal Student", "Complete 100 learning tasks", "🎓", "cognitive", "gold", MetricLearningCount, 100, 250, false},
	{"admin_master", "Admin Ninja", "Complete 50 admin tasks", "📋", "cognitive", "silver", MetricAdminCount, 50, 75, false},
	{"balanced_day", "Balance Master", "Complete tasks from all 4 cognitive categories in one day", "⚖️", "cognitive", "gold", MetricBalancedDays, 1, 100, false},

	// Time of day
	{"early_bird", "Early Bird", "Complete a task before 7 AM", "🌅", "time", "silver", MetricEarlyBirdCount, 1, 50, false},
	{"early_bird_10", "Dawn Warrior", "Complete 10 tasks before 7 AM", "🌄", "time", "gold", MetricEarlyBirdCount, 10, 150, false},
	{"night_owl", "Night Owl", "Complete a task after 10 PM", "🦉", "time", "silver", MetricNightOwlCount, 1, 50, false},
	{"night_owl_10", "Midnight Master", "Complete 10 tasks after 10 PM", "🌙", "time", "gold", MetricNightOwlCount, 10, 150, false},
	{"speed_demon", "Speed Demon", "Complete a task 50% faster than estimated", "⚡", "time", "gold", MetricFastFinishCount, 1, 75, false},

	// Perfect days
	{"perfect_day", "Perfect Day", "Complete all scheduled tasks in one day", "✨", "perfect", "gold", MetricPerfectDays, 1, 100, false},
	{"perfect_week", "Flawless Week", "Achieve 7 perfect days", "🌟", "perfect", "platinum", MetricPerfectDays, 7, 500, false},
	{"perfect_month", "Month of Excellence", "Achieve 30 perfect days", "👑", "perfect", "diamond", MetricPerfectDays, 30, 2000, false},
	{"no_penalty_week", "Clean Streak", "Go 7 days without any penalties", "🧹", "perfect", "gold", MetricPenaltyFreeDays, 7, 150, false},

	// Comeback and persistence
	{"comeback", "Comeback Kid", "Complete 3 tasks that were rolled over", "💪", "persistence", "silver", MetricComebackCount, 3, 75, false},
	{"comeback_master", "Never Give Up", "Complete 10 tasks that were rolled over", "🦾", "persistence", "gold", MetricComebackCount, 10, 200, false},
	{"streak_recovery", "Phoenix Rising", "Build a new 7-day streak after losing one", "🔥", "persistence", "gold", MetricStreakRecoveries, 2, 150, false},

	// Complexity
	{"complexity_5_first", "Boss Battle", "Complete your first complexity 5 task", "🐉", "complexity", "silver", MetricComplexity5Count, 1, 50, false},
	{"complexity_5_10", "Dragon Slayer", "Complete 10 complexity 5 tasks", "⚔️", "complexity", "gold", MetricComplexity5Count, 10, 200, false},
	{"complexity_5_50", "Legendary Hero", "Complete 50 complexity 5 tasks", "🏰", "complexity", "platinum", MetricComplexity5Count, 50, 500, false},

	// Daily challenges
	{"challenge_first", "Challenge Accepted", "Complete your first daily challenge", "🎯", "challenges", "bronze", MetricChallengesCompleted, 1, 25, false},
	{"challenge_7", "Challenge Streak", "Complete 7 daily challenges", "🔥", "challenges", "silver", MetricChallengesCompleted, 7, 100, false},
	{"challenge_30", "Challenge Champion", "Complete 30 daily challenges", "🏆", "challenges", "gold", MetricChallengesCompleted, 30, 300, false},

	// Secret
	{"midnight_warrior", "Midnight Warrior", "Complete a task in the dead of night", "🌑", "secret", "gold", MetricNightOwlCount, 1, 100, true},
	{"weekend_legend", "Weekend Legend", "Complete 50 tasks on weekends", "🏖️", "secret", "gold", MetricWeekendCount, 50, 200, true},
	{"monday_master", "Monday Master", "Complete 10 tasks on Mondays before noon", "📅", "secret", "silver", MetricMondayMorningCount, 10, 100, true},
	{"variety_king", "Jack of All Trades", "Complete 100 tasks across all 4 cognitive categories", "🃏", "secret", "platinum", MetricVariety, 100, 400, true},
	{"speed_run", "Speed Runner", "Complete 5 tasks in under 2 hours", "🏎️", "secret", "gold", MetricSprintCount, 5, 150, true},
}
