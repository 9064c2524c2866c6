// Package challenge selects and verifies the one daily challenge.
// Definitions are static data; per-date state lives in challenge
// history rows.
package challenge

// Requirement types dispatched by the completion checker.
const (
	ReqTaskCount           = "task_count"
	ReqCognitiveCount      = "cognitive_count"
	ReqCognitiveTime       = "cognitive_time"
	ReqClearCategory       = "clear_category"
	ReqAllCategories       = "all_categories"
	ReqCategoryCount       = "category_count"
	ReqDailyPoints         = "daily_points"
	ReqZeroPenalties       = "zero_penalties"
	ReqPositiveNet         = "positive_net"
	ReqPerfectCompletion   = "perfect_completion"
	ReqClearRollover       = "clear_rollover"
	ReqClearAllRollovers   = "clear_all_rollovers"
	ReqNoRollovers         = "no_rollovers"
	ReqMaintainStreak      = "maintain_streak"
	ReqExtendStreak        = "extend_streak"
	ReqWeekendTasks        = "weekend_tasks"
	ReqMondayTasks         = "monday_tasks"
	ReqFridayClear         = "friday_clear"
	ReqCompleteBeforeHour  = "complete_before_hour"
	ReqTasksBeforeHour     = "tasks_before_hour"
	ReqAllBeforeHour       = "all_before_hour"
	ReqCompleteAfterHour   = "complete_after_hour"
	ReqWithinEstimate      = "within_estimate"
	ReqBeatEstimate        = "beat_estimate"
	ReqFirstTaskQuick      = "first_task_quick"
	ReqSprint              = "sprint"
	ReqBeatYesterday       = "beat_yesterday"
	ReqBeatAverage         = "beat_average"
	ReqBreakRecovery       = "break_recovery"
	ReqComplexityTask      = "complexity_task"
	ReqHighComplexityCount = "high_complexity_count"
	ReqLowComplexityCount  = "low_complexity_count"
	ReqComplexityVariety   = "complexity_variety"
	ReqMinComplexityDay    = "min_complexity_day"
)

type Requirement struct {
	Type       string `json:"type"`
	Load       string `json:"load,omitempty"`
	Count      int    `json:"count,omitempty"`
	Minutes    int    `json:"minutes,omitempty"`
	Points     int    `json:"points,omitempty"`
	Hour       int    `json:"hour,omitempty"`
	Hours      int    `json:"hours,omitempty"`
	Percentage int    `json:"percentage,omitempty"`
	Complexity int    `json:"complexity,omitempty"`
}

type DifficultyInfo struct {
	MinBonus int    `json:"min_bonus"`
	MaxBonus int    `json:"max_bonus"`
	Color    string `json:"color"`
}

var Difficulties = map[string]DifficultyInfo{
	"easy":   {25, 40, "green"},
	"medium": {45, 70, "blue"},
	"hard":   {75, 100, "purple"},
	"epic":   {110, 150, "gold"},
}

type Definition struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Category    string      `json:"category"`
	Difficulty  string      `json:"difficulty"`
	Requirement Requirement `json:"requirement"`
	Tags        []string    `json:"tags"`
}

var Definitions = []Definition{
	// Cognitive load
	{"deep_work_1h", "Deep Focus Session", "Complete 1 hour of deep work tasks", "🧠", "cognitive", "easy",
		Requirement{Type: ReqCognitiveTime, Load: "deep_work", Minutes: 60}, []string{"focus", "deep_work"}},
	{"deep_work_2h", "Deep Work Marathon", "Complete 2 hours of deep work tasks", "🧠", "cognitive", "medium",
		Requirement{Type: ReqCognitiveTime, Load: "deep_work", Minutes: 120}, []string{"focus", "deep_work"}},
	{"deep_work_3_tasks", "Triple Focus", "Complete 3 deep work tasks", "🎯", "cognitive", "hard",
		Requirement{Type: ReqCognitiveCount, Load: "deep_work", Count: 3}, []string{"focus", "deep_work"}},
	{"admin_blitz", "Admin Blitz", "Clear all your admin tasks today", "📋", "cognitive", "medium",
		Requirement{Type: ReqClearCategory, Load: "admin"}, []string{"admin", "cleanup"}},
	{"learning_hour", "Knowledge Seeker", "Spend 1 hour on learning tasks", "📚", "cognitive", "easy",
		Requirement{Type: ReqCognitiveTime, Load: "learning", Minutes: 60}, []string{"learning", "growth"}},
	{"active_work_5", "Action Hero", "Complete 5 active work tasks", "⚡", "cognitive", "medium",
		Requirement{Type: ReqCognitiveCount, Load: "active_work", Count: 5}, []string{"active_work", "productivity"}},
	{"balance_master", "Balance Master", "Complete tasks from all 4 cognitive categories", "⚖️", "cognitive", "hard",
		Requirement{Type: ReqAllCategories}, []string{"balance", "variety"}},
	{"cognitive_diversity", "Mind Mixer", "Complete tasks from at least 3 different categories", "🎨", "cognitive", "medium",
		Requirement{Type: ReqCategoryCount, Count: 3}, []string{"balance", "variety"}},

	// Quantity
	{"three_tasks", "Triple Threat", "Complete 3 tasks today", "3️⃣", "quantity", "easy",
		Requirement{Type: ReqTaskCount, Count: 3}, []string{"quantity", "beginner"}},
	{"five_tasks", "High Five", "Complete 5 tasks today", "🖐️", "quantity", "medium",
		Requirement{Type: ReqTaskCount, Count: 5}, []string{"quantity", "productive"}},
	{"seven_tasks", "Lucky Seven", "Complete 7 tasks today", "🍀", "quantity", "hard",
		Requirement{Type: ReqTaskCount, Count: 7}, []string{"quantity", "ambitious"}},
	{"ten_tasks", "Perfect Ten", "Complete 10 tasks in one day", "🔟", "quantity", "epic",
		Requirement{Type: ReqTaskCount, Count: 10}, []string{"quantity", "epic"}},
	{"first_task_quick", "Quick Start", "Finish your first task in under 30 minutes", "🚀", "quantity", "easy",
		Requirement{Type: ReqFirstTaskQuick, Minutes: 30}, []string{"speed", "momentum"}},
	{"double_yesterday", "Double Up", "Complete more tasks than yesterday", "📈", "quantity", "medium",
		Requirement{Type: ReqBeatYesterday}, []string{"improvement", "growth"}},
	{"task_sprint", "Task Sprint", "Complete 3 tasks in 2 hours", "🏃", "quantity", "hard",
		Requirement{Type: ReqSprint, Count: 3, Hours: 2}, []string{"speed", "focus"}},
	{"minimum_viable", "Minimum Viable Day", "Complete at least 1 task (perfect for tough days)", "✅", "quantity", "easy",
		Requirement{Type: ReqTaskCount, Count: 1}, []string{"easy", "recovery"}},

	// Points
	{"earn_50_points", "Half Century", "Earn 50 points today", "🪙", "points", "easy",
		Requirement{Type: ReqDailyPoints, Points: 50}, []string{"points", "beginner"}},
	{"earn_100_points", "Century Club", "Earn 100 points today", "💯", "points", "medium",
		Requirement{Type: ReqDailyPoints, Points: 100}, []string{"points", "ambitious"}},
	{"earn_150_points", "Point Crusher", "Earn 150 points today", "💎", "points", "hard",
		Requirement{Type: ReqDailyPoints, Points: 150}, []string{"points", "hard"}},
	{"earn_200_points", "Point Legend", "Earn 200 points in a single day", "👑", "points", "epic",
		Requirement{Type: ReqDailyPoints, Points: 200}, []string{"points", "epic"}},
	{"no_penalties", "Clean Slate", "Complete all tasks with zero penalties", "✨", "points", "medium",
		Requirement{Type: ReqZeroPenalties}, []string{"quality", "focus"}},
	{"positive_net", "Positive Vibes", "End the day with positive net points", "📊", "points", "easy",
		Requirement{Type: ReqPositiveNet}, []string{"points", "balance"}},

	// Time of day
	{"early_bird", "Early Bird", "Complete a task before 9 AM", "🌅", "time", "medium",
		Requirement{Type: ReqCompleteBeforeHour, Hour: 9}, []string{"morning", "early"}},
	{"super_early_bird", "Dawn Warrior", "Complete a task before 7 AM", "🌄", "time", "hard",
		Requirement{Type: ReqCompleteBeforeHour, Hour: 7}, []string{"morning", "extreme"}},
	{"finish_by_noon", "Morning Crusher", "Complete 3 tasks before noon", "☀️", "time", "medium",
		Requirement{Type: ReqTasksBeforeHour, Hour: 12, Count: 3}, []string{"morning", "productive"}},
	{"finish_by_5pm", "Work-Life Balance", "Complete all tasks before 5 PM", "🏠", "time", "hard",
		Requirement{Type: ReqAllBeforeHour, Hour: 17}, []string{"balance", "efficiency"}},
	{"night_owl", "Night Owl", "Complete a task after 9 PM", "🦉", "time", "easy",
		Requirement{Type: ReqCompleteAfterHour, Hour: 21}, []string{"evening", "night"}},
	{"time_boxer", "Time Boxer", "Complete a task within its estimated time", "⏱️", "time", "medium",
		Requirement{Type: ReqWithinEstimate}, []string{"efficiency", "planning"}},
	{"speed_demon", "Speed Demon", "Complete a task 25% faster than estimated", "⚡", "time", "hard",
		Requirement{Type: ReqBeatEstimate, Percentage: 25}, []string{"speed", "efficiency"}},

	// Streaks and consistency
	{"keep_streak", "Streak Guardian", "Complete at least 1 task to maintain your streak", "🔥", "streak", "easy",
		Requirement{Type: ReqMaintainStreak}, []string{"streak", "consistency"}},
	{"streak_builder", "Streak Builder", "Extend your streak by completing 2+ tasks", "🔥", "streak", "medium",
		Requirement{Type: ReqExtendStreak, Count: 2}, []string{"streak", "growth"}},
	{"weekend_warrior", "Weekend Warrior", "Complete 3 tasks on the weekend", "🏆", "streak", "medium",
		Requirement{Type: ReqWeekendTasks, Count: 3}, []string{"weekend", "dedication"}},
	{"monday_momentum", "Monday Momentum", "Start the week strong with 4+ completed tasks", "💪", "streak", "medium",
		Requirement{Type: ReqMondayTasks, Count: 4}, []string{"monday", "start"}},
	{"friday_finish", "Friday Finisher", "Clear your task list before the weekend", "🎉", "streak", "hard",
		Requirement{Type: ReqFridayClear}, []string{"friday", "completion"}},

	// Complexity
	{"complexity_5", "Boss Battle", "Complete a complexity 5 task", "🐉", "complexity", "hard",
		Requirement{Type: ReqComplexityTask, Complexity: 5}, []string{"hard", "challenge"}},
	{"complexity_average_4", "Challenge Seeker", "Complete 3 tasks with complexity 4 or higher", "🎮", "complexity", "epic",
		Requirement{Type: ReqHighComplexityCount, Complexity: 4, Count: 3}, []string{"hard", "ambitious"}},
	{"easy_wins", "Easy Wins", "Complete 5 complexity 1-2 tasks (momentum builder)", "🎯", "complexity", "easy",
		Requirement{Type: ReqLowComplexityCount, Complexity: 2, Count: 5}, []string{"easy", "momentum"}},
	{"complexity_variety", "Complexity Explorer", "Complete tasks of 3 different complexity levels", "🌈", "complexity", "medium",
		Requirement{Type: ReqComplexityVariety, Count: 3}, []string{"variety", "balance"}},
	{"no_easy_mode", "No Easy Mode", "Complete only tasks with complexity 3+", "💎", "complexity", "hard",
		Requirement{Type: ReqMinComplexityDay, Complexity: 3}, []string{"hard", "focus"}},

	// Special and comeback
	{"perfect_day", "Perfect Day", "Complete 100% of your scheduled tasks", "🌟", "special", "hard",
		Requirement{Type: ReqPerfectCompletion}, []string{"perfect", "completion"}},
	{"comeback_kid", "Comeback Kid", "Clear a task that was rolled over", "💪", "special", "medium",
		Requirement{Type: ReqClearRollover}, []string{"comeback", "persistence"}},
	{"rollover_slayer", "Rollover Slayer", "Clear all rolled over tasks", "⚔️", "special", "hard",
		Requirement{Type: ReqClearAllRollovers}, []string{"comeback", "cleanup"}},
	{"fresh_start", "Fresh Start", "Complete a task after missing yesterday", "🌱", "special", "easy",
		Requirement{Type: ReqBreakRecovery}, []string{"recovery", "restart"}},
	{"overachiever", "Overachiever", "Complete more than your daily average", "🚀", "special", "medium",
		Requirement{Type: ReqBeatAverage}, []string{"growth", "improvement"}},
	{"zen_master", "Zen Master", "Complete tasks without any rolled over from previous days", "🧘", "special", "medium",
		Requirement{Type: ReqNoRollovers}, []string{"clean", "focus"}},
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
