package entity

import "time"

// Cognitive load categories
const (
	LoadDeepWork   = "deep_work"
	LoadActiveWork = "active_work"
	LoadAdmin      = "admin"
	LoadLearning   = "learning"
)

// Daily task statuses
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusAbandoned  = "abandoned"
)

func CognitiveLoads() []string {
	return []string{LoadDeepWork, LoadActiveWork, LoadAdmin, LoadLearning}
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusAbandoned:
		return true
	}
	return false
}

type Task struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Complexity    int       `json:"complexity"`
	CognitiveLoad string    `json:"cognitive_load"`
	TimeEstimate  int       `json:"time_estimate"`
	ParentID      *int      `json:"parent_id"`
	Archived      bool      `json:"archived"`
	CreatedAt     time.Time `json:"created_at"`
}

// TaskOverview is a Task with subtask counters, used for list views.
type TaskOverview struct {
	Task
	SubtaskCount      int `json:"subtask_count"`
	SubtasksCompleted int `json:"subtasks_completed"`
}

type DailyTask struct {
	ID              int        `json:"id"`
	TaskID          int        `json:"task_id"`
	ScheduledDate   time.Time  `json:"scheduled_date"`
	Status          string     `json:"status"`
	RolledOverCount int        `json:"rolled_over_count"`
	PenaltyPoints   int        `json:"penalty_points"`
	ActualTime      *int       `json:"actual_time"`
	CompletedAt     *time.Time `json:"completed_at"`
	DisplayOrder    int        `json:"display_order"`
	Notes           string     `json:"notes"`
}

// DailyTaskDetail joins a daily task instance with its task template.
// All analytics and gamification engines consume these rows.
type DailyTaskDetail struct {
	DailyTask
	Title         string `json:"title"`
	Description   string `json:"description"`
	Complexity    int    `json:"complexity"`
	CognitiveLoad string `json:"cognitive_load"`
	TimeEstimate  int    `json:"time_estimate"`
	ParentID      *int   `json:"parent_id"`
	Points        int    `json:"points"`
	NetPoints     int    `json:"net_points"`
	IsSubtask     bool   `json:"is_subtask"`
}

type AchievementRecord struct {
	AchievementID string    `json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
	Points        int       `json:"points"`
}

type ChallengeEntry struct {
	Date        time.Time  `json:"date"`
	ChallengeID string     `json:"challenge_id"`
	BonusPoints int        `json:"bonus_points"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

type StreakInfo struct {
	CurrentStreak       int  `json:"current_streak"`
	LongestStreak       int  `json:"longest_streak"`
	IsRecord            bool `json:"is_record"`
	DaysToNextMilestone int  `json:"days_to_next_milestone"`
}

// DaySummary aggregates one day's scheduled instances.
type DaySummary struct {
	Date           time.Time `json:"date"`
	TotalTasks     int       `json:"total_tasks"`
	CompletedTasks int       `json:"completed_tasks"`
	CompletionRate float64   `json:"completion_rate"`
	PointsEarned   int       `json:"points_earned"`
	PenaltyPoints  int       `json:"penalty_points"`
	NetPoints      int       `json:"net_points"`
	TimePlanned    int       `json:"time_planned"`
	TimeSpent      int       `json:"time_spent"`
}
