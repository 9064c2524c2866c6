package service

import (
	"context"
	"time"

	"github.com/limbo/momentum/internal/achievement"
	"github.com/limbo/momentum/internal/analytics"
	"github.com/limbo/momentum/internal/challenge"
	"github.com/limbo/momentum/internal/gamification"
	"github.com/limbo/momentum/pkg/entity"
)

type CreateTaskRequest struct {
	Title         string `json:"title" validate:"required,min=1,max=200"`
	Description   string `json:"description" validate:"max=2000"`
	Complexity    int    `json:"complexity" validate:"required,min=1,max=5"`
	CognitiveLoad string `json:"cognitive_load" validate:"required,cognitive_load"`
	TimeEstimate  int    `json:"time_estimate" validate:"min=0,max=1440"`
	ParentID      *int   `json:"parent_id"`
}

type UpdateTaskRequest struct {
	Title         string `json:"title" validate:"required,min=1,max=200"`
	Description   string `json:"description" validate:"max=2000"`
	Complexity    int    `json:"complexity" validate:"required,min=1,max=5"`
	CognitiveLoad string `json:"cognitive_load" validate:"required,cognitive_load"`
	TimeEstimate  int    `json:"time_estimate" validate:"min=0,max=1440"`
	Archived      bool   `json:"archived"`
}

// QuickAddRequest creates a task and schedules it in one shot.
// Zero-valued fields fall back to a medium default.
type QuickAddRequest struct {
	Title         string `json:"title" validate:"required,min=1,max=200"`
	Complexity    int    `json:"complexity" validate:"min=0,max=5"`
	CognitiveLoad string `json:"cognitive_load" validate:"omitempty,cognitive_load"`
	TimeEstimate  int    `json:"time_estimate" validate:"min=0,max=1440"`
}

type StatusRequest struct {
	Status     string `json:"status" validate:"required,task_status"`
	ActualTime *int   `json:"actual_time" validate:"omitempty,min=1,max=1440"`
}

type TasksServiceI interface {
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*entity.Task, error)
	GetTask(ctx context.Context, id int) (*entity.Task, error)
	// ListTasks returns every template with subtask counters, newest first.
	ListTasks(ctx context.Context, includeArchived bool) ([]*entity.TaskOverview, error)
	UpdateTask(ctx context.Context, id int, req *UpdateTaskRequest) (*entity.Task, error)
	// SetTaskParent links a task under a parent, or detaches it when
	// parentID is nil. Only one level of nesting is allowed.
	SetTaskParent(ctx context.Context, id int, parentID *int) error
	DeleteTask(ctx context.Context, id int) error
}

// DayPlan is one day's schedule with its aggregate summary.
type DayPlan struct {
	Date    time.Time                 `json:"date"`
	Tasks   []*entity.DailyTaskDetail `json:"tasks"`
	Summary entity.DaySummary         `json:"summary"`
}

type RolloverResult struct {
	RolledOver []*entity.DailyTaskDetail `json:"rolled_over"`
	Skipped    int                       `json:"skipped"`
}

type ScheduleServiceI interface {
	GetDay(ctx context.Context, date time.Time) (*DayPlan, error)
	AddToDay(ctx context.Context, date time.Time, taskID int) (*entity.DailyTaskDetail, error)
	QuickAdd(ctx context.Context, date time.Time, req *QuickAddRequest) (*entity.DailyTaskDetail, error)
	ReorderDay(ctx context.Context, date time.Time, orderedIDs []int) error
	SetStatus(ctx context.Context, id int, req *StatusRequest) (*entity.DailyTaskDetail, error)
	RemoveFromDay(ctx context.Context, id int) error
	// ProcessRollover moves incomplete instances from one day to the
	// next, accruing escalating penalties on each hop.
	ProcessRollover(ctx context.Context, from, to time.Time) (*RolloverResult, error)
}

// UserStats is the gamification dashboard payload.
type UserStats struct {
	Progress            gamification.Progress `json:"progress"`
	Rank                gamification.Rank     `json:"rank"`
	NextMilestoneLevel  int                   `json:"next_milestone_level"`
	Streak              entity.StreakInfo     `json:"streak"`
	TotalCompleted      int                   `json:"total_completed"`
	TotalPoints         int                   `json:"total_points"`
	AchievementsEarned  int                   `json:"achievements_earned"`
	ChallengesCompleted int                   `json:"challenges_completed"`
}

type UnlockedAchievement struct {
	achievement.Definition
	Awarded    int       `json:"points_awarded"`
	UnlockedAt time.Time `json:"unlocked_at"`
}

type AchievementView struct {
	achievement.Definition
	Unlocked   bool                 `json:"unlocked"`
	UnlockedAt *time.Time           `json:"unlocked_at"`
	Progress   achievement.Progress `json:"progress"`
}

type AchievementsOverview struct {
	Achievements []*AchievementView `json:"achievements"`
	Unlocked     int                `json:"unlocked"`
	Total        int                `json:"total"`
	PointsEarned int                `json:"points_earned"`
}

type StatsServiceI interface {
	GetStreak(ctx context.Context) (*entity.StreakInfo, error)
	GetUserStats(ctx context.Context) (*UserStats, error)
	// CheckAchievements evaluates every definition against full history
	// and persists the newly earned ones. Calling it twice is harmless.
	CheckAchievements(ctx context.Context) ([]*UnlockedAchievement, error)
	ListAchievements(ctx context.Context) (*AchievementsOverview, error)
}

// ChallengeStatus is the daily challenge with completion state.
// JustCompleted is true only on the call that flipped it.
type ChallengeStatus struct {
	Challenge     challenge.Definition     `json:"challenge"`
	Difficulty    challenge.DifficultyInfo `json:"difficulty"`
	Date          time.Time                `json:"date"`
	BonusPoints   int                      `json:"bonus_points"`
	Completed     bool                     `json:"completed"`
	JustCompleted bool                     `json:"just_completed"`
	CompletedAt   *time.Time               `json:"completed_at"`
}

type ChallengeServiceI interface {
	// GetDaily returns the challenge rolled for a date, rolling and
	// persisting one on first call, and re-evaluates completion.
	GetDaily(ctx context.Context, date time.Time) (*ChallengeStatus, error)
}

// PeriodSummary aggregates a sliding window of day summaries.
type PeriodSummary struct {
	From           time.Time           `json:"from"`
	To             time.Time           `json:"to"`
	Days           []entity.DaySummary `json:"days"`
	TotalTasks     int                 `json:"total_tasks"`
	CompletedTasks int                 `json:"completed_tasks"`
	CompletionRate float64             `json:"completion_rate"`
	NetPoints      int                 `json:"net_points"`
	BestDay        *entity.DaySummary  `json:"best_day"`
}

type AnalyticsServiceI interface {
	Trends(ctx context.Context, days int) (*analytics.TrendReport, error)
	Insights(ctx context.Context, days int) (*analytics.InsightReport, error)
	Burnout(ctx context.Context, days int) (*analytics.BurnoutReport, error)
	Summary(ctx context.Context, days int) (*PeriodSummary, error)
}

type QuoteResponse struct {
	Quote string `json:"quote"`
}

type QuoteServiceI interface {
	// DailyQuote picks a context-aware quote, avoiding recent repeats
	// tracked per session.
	DailyQuote(ctx context.Context, session string) (*QuoteResponse, error)
}
