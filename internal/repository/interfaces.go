package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/momentum/pkg/entity"
)

type TasksRepositoryI interface {
	// Creates new task. Only Title, Complexity, CognitiveLoad, TimeEstimate are necessary
	Create(ctx context.Context, task *entity.Task) (int, error)
	// Searches task with given id
	GetByID(ctx context.Context, id int) (*entity.Task, error)
	// Lists tasks with subtask counters, archived ones optionally included
	List(ctx context.Context, includeArchived bool) ([]*entity.TaskOverview, error)
	// Updates task by ID (ID in task is necessary)
	Update(ctx context.Context, task *entity.Task) error
	// Sets or clears the parent of a task
	SetParent(ctx context.Context, id int, parentID *int) error
	// Counts direct subtasks of a task
	CountSubtasks(ctx context.Context, id int) (int, error)
	// Deletes task with id together with its daily instances
	Delete(ctx context.Context, id int) error
}

type DailyTasksRepositoryI interface {
	// Schedules a task instance on a date
	Schedule(ctx context.Context, dt *entity.DailyTask) (int, error)
	// Provides instances of a date joined with their task templates
	GetByDate(ctx context.Context, date time.Time) ([]*entity.DailyTaskDetail, error)
	// Searches instance with given id
	GetByID(ctx context.Context, id int) (*entity.DailyTaskDetail, error)
	// Provides instances scheduled in [from, to]
	GetRange(ctx context.Context, from, to time.Time) ([]*entity.DailyTaskDetail, error)
	// Provides the full instance history
	GetAll(ctx context.Context) ([]*entity.DailyTaskDetail, error)
	// Updates instance status together with actual time and completion timestamp
	UpdateStatus(ctx context.Context, id int, status string, actualTime *int, completedAt *time.Time) error
	// Marks a source instance rolled over and abandoned
	MarkRolledOver(ctx context.Context, id int) error
	// Rewrites display order of a date's instances
	Reorder(ctx context.Context, date time.Time, orderedIDs []int) error
	// Removes instance with id
	Delete(ctx context.Context, id int) error
}

type AchievementsRepositoryI interface {
	// Persists a new unlock
	Unlock(ctx context.Context, rec *entity.AchievementRecord) error
	// Lists every unlock
	GetAll(ctx context.Context) ([]*entity.AchievementRecord, error)
}

type ChallengesRepositoryI interface {
	// Persists the challenge selected for a date
	Create(ctx context.Context, entry *entity.ChallengeEntry) error
	// Searches the challenge entry of a date
	GetByDate(ctx context.Context, date time.Time) (*entity.ChallengeEntry, error)
	// Lists entries selected since a date, newest first
	GetSince(ctx context.Context, since time.Time) ([]*entity.ChallengeEntry, error)
	// Marks a date's challenge completed
	MarkCompleted(ctx context.Context, date time.Time, at time.Time) error
	// Lists dates with a completed challenge
	CompletedDates(ctx context.Context) ([]time.Time, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
