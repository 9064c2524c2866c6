package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/service"
	"github.com/limbo/momentum/pkg/entity"
)

// dailyRepoMock is an in-memory schedule honoring the same
// constraints the real table enforces.
type dailyRepoMock struct {
	state  mockState
	nextID int
	rows   []*entity.DailyTaskDetail
}

func newDailyRepoMock() *dailyRepoMock {
	return &dailyRepoMock{nextID: 1}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (drmock *dailyRepoMock) seed(taskID int, date time.Time, status string, rolled int, penalty int, complexity int, load string, estimate int, completedAt *time.Time) *entity.DailyTaskDetail {
	row := &entity.DailyTaskDetail{
		DailyTask: entity.DailyTask{
			ID:              drmock.nextID,
			TaskID:          taskID,
			ScheduledDate:   date,
			Status:          status,
			RolledOverCount: rolled,
			PenaltyPoints:   penalty,
			CompletedAt:     completedAt,
			DisplayOrder:    len(drmock.rows),
		},
		Title:         "seeded task",
		Complexity:    complexity,
		CognitiveLoad: load,
		TimeEstimate:  estimate,
	}
	drmock.nextID++
	drmock.rows = append(drmock.rows, row)
	return row
}

func (drmock *dailyRepoMock) Schedule(ctx context.Context, dt *entity.DailyTask) (int, error) {
	switch drmock.state {
	case stateDBError:
		return 0, errors.New("db error")
	case stateTaskNotFoundError:
		return 0, errorvalues.ErrTaskNotFound
	}
	for _, row := range drmock.rows {
		if row.TaskID == dt.TaskID && sameDay(row.ScheduledDate, dt.ScheduledDate) {
			return 0, errorvalues.ErrAlreadyScheduled
		}
	}
	row := &entity.DailyTaskDetail{
		DailyTask: entity.DailyTask{
			ID:              drmock.nextID,
			TaskID:          dt.TaskID,
			ScheduledDate:   dt.ScheduledDate,
			Status:          dt.Status,
			RolledOverCount: dt.RolledOverCount,
			PenaltyPoints:   dt.PenaltyPoints,
			DisplayOrder:    dt.DisplayOrder,
			Notes:           dt.Notes,
		},
		Title:         testTask.Title,
		Complexity:    testTask.Complexity,
		CognitiveLoad: testTask.CognitiveLoad,
		TimeEstimate:  testTask.TimeEstimate,
	}
	drmock.nextID++
	drmock.rows = append(drmock.rows, row)
	return row.ID, nil
}

func (drmock *dailyRepoMock) GetByDate(ctx context.Context, date time.Time) ([]*entity.DailyTaskDetail, error) {
	if drmock.state == stateDBError {
		return nil, errors.New("db error")
	}
	result := make([]*entity.DailyTaskDetail, 0)
	for _, row := range drmock.rows {
		if sameDay(row.ScheduledDate, date) {
			result = append(result, row)
		}
	}
	return result, nil
}

func (drmock *dailyRepoMock) GetByID(ctx context.Context, id int) (*entity.DailyTaskDetail, error) {
	switch drmock.state {
	case stateDBError:
		return nil, errors.New("db error")
	case stateDailyTaskNotFoundError:
		return nil, errorvalues.ErrDailyTaskNotFound
	}
	for _, row := range drmock.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return nil, errorvalues.ErrDailyTaskNotFound
}

func (drmock *dailyRepoMock) GetRange(ctx context.Context, from, to time.Time) ([]*entity.DailyTaskDetail, error) {
	if drmock.state == stateDBError {
		return nil, errors.New("db error")
	}
	result := make([]*entity.DailyTaskDetail, 0)
	for _, row := range drmock.rows {
		if !row.ScheduledDate.Before(from) && !row.ScheduledDate.After(to) {
			result = append(result, row)
		}
	}
	return result, nil
}

func (drmock *dailyRepoMock) GetAll(ctx context.Context) ([]*entity.DailyTaskDetail, error) {
	if drmock.state == stateDBError {
		return nil, errors.New("db error")
	}
	return drmock.rows, nil
}

func (drmock *dailyRepoMock) UpdateStatus(ctx context.Context, id int, status string, actualTime *int, completedAt *time.Time) error {
	switch drmock.state {
	case stateDBError:
		return errors.New("db error")
	case stateDailyTaskNotFoundError:
		return errorvalues.ErrDailyTaskNotFound
	}
	for _, row := range drmock.rows {
		if row.ID == id {
			row.Status = status
			row.ActualTime = actualTime
			row.CompletedAt = completedAt
			return nil
		}
	}
	return errorvalues.ErrDailyTaskNotFound
}

func (drmock *dailyRepoMock) MarkRolledOver(ctx context.Context, id int) error {
	if drmock.state == stateDBError {
		return errors.New("db error")
	}
	for _, row := range drmock.rows {
		if row.ID == id {
			row.Status = entity.StatusAbandoned
			return nil
		}
	}
	return errorvalues.ErrDailyTaskNotFound
}

func (drmock *dailyRepoMock) Reorder(ctx context.Context, date time.Time, orderedIDs []int) error {
	if drmock.state == stateDBError {
		return errors.New("db error")
	}
	for position, id := range orderedIDs {
		found := false
		for _, row := range drmock.rows {
			if row.ID == id && sameDay(row.ScheduledDate, date) {
				row.DisplayOrder = position
				found = true
			}
		}
		if !found {
			return errorvalues.ErrDailyTaskNotFound
		}
	}
	return nil
}

func (drmock *dailyRepoMock) Delete(ctx context.Context, id int) error {
	if drmock.state == stateDBError {
		return errors.New("db error")
	}
	for i, row := range drmock.rows {
		if row.ID == id {
			drmock.rows = append(drmock.rows[:i], drmock.rows[i+1:]...)
			return nil
		}
	}
	return errorvalues.ErrDailyTaskNotFound
}

var scheduleDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func TestGetDay(t *testing.T) {
	tasksMock := &tasksRepoMock{state: stateSuccess}
	dailyMock := newDailyRepoMock()
	completedAt := scheduleDate.Add(9 * time.Hour)
	actual := 50
	done := dailyMock.seed(1, scheduleDate, entity.StatusCompleted, 0, 0, 3, entity.LoadDeepWork, 60, &completedAt)
	done.ActualTime = &actual
	dailyMock.seed(2, scheduleDate, entity.StatusPending, 1, 3, 1, entity.LoadAdmin, 30, nil)
	s := service.NewScheduleService(tasksMock, dailyMock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		plan, err := s.GetDay(ctx, scheduleDate)
		assert.NoError(t, err)
		assert.Equal(t, 2, len(plan.Tasks))
		// (3*10 + 2*5) * 2.0
		assert.Equal(t, 80, plan.Tasks[0].Points)
		assert.Equal(t, 80, plan.Tasks[0].NetPoints)
		// pending task carries only its penalty
		assert.Equal(t, -3, plan.Tasks[1].NetPoints)
		assert.Equal(t, 2, plan.Summary.TotalTasks)
		assert.Equal(t, 1, plan.Summary.CompletedTasks)
		assert.InDelta(t, 0.5, plan.Summary.CompletionRate, 0.001)
		assert.Equal(t, 80, plan.Summary.PointsEarned)
		assert.Equal(t, 3, plan.Summary.PenaltyPoints)
		assert.Equal(t, 77, plan.Summary.NetPoints)
		assert.Equal(t, 90, plan.Summary.TimePlanned)
		assert.Equal(t, 50, plan.Summary.TimeSpent)
	})
	t.Run("db error", func(t *testing.T) {
		dailyMock.state = stateDBError
		_, err := s.GetDay(ctx, scheduleDate)
		assert.Error(t, err)
	})
}

func TestAddToDay(t *testing.T) {
	tasksMock := &tasksRepoMock{state: stateSuccess}
	dailyMock := newDailyRepoMock()
	s := service.NewScheduleService(tasksMock, dailyMock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		row, err := s.AddToDay(ctx, scheduleDate, testTask.ID)
		assert.NoError(t, err)
		assert.Equal(t, testTask.ID, row.TaskID)
		assert.Equal(t, entity.StatusPending, row.Status)
		assert.Equal(t, 80, row.Points)
	})
	t.Run("already scheduled", func(t *testing.T) {
		_, err := s.AddToDay(ctx, scheduleDate, testTask.ID)
		assert.ErrorIs(t, err, errorvalues.ErrAlreadyScheduled)
	})
	t.Run("unknown task", func(t *testing.T) {
		tasksMock.state = stateTaskNotFoundError
		_, err := s.AddToDay(ctx, scheduleDate, 404)
		assert.ErrorIs(t, err, errorvalues.ErrTaskNotFound)
	})
}

func TestQuickAdd(t *testing.T) {
	service.InitValidator()
	tasksMock := &tasksRepoMock{state: stateSuccess}
	dailyMock := newDailyRepoMock()
	s := service.NewScheduleService(tasksMock, dailyMock)
	ctx := context.Background()
	t.Run("success with defaults", func(t *testing.T) {
		row, err := s.QuickAdd(ctx, scheduleDate, &service.QuickAddRequest{Title: "inbox zero"})
		assert.NoError(t, err)
		assert.Equal(t, entity.StatusPending, row.Status)
	})
	t.Run("validation error", func(t *testing.T) {
		_, err := s.QuickAdd(ctx, scheduleDate, &service.QuickAddRequest{})
		assert.Error(t, err)
	})
}

func TestSetStatus(t *testing.T) {
	service.InitValidator()
	tasksMock := &tasksRepoMock{state: stateSuccess}
	dailyMock := newDailyRepoMock()
	row := dailyMock.seed(1, scheduleDate, entity.StatusPending, 0, 0, 3, entity.LoadDeepWork, 60, nil)
	s := service.NewScheduleService(tasksMock, dailyMock)
	ctx := context.Background()
	t.Run("complete", func(t *testing.T) {
		actual := 45
		updated, err := s.SetStatus(ctx, row.ID, &service.StatusRequest{
			Status:     entity.StatusCompleted,
			ActualTime: &actual,
		})
		assert.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, updated.Status)
		assert.NotNil(t, updated.CompletedAt)
		assert.Equal(t, 45, *updated.ActualTime)
		assert.Equal(t, 80, updated.NetPoints)
	})
	t.Run("reopen clears completion", func(t *testing.T) {
		updated, err := s.SetStatus(ctx, row.ID, &service.StatusRequest{Status: entity.StatusPending})
		assert.NoError(t, err)
		assert.Equal(t, entity.StatusPending, updated.Status)
		assert.Nil(t, updated.CompletedAt)
		assert.Nil(t, updated.ActualTime)
	})
	t.Run("validation error: unknown status", func(t *testing.T) {
		_, err := s.SetStatus(ctx, row.ID, &service.StatusRequest{Status: "paused"})
		assert.Error(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		_, err := s.SetStatus(ctx, 404, &service.StatusRequest{Status: entity.StatusCompleted})
		assert.ErrorIs(t, err, errorvalues.ErrDailyTaskNotFound)
	})
}

func TestProcessRollover(t *testing.T) {
	tasksMock := &tasksRepoMock{state: stateSuccess}
	dailyMock := newDailyRepoMock()
	nextDay := scheduleDate.AddDate(0, 0, 1)
	completedAt := scheduleDate.Add(9 * time.Hour)
	dailyMock.seed(1, scheduleDate, entity.StatusCompleted, 0, 0, 3, entity.LoadDeepWork, 60, &completedAt)
	pending := dailyMock.seed(2, scheduleDate, entity.StatusPending, 0, 0, 2, entity.LoadAdmin, 30, nil)
	twiceRolled := dailyMock.seed(3, scheduleDate, entity.StatusInProgress, 2, 7, 1, entity.LoadActiveWork, 15, nil)
	s := service.NewScheduleService(tasksMock, dailyMock)
	ctx := context.Background()
	t.Run("rolls incomplete tasks with escalating penalties", func(t *testing.T) {
		result, err := s.ProcessRollover(ctx, scheduleDate, nextDay)
		assert.NoError(t, err)
		assert.Equal(t, 2, len(result.RolledOver))
		assert.Equal(t, 0, result.Skipped)
		first := result.RolledOver[0]
		assert.Equal(t, 1, first.RolledOverCount)
		assert.Equal(t, 3, first.PenaltyPoints)
		second := result.RolledOver[1]
		assert.Equal(t, 3, second.RolledOverCount)
		// 3 + 4.5 + 6.75, truncated
		assert.Equal(t, 14, second.PenaltyPoints)
		// source instances are closed out
		assert.Equal(t, entity.StatusAbandoned, pending.Status)
		assert.Equal(t, entity.StatusAbandoned, twiceRolled.Status)
	})
	t.Run("second run has nothing to move", func(t *testing.T) {
		result, err := s.ProcessRollover(ctx, scheduleDate, nextDay)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(result.RolledOver))
	})
	t.Run("conflict on target day leaves source untouched", func(t *testing.T) {
		again := dailyMock.seed(2, scheduleDate, entity.StatusPending, 0, 0, 2, entity.LoadAdmin, 30, nil)
		result, err := s.ProcessRollover(ctx, scheduleDate, nextDay)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(result.RolledOver))
		assert.Equal(t, 1, result.Skipped)
		assert.Equal(t, entity.StatusPending, again.Status)
	})
	t.Run("target must follow source", func(t *testing.T) {
		_, err := s.ProcessRollover(ctx, nextDay, scheduleDate)
		assert.Error(t, err)
	})
}
