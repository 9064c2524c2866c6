package service

import (
	"context"
	"errors"
	"log"
	"time"

	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/metrics"
	"github.com/limbo/momentum/internal/repository"
	"github.com/limbo/momentum/internal/scoring"
	"github.com/limbo/momentum/pkg/entity"
)

// Quick-add defaults for fields the request leaves zero.
const (
	quickAddComplexity = 2
	quickAddLoad       = entity.LoadActiveWork
	quickAddEstimate   = 30
)

type ScheduleService struct {
	tasksRepo repository.TasksRepositoryI
	dailyRepo repository.DailyTasksRepositoryI
}

func NewScheduleService(tasksRepo repository.TasksRepositoryI, dailyRepo repository.DailyTasksRepositoryI) *ScheduleService {
	if tasksRepo == nil || dailyRepo == nil {
		log.Fatal("on schedule service provided nil repos")
	}
	return &ScheduleService{
		tasksRepo: tasksRepo,
		dailyRepo: dailyRepo,
	}
}

func (ss *ScheduleService) GetDay(ctx context.Context, date time.Time) (*DayPlan, error) {
	rows, err := ss.dailyRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, errors.New("daily tasks repository error: " + err.Error())
	}
	for _, row := range rows {
		decorate(row)
	}
	return &DayPlan{
		Date:    date,
		Tasks:   rows,
		Summary: summarize(date, rows),
	}, nil
}

func (ss *ScheduleService) AddToDay(ctx context.Context, date time.Time, taskID int) (*entity.DailyTaskDetail, error) {
	task, err := ss.tasksRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	existing, err := ss.dailyRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, errors.New("daily tasks repository error: " + err.Error())
	}
	id, err := ss.dailyRepo.Schedule(ctx, &entity.DailyTask{
		TaskID:        task.ID,
		ScheduledDate: date,
		Status:        entity.StatusPending,
		DisplayOrder:  len(existing),
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAlreadyScheduled):
			return nil, err
		case errors.Is(err, errorvalues.ErrTaskNotFound):
			return nil, err
		}
		return nil, errors.New("daily tasks repository error: " + err.Error())
	}
	return ss.getDetail(ctx, id)
}

func (ss *ScheduleService) QuickAdd(ctx context.Context, date time.Time, req *QuickAddRequest) (*entity.DailyTaskDetail, error) {
	if err := validateRequest(*req); err != nil {
		return nil, err
	}
	if req.Complexity == 0 {
		req.Complexity = quickAddComplexity
	}
	if req.CognitiveLoad == "" {
		req.CognitiveLoad = quickAddLoad
	}
	if req.TimeEstimate == 0 {
		req.TimeEstimate = quickAddEstimate
	}
	taskID, err := ss.tasksRepo.Create(ctx, &entity.Task{
		Title:         req.Title,
		Complexity:    req.Complexity,
		CognitiveLoad: req.CognitiveLoad,
		TimeEstimate:  req.TimeEstimate,
	})
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	metrics.RecordTaskCreated(req.CognitiveLoad)
	return ss.AddToDay(ctx, date, taskID)
}

func (ss *ScheduleService) ReorderDay(ctx context.Context, date time.Time, orderedIDs []int) error {
	if len(orderedIDs) == 0 {
		return nil
	}
	err := ss.dailyRepo.Reorder(ctx, date, orderedIDs)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDailyTaskNotFound) {
			return err
		}
		return errors.New("daily tasks repository error: " + err.Error())
	}
	return nil
}

func (ss *ScheduleService) SetStatus(ctx context.Context, id int, req *StatusRequest) (*entity.DailyTaskDetail, error) {
	if err := validateRequest(*req); err != nil {
		return nil, err
	}
	row, err := ss.getDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	var completedAt *time.Time
	var actualTime *int
	if req.Status == entity.StatusCompleted {
		now := time.Now()
		completedAt = &now
		actualTime = req.ActualTime
		if row.CompletedAt != nil {
			// Re-completing keeps the original timestamp.
			completedAt = row.CompletedAt
		}
	}
	err = ss.dailyRepo.UpdateStatus(ctx, id, req.Status, actualTime, completedAt)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDailyTaskNotFound) {
			return nil, err
		}
		return nil, errors.New("daily tasks repository error: " + err.Error())
	}
	if req.Status == entity.StatusCompleted && row.Status != entity.StatusCompleted {
		metrics.RecordTaskCompleted(row.CognitiveLoad)
	}
	return ss.getDetail(ctx, id)
}

func (ss *ScheduleService) RemoveFromDay(ctx context.Context, id int) error {
	err := ss.dailyRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDailyTaskNotFound) {
			return err
		}
		return errors.New("daily tasks repository error: " + err.Error())
	}
	return nil
}

func (ss *ScheduleService) ProcessRollover(ctx context.Context, from, to time.Time) (*RolloverResult, error) {
	if !to.After(from) {
		return nil, errors.New("rollover target must come after the source day")
	}
	rows, err := ss.dailyRepo.GetByDate(ctx, from)
	if err != nil {
		return nil, errors.New("daily tasks repository error: " + err.Error())
	}
	result := RolloverResult{
		RolledOver: make([]*entity.DailyTaskDetail, 0),
	}
	for _, row := range rows {
		if row.Status == entity.StatusCompleted || row.Status == entity.StatusAbandoned {
			continue
		}
		count := row.RolledOverCount + 1
		id, err := ss.dailyRepo.Schedule(ctx, &entity.DailyTask{
			TaskID:          row.TaskID,
			ScheduledDate:   to,
			Status:          entity.StatusPending,
			RolledOverCount: count,
			PenaltyPoints:   scoring.RolloverPenalty(count),
			DisplayOrder:    row.DisplayOrder,
			Notes:           row.Notes,
		})
		if err != nil {
			// Already scheduled on the target day: leave the source
			// instance alone so nothing is double-penalized.
			if errors.Is(err, errorvalues.ErrAlreadyScheduled) {
				result.Skipped++
				continue
			}
			return nil, errors.New("daily tasks repository error: " + err.Error())
		}
		if err = ss.dailyRepo.MarkRolledOver(ctx, row.ID); err != nil {
			return nil, errors.New("daily tasks repository error: " + err.Error())
		}
		moved, err := ss.getDetail(ctx, id)
		if err != nil {
			return nil, err
		}
		result.RolledOver = append(result.RolledOver, moved)
	}
	metrics.RecordRollovers(len(result.RolledOver))
	return &result, nil
}

func (ss *ScheduleService) getDetail(ctx context.Context, id int) (*entity.DailyTaskDetail, error) {
	row, err := ss.dailyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDailyTaskNotFound) {
			return nil, err
		}
		return nil, errors.New("daily tasks repository error: " + err.Error())
	}
	decorate(row)
	return row, nil
}

// decorate fills the derived point fields on a joined row.
func decorate(row *entity.DailyTaskDetail) {
	row.Points = scoring.TaskPoints(row.Complexity, row.CognitiveLoad, row.TimeEstimate)
	row.NetPoints = scoring.NetPoints(row)
}

func summarize(date time.Time, rows []*entity.DailyTaskDetail) entity.DaySummary {
	s := entity.DaySummary{Date: date, TotalTasks: len(rows)}
	for _, row := range rows {
		s.TimePlanned += row.TimeEstimate
		s.PenaltyPoints += row.PenaltyPoints
		s.NetPoints += row.NetPoints
		if row.Status == entity.StatusCompleted {
			s.CompletedTasks++
			s.PointsEarned += row.Points
			if row.ActualTime != nil {
				s.TimeSpent += *row.ActualTime
			}
		}
	}
	if s.TotalTasks > 0 {
		s.CompletionRate = float64(s.CompletedTasks) / float64(s.TotalTasks)
	}
	return s
}
