package service

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/metrics"
	"github.com/limbo/momentum/internal/repository"
	"github.com/limbo/momentum/pkg/entity"
)

type TasksService struct {
	repo repository.TasksRepositoryI
}

func NewTasksService(tasksRepo repository.TasksRepositoryI) *TasksService {
	if tasksRepo == nil {
		log.Fatal("provided nil tasksRepo")
	}
	return &TasksService{
		repo: tasksRepo,
	}
}

func (ts *TasksService) CreateTask(ctx context.Context, req *CreateTaskRequest) (*entity.Task, error) {
	if err := validateRequest(*req); err != nil {
		return nil, err
	}
	if req.ParentID != nil {
		if err := ts.checkParent(ctx, *req.ParentID); err != nil {
			return nil, err
		}
	}
	task := entity.Task{
		Title:         req.Title,
		Description:   req.Description,
		Complexity:    req.Complexity,
		CognitiveLoad: req.CognitiveLoad,
		TimeEstimate:  req.TimeEstimate,
		ParentID:      req.ParentID,
	}
	id, err := ts.repo.Create(ctx, &task)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	created, err := ts.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	metrics.RecordTaskCreated(created.CognitiveLoad)
	return created, nil
}

func (ts *TasksService) GetTask(ctx context.Context, id int) (*entity.Task, error) {
	task, err := ts.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return task, nil
}

func (ts *TasksService) ListTasks(ctx context.Context, includeArchived bool) ([]*entity.TaskOverview, error) {
	tasks, err := ts.repo.List(ctx, includeArchived)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return tasks, nil
}

func (ts *TasksService) UpdateTask(ctx context.Context, id int, req *UpdateTaskRequest) (*entity.Task, error) {
	if err := validateRequest(*req); err != nil {
		return nil, err
	}
	task := entity.Task{
		ID:            id,
		Title:         req.Title,
		Description:   req.Description,
		Complexity:    req.Complexity,
		CognitiveLoad: req.CognitiveLoad,
		TimeEstimate:  req.TimeEstimate,
		Archived:      req.Archived,
	}
	err := ts.repo.Update(ctx, &task)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	updated, err := ts.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return updated, nil
}

func (ts *TasksService) SetTaskParent(ctx context.Context, id int, parentID *int) error {
	if parentID == nil {
		return ts.detach(ctx, id)
	}
	if *parentID == id {
		return errorvalues.ErrSelfParent
	}
	subtasks, err := ts.repo.CountSubtasks(ctx, id)
	if err != nil {
		return errors.New("tasks repository error: " + err.Error())
	}
	if subtasks > 0 {
		return errorvalues.ErrHasSubtasks
	}
	if err = ts.checkParent(ctx, *parentID); err != nil {
		return err
	}
	err = ts.repo.SetParent(ctx, id, parentID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return err
		}
		return errors.New("tasks repository error: " + err.Error())
	}
	return nil
}

func (ts *TasksService) DeleteTask(ctx context.Context, id int) error {
	err := ts.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return err
		}
		return errors.New("tasks repository error: " + err.Error())
	}
	return nil
}

func (ts *TasksService) detach(ctx context.Context, id int) error {
	err := ts.repo.SetParent(ctx, id, nil)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return err
		}
		return errors.New("tasks repository error: " + err.Error())
	}
	return nil
}

// checkParent rejects parents that are themselves subtasks.
func (ts *TasksService) checkParent(ctx context.Context, parentID int) error {
	parent, err := ts.repo.GetByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return err
		}
		return errors.New("tasks repository error: " + err.Error())
	}
	if parent.ParentID != nil {
		return errorvalues.ErrNestedSubtask
	}
	return nil
}
