package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/pkg/cleanup"
	"github.com/limbo/momentum/pkg/entity"
)

type TasksRepository struct {
	conn PgConnection
}

func NewTasksRepo(cfg DBConfig) *TasksRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for tasksRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for tasksRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &TasksRepository{
		conn: pool,
	}
}

func NewTasksRepoWithConn(conn PgConnection) *TasksRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for tasksRepo: " + err.Error())
	}
	return &TasksRepository{
		conn: conn,
	}
}

func (tr *TasksRepository) Create(ctx context.Context, task *entity.Task) (int, error) {
	var id int
	row := tr.conn.QueryRow(ctx, `INSERT INTO tasks (title, description, complexity, cognitive_load, time_estimate, parent_id)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
		task.Title,
		task.Description,
		task.Complexity,
		task.CognitiveLoad,
		task.TimeEstimate,
		task.ParentID,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Foreign key violation
			case "23503":
				return 0, errorvalues.ErrTaskNotFound
			}
		}
		return 0, errors.New("creating task db error: " + err.Error())
	}
	return id, nil
}

func (tr *TasksRepository) GetByID(ctx context.Context, id int) (*entity.Task, error) {
	var task entity.Task
	task.ID = id
	row := tr.conn.QueryRow(ctx, `SELECT title, description, complexity, cognitive_load, time_estimate, parent_id, archived, created_at
		FROM tasks WHERE id = $1;`, id)
	if err := row.Scan(&task.Title, &task.Description, &task.Complexity, &task.CognitiveLoad, &task.TimeEstimate, &task.ParentID, &task.Archived, &task.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errors.New("getting task by id error: " + err.Error())
	}
	return &task, nil
}

func (tr *TasksRepository) List(ctx context.Context, includeArchived bool) ([]*entity.TaskOverview, error) {
	tasks := make([]*entity.TaskOverview, 0)
	rows, err := tr.conn.Query(ctx, `SELECT t.id, t.title, t.description, t.complexity, t.cognitive_load, t.time_estimate, t.parent_id, t.archived, t.created_at,
			COUNT(s.id) AS subtask_count,
			COUNT(s.id) FILTER (WHERE EXISTS (
				SELECT 1 FROM daily_tasks dt WHERE dt.task_id = s.id AND dt.status = 'completed'
			)) AS subtasks_completed
		FROM tasks t
		LEFT JOIN tasks s ON s.parent_id = t.id
		WHERE ($1 OR NOT t.archived)
		GROUP BY t.id
		ORDER BY t.created_at DESC;`, includeArchived)
	if err != nil {
		return nil, errors.New("listing tasks error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		t := entity.TaskOverview{}
		err = rows.Scan(&t.ID, &t.Title, &t.Description, &t.Complexity, &t.CognitiveLoad, &t.TimeEstimate, &t.ParentID, &t.Archived, &t.CreatedAt, &t.SubtaskCount, &t.SubtasksCompleted)
		if err != nil {
			return nil, errors.New("unmarshalling task error: " + err.Error())
		}
		tasks = append(tasks, &t)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return tasks, nil
}

func (tr *TasksRepository) Update(ctx context.Context, task *entity.Task) error {
	ct, err := tr.conn.Exec(ctx, `UPDATE tasks SET title = $1, description = $2, complexity = $3, cognitive_load = $4, time_estimate = $5, archived = $6 WHERE id = $7;`,
		task.Title, task.Description, task.Complexity, task.CognitiveLoad, task.TimeEstimate, task.Archived, task.ID,
	)
	if err != nil {
		return errors.New("error updating task: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}

func (tr *TasksRepository) SetParent(ctx context.Context, id int, parentID *int) error {
	ct, err := tr.conn.Exec(ctx, `UPDATE tasks SET parent_id = $1 WHERE id = $2;`, parentID, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Foreign key violation
			case "23503":
				return errorvalues.ErrTaskNotFound
			}
		}
		return errors.New("error setting task parent: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}

func (tr *TasksRepository) CountSubtasks(ctx context.Context, id int) (int, error) {
	var count int
	row := tr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM tasks WHERE parent_id = $1;`, id)
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("counting subtasks error: " + err.Error())
	}
	return count, nil
}

func (tr *TasksRepository) Delete(ctx context.Context, id int) error {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM tasks WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting task: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}
