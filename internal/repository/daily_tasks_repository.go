package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/pkg/cleanup"
	"github.com/limbo/momentum/pkg/entity"
)

const dailyDetailColumns = `dt.id, dt.task_id, dt.scheduled_date, dt.status, dt.rolled_over_count, dt.penalty_points, dt.actual_time, dt.completed_at, dt.display_order, dt.notes,
		t.title, t.description, t.complexity, t.cognitive_load, t.time_estimate, t.parent_id`

type DailyTasksRepository struct {
	conn PgConnection
}

func NewDailyTasksRepo(cfg DBConfig) *DailyTasksRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for dailyTasksRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for dailyTasksRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &DailyTasksRepository{
		conn: pool,
	}
}

func NewDailyTasksRepoWithConn(conn PgConnection) *DailyTasksRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for dailyTasksRepo: " + err.Error())
	}
	return &DailyTasksRepository{
		conn: conn,
	}
}

func (dr *DailyTasksRepository) Schedule(ctx context.Context, dt *entity.DailyTask) (int, error) {
	var id int
	row := dr.conn.QueryRow(ctx, `INSERT INTO daily_tasks (task_id, scheduled_date, status, rolled_over_count, penalty_points, display_order, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`,
		dt.TaskID,
		dt.ScheduledDate,
		dt.Status,
		dt.RolledOverCount,
		dt.PenaltyPoints,
		dt.DisplayOrder,
		dt.Notes,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return 0, errorvalues.ErrAlreadyScheduled
			// Foreign key violation
			case "23503":
				return 0, errorvalues.ErrTaskNotFound
			}
		}
		return 0, errors.New("scheduling task db error: " + err.Error())
	}
	return id, nil
}

func (dr *DailyTasksRepository) GetByDate(ctx context.Context, date time.Time) ([]*entity.DailyTaskDetail, error) {
	rows, err := dr.conn.Query(ctx, `SELECT `+dailyDetailColumns+`
		FROM daily_tasks dt
		JOIN tasks t ON t.id = dt.task_id
		WHERE dt.scheduled_date = $1
		ORDER BY dt.display_order, dt.id;`, date)
	if err != nil {
		return nil, errors.New("getting daily tasks by date error: " + err.Error())
	}
	return scanDetails(rows)
}

func (dr *DailyTasksRepository) GetByID(ctx context.Context, id int) (*entity.DailyTaskDetail, error) {
	var d entity.DailyTaskDetail
	row := dr.conn.QueryRow(ctx, `SELECT `+dailyDetailColumns+`
		FROM daily_tasks dt
		JOIN tasks t ON t.id = dt.task_id
		WHERE dt.id = $1;`, id)
	err := row.Scan(&d.ID, &d.TaskID, &d.ScheduledDate, &d.Status, &d.RolledOverCount, &d.PenaltyPoints, &d.ActualTime, &d.CompletedAt, &d.DisplayOrder, &d.Notes,
		&d.Title, &d.Description, &d.Complexity, &d.CognitiveLoad, &d.TimeEstimate, &d.ParentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrDailyTaskNotFound
		}
		return nil, errors.New("getting daily task by id error: " + err.Error())
	}
	d.IsSubtask = d.ParentID != nil
	return &d, nil
}

func (dr *DailyTasksRepository) GetRange(ctx context.Context, from, to time.Time) ([]*entity.DailyTaskDetail, error) {
	rows, err := dr.conn.Query(ctx, `SELECT `+dailyDetailColumns+`
		FROM daily_tasks dt
		JOIN tasks t ON t.id = dt.task_id
		WHERE dt.scheduled_date BETWEEN $1 AND $2
		ORDER BY dt.scheduled_date, dt.display_order;`, from, to)
	if err != nil {
		return nil, errors.New("getting daily tasks range error: " + err.Error())
	}
	return scanDetails(rows)
}

func (dr *DailyTasksRepository) GetAll(ctx context.Context) ([]*entity.DailyTaskDetail, error) {
	rows, err := dr.conn.Query(ctx, `SELECT `+dailyDetailColumns+`
		FROM daily_tasks dt
		JOIN tasks t ON t.id = dt.task_id
		ORDER BY dt.scheduled_date, dt.display_order;`)
	if err != nil {
		return nil, errors.New("getting daily task history error: " + err.Error())
	}
	return scanDetails(rows)
}

func (dr *DailyTasksRepository) UpdateStatus(ctx context.Context, id int, status string, actualTime *int, completedAt *time.Time) error {
	ct, err := dr.conn.Exec(ctx, `UPDATE daily_tasks SET status = $1, actual_time = $2, completed_at = $3 WHERE id = $4;`,
		status, actualTime, completedAt, id,
	)
	if err != nil {
		return errors.New("error updating daily task status: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrDailyTaskNotFound
	}
	return nil
}

func (dr *DailyTasksRepository) MarkRolledOver(ctx context.Context, id int) error {
	ct, err := dr.conn.Exec(ctx, `UPDATE daily_tasks SET status = 'abandoned' WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error marking daily task rolled over: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrDailyTaskNotFound
	}
	return nil
}

func (dr *DailyTasksRepository) Reorder(ctx context.Context, date time.Time, orderedIDs []int) error {
	tx, err := dr.conn.Begin(ctx)
	if err != nil {
		return errors.New("error starting reorder tx: " + err.Error())
	}
	defer tx.Rollback(ctx)
	for position, id := range orderedIDs {
		ct, err := tx.Exec(ctx, `UPDATE daily_tasks SET display_order = $1 WHERE id = $2 AND scheduled_date = $3;`, position, id, date)
		if err != nil {
			return errors.New("error reordering daily tasks: " + err.Error())
		}
		if ct.RowsAffected() == 0 {
			return errorvalues.ErrDailyTaskNotFound
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("error committing reorder tx: " + err.Error())
	}
	return nil
}

func (dr *DailyTasksRepository) Delete(ctx context.Context, id int) error {
	ct, err := dr.conn.Exec(ctx, `DELETE FROM daily_tasks WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting daily task: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrDailyTaskNotFound
	}
	return nil
}

func scanDetails(rows pgx.Rows) ([]*entity.DailyTaskDetail, error) {
	defer rows.Close()
	details := make([]*entity.DailyTaskDetail, 0)
	for rows.Next() {
		d := entity.DailyTaskDetail{}
		err := rows.Scan(&d.ID, &d.TaskID, &d.ScheduledDate, &d.Status, &d.RolledOverCount, &d.PenaltyPoints, &d.ActualTime, &d.CompletedAt, &d.DisplayOrder, &d.Notes,
			&d.Title, &d.Description, &d.Complexity, &d.CognitiveLoad, &d.TimeEstimate, &d.ParentID)
		if err != nil {
			return nil, errors.New("unmarshalling daily task error: " + err.Error())
		}
		d.IsSubtask = d.ParentID != nil
		details = append(details, &d)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return details, nil
}
