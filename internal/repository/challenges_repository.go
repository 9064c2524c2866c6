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

type ChallengesRepository struct {
	conn PgConnection
}

func NewChallengesRepo(cfg DBConfig) *ChallengesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for challengesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for challengesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ChallengesRepository{
		conn: pool,
	}
}

func NewChallengesRepoWithConn(conn PgConnection) *ChallengesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for challengesRepo: " + err.Error())
	}
	return &ChallengesRepository{
		conn: conn,
	}
}

func (cr *ChallengesRepository) Create(ctx context.Context, entry *entity.ChallengeEntry) error {
	_, err := cr.conn.Exec(ctx, `INSERT INTO challenge_history (challenge_date, challenge_id, bonus_points, completed) VALUES ($1, $2, $3, $4);`,
		entry.Date,
		entry.ChallengeID,
		entry.BonusPoints,
		entry.Completed,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrChallengeExists
			}
		}
		return errors.New("creating challenge entry db error: " + err.Error())
	}
	return nil
}

func (cr *ChallengesRepository) GetByDate(ctx context.Context, date time.Time) (*entity.ChallengeEntry, error) {
	var entry entity.ChallengeEntry
	row := cr.conn.QueryRow(ctx, `SELECT challenge_date, challenge_id, bonus_points, completed, completed_at FROM challenge_history WHERE challenge_date = $1;`, date)
	if err := row.Scan(&entry.Date, &entry.ChallengeID, &entry.BonusPoints, &entry.Completed, &entry.CompletedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChallengeNotFound
		}
		return nil, errors.New("getting challenge entry error: " + err.Error())
	}
	return &entry, nil
}

func (cr *ChallengesRepository) GetSince(ctx context.Context, since time.Time) ([]*entity.ChallengeEntry, error) {
	entries := make([]*entity.ChallengeEntry, 0)
	rows, err := cr.conn.Query(ctx, `SELECT challenge_date, challenge_id, bonus_points, completed, completed_at
		FROM challenge_history WHERE challenge_date >= $1 ORDER BY challenge_date DESC;`, since)
	if err != nil {
		return nil, errors.New("getting recent challenges error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		e := entity.ChallengeEntry{}
		err = rows.Scan(&e.Date, &e.ChallengeID, &e.BonusPoints, &e.Completed, &e.CompletedAt)
		if err != nil {
			return nil, errors.New("unmarshalling challenge entry error: " + err.Error())
		}
		entries = append(entries, &e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return entries, nil
}

func (cr *ChallengesRepository) MarkCompleted(ctx context.Context, date time.Time, at time.Time) error {
	ct, err := cr.conn.Exec(ctx, `UPDATE challenge_history SET completed = TRUE, completed_at = $1 WHERE challenge_date = $2 AND NOT completed;`, at, date)
	if err != nil {
		return errors.New("error completing challenge: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrChallengeNotFound
	}
	return nil
}

func (cr *ChallengesRepository) CompletedDates(ctx context.Context) ([]time.Time, error) {
	dates := make([]time.Time, 0)
	rows, err := cr.conn.Query(ctx, `SELECT challenge_date FROM challenge_history WHERE completed ORDER BY challenge_date;`)
	if err != nil {
		return nil, errors.New("getting completed challenge dates error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var d time.Time
		if err = rows.Scan(&d); err != nil {
			return nil, errors.New("unmarshalling challenge date error: " + err.Error())
		}
		dates = append(dates, d)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return dates, nil
}
