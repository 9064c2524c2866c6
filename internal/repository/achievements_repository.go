package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/pkg/cleanup"
	"github.com/limbo/momentum/pkg/entity"
)

type AchievementsRepository struct {
	conn PgConnection
}

func NewAchievementsRepo(cfg DBConfig) *AchievementsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for achievementsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for achievementsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &AchievementsRepository{
		conn: pool,
	}
}

func NewAchievementsRepoWithConn(conn PgConnection) *AchievementsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for achievementsRepo: " + err.Error())
	}
	return &AchievementsRepository{
		conn: conn,
	}
}

func (ar *AchievementsRepository) Unlock(ctx context.Context, rec *entity.AchievementRecord) error {
	_, err := ar.conn.Exec(ctx, `INSERT INTO achievements (achievement_id, unlocked_at, points) VALUES ($1, $2, $3);`,
		rec.AchievementID,
		rec.UnlockedAt,
		rec.Points,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrAchievementUnlocked
			}
		}
		return errors.New("unlocking achievement db error: " + err.Error())
	}
	return nil
}

func (ar *AchievementsRepository) GetAll(ctx context.Context) ([]*entity.AchievementRecord, error) {
	records := make([]*entity.AchievementRecord, 0)
	rows, err := ar.conn.Query(ctx, `SELECT achievement_id, unlocked_at, points FROM achievements ORDER BY unlocked_at;`)
	if err != nil {
		return nil, errors.New("getting achievements error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		r := entity.AchievementRecord{}
		err = rows.Scan(&r.AchievementID, &r.UnlockedAt, &r.Points)
		if err != nil {
			return nil, errors.New("unmarshalling achievement error: " + err.Error())
		}
		records = append(records, &r)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return records, nil
}
