package service

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/limbo/momentum/internal/challenge"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/metrics"
	"github.com/limbo/momentum/internal/repository"
	"github.com/limbo/momentum/pkg/entity"
)

// contextWindow is how much history feeds challenge selection.
const contextWindow = 14 * 24 * time.Hour

type ChallengeService struct {
	dailyRepo      repository.DailyTasksRepositoryI
	challengesRepo repository.ChallengesRepositoryI
	rng            *rand.Rand
	now            func() time.Time
}

func NewChallengeService(dailyRepo repository.DailyTasksRepositoryI, challengesRepo repository.ChallengesRepositoryI, rng *rand.Rand) *ChallengeService {
	if dailyRepo == nil || challengesRepo == nil {
		log.Fatal("on challenge service provided nil repos")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ChallengeService{
		dailyRepo:      dailyRepo,
		challengesRepo: challengesRepo,
		rng:            rng,
		now:            time.Now,
	}
}

func (cs *ChallengeService) GetDaily(ctx context.Context, date time.Time) (*ChallengeStatus, error) {
	history, err := cs.dailyRepo.GetRange(ctx, date.Add(-contextWindow), date)
	if err != nil {
		return nil, errors.New("daily tasks repository error: " + err.Error())
	}
	entry, err := cs.challengesRepo.GetByDate(ctx, date)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, errors.New("challenges repository error: " + err.Error())
		}
		entry, err = cs.roll(ctx, date, history)
		if err != nil {
			return nil, err
		}
	}
	def, ok := challenge.ByID(entry.ChallengeID)
	if !ok {
		return nil, errors.New("unknown challenge id recorded: " + entry.ChallengeID)
	}
	status := ChallengeStatus{
		Challenge:   def,
		Difficulty:  challenge.Difficulties[def.Difficulty],
		Date:        entry.Date,
		BonusPoints: entry.BonusPoints,
		Completed:   entry.Completed,
		CompletedAt: entry.CompletedAt,
	}
	if !entry.Completed {
		cctx, err := cs.buildContext(ctx, date, history)
		if err != nil {
			return nil, err
		}
		if challenge.CheckCompletion(def, todayRows(history, date), cctx) {
			at := cs.now()
			err = cs.challengesRepo.MarkCompleted(ctx, date, at)
			if err != nil {
				if errors.Is(err, errorvalues.ErrChallengeNotFound) {
					// Another call flipped it first.
					return &status, nil
				}
				return nil, errors.New("challenges repository error: " + err.Error())
			}
			metrics.RecordChallengeCompleted()
			status.Completed = true
			status.JustCompleted = true
			status.CompletedAt = &at
		}
	}
	return &status, nil
}

// roll selects and persists a challenge for the date. A create
// conflict means a concurrent request rolled first; use its entry.
func (cs *ChallengeService) roll(ctx context.Context, date time.Time, history []*entity.DailyTaskDetail) (*entity.ChallengeEntry, error) {
	cctx, err := cs.buildContext(ctx, date, history)
	if err != nil {
		return nil, err
	}
	def := challenge.Select(cctx, cs.rng)
	entry := entity.ChallengeEntry{
		Date:        date,
		ChallengeID: def.ID,
		BonusPoints: challenge.RollBonus(def.Difficulty, cs.rng),
	}
	err = cs.challengesRepo.Create(ctx, &entry)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeExists) {
			existing, err := cs.challengesRepo.GetByDate(ctx, date)
			if err != nil {
				return nil, errors.New("challenges repository error: " + err.Error())
			}
			return existing, nil
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	return &entry, nil
}

func (cs *ChallengeService) buildContext(ctx context.Context, date time.Time, history []*entity.DailyTaskDetail) (*challenge.Context, error) {
	entries, err := cs.challengesRepo.GetSince(ctx, date.AddDate(0, 0, -7))
	if err != nil {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	recent := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Date.Equal(date) {
			recent = append(recent, e.ChallengeID)
		}
	}
	dates, err := cs.challengesRepo.CompletedDates(ctx)
	if err != nil {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	return challenge.BuildContext(date, history, recent, len(dates)), nil
}

func todayRows(history []*entity.DailyTaskDetail, date time.Time) []*entity.DailyTaskDetail {
	rows := make([]*entity.DailyTaskDetail, 0)
	y, m, d := date.Date()
	for _, row := range history {
		ry, rm, rd := row.ScheduledDate.Date()
		if ry == y && rm == m && rd == d {
			rows = append(rows, row)
		}
	}
	return rows
}
