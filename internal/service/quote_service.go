package service

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/limbo/momentum/internal/quotes"
	"github.com/limbo/momentum/internal/repository"
	"github.com/limbo/momentum/internal/streak"
	"github.com/limbo/momentum/pkg/entity"
)

type QuoteService struct {
	dailyRepo repository.DailyTasksRepositoryI
	recency   *quotes.RecencyStore
	rng       *rand.Rand
	now       func() time.Time
}

// NewQuoteService wires the quote picker. The recency store is
// optional; without it repeats are simply not suppressed.
func NewQuoteService(dailyRepo repository.DailyTasksRepositoryI, recency *quotes.RecencyStore, rng *rand.Rand) *QuoteService {
	if dailyRepo == nil {
		log.Fatal("provided nil dailyRepo")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &QuoteService{
		dailyRepo: dailyRepo,
		recency:   recency,
		rng:       rng,
		now:       time.Now,
	}
}

func (qs *QuoteService) DailyQuote(ctx context.Context, session string) (*QuoteResponse, error) {
	now := qs.now()
	rows, err := qs.dailyRepo.GetRange(ctx, now.AddDate(0, 0, -14), now)
	if err != nil {
		return nil, errors.New("daily tasks repository error: " + err.Error())
	}
	qctx := buildQuoteContext(rows, now)
	var recent []string
	if qs.recency != nil && session != "" {
		recent, err = qs.recency.Recent(ctx, session)
		if err != nil {
			return nil, errors.New("quote recency store error: " + err.Error())
		}
	}
	quote := quotes.Pick(qctx, recent, qs.rng)
	if qs.recency != nil && session != "" {
		if err = qs.recency.Remember(ctx, session, quote); err != nil {
			return nil, errors.New("quote recency store error: " + err.Error())
		}
	}
	return &QuoteResponse{Quote: quote}, nil
}

func buildQuoteContext(rows []*entity.DailyTaskDetail, now time.Time) quotes.Context {
	today := todayRows(rows, now)
	completedToday := 0
	for _, row := range today {
		if row.Status == entity.StatusCompleted {
			completedToday++
		}
	}
	rate := 0.0
	if len(today) > 0 {
		rate = float64(completedToday) / float64(len(today))
	}
	yesterday := todayRows(rows, now.AddDate(0, 0, -1))
	completedYesterday := 0
	for _, row := range yesterday {
		if row.Status == entity.StatusCompleted {
			completedYesterday++
		}
	}
	dates := make([]time.Time, 0)
	for _, row := range rows {
		if row.Status == entity.StatusCompleted {
			dates = append(dates, row.ScheduledDate)
		}
	}
	return quotes.Context{
		Now:             now,
		HasTasksToday:   len(today) > 0,
		CompletionRate:  rate,
		CurrentStreak:   streak.Current(dates, now),
		MissedYesterday: len(yesterday) > 0 && completedYesterday == 0,
	}
}
