package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/limbo/momentum/internal/analytics"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/repository"
	"github.com/limbo/momentum/pkg/entity"
)

// Window bounds for the days query parameter.
const (
	MinWindowDays     = 7
	MaxWindowDays     = 30
	DefaultWindowDays = 7
)

type AnalyticsService struct {
	dailyRepo repository.DailyTasksRepositoryI
	now       func() time.Time
}

func NewAnalyticsService(dailyRepo repository.DailyTasksRepositoryI) *AnalyticsService {
	if dailyRepo == nil {
		log.Fatal("provided nil dailyRepo")
	}
	return &AnalyticsService{
		dailyRepo: dailyRepo,
		now:       time.Now,
	}
}

func clampWindow(days int) int {
	if days == 0 {
		return DefaultWindowDays
	}
	if days < MinWindowDays {
		return MinWindowDays
	}
	if days > MaxWindowDays {
		return MaxWindowDays
	}
	return days
}

func (as *AnalyticsService) window(ctx context.Context, days int) ([]*entity.DailyTaskDetail, error) {
	to := as.now()
	from := to.AddDate(0, 0, -days)
	rows, err := as.dailyRepo.GetRange(ctx, from, to)
	if err != nil {
		return nil, errors.New("daily tasks repository error: " + err.Error())
	}
	return rows, nil
}

func (as *AnalyticsService) Trends(ctx context.Context, days int) (*analytics.TrendReport, error) {
	days = clampWindow(days)
	rows, err := as.window(ctx, days)
	if err != nil {
		return nil, err
	}
	report, err := analytics.AnalyzeTrends(rows, days)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotEnoughData) {
			return nil, err
		}
		return nil, errors.New("trend analysis error: " + err.Error())
	}
	return report, nil
}

func (as *AnalyticsService) Insights(ctx context.Context, days int) (*analytics.InsightReport, error) {
	days = clampWindow(days)
	rows, err := as.window(ctx, days)
	if err != nil {
		return nil, err
	}
	report, err := analytics.GenerateInsights(rows)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotEnoughData) {
			return nil, err
		}
		return nil, errors.New("insight analysis error: " + err.Error())
	}
	return report, nil
}

func (as *AnalyticsService) Burnout(ctx context.Context, days int) (*analytics.BurnoutReport, error) {
	days = clampWindow(days)
	rows, err := as.window(ctx, days)
	if err != nil {
		return nil, err
	}
	report, err := analytics.AssessBurnout(rows, days, as.now())
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotEnoughData) {
			return nil, err
		}
		return nil, errors.New("burnout analysis error: " + err.Error())
	}
	return report, nil
}

func (as *AnalyticsService) Summary(ctx context.Context, days int) (*PeriodSummary, error) {
	days = clampWindow(days)
	to := as.now()
	from := to.AddDate(0, 0, -days)
	rows, err := as.dailyRepo.GetRange(ctx, from, to)
	if err != nil {
		return nil, errors.New("daily tasks repository error: " + err.Error())
	}
	for _, row := range rows {
		decorate(row)
	}
	byDay := make(map[string][]*entity.DailyTaskDetail)
	order := make([]string, 0)
	for _, row := range rows {
		key := row.ScheduledDate.Format(time.DateOnly)
		if _, ok := byDay[key]; !ok {
			order = append(order, key)
		}
		byDay[key] = append(byDay[key], row)
	}
	summary := PeriodSummary{
		From: from,
		To:   to,
		Days: make([]entity.DaySummary, 0, len(order)),
	}
	for _, key := range order {
		date, _ := time.Parse(time.DateOnly, key)
		day := summarize(date, byDay[key])
		summary.Days = append(summary.Days, day)
		summary.TotalTasks += day.TotalTasks
		summary.CompletedTasks += day.CompletedTasks
		summary.NetPoints += day.NetPoints
		if summary.BestDay == nil || day.NetPoints > summary.BestDay.NetPoints {
			best := day
			summary.BestDay = &best
		}
	}
	if summary.TotalTasks > 0 {
		summary.CompletionRate = float64(summary.CompletedTasks) / float64(summary.TotalTasks)
	}
	return &summary, nil
}
