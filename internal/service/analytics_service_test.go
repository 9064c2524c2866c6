package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/service"
	"github.com/limbo/momentum/pkg/entity"
)

func seedDays(dailyMock *dailyRepoMock, days int, perDay int) {
	now := time.Now()
	for d := days; d >= 1; d-- {
		date := now.AddDate(0, 0, -d)
		for i := 0; i < perDay; i++ {
			at := date.Add(time.Duration(9+i) * time.Hour)
			dailyMock.seed(d*10+i, date, entity.StatusCompleted, 0, 0, 3, entity.LoadDeepWork, 60, &at)
		}
	}
}

func TestTrends(t *testing.T) {
	dailyMock := newDailyRepoMock()
	s := service.NewAnalyticsService(dailyMock)
	ctx := context.Background()
	t.Run("not enough data", func(t *testing.T) {
		_, err := s.Trends(ctx, 7)
		assert.ErrorIs(t, err, errorvalues.ErrNotEnoughData)
	})
	t.Run("success", func(t *testing.T) {
		seedDays(dailyMock, 5, 2)
		report, err := s.Trends(ctx, 7)
		assert.NoError(t, err)
		assert.NotEmpty(t, report.Direction)
		assert.NotEmpty(t, report.Zone)
	})
	t.Run("db error", func(t *testing.T) {
		dailyMock.state = stateDBError
		_, err := s.Trends(ctx, 7)
		assert.Error(t, err)
	})
}

func TestInsights(t *testing.T) {
	dailyMock := newDailyRepoMock()
	s := service.NewAnalyticsService(dailyMock)
	ctx := context.Background()
	t.Run("not enough data", func(t *testing.T) {
		_, err := s.Insights(ctx, 0)
		assert.ErrorIs(t, err, errorvalues.ErrNotEnoughData)
	})
	t.Run("success", func(t *testing.T) {
		seedDays(dailyMock, 6, 2)
		report, err := s.Insights(ctx, 7)
		assert.NoError(t, err)
		assert.NotNil(t, report)
	})
}

func TestBurnout(t *testing.T) {
	dailyMock := newDailyRepoMock()
	s := service.NewAnalyticsService(dailyMock)
	ctx := context.Background()
	t.Run("not enough data", func(t *testing.T) {
		_, err := s.Burnout(ctx, 14)
		assert.ErrorIs(t, err, errorvalues.ErrNotEnoughData)
	})
	t.Run("success", func(t *testing.T) {
		seedDays(dailyMock, 7, 2)
		report, err := s.Burnout(ctx, 14)
		assert.NoError(t, err)
		assert.NotEmpty(t, report.RiskLevel)
		assert.GreaterOrEqual(t, report.RiskScore, 0.0)
		assert.LessOrEqual(t, report.RiskScore, 100.0)
	})
}

func TestSummary(t *testing.T) {
	dailyMock := newDailyRepoMock()
	s := service.NewAnalyticsService(dailyMock)
	ctx := context.Background()
	now := time.Now()
	twoDaysAgo := now.AddDate(0, 0, -2)
	oneDayAgo := now.AddDate(0, 0, -1)
	at := twoDaysAgo.Add(9 * time.Hour)
	dailyMock.seed(1, twoDaysAgo, entity.StatusCompleted, 0, 0, 3, entity.LoadDeepWork, 60, &at)
	dailyMock.seed(2, oneDayAgo, entity.StatusPending, 1, 3, 1, entity.LoadAdmin, 15, nil)
	t.Run("success", func(t *testing.T) {
		summary, err := s.Summary(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, 2, len(summary.Days))
		assert.Equal(t, 2, summary.TotalTasks)
		assert.Equal(t, 1, summary.CompletedTasks)
		assert.InDelta(t, 0.5, summary.CompletionRate, 0.001)
		assert.Equal(t, 77, summary.NetPoints)
		assert.NotNil(t, summary.BestDay)
		assert.Equal(t, 80, summary.BestDay.NetPoints)
	})
	t.Run("clamps the window", func(t *testing.T) {
		summary, err := s.Summary(ctx, 400)
		assert.NoError(t, err)
		assert.Equal(t, 2, summary.TotalTasks)
	})
	t.Run("db error", func(t *testing.T) {
		dailyMock.state = stateDBError
		_, err := s.Summary(ctx, 7)
		assert.Error(t, err)
	})
}
