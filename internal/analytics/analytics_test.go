package analytics_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/limbo/momentum/internal/analytics"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/pkg/entity"
)

func day(offset int) time.Time {
	base := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC) // Monday
	return base.AddDate(0, 0, offset)
}

func row(date time.Time, status, load string, complexity, estimate int) *entity.DailyTaskDetail {
	r := &entity.DailyTaskDetail{}
	r.Title = fmt.Sprintf("%s-%d", load, complexity)
	r.ScheduledDate = date
	r.Status = status
	r.CognitiveLoad = load
	r.Complexity = complexity
	r.TimeEstimate = estimate
	if status == entity.StatusCompleted {
		at := date.Add(14 * time.Hour)
		r.CompletedAt = &at
	}
	return r
}

// dayRows emits scheduled rows for one date with the given number
// completed.
func dayRows(date time.Time, scheduled, completed int) []*entity.DailyTaskDetail {
	rows := make([]*entity.DailyTaskDetail, 0, scheduled)
	for i := 0; i < scheduled; i++ {
		status := entity.StatusPending
		if i < completed {
			status = entity.StatusCompleted
		}
		rows = append(rows, row(date, status, entity.LoadAdmin, 2, 30))
	}
	return rows
}

func TestBuildDailyStats(t *testing.T) {
	date := day(0)
	rows := []*entity.DailyTaskDetail{
		row(date, entity.StatusCompleted, entity.LoadDeepWork, 3, 60),
		row(date, entity.StatusPending, entity.LoadAdmin, 1, 15),
		row(date.AddDate(0, 0, 1), entity.StatusCompleted, entity.LoadAdmin, 2, 30),
	}

	stats := analytics.BuildDailyStats(rows)
	assert.Len(t, stats, 2)
	assert.Equal(t, 2, stats[0].Scheduled)
	assert.Equal(t, 1, stats[0].Completed)
	assert.InDelta(t, 50.0, stats[0].Rate, 0.001)
	assert.Equal(t, 80, stats[0].Points)
	assert.Equal(t, 60, stats[0].DeepWorkMinutes)
	assert.InDelta(t, 100.0, stats[1].Rate, 0.001)
}

func TestAnalyzeTrendsInsufficientData(t *testing.T) {
	rows := dayRows(day(0), 2, 1)
	_, err := analytics.AnalyzeTrends(rows, 7)
	assert.ErrorIs(t, err, errorvalues.ErrNotEnoughData)
}

func TestAnalyzeTrendsImproving(t *testing.T) {
	var rows []*entity.DailyTaskDetail
	// ramp from 2/10 to 10/10 over ten days
	for i := 0; i < 10; i++ {
		rows = append(rows, dayRows(day(i), 10, 2+(i*8)/9)...)
	}

	report, err := analytics.AnalyzeTrends(rows, 10)
	assert.NoError(t, err)
	assert.Positive(t, report.Slope)
	assert.Contains(t, []string{"improving", "strongly_improving"}, report.Direction)
	assert.Greater(t, report.Confidence, 80.0)
	assert.Len(t, report.Forecast, 7)
	for _, f := range report.Forecast {
		assert.GreaterOrEqual(t, f.Predicted, 0.0)
		assert.LessOrEqual(t, f.Predicted, 100.0)
		assert.GreaterOrEqual(t, f.Confidence, 50.0)
		assert.InDelta(t, f.Predicted, (f.Low+f.High)/2, 15.0)
	}
}

func TestAnalyzeTrendsStableAndZones(t *testing.T) {
	var rows []*entity.DailyTaskDetail
	for i := 0; i < 8; i++ {
		rows = append(rows, dayRows(day(i), 10, 8)...)
	}
	report, err := analytics.AnalyzeTrends(rows, 8)
	assert.NoError(t, err)
	assert.Equal(t, "stable", report.Direction)
	assert.Equal(t, "optimal", report.Zone)
	assert.Equal(t, "steady", report.MomentumTier)
	assert.Empty(t, report.Anomalies)
}

func TestAnalyzeTrendsAnomaly(t *testing.T) {
	var rows []*entity.DailyTaskDetail
	for i := 0; i < 11; i++ {
		if i == 5 {
			rows = append(rows, dayRows(day(i), 10, 0)...)
			continue
		}
		rows = append(rows, dayRows(day(i), 10, 9)...)
	}
	report, err := analytics.AnalyzeTrends(rows, 11)
	assert.NoError(t, err)
	if assert.Len(t, report.Anomalies, 1) {
		assert.Equal(t, "unusual_low", report.Anomalies[0].Kind)
		assert.Equal(t, day(5), report.Anomalies[0].Date)
	}
}

func TestGenerateInsightsInsufficientData(t *testing.T) {
	_, err := analytics.GenerateInsights(dayRows(day(0), 4, 2))
	assert.ErrorIs(t, err, errorvalues.ErrNotEnoughData)
}

func TestGenerateInsightsCategorySignals(t *testing.T) {
	var rows []*entity.DailyTaskDetail
	for i := 0; i < 6; i++ {
		rows = append(rows, row(day(i), entity.StatusCompleted, entity.LoadDeepWork, 3, 60))
		rows = append(rows, row(day(i), entity.StatusPending, entity.LoadAdmin, 1, 15))
	}

	report, err := analytics.GenerateInsights(rows)
	assert.NoError(t, err)

	kinds := map[string]bool{}
	for _, in := range report.Performance {
		kinds[in.Kind] = true
	}
	assert.True(t, kinds["strength"])
	assert.True(t, kinds["alert"])
	assert.NotEmpty(t, report.Timing)
}

func TestGenerateInsightsRolloverSpiral(t *testing.T) {
	var rows []*entity.DailyTaskDetail
	for i := 0; i < 10; i++ {
		r := row(day(i), entity.StatusPending, entity.LoadAdmin, 2, 30)
		r.RolledOverCount = 1 + i%2
		rows = append(rows, r)
		rows = append(rows, row(day(i), entity.StatusCompleted, entity.LoadDeepWork, 3, 60))
	}
	report, err := analytics.GenerateInsights(rows)
	assert.NoError(t, err)

	found := false
	for _, in := range report.HiddenPatterns {
		if in.Kind == "rollover_spiral" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestProductivityDNA(t *testing.T) {
	var rows []*entity.DailyTaskDetail
	for i := 0; i < 12; i++ {
		r := row(day(i), entity.StatusCompleted, entity.LoadDeepWork, 4, 60)
		at := day(i).Add(7 * time.Hour)
		r.CompletedAt = &at
		rows = append(rows, r)
	}
	report, err := analytics.GenerateInsights(rows)
	assert.NoError(t, err)
	assert.Contains(t, report.DNA, "early_bird")
	assert.Contains(t, report.DNA, "deep_diver")
	assert.Contains(t, report.DNA, "challenge_hunter")
	assert.Contains(t, report.DNA, "finisher")
	assert.NotContains(t, report.DNA, "night_owl")
}

func TestAssessBurnoutInsufficientData(t *testing.T) {
	_, err := analytics.AssessBurnout(dayRows(day(0), 3, 2), 7, day(7))
	assert.ErrorIs(t, err, errorvalues.ErrNotEnoughData)
}

func TestAssessBurnoutHealthy(t *testing.T) {
	var rows []*entity.DailyTaskDetail
	for i := 0; i < 5; i++ { // weekdays only, modest load
		rows = append(rows, dayRows(day(i), 4, 4)...)
	}
	report, err := analytics.AssessBurnout(rows, 14, day(5))
	assert.NoError(t, err)
	assert.Less(t, report.RiskScore, 30.0)
	assert.Contains(t, []string{"thriving", "healthy"}, report.RiskLevel)
	assert.Greater(t, report.EnergyReserves, 50.0)
	assert.Len(t, report.Indicators, 12)
}

func TestAssessBurnoutOverloaded(t *testing.T) {
	var rows []*entity.DailyTaskDetail
	for i := 0; i < 14; i++ { // every day scheduled, 12 tasks, fading completion
		completed := 10 - i/2
		if completed < 0 {
			completed = 0
		}
		rows = append(rows, dayRows(day(i), 12, completed)...)
	}
	for i := range rows {
		if i%3 == 0 {
			rows[i].RolledOverCount = 2
		}
	}

	report, err := analytics.AssessBurnout(rows, 14, day(14))
	assert.NoError(t, err)
	assert.Greater(t, report.RiskScore, 30.0)
	assert.NotEmpty(t, report.Recommendations)
	assert.LessOrEqual(t, len(report.Recommendations), 3)
	assert.Equal(t, "worsening", report.Trajectory)

	byName := map[string]float64{}
	for _, ind := range report.Indicators {
		byName[ind.Name] = ind.Score
	}
	assert.Greater(t, byName["excessive_workload"], 0.0)
	assert.Greater(t, byName["declining_performance"], 0.0)
	assert.Greater(t, byName["chronic_rollover"], 0.0)
	assert.Greater(t, byName["no_rest_days"], 90.0)
}

func TestRiskLevelBounds(t *testing.T) {
	var rows []*entity.DailyTaskDetail
	for i := 0; i < 5; i++ {
		rows = append(rows, dayRows(day(i), 2, 2)...)
	}
	report, err := analytics.AssessBurnout(rows, 30, day(5))
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, report.RiskScore, 0.0)
	assert.LessOrEqual(t, report.RiskScore, 100.0)
}
