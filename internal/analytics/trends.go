package analytics

import (
	"fmt"
	"math"
	"time"

	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/pkg/entity"
)

const minTrendDays = 3

type ForecastPoint struct {
	Date       time.Time `json:"date"`
	Predicted  float64   `json:"predicted_rate"`
	Confidence float64   `json:"confidence"`
	Low        float64   `json:"range_low"`
	High       float64   `json:"range_high"`
}

type Anomaly struct {
	Date time.Time `json:"date"`
	Rate float64   `json:"completion_rate"`
	Kind string    `json:"kind"`
}

type Pattern struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

type TrendReport struct {
	Days          int             `json:"window_days"`
	Daily         []DailyStat     `json:"daily"`
	Slope         float64         `json:"slope"`
	Direction     string          `json:"direction"`
	Confidence    float64         `json:"confidence"`
	Momentum      float64         `json:"momentum"`
	MomentumTier  string          `json:"momentum_tier"`
	MovingAvg3    []float64       `json:"moving_avg_3"`
	MovingAvg7    []float64       `json:"moving_avg_7"`
	EMA           []float64       `json:"ema"`
	Zone          string          `json:"performance_zone"`
	Forecast      []ForecastPoint `json:"forecast"`
	Anomalies     []Anomaly       `json:"anomalies"`
	Patterns      []Pattern       `json:"patterns"`
}

// AnalyzeTrends builds the trend report over the window's rows.
func AnalyzeTrends(rows []*entity.DailyTaskDetail, days int) (*TrendReport, error) {
	stats := BuildDailyStats(rows)
	if len(stats) < minTrendDays {
		return nil, errorvalues.ErrNotEnoughData
	}

	rs := rates(stats)
	slope, r2 := linearFit(rs)
	momentum := momentumValue(rs)

	report := &TrendReport{
		Days:         days,
		Daily:        stats,
		Slope:        round2(slope),
		Direction:    direction(slope),
		Confidence:   round2(r2 * 100),
		Momentum:     round2(momentum),
		MomentumTier: momentumTier(momentum),
		MovingAvg3:   movingAverage(rs, 3),
		MovingAvg7:   movingAverage(rs, 7),
		EMA:          exponentialAverage(rs, 2.0/6.0),
		Zone:         performanceZone(recentAverage(rs, 7)),
		Forecast:     forecast(stats, slope),
		Anomalies:    anomalies(stats),
		Patterns:     detectPatterns(rows, stats),
	}
	return report, nil
}

func direction(slope float64) string {
	switch {
	case slope > 2:
		return "strongly_improving"
	case slope > 0.5:
		return "improving"
	case slope > -0.5:
		return "stable"
	case slope > -2:
		return "declining"
	default:
		return "strongly_declining"
	}
}

// linearFit returns the OLS slope over the index and the R² fit.
func linearFit(ys []float64) (slope, r2 float64) {
	n := float64(len(ys))
	if n < 2 {
		return 0, 0
	}
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range ys {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, 0
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n

	meanY := sumY / n
	var ssTot, ssRes float64
	for i, y := range ys {
		ssTot += (y - meanY) * (y - meanY)
		pred := intercept + slope*float64(i)
		ssRes += (y - pred) * (y - pred)
	}
	if ssTot == 0 {
		return slope, 1
	}
	return slope, 1 - ssRes/ssTot
}

func momentumValue(rs []float64) float64 {
	recent := recentAverage(rs, 7)
	var prev float64
	if len(rs) > 7 {
		start := len(rs) - 14
		if start < 0 {
			start = 0
		}
		prev = mean(rs[start : len(rs)-7])
	}
	if prev == 0 {
		if recent > 0 {
			return 0.25
		}
		return 0
	}
	return (recent - prev) / prev
}

func momentumTier(m float64) string {
	switch {
	case m >= 0.25:
		return "surging"
	case m >= 0.10:
		return "accelerating"
	case m >= -0.05:
		return "steady"
	case m >= -0.15:
		return "slowing"
	default:
		return "declining"
	}
}

func movingAverage(rs []float64, window int) []float64 {
	out := make([]float64, len(rs))
	for i := range rs {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		out[i] = round2(mean(rs[start : i+1]))
	}
	return out
}

func exponentialAverage(rs []float64, alpha float64) []float64 {
	out := make([]float64, len(rs))
	for i, r := range rs {
		if i == 0 {
			out[i] = round2(r)
			continue
		}
		out[i] = round2(alpha*r + (1-alpha)*out[i-1])
	}
	return out
}

func recentAverage(rs []float64, window int) float64 {
	start := len(rs) - window
	if start < 0 {
		start = 0
	}
	return mean(rs[start:])
}

func performanceZone(rate float64) string {
	switch {
	case rate >= 90:
		return "peak"
	case rate >= 75:
		return "optimal"
	case rate >= 60:
		return "productive"
	case rate >= 40:
		return "developing"
	default:
		return "building"
	}
}

// forecast projects the next seven dates from same-weekday baselines
// plus the fitted slope.
func forecast(stats []DailyStat, slope float64) []ForecastPoint {
	byWeekday := map[time.Weekday][]float64{}
	for _, s := range stats {
		byWeekday[s.Date.Weekday()] = append(byWeekday[s.Date.Weekday()], s.Rate)
	}
	overall := mean(rates(stats))

	last := stats[len(stats)-1].Date
	n := float64(len(stats))
	points := make([]ForecastPoint, 0, 7)
	for i := 1; i <= 7; i++ {
		date := last.AddDate(0, 0, i)
		baseline := overall
		if history := byWeekday[date.Weekday()]; len(history) > 0 {
			baseline = mean(history)
		}
		predicted := clamp(baseline+slope*(n+float64(i)), 0, 100)
		confidence := 95 - 7*float64(i)
		if confidence < 50 {
			confidence = 50
		}
		points = append(points, ForecastPoint{
			Date:       date,
			Predicted:  round2(predicted),
			Confidence: confidence,
			Low:        round2(clamp(predicted-15, 0, 100)),
			High:       round2(clamp(predicted+15, 0, 100)),
		})
	}
	return points
}

func anomalies(stats []DailyStat) []Anomaly {
	rs := rates(stats)
	avg := mean(rs)
	var variance float64
	for _, r := range rs {
		variance += (r - avg) * (r - avg)
	}
	variance /= float64(len(rs))
	std := math.Sqrt(variance)
	if std == 0 {
		return nil
	}

	var out []Anomaly
	for _, s := range stats {
		z := (s.Rate - avg) / std
		if z > 2 {
			out = append(out, Anomaly{Date: s.Date, Rate: s.Rate, Kind: "exceptional_high"})
		} else if z < -2 {
			out = append(out, Anomaly{Date: s.Date, Rate: s.Rate, Kind: "unusual_low"})
		}
	}
	return out
}

func detectPatterns(rows []*entity.DailyTaskDetail, stats []DailyStat) []Pattern {
	var patterns []Pattern

	run := 0
	best := 0
	for _, s := range stats {
		if s.Rate >= 90 {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	if best >= 3 {
		patterns = append(patterns, Pattern{
			Kind:        "high_performance_run",
			Description: fmt.Sprintf("%d consecutive days at 90%%+ completion", best),
		})
	}

	if p, ok := weekdayEffect(stats, time.Monday, 10, "monday_surge", "Mondays average %0.f points above the rest of the week"); ok {
		patterns = append(patterns, p)
	}
	if p, ok := weekdayEffect(stats, time.Friday, -15, "friday_fade", "Fridays average %0.f points below the rest of the week"); ok {
		patterns = append(patterns, p)
	}

	if ratio, ok := deepWorkImpact(stats); ok && ratio >= 1.5 {
		patterns = append(patterns, Pattern{
			Kind:        "deep_work_lift",
			Description: fmt.Sprintf("days with deep work completions score %.1fx the points of days without", ratio),
		})
	}

	if gap, ok := complexityAvoidance(rows); ok && gap > 0.2 {
		patterns = append(patterns, Pattern{
			Kind:        "complexity_avoidance",
			Description: fmt.Sprintf("hard tasks complete %.0f%% less often than easy ones", gap*100),
		})
	}

	if bias, ok := estimationBias(rows); ok {
		patterns = append(patterns, Pattern{
			Kind:        "estimation_bias",
			Description: fmt.Sprintf("timed tasks run %.1fx their estimates on average", bias),
		})
	}

	return patterns
}

func weekdayEffect(stats []DailyStat, day time.Weekday, threshold float64, kind, format string) (Pattern, bool) {
	var dayRates, restRates []float64
	for _, s := range stats {
		if s.Date.Weekday() == day {
			dayRates = append(dayRates, s.Rate)
		} else {
			restRates = append(restRates, s.Rate)
		}
	}
	if len(dayRates) == 0 || len(restRates) == 0 {
		return Pattern{}, false
	}
	diff := mean(dayRates) - mean(restRates)
	if (threshold > 0 && diff >= threshold) || (threshold < 0 && diff <= threshold) {
		return Pattern{Kind: kind, Description: fmt.Sprintf(format, math.Abs(diff))}, true
	}
	return Pattern{}, false
}

func deepWorkImpact(stats []DailyStat) (float64, bool) {
	var withDW, withoutDW []float64
	for _, s := range stats {
		if s.CompletedDeepWork > 0 {
			withDW = append(withDW, float64(s.Points))
		} else {
			withoutDW = append(withoutDW, float64(s.Points))
		}
	}
	if len(withDW) == 0 || len(withoutDW) == 0 || mean(withoutDW) == 0 {
		return 0, false
	}
	return mean(withDW) / mean(withoutDW), true
}

// complexityAvoidance returns the completion-rate gap between easy
// (1-2) and hard (4-5) tasks.
func complexityAvoidance(rows []*entity.DailyTaskDetail) (float64, bool) {
	var easyDone, easyAll, hardDone, hardAll int
	for _, row := range rows {
		switch {
		case row.Complexity <= 2:
			easyAll++
			if row.Status == entity.StatusCompleted {
				easyDone++
			}
		case row.Complexity >= 4:
			hardAll++
			if row.Status == entity.StatusCompleted {
				hardDone++
			}
		}
	}
	if easyAll == 0 || hardAll == 0 {
		return 0, false
	}
	return float64(easyDone)/float64(easyAll) - float64(hardDone)/float64(hardAll), true
}

// estimationBias reports the mean actual/estimate ratio when at least
// 30% of completions are timed and the ratio is clearly off.
func estimationBias(rows []*entity.DailyTaskDetail) (float64, bool) {
	var ratios []float64
	completed := 0
	for _, row := range rows {
		if row.Status != entity.StatusCompleted {
			continue
		}
		completed++
		if row.ActualTime != nil && row.TimeEstimate > 0 {
			ratios = append(ratios, float64(*row.ActualTime)/float64(row.TimeEstimate))
		}
	}
	if completed == 0 || float64(len(ratios))/float64(completed) < 0.3 {
		return 0, false
	}
	bias := mean(ratios)
	if bias > 1.3 || bias < 0.7 {
		return round2(bias), true
	}
	return 0, false
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
