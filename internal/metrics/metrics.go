// Package metrics provides Prometheus metrics for the API and the
// derived-state engines.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TasksCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "momentum_tasks_created_total",
			Help: "Total number of tasks created",
		},
		[]string{"cognitive_load"},
	)
	TasksCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "momentum_tasks_completed_total",
			Help: "Total number of daily task instances completed",
		},
		[]string{"cognitive_load"},
	)
	TasksRolledOver = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "momentum_tasks_rolled_over_total",
			Help: "Total number of daily task instances rolled over",
		},
	)
	AchievementsUnlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "momentum_achievements_unlocked_total",
			Help: "Total number of achievements unlocked",
		},
		[]string{"tier"},
	)
	ChallengesCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "momentum_challenges_completed_total",
			Help: "Total number of daily challenges completed",
		},
	)
	CurrentStreak = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "momentum_current_streak_days",
			Help: "Current completion streak in days",
		},
	)
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "momentum_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "momentum_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

func RecordTaskCreated(cognitiveLoad string) {
	TasksCreated.WithLabelValues(cognitiveLoad).Inc()
}

func RecordTaskCompleted(cognitiveLoad string) {
	TasksCompleted.WithLabelValues(cognitiveLoad).Inc()
}

func RecordRollovers(count int) {
	TasksRolledOver.Add(float64(count))
}

func RecordAchievementUnlocked(tier string) {
	AchievementsUnlocked.WithLabelValues(tier).Inc()
}

func RecordChallengeCompleted() {
	ChallengesCompleted.Inc()
}

func UpdateCurrentStreak(days int) {
	CurrentStreak.Set(float64(days))
}

func RecordHTTPRequest(method, endpoint, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}
