package scoring_test

import (
	"testing"

	"github.com/limbo/momentum/internal/scoring"
	"github.com/limbo/momentum/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestTaskPoints(t *testing.T) {
	cases := []struct {
		name          string
		complexity    int
		cognitiveLoad string
		timeEstimate  int
		want          int
	}{
		{"deep work with hour estimate", 3, entity.LoadDeepWork, 60, 80},
		{"admin baseline", 1, entity.LoadAdmin, 30, 15},
		{"learning multiplier", 2, entity.LoadLearning, 30, 37},
		{"active work", 3, entity.LoadActiveWork, 30, 42},
		{"unknown load falls back to 1.0", 3, "mystery", 30, 35},
		{"zero estimate gives no bonus", 5, entity.LoadAdmin, 0, 50},
		{"sub-block estimate gives no bonus", 5, entity.LoadAdmin, 29, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, scoring.TaskPoints(tc.complexity, tc.cognitiveLoad, tc.timeEstimate))
		})
	}
}

func TestTaskPointsMonotonicInTime(t *testing.T) {
	for _, load := range entity.CognitiveLoads() {
		for complexity := 1; complexity <= 5; complexity++ {
			for estimate := 0; estimate <= 240; estimate += 15 {
				shorter := scoring.TaskPoints(complexity, load, estimate)
				longer := scoring.TaskPoints(complexity, load, estimate*2)
				assert.GreaterOrEqual(t, longer, shorter)
				assert.GreaterOrEqual(t, shorter, 0)
			}
		}
	}
}

func TestRolloverPenalty(t *testing.T) {
	assert.Equal(t, 0, scoring.RolloverPenalty(0))
	assert.Equal(t, 3, scoring.RolloverPenalty(1))
	assert.Equal(t, 7, scoring.RolloverPenalty(2))
	assert.Equal(t, 14, scoring.RolloverPenalty(3))
	assert.Equal(t, 25, scoring.RolloverPenalty(10))
	assert.Equal(t, 25, scoring.RolloverPenalty(100))
}

func TestRolloverPenaltyMonotonicAndBounded(t *testing.T) {
	prev := 0
	for n := 0; n <= 50; n++ {
		p := scoring.RolloverPenalty(n)
		assert.GreaterOrEqual(t, p, prev)
		assert.LessOrEqual(t, p, 25)
		prev = p
	}
}

func TestNetPoints(t *testing.T) {
	completed := &entity.DailyTaskDetail{
		DailyTask:     entity.DailyTask{Status: entity.StatusCompleted, PenaltyPoints: 7},
		Complexity:    3,
		CognitiveLoad: entity.LoadDeepWork,
		TimeEstimate:  60,
	}
	assert.Equal(t, 73, scoring.NetPoints(completed))

	pending := &entity.DailyTaskDetail{
		DailyTask:     entity.DailyTask{Status: entity.StatusPending, PenaltyPoints: 3},
		Complexity:    3,
		CognitiveLoad: entity.LoadDeepWork,
		TimeEstimate:  60,
	}
	assert.Equal(t, -3, scoring.NetPoints(pending))
}
