// Package scoring holds the canonical point and penalty formulas.
// Every other component computes task points through TaskPoints; no
// caller may reimplement the formula.
package scoring

import "github.com/limbo/momentum/pkg/entity"

const (
	basePerComplexity = 10
	timeBonusStep     = 5
	timeBonusBlock    = 30

	penaltyBase   = 3.0
	penaltyGrowth = 1.5
	penaltyCap    = 25
)

func loadMultiplier(cognitiveLoad string) float64 {
	switch cognitiveLoad {
	case entity.LoadDeepWork:
		return 2.0
	case entity.LoadLearning:
		return 1.5
	case entity.LoadActiveWork:
		return 1.2
	case entity.LoadAdmin:
		return 1.0
	default:
		return 1.0
	}
}

// TaskPoints computes the point value of a task from its attributes.
func TaskPoints(complexity int, cognitiveLoad string, timeEstimate int) int {
	base := complexity * basePerComplexity
	timeBonus := (timeEstimate / timeBonusBlock) * timeBonusStep
	return int(float64(base+timeBonus) * loadMultiplier(cognitiveLoad))
}

// RolloverPenalty maps a rollover count to an escalating penalty,
// capped so repeated rollovers cannot grow without bound.
func RolloverPenalty(rolledOverCount int) int {
	penalty := 0.0
	step := penaltyBase
	for i := 0; i < rolledOverCount; i++ {
		penalty += step
		step *= penaltyGrowth
		if penalty >= penaltyCap {
			return penaltyCap
		}
	}
	return int(penalty)
}

// NetPoints computes a daily instance's contribution to the day's score.
// Incomplete instances contribute only their penalty.
func NetPoints(row *entity.DailyTaskDetail) int {
	if row.Status == entity.StatusCompleted {
		return TaskPoints(row.Complexity, row.CognitiveLoad, row.TimeEstimate) - row.PenaltyPoints
	}
	return -row.PenaltyPoints
}
