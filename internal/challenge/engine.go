package challenge

import (
	"math/rand"
	"sort"
	"strings"
)

// difficultyFit weighs each difficulty per experience level so new
// users mostly see easy picks and veterans see hard ones.
var difficultyFit = map[int]map[string]int{
	1: {"easy": 30, "medium": 10, "hard": -20, "epic": -50},
	2: {"easy": 20, "medium": 25, "hard": 5, "epic": -20},
	3: {"easy": 5, "medium": 20, "hard": 25, "epic": 10},
	4: {"easy": -10, "medium": 15, "hard": 30, "epic": 25},
}

// Score rates how well a definition fits today's context. Zero means
// the challenge should not be offered.
func Score(def Definition, ctx *Context) int {
	score := 50
	score += difficultyFit[ctx.UserLevel][def.Difficulty]

	if hasTag(def, "weekend") {
		if ctx.IsWeekend {
			score += 40
		} else {
			score -= 50
		}
	}
	if hasTag(def, "monday") && ctx.IsMonday {
		score += 40
	}
	if hasTag(def, "friday") && ctx.IsFriday {
		score += 40
	}

	if ctx.HasStreak && def.Category == "streak" {
		score += 25
	}
	if ctx.CurrentStreak >= 3 && strings.Contains(def.ID, "keep_streak") {
		score += 30
	}

	if ctx.MissedYesterday {
		if hasTag(def, "recovery") || hasTag(def, "easy") {
			score += 35
		}
		if hasTag(def, "streak") {
			score -= 20
		}
	}

	if ctx.HasRollovers && hasTag(def, "comeback") {
		score += 40
	}

	if def.Requirement.Load != "" {
		if rate, ok := ctx.CognitiveRates[def.Requirement.Load]; ok {
			if rate < 50 {
				score += 30
			} else if rate < 70 {
				score += 15
			}
		}
	}

	if ctx.AvgCompletionRate > 0 && ctx.AvgCompletionRate < 50 {
		if def.Difficulty == "easy" {
			score += 25
		}
		if def.Difficulty == "epic" {
			score -= 30
		}
	} else if ctx.AvgCompletionRate > 85 {
		if def.Difficulty == "hard" || def.Difficulty == "epic" {
			score += 20
		}
	}

	if ctx.TotalCompleted < 5 && hasTag(def, "beginner") {
		score += 40
	}

	if score < 0 {
		score = 0
	}
	return score
}

// Select picks today's challenge. Recently served challenges are
// excluded, candidates are scored against the context and one of the
// top five is drawn weighted by score.
func Select(ctx *Context, rng *rand.Rand) Definition {
	excluded := map[string]bool{}
	for i, id := range ctx.RecentChallenges {
		if i >= 5 {
			break
		}
		excluded[id] = true
	}

	type candidate struct {
		def   Definition
		score int
	}
	var pool []candidate
	for _, def := range Definitions {
		if excluded[def.ID] {
			continue
		}
		if s := Score(def, ctx); s > 0 {
			pool = append(pool, candidate{def, s})
		}
	}
	if len(pool) == 0 {
		for _, def := range Definitions {
			pool = append(pool, candidate{def, 50})
		}
	}

	sort.Slice(pool, func(i, j int) bool {
		if pool[i].score != pool[j].score {
			return pool[i].score > pool[j].score
		}
		return pool[i].def.ID < pool[j].def.ID
	})
	if len(pool) > 5 {
		pool = pool[:5]
	}

	total := 0
	for _, c := range pool {
		total += c.score
	}
	pick := rng.Intn(total)
	for _, c := range pool {
		pick -= c.score
		if pick < 0 {
			return c.def
		}
	}
	return pool[len(pool)-1].def
}

// RollBonus draws the bonus value inside the difficulty's range.
func RollBonus(difficulty string, rng *rand.Rand) int {
	info, ok := Difficulties[difficulty]
	if !ok {
		info = Difficulties["medium"]
	}
	return info.MinBonus + rng.Intn(info.MaxBonus-info.MinBonus+1)
}

func hasTag(def Definition, tag string) bool {
	for _, t := range def.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
