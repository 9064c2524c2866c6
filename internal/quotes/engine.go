package quotes

import (
	"math/rand"
	"slices"
	"time"

	"github.com/limbo/momentum/internal/streak"
)

const (
	// MaxHistory bounds the exclusion list a caller should retain.
	MaxHistory = 15

	fallbackQuote = "Let's make today count! 🚀"
)

// Context carries the signals the category picker weighs.
type Context struct {
	Now             time.Time
	HasTasksToday   bool
	CompletionRate  float64
	CurrentStreak   int
	MissedYesterday bool
}

// relevantCategories maps the context onto bank categories, most
// specific first.
func relevantCategories(ctx Context, rng *rand.Rand) []string {
	var categories []string

	hour := ctx.Now.Hour()
	switch {
	case hour >= 5 && hour < 7:
		categories = append(categories, "early_morning")
	case hour >= 7 && hour < 12:
		categories = append(categories, "morning")
	case hour >= 12 && hour < 14:
		categories = append(categories, "midday")
	case hour >= 14 && hour < 18:
		categories = append(categories, "afternoon")
	default:
		categories = append(categories, "evening")
	}

	switch ctx.Now.Weekday() {
	case time.Monday:
		categories = append(categories, "monday")
	case time.Friday:
		categories = append(categories, "friday")
	case time.Saturday, time.Sunday:
		categories = append(categories, "weekend")
	}

	if ctx.HasTasksToday {
		if ctx.CompletionRate >= 0.7 {
			categories = append(categories, "winning")
		} else if ctx.CompletionRate < 0.3 {
			categories = append(categories, "struggling")
		}
	}

	if ctx.MissedYesterday && !ctx.HasTasksToday {
		categories = append(categories, "recovering")
	}

	if slices.Contains(streak.Milestones, ctx.CurrentStreak) {
		categories = append(categories, "milestone")
	}
	if ctx.CurrentStreak >= 7 {
		categories = append(categories, "streak_long")
	} else if ctx.CurrentStreak >= 2 {
		categories = append(categories, "streak_building")
	}

	categories = append(categories, "inspirational")
	if rng.Float64() < 0.2 {
		categories = append(categories, "playful")
	}
	if hour >= 9 && hour <= 17 && rng.Float64() < 0.15 {
		categories = append(categories, "deep_focus")
	}
	return categories
}

// Pick selects a quote for the context and keeps it from repeating by
// excluding the recently shown ones. When the eligible pool is
// exhausted only the last three exclusions are kept and the pool is
// rebuilt.
func Pick(ctx Context, recent []string, rng *rand.Rand) string {
	var eligible []string
	for _, category := range relevantCategories(ctx, rng) {
		eligible = append(eligible, bank[category]...)
	}

	available := exclude(eligible, recent)
	if len(available) == 0 && len(recent) > 3 {
		available = exclude(eligible, recent[len(recent)-3:])
	}
	if len(available) == 0 {
		available = eligible
	}
	if len(available) == 0 {
		return fallbackQuote
	}
	return available[rng.Intn(len(available))]
}

func exclude(pool, seen []string) []string {
	if len(seen) == 0 {
		return pool
	}
	seenSet := make(map[string]bool, len(seen))
	for _, q := range seen {
		seenSet[q] = true
	}
	var out []string
	for _, q := range pool {
		if !seenSet[q] {
			out = append(out, q)
		}
	}
	return out
}
