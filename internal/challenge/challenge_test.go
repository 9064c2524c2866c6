package challenge_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/limbo/momentum/internal/challenge"
	"github.com/limbo/momentum/pkg/entity"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func row(date time.Time, status, load string, complexity, estimate int) *entity.DailyTaskDetail {
	r := &entity.DailyTaskDetail{}
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

func doneAt(r *entity.DailyTaskDetail, hour int) *entity.DailyTaskDetail {
	at := time.Date(r.ScheduledDate.Year(), r.ScheduledDate.Month(), r.ScheduledDate.Day(), hour, 0, 0, 0, time.UTC)
	r.CompletedAt = &at
	return r
}

func withActual(r *entity.DailyTaskDetail, minutes int) *entity.DailyTaskDetail {
	r.ActualTime = &minutes
	return r
}

func TestBuildContext(t *testing.T) {
	target := day(2026, time.March, 18) // Wednesday
	yesterday := target.AddDate(0, 0, -1)
	twoAgo := target.AddDate(0, 0, -2)

	history := []*entity.DailyTaskDetail{
		row(twoAgo, entity.StatusCompleted, entity.LoadDeepWork, 3, 60),
		row(twoAgo, entity.StatusCompleted, entity.LoadAdmin, 1, 15),
		row(yesterday, entity.StatusCompleted, entity.LoadDeepWork, 2, 30),
		row(yesterday, entity.StatusPending, entity.LoadLearning, 2, 45),
	}

	ctx := challenge.BuildContext(target, history, []string{"keep_streak"}, 42)

	assert.Equal(t, 2, ctx.CurrentStreak)
	assert.True(t, ctx.HasStreak)
	assert.False(t, ctx.MissedYesterday)
	assert.Equal(t, 1, ctx.YesterdayCompleted)
	assert.Equal(t, 2, ctx.UserLevel)
	assert.False(t, ctx.IsWeekend)
	assert.InDelta(t, 1.5, ctx.AvgDailyTasks, 0.001)
	assert.InDelta(t, 75.0, ctx.AvgCompletionRate, 0.001)
	assert.InDelta(t, 100.0, ctx.CognitiveRates[entity.LoadDeepWork], 0.001)
	assert.InDelta(t, 0.0, ctx.CognitiveRates[entity.LoadLearning], 0.001)
}

func TestBuildContextMissedYesterday(t *testing.T) {
	target := day(2026, time.March, 18)
	yesterday := target.AddDate(0, 0, -1)
	history := []*entity.DailyTaskDetail{
		row(yesterday, entity.StatusPending, entity.LoadAdmin, 1, 15),
	}
	ctx := challenge.BuildContext(target, history, nil, 0)
	assert.True(t, ctx.MissedYesterday)
	assert.Equal(t, 0, ctx.CurrentStreak)
	assert.Equal(t, 1, ctx.UserLevel)
}

func TestScore(t *testing.T) {
	weekendDef, ok := challenge.ByID("weekend_warrior")
	assert.True(t, ok)
	beginnerDef, _ := challenge.ByID("three_tasks")
	epicDef, _ := challenge.ByID("ten_tasks")

	weekday := &challenge.Context{Date: day(2026, time.March, 18), UserLevel: 1}
	weekend := &challenge.Context{Date: day(2026, time.March, 21), IsWeekend: true, UserLevel: 1}

	assert.Equal(t, 10, challenge.Score(weekendDef, weekday))
	assert.Equal(t, 100, challenge.Score(weekendDef, weekend))

	newbie := &challenge.Context{UserLevel: 1, TotalCompleted: 2}
	assert.Equal(t, 120, challenge.Score(beginnerDef, newbie))

	// epic picks are suppressed for new users and floored at zero
	assert.Equal(t, 0, challenge.Score(epicDef, newbie))

	veteran := &challenge.Context{UserLevel: 4, TotalCompleted: 500, AvgCompletionRate: 90}
	assert.Equal(t, 95, challenge.Score(epicDef, veteran))
}

func TestScoreRecoveryAndRollovers(t *testing.T) {
	fresh, _ := challenge.ByID("fresh_start")
	keep, _ := challenge.ByID("keep_streak")
	comeback, _ := challenge.ByID("comeback_kid")

	missed := &challenge.Context{UserLevel: 2, MissedYesterday: true}
	assert.Equal(t, 50+20+35, challenge.Score(fresh, missed))
	assert.Equal(t, 50+20-20, challenge.Score(keep, missed))

	streaking := &challenge.Context{UserLevel: 2, HasStreak: true, CurrentStreak: 5}
	assert.Equal(t, 50+20+25+30, challenge.Score(keep, streaking))

	rolled := &challenge.Context{UserLevel: 2, HasRollovers: true}
	assert.Equal(t, 50+25+40, challenge.Score(comeback, rolled))
}

func TestSelectExcludesRecent(t *testing.T) {
	ctx := &challenge.Context{
		UserLevel:        2,
		RecentChallenges: []string{"three_tasks", "five_tasks", "earn_50_points", "keep_streak", "minimum_viable"},
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		def := challenge.Select(ctx, rng)
		assert.NotContains(t, ctx.RecentChallenges, def.ID)
	}
}

func TestSelectDeterministicForSeed(t *testing.T) {
	ctx := &challenge.Context{UserLevel: 3}
	first := challenge.Select(ctx, rand.New(rand.NewSource(7)))
	second := challenge.Select(ctx, rand.New(rand.NewSource(7)))
	assert.Equal(t, first.ID, second.ID)
}

func TestRollBonusInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for difficulty, info := range challenge.Difficulties {
		for i := 0; i < 100; i++ {
			bonus := challenge.RollBonus(difficulty, rng)
			assert.GreaterOrEqual(t, bonus, info.MinBonus)
			assert.LessOrEqual(t, bonus, info.MaxBonus)
		}
	}
}

func TestCheckCompletion(t *testing.T) {
	date := day(2026, time.March, 20) // Friday
	ctx := challenge.BuildContext(date, nil, nil, 20)

	deep := row(date, entity.StatusCompleted, entity.LoadDeepWork, 4, 90)
	admin := row(date, entity.StatusCompleted, entity.LoadAdmin, 1, 15)
	pending := row(date, entity.StatusPending, entity.LoadLearning, 2, 30)

	tests := []struct {
		name string
		id   string
		rows []*entity.DailyTaskDetail
		want bool
	}{
		{"task count met", "three_tasks", []*entity.DailyTaskDetail{deep, admin, row(date, entity.StatusCompleted, entity.LoadActiveWork, 2, 30)}, true},
		{"task count short", "three_tasks", []*entity.DailyTaskDetail{deep, admin}, false},
		{"cognitive time from estimate", "deep_work_1h", []*entity.DailyTaskDetail{deep}, true},
		{"cognitive time short", "deep_work_2h", []*entity.DailyTaskDetail{deep}, false},
		{"clear category done", "admin_blitz", []*entity.DailyTaskDetail{admin, deep}, true},
		{"clear category open", "admin_blitz", []*entity.DailyTaskDetail{admin, row(date, entity.StatusPending, entity.LoadAdmin, 1, 15)}, false},
		{"clear category absent", "admin_blitz", []*entity.DailyTaskDetail{deep}, false},
		{"perfect day", "perfect_day", []*entity.DailyTaskDetail{deep, admin}, true},
		{"perfect day broken", "perfect_day", []*entity.DailyTaskDetail{deep, pending}, false},
		{"perfect day empty", "perfect_day", nil, false},
		{"complexity reached", "complexity_5", []*entity.DailyTaskDetail{row(date, entity.StatusCompleted, entity.LoadDeepWork, 5, 120)}, true},
		{"complexity not reached", "complexity_5", []*entity.DailyTaskDetail{deep}, false},
		{"friday clear", "friday_finish", []*entity.DailyTaskDetail{deep, admin}, true},
		{"no easy mode", "no_easy_mode", []*entity.DailyTaskDetail{deep, row(date, entity.StatusCompleted, entity.LoadLearning, 3, 45)}, true},
		{"no easy mode violated", "no_easy_mode", []*entity.DailyTaskDetail{deep, admin}, false},
		{"variety", "complexity_variety", []*entity.DailyTaskDetail{deep, admin, row(date, entity.StatusCompleted, entity.LoadLearning, 3, 45)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, ok := challenge.ByID(tt.id)
			assert.True(t, ok)
			assert.Equal(t, tt.want, challenge.CheckCompletion(def, tt.rows, ctx))
		})
	}
}

func TestCheckCompletionDailyPoints(t *testing.T) {
	date := day(2026, time.March, 18)
	ctx := challenge.BuildContext(date, nil, nil, 20)
	def, _ := challenge.ByID("earn_50_points")

	// complexity 3 deep work with 60m estimate is worth 80 points
	rows := []*entity.DailyTaskDetail{row(date, entity.StatusCompleted, entity.LoadDeepWork, 3, 60)}
	assert.True(t, challenge.CheckCompletion(def, rows, ctx))

	rows = []*entity.DailyTaskDetail{row(date, entity.StatusCompleted, entity.LoadAdmin, 1, 15)}
	assert.False(t, challenge.CheckCompletion(def, rows, ctx))
}

func TestCheckCompletionTimeOfDay(t *testing.T) {
	date := day(2026, time.March, 18)
	ctx := challenge.BuildContext(date, nil, nil, 20)

	early, _ := challenge.ByID("early_bird")
	night, _ := challenge.ByID("night_owl")
	noon, _ := challenge.ByID("finish_by_noon")

	morning := doneAt(row(date, entity.StatusCompleted, entity.LoadAdmin, 1, 15), 8)
	evening := doneAt(row(date, entity.StatusCompleted, entity.LoadAdmin, 1, 15), 22)

	assert.True(t, challenge.CheckCompletion(early, []*entity.DailyTaskDetail{morning}, ctx))
	assert.False(t, challenge.CheckCompletion(early, []*entity.DailyTaskDetail{evening}, ctx))
	assert.True(t, challenge.CheckCompletion(night, []*entity.DailyTaskDetail{evening}, ctx))

	rows := []*entity.DailyTaskDetail{
		doneAt(row(date, entity.StatusCompleted, entity.LoadAdmin, 1, 15), 9),
		doneAt(row(date, entity.StatusCompleted, entity.LoadAdmin, 1, 15), 10),
		doneAt(row(date, entity.StatusCompleted, entity.LoadDeepWork, 3, 60), 11),
	}
	assert.True(t, challenge.CheckCompletion(noon, rows, ctx))
	assert.False(t, challenge.CheckCompletion(noon, rows[:2], ctx))
}

func TestCheckCompletionEstimates(t *testing.T) {
	date := day(2026, time.March, 18)
	ctx := challenge.BuildContext(date, nil, nil, 20)

	within, _ := challenge.ByID("time_boxer")
	beat, _ := challenge.ByID("speed_demon")

	onTime := withActual(row(date, entity.StatusCompleted, entity.LoadDeepWork, 3, 60), 55)
	fast := withActual(row(date, entity.StatusCompleted, entity.LoadDeepWork, 3, 60), 40)
	slow := withActual(row(date, entity.StatusCompleted, entity.LoadDeepWork, 3, 60), 70)

	assert.True(t, challenge.CheckCompletion(within, []*entity.DailyTaskDetail{onTime}, ctx))
	assert.False(t, challenge.CheckCompletion(within, []*entity.DailyTaskDetail{slow}, ctx))
	assert.True(t, challenge.CheckCompletion(beat, []*entity.DailyTaskDetail{fast}, ctx))
	assert.False(t, challenge.CheckCompletion(beat, []*entity.DailyTaskDetail{onTime}, ctx))
}

func TestCheckCompletionSprint(t *testing.T) {
	date := day(2026, time.March, 18)
	ctx := challenge.BuildContext(date, nil, nil, 20)
	def, _ := challenge.ByID("task_sprint")

	tight := []*entity.DailyTaskDetail{
		doneAt(row(date, entity.StatusCompleted, entity.LoadAdmin, 1, 15), 9),
		doneAt(row(date, entity.StatusCompleted, entity.LoadAdmin, 1, 15), 10),
		doneAt(row(date, entity.StatusCompleted, entity.LoadAdmin, 1, 15), 11),
	}
	assert.True(t, challenge.CheckCompletion(def, tight, ctx))

	spread := []*entity.DailyTaskDetail{
		doneAt(row(date, entity.StatusCompleted, entity.LoadAdmin, 1, 15), 9),
		doneAt(row(date, entity.StatusCompleted, entity.LoadAdmin, 1, 15), 13),
		doneAt(row(date, entity.StatusCompleted, entity.LoadAdmin, 1, 15), 18),
	}
	assert.False(t, challenge.CheckCompletion(def, spread, ctx))
}

func TestCheckCompletionRollovers(t *testing.T) {
	date := day(2026, time.March, 18)
	ctx := challenge.BuildContext(date, nil, nil, 20)

	clearOne, _ := challenge.ByID("comeback_kid")
	clearAll, _ := challenge.ByID("rollover_slayer")
	zen, _ := challenge.ByID("zen_master")

	rolled := row(date, entity.StatusCompleted, entity.LoadAdmin, 1, 15)
	rolled.RolledOverCount = 2
	openRolled := row(date, entity.StatusPending, entity.LoadAdmin, 1, 15)
	openRolled.RolledOverCount = 1
	fresh := row(date, entity.StatusCompleted, entity.LoadDeepWork, 3, 60)

	assert.True(t, challenge.CheckCompletion(clearOne, []*entity.DailyTaskDetail{rolled, fresh}, ctx))
	assert.False(t, challenge.CheckCompletion(clearOne, []*entity.DailyTaskDetail{fresh}, ctx))
	assert.True(t, challenge.CheckCompletion(clearAll, []*entity.DailyTaskDetail{rolled, fresh}, ctx))
	assert.False(t, challenge.CheckCompletion(clearAll, []*entity.DailyTaskDetail{rolled, openRolled}, ctx))
	assert.True(t, challenge.CheckCompletion(zen, []*entity.DailyTaskDetail{fresh}, ctx))
	assert.False(t, challenge.CheckCompletion(zen, []*entity.DailyTaskDetail{rolled, fresh}, ctx))
}

func TestCheckCompletionHistoryComparisons(t *testing.T) {
	date := day(2026, time.March, 18)
	yesterday := date.AddDate(0, 0, -1)
	history := []*entity.DailyTaskDetail{
		row(yesterday, entity.StatusCompleted, entity.LoadAdmin, 1, 15),
		row(yesterday, entity.StatusCompleted, entity.LoadAdmin, 1, 15),
	}
	ctx := challenge.BuildContext(date, history, nil, 20)

	beat, _ := challenge.ByID("double_yesterday")
	over, _ := challenge.ByID("overachiever")

	three := []*entity.DailyTaskDetail{
		row(date, entity.StatusCompleted, entity.LoadAdmin, 1, 15),
		row(date, entity.StatusCompleted, entity.LoadAdmin, 1, 15),
		row(date, entity.StatusCompleted, entity.LoadDeepWork, 3, 60),
	}
	assert.True(t, challenge.CheckCompletion(beat, three, ctx))
	assert.False(t, challenge.CheckCompletion(beat, three[:2], ctx))
	assert.True(t, challenge.CheckCompletion(over, three, ctx))
	assert.False(t, challenge.CheckCompletion(over, three[:2], ctx))
}
