package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/limbo/momentum/internal/achievement"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/gamification"
	"github.com/limbo/momentum/internal/metrics"
	"github.com/limbo/momentum/internal/repository"
	"github.com/limbo/momentum/internal/scoring"
	"github.com/limbo/momentum/internal/streak"
	"github.com/limbo/momentum/pkg/entity"
)

type StatsService struct {
	dailyRepo        repository.DailyTasksRepositoryI
	achievementsRepo repository.AchievementsRepositoryI
	challengesRepo   repository.ChallengesRepositoryI
	now              func() time.Time
}

func NewStatsService(dailyRepo repository.DailyTasksRepositoryI, achievementsRepo repository.AchievementsRepositoryI, challengesRepo repository.ChallengesRepositoryI) *StatsService {
	if dailyRepo == nil || achievementsRepo == nil || challengesRepo == nil {
		log.Fatal("on stats service provided nil repos")
	}
	return &StatsService{
		dailyRepo:        dailyRepo,
		achievementsRepo: achievementsRepo,
		challengesRepo:   challengesRepo,
		now:              time.Now,
	}
}

func (ss *StatsService) GetStreak(ctx context.Context) (*entity.StreakInfo, error) {
	rows, err := ss.dailyRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.New("daily tasks repository error: " + err.Error())
	}
	info := buildStreakInfo(rows, ss.now())
	metrics.UpdateCurrentStreak(info.CurrentStreak)
	return info, nil
}

func (ss *StatsService) GetUserStats(ctx context.Context) (*UserStats, error) {
	rows, err := ss.dailyRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.New("daily tasks repository error: " + err.Error())
	}
	challengeDates, err := ss.challengesRepo.CompletedDates(ctx)
	if err != nil {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	records, err := ss.achievementsRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.New("achievements repository error: " + err.Error())
	}
	byDay := make(map[string]bool, len(challengeDates))
	for _, d := range challengeDates {
		byDay[d.Format(time.DateOnly)] = true
	}
	totalXP := gamification.TotalXP(rows, byDay)
	progress := gamification.XPProgress(totalXP)
	stats := UserStats{
		Progress:            progress,
		Rank:                gamification.RankForLevel(progress.Level),
		NextMilestoneLevel:  gamification.NextMilestone(progress.Level),
		Streak:              *buildStreakInfo(rows, ss.now()),
		AchievementsEarned:  len(records),
		ChallengesCompleted: len(challengeDates),
	}
	for _, row := range rows {
		stats.TotalPoints += scoring.NetPoints(row)
		if row.Status == entity.StatusCompleted {
			stats.TotalCompleted++
		}
	}
	return &stats, nil
}

func (ss *StatsService) CheckAchievements(ctx context.Context) ([]*UnlockedAchievement, error) {
	rows, err := ss.dailyRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.New("daily tasks repository error: " + err.Error())
	}
	challengeDates, err := ss.challengesRepo.CompletedDates(ctx)
	if err != nil {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	records, err := ss.achievementsRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.New("achievements repository error: " + err.Error())
	}
	unlocked := make(map[string]bool, len(records))
	for _, rec := range records {
		unlocked[rec.AchievementID] = true
	}
	stats := achievement.BuildStats(rows, ss.now(), len(challengeDates))
	earned := achievement.Evaluate(stats, unlocked)
	result := make([]*UnlockedAchievement, 0, len(earned))
	for _, def := range earned {
		rec := entity.AchievementRecord{
			AchievementID: def.ID,
			UnlockedAt:    ss.now(),
			Points:        def.TierPoints(),
		}
		err = ss.achievementsRepo.Unlock(ctx, &rec)
		if err != nil {
			// A concurrent check already stored it.
			if errors.Is(err, errorvalues.ErrAchievementUnlocked) {
				continue
			}
			return nil, errors.New("achievements repository error: " + err.Error())
		}
		metrics.RecordAchievementUnlocked(def.Tier)
		result = append(result, &UnlockedAchievement{
			Definition: def,
			Awarded:    rec.Points,
			UnlockedAt: rec.UnlockedAt,
		})
	}
	return result, nil
}

func (ss *StatsService) ListAchievements(ctx context.Context) (*AchievementsOverview, error) {
	rows, err := ss.dailyRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.New("daily tasks repository error: " + err.Error())
	}
	challengeDates, err := ss.challengesRepo.CompletedDates(ctx)
	if err != nil {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	records, err := ss.achievementsRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.New("achievements repository error: " + err.Error())
	}
	unlockedAt := make(map[string]time.Time, len(records))
	points := 0
	for _, rec := range records {
		unlockedAt[rec.AchievementID] = rec.UnlockedAt
		points += rec.Points
	}
	stats := achievement.BuildStats(rows, ss.now(), len(challengeDates))
	overview := AchievementsOverview{
		Achievements: make([]*AchievementView, 0, len(achievement.Definitions)),
		Total:        len(achievement.Definitions),
		Unlocked:     len(records),
		PointsEarned: points,
	}
	for _, def := range achievement.Definitions {
		at, ok := unlockedAt[def.ID]
		// Hidden achievements stay off the board until earned.
		if def.Hidden && !ok {
			continue
		}
		view := AchievementView{
			Definition: def,
			Unlocked:   ok,
			Progress:   achievement.ProgressFor(def, stats),
		}
		if ok {
			at := at
			view.UnlockedAt = &at
		}
		overview.Achievements = append(overview.Achievements, &view)
	}
	return &overview, nil
}

func buildStreakInfo(rows []*entity.DailyTaskDetail, today time.Time) *entity.StreakInfo {
	dates := make([]time.Time, 0)
	for _, row := range rows {
		if row.Status == entity.StatusCompleted {
			dates = append(dates, row.ScheduledDate)
		}
	}
	current := streak.Current(dates, today)
	longest := streak.Longest(dates)
	return &entity.StreakInfo{
		CurrentStreak:       current,
		LongestStreak:       longest,
		IsRecord:            current > 0 && current >= longest,
		DaysToNextMilestone: streak.DaysToNextMilestone(current),
	}
}
