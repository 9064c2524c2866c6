package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/service"
	"github.com/limbo/momentum/pkg/entity"
)

type achievementsRepoMock struct {
	state   mockState
	records []*entity.AchievementRecord
}

func (armock *achievementsRepoMock) Unlock(ctx context.Context, rec *entity.AchievementRecord) error {
	if armock.state == stateDBError {
		return errors.New("db error")
	}
	for _, existing := range armock.records {
		if existing.AchievementID == rec.AchievementID {
			return errorvalues.ErrAchievementUnlocked
		}
	}
	stored := *rec
	armock.records = append(armock.records, &stored)
	return nil
}

func (armock *achievementsRepoMock) GetAll(ctx context.Context) ([]*entity.AchievementRecord, error) {
	if armock.state == stateDBError {
		return nil, errors.New("db error")
	}
	return armock.records, nil
}

type challengesRepoMock struct {
	state   mockState
	entries []*entity.ChallengeEntry
}

func (crmock *challengesRepoMock) Create(ctx context.Context, entry *entity.ChallengeEntry) error {
	if crmock.state == stateDBError {
		return errors.New("db error")
	}
	for _, existing := range crmock.entries {
		if sameDay(existing.Date, entry.Date) {
			return errorvalues.ErrChallengeExists
		}
	}
	stored := *entry
	crmock.entries = append(crmock.entries, &stored)
	return nil
}

func (crmock *challengesRepoMock) GetByDate(ctx context.Context, date time.Time) (*entity.ChallengeEntry, error) {
	if crmock.state == stateDBError {
		return nil, errors.New("db error")
	}
	for _, existing := range crmock.entries {
		if sameDay(existing.Date, date) {
			return existing, nil
		}
	}
	return nil, errorvalues.ErrChallengeNotFound
}

func (crmock *challengesRepoMock) GetSince(ctx context.Context, since time.Time) ([]*entity.ChallengeEntry, error) {
	if crmock.state == stateDBError {
		return nil, errors.New("db error")
	}
	result := make([]*entity.ChallengeEntry, 0)
	for i := len(crmock.entries) - 1; i >= 0; i-- {
		if !crmock.entries[i].Date.Before(since) {
			result = append(result, crmock.entries[i])
		}
	}
	return result, nil
}

func (crmock *challengesRepoMock) MarkCompleted(ctx context.Context, date time.Time, at time.Time) error {
	if crmock.state == stateDBError {
		return errors.New("db error")
	}
	for _, existing := range crmock.entries {
		if sameDay(existing.Date, date) && !existing.Completed {
			existing.Completed = true
			stamped := at
			existing.CompletedAt = &stamped
			return nil
		}
	}
	return errorvalues.ErrChallengeNotFound
}

func (crmock *challengesRepoMock) CompletedDates(ctx context.Context) ([]time.Time, error) {
	if crmock.state == stateDBError {
		return nil, errors.New("db error")
	}
	dates := make([]time.Time, 0)
	for _, existing := range crmock.entries {
		if existing.Completed {
			dates = append(dates, existing.Date)
		}
	}
	return dates, nil
}

func TestGetStreak(t *testing.T) {
	dailyMock := newDailyRepoMock()
	achMock := &achievementsRepoMock{}
	chMock := &challengesRepoMock{}
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	dailyMock.seed(1, yesterday, entity.StatusCompleted, 0, 0, 3, entity.LoadDeepWork, 60, &yesterday)
	dailyMock.seed(2, now, entity.StatusCompleted, 0, 0, 2, entity.LoadAdmin, 30, &now)
	s := service.NewStatsService(dailyMock, achMock, chMock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		info, err := s.GetStreak(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 2, info.CurrentStreak)
		assert.Equal(t, 2, info.LongestStreak)
		assert.True(t, info.IsRecord)
		assert.Equal(t, 1, info.DaysToNextMilestone)
	})
	t.Run("db error", func(t *testing.T) {
		dailyMock.state = stateDBError
		_, err := s.GetStreak(ctx)
		assert.Error(t, err)
	})
}

func TestGetUserStats(t *testing.T) {
	dailyMock := newDailyRepoMock()
	achMock := &achievementsRepoMock{}
	chMock := &challengesRepoMock{}
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	dailyMock.seed(1, yesterday, entity.StatusCompleted, 0, 0, 3, entity.LoadDeepWork, 60, &yesterday)
	dailyMock.seed(2, now, entity.StatusCompleted, 0, 0, 3, entity.LoadDeepWork, 60, &now)
	dailyMock.seed(3, now, entity.StatusPending, 1, 3, 1, entity.LoadAdmin, 15, nil)
	completedAt := yesterday
	chMock.entries = append(chMock.entries, &entity.ChallengeEntry{
		Date:        yesterday,
		ChallengeID: "three_tasks",
		BonusPoints: 30,
		Completed:   true,
		CompletedAt: &completedAt,
	})
	achMock.records = append(achMock.records, &entity.AchievementRecord{
		AchievementID: "first_task",
		UnlockedAt:    yesterday,
		Points:        10,
	})
	s := service.NewStatsService(dailyMock, achMock, chMock)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		stats, err := s.GetUserStats(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 2, stats.TotalCompleted)
		// two completed 80-point tasks minus a pending 3-point penalty
		assert.Equal(t, 157, stats.TotalPoints)
		assert.Equal(t, 1, stats.AchievementsEarned)
		assert.Equal(t, 1, stats.ChallengesCompleted)
		assert.GreaterOrEqual(t, stats.Progress.Level, 1)
		assert.Greater(t, stats.Progress.TotalXP, 0)
		assert.NotEmpty(t, stats.Rank.Title)
		assert.Equal(t, 2, stats.Streak.CurrentStreak)
	})
	t.Run("db error", func(t *testing.T) {
		dailyMock.state = stateDBError
		_, err := s.GetUserStats(ctx)
		assert.Error(t, err)
	})
}

func TestCheckAchievements(t *testing.T) {
	dailyMock := newDailyRepoMock()
	achMock := &achievementsRepoMock{}
	chMock := &challengesRepoMock{}
	now := time.Now()
	dailyMock.seed(1, now, entity.StatusCompleted, 0, 0, 3, entity.LoadDeepWork, 60, &now)
	s := service.NewStatsService(dailyMock, achMock, chMock)
	ctx := context.Background()
	t.Run("first check unlocks", func(t *testing.T) {
		earned, err := s.CheckAchievements(ctx)
		assert.NoError(t, err)
		ids := make([]string, 0, len(earned))
		for _, e := range earned {
			ids = append(ids, e.ID)
		}
		assert.Contains(t, ids, "first_task")
		for _, e := range earned {
			if e.ID == "first_task" {
				assert.Equal(t, 10, e.Awarded)
			}
		}
	})
	t.Run("second check is a no-op", func(t *testing.T) {
		earned, err := s.CheckAchievements(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(earned))
	})
	t.Run("db error", func(t *testing.T) {
		achMock.state = stateDBError
		_, err := s.CheckAchievements(ctx)
		assert.Error(t, err)
	})
}

func TestListAchievements(t *testing.T) {
	dailyMock := newDailyRepoMock()
	achMock := &achievementsRepoMock{}
	chMock := &challengesRepoMock{}
	now := time.Now()
	dailyMock.seed(1, now, entity.StatusCompleted, 0, 0, 3, entity.LoadDeepWork, 60, &now)
	s := service.NewStatsService(dailyMock, achMock, chMock)
	ctx := context.Background()
	t.Run("locked hidden achievements stay off the board", func(t *testing.T) {
		overview, err := s.ListAchievements(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 0, overview.Unlocked)
		assert.Greater(t, overview.Total, len(overview.Achievements))
		for _, view := range overview.Achievements {
			assert.False(t, view.Hidden)
		}
	})
	t.Run("unlocks carry timestamps and progress", func(t *testing.T) {
		_, err := s.CheckAchievements(ctx)
		assert.NoError(t, err)
		overview, err := s.ListAchievements(ctx)
		assert.NoError(t, err)
		assert.Greater(t, overview.Unlocked, 0)
		assert.Greater(t, overview.PointsEarned, 0)
		found := false
		for _, view := range overview.Achievements {
			if view.ID == "first_task" {
				found = true
				assert.True(t, view.Unlocked)
				assert.NotNil(t, view.UnlockedAt)
				assert.Equal(t, 100, view.Progress.Percentage)
			}
		}
		assert.True(t, found)
	})
}
