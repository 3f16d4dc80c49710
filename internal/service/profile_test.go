package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/step_challenge_backend/internal/cache"
	"github.com/shenikar/step_challenge_backend/internal/models"
	"github.com/shenikar/step_challenge_backend/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Wednesday
var profileNow = time.Date(2026, 4, 15, 18, 30, 0, 0, time.UTC)

func newTestProfileService(t *testing.T) (*profileService, *mocks.MockProfileRepository, *cache.Cache) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockProfileRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	c := cache.New(cache.NewMemoryStore(), "test:", logger, cache.WithClock(func() time.Time { return profileNow }))
	service := NewProfileService(repoMock, c, logger, 10).(*profileService)
	service.now = func() time.Time { return profileNow }
	return service, repoMock, c
}

func day(offset int, steps int) models.DailySteps {
	return models.DailySteps{UserID: "user-1", Date: dayOf(profileNow).AddDate(0, 0, offset), Steps: steps}
}

func TestGetProfile_ReadsThroughCache(t *testing.T) {
	service, repoMock, _ := newTestProfileService(t)
	ctx := context.Background()
	expected := &models.Profile{UserID: "user-1", DisplayName: "Ann", DailyStepGoal: 8000}

	repoMock.EXPECT().GetProfile(ctx, "user-1").Return(expected, nil).Times(1)

	first, err := service.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	second, err := service.GetProfile(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, expected, first)
	assert.Equal(t, expected.DisplayName, second.DisplayName)
}

func TestGetProfile_NotFound(t *testing.T) {
	service, repoMock, _ := newTestProfileService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetProfile(ctx, "ghost").Return(nil, ErrProfileNotFound).Times(1)

	p, err := service.GetProfile(ctx, "ghost")

	require.ErrorIs(t, err, ErrProfileNotFound)
	assert.Nil(t, p)
}

func TestGetStreak(t *testing.T) {
	tests := []struct {
		name     string
		history  []models.DailySteps
		expected int
	}{
		{
			name:     "today reached",
			history:  []models.DailySteps{day(0, 9000), day(-1, 8000), day(-2, 8500), day(-3, 100)},
			expected: 3,
		},
		{
			name:     "today in progress keeps yesterday's streak",
			history:  []models.DailySteps{day(0, 1200), day(-1, 8000), day(-2, 8000)},
			expected: 2,
		},
		{
			name:     "gap breaks streak",
			history:  []models.DailySteps{day(-2, 9000), day(-3, 9000)},
			expected: 0,
		},
		{
			name:     "no history",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repoMock, _ := newTestProfileService(t)
			ctx := context.Background()

			repoMock.EXPECT().GetProfile(ctx, "user-1").Return(&models.Profile{UserID: "user-1", DailyStepGoal: 8000}, nil).Times(1)
			repoMock.EXPECT().ListDailySteps(ctx, "user-1", gomock.Any(), dayOf(profileNow)).Return(tt.history, nil).Times(1)

			streak, err := service.GetStreak(ctx, "user-1")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, streak.Current)
			assert.Equal(t, 8000, streak.Goal)
		})
	}
}

func TestGetWeeklySteps_FillsMissingDays(t *testing.T) {
	service, repoMock, _ := newTestProfileService(t)
	ctx := context.Background()
	from := dayOf(profileNow).AddDate(0, 0, -6)

	repoMock.EXPECT().
		ListDailySteps(ctx, "user-1", from, dayOf(profileNow)).
		Return([]models.DailySteps{day(0, 3000), day(-6, 7000)}, nil).
		Times(1)

	week, err := service.GetWeeklySteps(ctx, "user-1")

	require.NoError(t, err)
	require.Len(t, week, 7)
	assert.Equal(t, from, week[0].Date)
	assert.Equal(t, 7000, week[0].Steps)
	assert.Equal(t, 0, week[3].Steps)
	assert.Equal(t, 3000, week[6].Steps)
}

func TestGetLeaderboard_CurrentWeekRanked(t *testing.T) {
	service, repoMock, _ := newTestProfileService(t)
	ctx := context.Background()
	monday := time.Date(2026, 4, 13, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 4, 19, 0, 0, 0, 0, time.UTC)

	repoMock.EXPECT().
		Leaderboard(ctx, monday, sunday, 10).
		Return([]models.LeaderboardEntry{
			{UserID: "u2", Steps: 50000},
			{UserID: "user-1", Steps: 42000},
		}, nil).Times(1)

	board, err := service.GetLeaderboard(ctx, "user-1")

	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, 1, board[0].Rank)
	assert.Equal(t, 2, board[1].Rank)
}

func TestRecordSteps_InvalidatesDerivedEntries(t *testing.T) {
	service, repoMock, c := newTestProfileService(t)
	ctx := context.Background()

	cache.Set(ctx, c, "profile:user-1", models.Profile{UserID: "user-1"}, "user-1")
	cache.Set(ctx, c, "steps:user-1", []models.DailySteps{}, "user-1")
	cache.Set(ctx, c, "streak:user-1", models.Streak{Current: 4}, "user-1")

	repoMock.EXPECT().
		UpsertDailySteps(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.DailySteps) error {
			assert.Equal(t, dayOf(profileNow), s.Date)
			return nil
		}).Times(1)

	err := service.RecordSteps(ctx, &models.DailySteps{UserID: "user-1", Steps: 4200})
	require.NoError(t, err)

	_, ok := cache.Get[[]models.DailySteps](ctx, c, "steps:user-1", "user-1")
	assert.False(t, ok)
	_, ok = cache.Get[models.Streak](ctx, c, "streak:user-1", "user-1")
	assert.False(t, ok)
	_, ok = cache.Get[models.Profile](ctx, c, "profile:user-1", "user-1")
	assert.True(t, ok, "profile entry is not derived from steps")
}

func TestRecordSteps_RepositoryError(t *testing.T) {
	service, repoMock, _ := newTestProfileService(t)
	ctx := context.Background()

	repoMock.EXPECT().UpsertDailySteps(ctx, gomock.Any()).Return(errors.New("db down")).Times(1)

	err := service.RecordSteps(ctx, &models.DailySteps{UserID: "user-1", Steps: 1})

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not record steps")
}

func TestLogout_ClearsOnlyOwnEntries(t *testing.T) {
	service, _, c := newTestProfileService(t)
	ctx := context.Background()

	cache.Set(ctx, c, "profile:user-1", models.Profile{UserID: "user-1"}, "user-1")
	cache.Set(ctx, c, "profile:user-2", models.Profile{UserID: "user-2"}, "user-2")

	service.Logout(ctx, "user-1")

	_, ok := cache.Get[models.Profile](ctx, c, "profile:user-1", "user-1")
	assert.False(t, ok)
	_, ok = cache.Get[models.Profile](ctx, c, "profile:user-2", "user-2")
	assert.True(t, ok)
}

func TestRecordSteps_RefreshesSharedLeaderboard(t *testing.T) {
	service, repoMock, _ := newTestProfileService(t)
	ctx := context.Background()
	monday := time.Date(2026, 4, 13, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 4, 19, 0, 0, 0, 0, time.UTC)

	gomock.InOrder(
		repoMock.EXPECT().
			Leaderboard(ctx, monday, sunday, 10).
			Return([]models.LeaderboardEntry{{UserID: "user-1", Steps: 42000}, {UserID: "user-2", Steps: 50}}, nil),
		repoMock.EXPECT().UpsertDailySteps(ctx, gomock.Any()).Return(nil),
		repoMock.EXPECT().
			Leaderboard(ctx, monday, sunday, 10).
			Return([]models.LeaderboardEntry{{UserID: "user-2", Steps: 100050}, {UserID: "user-1", Steps: 42000}}, nil),
	)

	before, err := service.GetLeaderboard(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", before[0].UserID)

	// another user's board reads the same entry
	cached, err := service.GetLeaderboard(ctx, "user-3")
	require.NoError(t, err)
	assert.Equal(t, before, cached)

	require.NoError(t, service.RecordSteps(ctx, &models.DailySteps{UserID: "user-2", Steps: 100000}))

	after, err := service.GetLeaderboard(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-2", after[0].UserID)
	assert.Equal(t, 100050, after[0].Steps)
	assert.Equal(t, 1, after[0].Rank)
}

func TestLogout_KeepsSharedLeaderboard(t *testing.T) {
	service, repoMock, _ := newTestProfileService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		Leaderboard(ctx, gomock.Any(), gomock.Any(), 10).
		Return([]models.LeaderboardEntry{{UserID: "user-1", Steps: 1}}, nil).
		Times(1)

	_, err := service.GetLeaderboard(ctx, "user-1")
	require.NoError(t, err)
	service.Logout(ctx, "user-1")
	_, err = service.GetLeaderboard(ctx, "user-2")
	require.NoError(t, err)
}
