package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/services"
)

func scenarioBoard(t *testing.T) *domain.Board {
	t.Helper()

	period, err := domain.NewPeriod(5, domain.DefaultDayNameOffset)
	require.NoError(t, err)

	b, err := domain.NewBoard("Scenario", period, 3)
	require.NoError(t, err)

	b, _ = b.RenameHabit(1, "A")
	b, _ = b.RenameHabit(2, "B")
	for _, day := range []int{1, 2, 3, 5} {
		b, err = b.ToggleDay(1, day)
		require.NoError(t, err)
	}
	for _, day := range []int{2, 3} {
		b, err = b.ToggleDay(2, day)
		require.NoError(t, err)
	}
	return b
}

func TestStatsService_GetStatistics(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Computes on miss and stores the result", func(t *testing.T) {
		repo := new(MockBoardRepo)
		cache := new(MockStatsCache)
		svc := services.NewStatsService(repo, cache)

		board := scenarioBoard(t)
		key := analytics.FingerprintBoard(board)

		repo.On("GetByID", ctx, board.ID).Return(board, nil)
		cache.On("Get", ctx, key).Return(nil, false)
		cache.On("Set", ctx, key, mock.AnythingOfType("*domain.Statistics")).Return()

		stats, err := svc.GetStatistics(ctx, board.ID)

		require.NoError(t, err)
		assert.InDelta(t, 60.0, stats.OverallPercentage, 1e-9)
		assert.Equal(t, 2, stats.BestDay.Day)
		require.Len(t, stats.PerHabit, 2)
		assert.Equal(t, 3, stats.PerHabit[0].LongestStreak)
		cache.AssertExpectations(t)
	})

	t.Run("Success: Cache hit skips the engine", func(t *testing.T) {
		repo := new(MockBoardRepo)
		cache := new(MockStatsCache)
		svc := services.NewStatsService(repo, cache)

		board := scenarioBoard(t)
		cached := &domain.Statistics{OverallPercentage: 12.5}

		repo.On("GetByID", ctx, board.ID).Return(board, nil)
		cache.On("Get", ctx, analytics.FingerprintBoard(board)).Return(cached, true)

		stats, err := svc.GetStatistics(ctx, board.ID)

		require.NoError(t, err)
		assert.Same(t, cached, stats)
		cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success: Works without a cache", func(t *testing.T) {
		repo := new(MockBoardRepo)
		svc := services.NewStatsService(repo, nil)

		board := scenarioBoard(t)
		repo.On("GetByID", ctx, board.ID).Return(board, nil)

		first, err := svc.GetStatistics(ctx, board.ID)
		require.NoError(t, err)
		second, err := svc.GetStatistics(ctx, board.ID)
		require.NoError(t, err)

		assert.Equal(t, first, second, "Repeated calls with identical inputs must match")
	})

	t.Run("Fail: Repo Error propagates", func(t *testing.T) {
		repo := new(MockBoardRepo)
		svc := services.NewStatsService(repo, nil)

		dbErr := errors.New("store unavailable")
		repo.On("GetByID", ctx, "b1").Return(nil, dbErr)

		stats, err := svc.GetStatistics(ctx, "b1")

		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, stats)
	})
}

func TestStatsService_Refresh(t *testing.T) {
	ctx := context.Background()
	cache := new(MockStatsCache)
	svc := services.NewStatsService(new(MockBoardRepo), cache)

	board := scenarioBoard(t)
	key := analytics.FingerprintBoard(board)
	cache.On("Set", ctx, key, mock.AnythingOfType("*domain.Statistics")).Return()

	stats := svc.Refresh(ctx, board)

	assert.Equal(t, []int{1, 2, 2, 0, 1}, []int{
		stats.PerDay[0].CompletedCount, stats.PerDay[1].CompletedCount, stats.PerDay[2].CompletedCount,
		stats.PerDay[3].CompletedCount, stats.PerDay[4].CompletedCount,
	})
	cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	cache.AssertExpectations(t)
}
