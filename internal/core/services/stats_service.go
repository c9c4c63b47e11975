package services

import (
	"context"

	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/metrics"
)

// StatsCache memoizes statistics by input fingerprint. Implementations must
// treat every failure as a miss; a broken cache never fails a request.
type StatsCache interface {
	Get(ctx context.Context, key string) (*domain.Statistics, bool)
	Set(ctx context.Context, key string, stats *domain.Statistics)
}

type StatsService struct {
	repo  domain.BoardRepository
	cache StatsCache
}

// NewStatsService wires the service. cache may be nil, in which case every
// call runs the engine.
func NewStatsService(repo domain.BoardRepository, cache StatsCache) *StatsService {
	return &StatsService{
		repo:  repo,
		cache: cache,
	}
}

func (s *StatsService) GetStatistics(ctx context.Context, boardID string) (*domain.Statistics, error) {
	board, err := s.repo.GetByID(ctx, boardID)
	if err != nil {
		return nil, err
	}

	return s.Compute(ctx, board), nil
}

// Compute returns the statistics of a board snapshot, from the cache when the
// same inputs were seen before.
func (s *StatsService) Compute(ctx context.Context, board *domain.Board) *domain.Statistics {
	key := analytics.FingerprintBoard(board)

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			return cached
		}
	}

	return s.compute(ctx, key, board)
}

// Refresh recomputes a board's statistics and overwrites the cache entry.
func (s *StatsService) Refresh(ctx context.Context, board *domain.Board) *domain.Statistics {
	return s.compute(ctx, analytics.FingerprintBoard(board), board)
}

func (s *StatsService) compute(ctx context.Context, key string, board *domain.Board) *domain.Statistics {
	stats := analytics.ComputeBoard(board)
	metrics.StatsComputations.Inc()

	if s.cache != nil {
		s.cache.Set(ctx, key, &stats)
	}

	return &stats
}
