package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/domain"
)

// MockRepo is a map-backed BoardRepository with optimistic locking.
type MockRepo struct {
	store         map[string]domain.Board
	simulateError error
	// lostRaces makes the next Update calls fail as if another writer
	// committed first.
	lostRaces int
}

func NewMockRepo() *MockRepo {
	return &MockRepo{
		store: make(map[string]domain.Board),
	}
}

func (m *MockRepo) Create(ctx context.Context, board *domain.Board) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	m.store[board.ID] = *board
	return nil
}

func (m *MockRepo) GetByID(ctx context.Context, id string) (*domain.Board, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	b, ok := m.store[id]
	if !ok {
		return nil, domain.ErrBoardNotFound
	}
	return &b, nil
}

func (m *MockRepo) List(ctx context.Context) ([]*domain.Board, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	var list []*domain.Board
	for _, b := range m.store {
		clone := b
		list = append(list, &clone)
	}
	return list, nil
}

func (m *MockRepo) Update(ctx context.Context, board *domain.Board) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	existing, ok := m.store[board.ID]
	if !ok {
		return domain.ErrBoardNotFound
	}
	if m.lostRaces > 0 {
		m.lostRaces--
		existing.Version++
		m.store[board.ID] = existing
		return domain.ErrBoardConflict
	}
	if existing.Version != board.Version {
		return domain.ErrBoardConflict
	}
	board.Version++
	board.UpdatedAt = time.Now().UTC()
	m.store[board.ID] = *board
	return nil
}

func (m *MockRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.store[id]; !ok {
		return domain.ErrBoardNotFound
	}
	delete(m.store, id)
	return nil
}

func (m *MockRepo) GetChanges(ctx context.Context, since time.Time) ([]*domain.Board, error) {
	var changes []*domain.Board
	for _, b := range m.store {
		if b.UpdatedAt.After(since) {
			clone := b
			changes = append(changes, &clone)
		}
	}
	return changes, nil
}

type MockBoardRepo struct {
	mock.Mock
}

func (m *MockBoardRepo) GetByID(ctx context.Context, id string) (*domain.Board, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Board), args.Error(1)
}

func (m *MockBoardRepo) Create(ctx context.Context, b *domain.Board) error { return nil }
func (m *MockBoardRepo) Update(ctx context.Context, b *domain.Board) error { return nil }
func (m *MockBoardRepo) Delete(ctx context.Context, id string) error       { return nil }
func (m *MockBoardRepo) List(ctx context.Context) ([]*domain.Board, error) { return nil, nil }
func (m *MockBoardRepo) GetChanges(ctx context.Context, since time.Time) ([]*domain.Board, error) {
	return nil, nil
}

type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) Get(ctx context.Context, key string) (*domain.Statistics, bool) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.Statistics), args.Bool(1)
}

func (m *MockStatsCache) Set(ctx context.Context, key string, stats *domain.Statistics) {
	m.Called(ctx, key, stats)
}

// recordingRefresher collects enqueued board IDs.
type recordingRefresher struct {
	mu  sync.Mutex
	ids []string
}

func (r *recordingRefresher) Enqueue(boardID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, boardID)
}

func (r *recordingRefresher) Enqueued() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.ids...)
}

func ptr[T any](v T) *T {
	return &v
}
