package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/domain"
)

var _ domain.BoardRepository = (*InMemoryBoardRepository)(nil)

// InMemoryBoardRepository keeps boards for the lifetime of the process.
//
// Boards are stored as values and handed out as copies. Because registries
// and matrices are persistent, a shallow copy is enough: nothing reachable
// from a returned board is ever written again.
type InMemoryBoardRepository struct {
	store map[string]domain.Board

	mu sync.RWMutex
}

func NewInMemoryBoardRepository() *InMemoryBoardRepository {
	return &InMemoryBoardRepository{
		store: make(map[string]domain.Board),
	}
}

func (r *InMemoryBoardRepository) Create(ctx context.Context, board *domain.Board) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[board.ID]; exists {
		return domain.ErrBoardConflict
	}

	if board.Version == 0 {
		board.Version = 1
	}
	r.store[board.ID] = *board
	return nil
}

func (r *InMemoryBoardRepository) GetByID(ctx context.Context, id string) (*domain.Board, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	board, ok := r.store[id]
	if !ok {
		return nil, domain.ErrBoardNotFound
	}
	return &board, nil
}

func (r *InMemoryBoardRepository) List(ctx context.Context) ([]*domain.Board, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	boards := make([]*domain.Board, 0, len(r.store))
	for _, b := range r.store {
		val := b
		boards = append(boards, &val)
	}

	sort.Slice(boards, func(i, j int) bool {
		if boards[i].CreatedAt.Equal(boards[j].CreatedAt) {
			return boards[i].ID < boards[j].ID
		}
		return boards[i].CreatedAt.Before(boards[j].CreatedAt)
	})

	return boards, nil
}

func (r *InMemoryBoardRepository) Update(ctx context.Context, board *domain.Board) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.store[board.ID]
	if !ok {
		return domain.ErrBoardNotFound
	}

	if board.Version != existing.Version {
		return domain.ErrBoardConflict
	}

	board.Version++
	board.UpdatedAt = time.Now().UTC()

	r.store[board.ID] = *board
	return nil
}

func (r *InMemoryBoardRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return domain.ErrBoardNotFound
	}

	delete(r.store, id)
	return nil
}

func (r *InMemoryBoardRepository) GetChanges(ctx context.Context, since time.Time) ([]*domain.Board, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var changes []*domain.Board
	for _, b := range r.store {
		if b.UpdatedAt.After(since) {
			val := b
			changes = append(changes, &val)
		}
	}

	sort.Slice(changes, func(i, j int) bool {
		return changes[i].UpdatedAt.Before(changes[j].UpdatedAt)
	})

	return changes, nil
}
