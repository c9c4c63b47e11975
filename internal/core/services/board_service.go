package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/domain"
)

// StatsRefresher is notified after every successful edit so statistics can
// be warmed in the background.
type StatsRefresher interface {
	Enqueue(boardID string)
}

type BoardDefaults struct {
	PeriodLength  int
	Capacity      int
	DayNameOffset int
}

func DefaultBoardDefaults() BoardDefaults {
	return BoardDefaults{
		PeriodLength:  domain.DefaultPeriodLength,
		Capacity:      domain.DefaultCapacity,
		DayNameOffset: domain.DefaultDayNameOffset,
	}
}

type BoardService struct {
	repo      domain.BoardRepository
	refresher StatsRefresher
	defaults  BoardDefaults
}

func NewBoardService(repo domain.BoardRepository, refresher StatsRefresher, defaults BoardDefaults) *BoardService {
	return &BoardService{
		repo:      repo,
		refresher: refresher,
		defaults:  defaults,
	}
}

type CreateBoardInput struct {
	Title         string
	PeriodLength  int
	Capacity      int
	DayNameOffset *int
}

type UpdateHabitInput struct {
	BoardID string
	HabitID int
	Name    *string
	Enabled *bool
	Version int
}

type ToggleDayInput struct {
	BoardID string
	HabitID int
	Day     int
	Version int
}

func (s *BoardService) Create(ctx context.Context, input CreateBoardInput) (*domain.Board, error) {
	length := input.PeriodLength
	if length == 0 {
		length = s.defaults.PeriodLength
	}

	capacity := input.Capacity
	if capacity == 0 {
		capacity = s.defaults.Capacity
	}

	offset := s.defaults.DayNameOffset
	if input.DayNameOffset != nil {
		offset = *input.DayNameOffset
	}

	period, err := domain.NewPeriod(length, offset)
	if err != nil {
		return nil, err
	}

	board, err := domain.NewBoard(input.Title, period, capacity)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, board); err != nil {
		return nil, err
	}

	s.notify(board.ID)

	return board, nil
}

func (s *BoardService) Get(ctx context.Context, id string) (*domain.Board, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BoardService) List(ctx context.Context) ([]*domain.Board, error) {
	return s.repo.List(ctx)
}

func (s *BoardService) GetDelta(ctx context.Context, since time.Time) ([]*domain.Board, error) {
	return s.repo.GetChanges(ctx, since)
}

// UpdateHabit renames and/or enables a habit slot. Nil fields are left as
// they are.
func (s *BoardService) UpdateHabit(ctx context.Context, input UpdateHabitInput) (*domain.Board, error) {
	return s.edit(ctx, input.BoardID, input.Version, func(b *domain.Board) (*domain.Board, error) {
		next := b
		var err error

		if input.Name != nil {
			if next, err = next.RenameHabit(input.HabitID, *input.Name); err != nil {
				return nil, err
			}
		}

		if input.Enabled != nil {
			if next, err = next.SetHabitEnabled(input.HabitID, *input.Enabled); err != nil {
				return nil, err
			}
		}

		if next == b {
			if _, err := b.Habits.Get(input.HabitID); err != nil {
				return nil, err
			}
		}

		return next, nil
	})
}

func (s *BoardService) ToggleDay(ctx context.Context, input ToggleDayInput) (*domain.Board, error) {
	return s.edit(ctx, input.BoardID, input.Version, func(b *domain.Board) (*domain.Board, error) {
		return b.ToggleDay(input.HabitID, input.Day)
	})
}

func (s *BoardService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// maxEditAttempts bounds how often a version-less edit is re-read and
// re-applied after losing a race with another writer.
const maxEditAttempts = 3

// edit loads a board, applies fn and stores the result. With version > 0 the
// caller's snapshot must be current. With version == 0 the edit is applied to
// whatever is stored, retrying when a concurrent write gets in between.
func (s *BoardService) edit(ctx context.Context, boardID string, version int, apply func(b *domain.Board) (*domain.Board, error)) (*domain.Board, error) {
	for attempt := 1; ; attempt++ {
		next, err := s.editOnce(ctx, boardID, version, apply)
		if version == 0 && attempt < maxEditAttempts && errors.Is(err, domain.ErrBoardConflict) {
			continue
		}
		return next, err
	}
}

func (s *BoardService) editOnce(ctx context.Context, boardID string, version int, apply func(b *domain.Board) (*domain.Board, error)) (*domain.Board, error) {
	board, err := s.repo.GetByID(ctx, boardID)
	if err != nil {
		return nil, err
	}

	if version > 0 && board.Version != version {
		return nil, fmt.Errorf("%w: client v%d vs server v%d", domain.ErrBoardConflict, version, board.Version)
	}

	next, err := apply(board)
	if err != nil {
		return nil, err
	}

	if next == board {
		return board, nil
	}

	if err := s.repo.Update(ctx, next); err != nil {
		return nil, err
	}

	s.notify(next.ID)

	return next, nil
}

func (s *BoardService) notify(boardID string) {
	if s.refresher != nil {
		s.refresher.Enqueue(boardID)
	}
}
