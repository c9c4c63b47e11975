package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrBoardTitleEmpty   = errors.New("board title cannot be empty")
	ErrBoardTitleTooLong = errors.New("board title is too long (max 100 chars)")
	ErrDayOutOfRange     = errors.New("day is outside the tracked period")
)

const MaxTitleLen = 100

// Board groups a habit registry, its completion matrix and the period they
// cover. Edits return a new Board; Version and UpdatedAt are owned by the
// repository.
type Board struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Period    Period           `json:"period"`
	Habits    Registry         `json:"habits"`
	Matrix    CompletionMatrix `json:"matrix"`
	Version   int              `json:"version"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func NewBoard(title string, period Period, capacity int) (*Board, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrBoardTitleEmpty
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return nil, ErrBoardTitleTooLong
	}

	if _, err := NewPeriod(period.Length, period.DayNameOffset); err != nil {
		return nil, err
	}

	registry, err := NewRegistry(capacity)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &Board{
		ID:        uuid.New().String(),
		Title:     title,
		Period:    period,
		Habits:    registry,
		Matrix:    NewCompletionMatrix(registry.IDs(), period.Length),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RenameHabit returns a copy of the board with the habit renamed. The
// completion row is kept, so clearing and restoring a name brings the marks
// back.
func (b *Board) RenameHabit(habitID int, name string) (*Board, error) {
	habits, err := b.Habits.Rename(habitID, name)
	if err != nil {
		return nil, err
	}

	next := *b
	next.Habits = habits
	next.UpdatedAt = time.Now().UTC()
	return &next, nil
}

// SetHabitEnabled locks or unlocks a habit for marking. A disabled habit
// still counts in statistics as long as it has a name.
func (b *Board) SetHabitEnabled(habitID int, enabled bool) (*Board, error) {
	habits, err := b.Habits.SetEnabled(habitID, enabled)
	if err != nil {
		return nil, err
	}

	next := *b
	next.Habits = habits
	next.UpdatedAt = time.Now().UTC()
	return &next, nil
}

// ToggleDay flips one cell of the matrix. Only active, enabled habits can be
// marked.
func (b *Board) ToggleDay(habitID, day int) (*Board, error) {
	habit, err := b.Habits.Get(habitID)
	if err != nil {
		return nil, err
	}
	if !habit.IsActive() {
		return nil, ErrHabitInactive
	}
	if !habit.Enabled {
		return nil, ErrHabitDisabled
	}
	if !b.Period.Contains(day) {
		return nil, fmt.Errorf("%w: day %d not in 1..%d", ErrDayOutOfRange, day, b.Period.Length)
	}

	next := *b
	next.Matrix = b.Matrix.Toggle(habitID, day)
	next.UpdatedAt = time.Now().UTC()
	return &next, nil
}

func (b *Board) ActiveHabits() []Habit {
	return b.Habits.Active()
}
