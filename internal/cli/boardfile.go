package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/domain"
)

var ErrNoHabits = errors.New("board file declares no habits")

// BoardFile is the on-disk layout of a board:
//
//	title = "November"
//	period_length = 30
//	day_name_offset = 5
//
//	[[habits]]
//	name = "Run"
//	done = [1, 2, 3]
type BoardFile struct {
	Title         string      `toml:"title"`
	PeriodLength  int         `toml:"period_length"`
	DayNameOffset *int        `toml:"day_name_offset"`
	Habits        []HabitFile `toml:"habits"`
}

type HabitFile struct {
	Name    string `toml:"name"`
	Enabled *bool  `toml:"enabled"`
	Done    []int  `toml:"done"`
}

// LoadBoardFile reads and decodes a board file. periodOverride replaces the
// file's period length when positive; marks past the overridden period are
// then dropped instead of rejected.
func LoadBoardFile(path string, periodOverride int) (*domain.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading board file: %w", err)
	}

	var f BoardFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing board file: %w", err)
	}

	if periodOverride > 0 {
		f.PeriodLength = periodOverride
		return f.build(true)
	}

	return f.Board()
}

// Board builds the domain board the file describes. Marks on unnamed or
// disabled habits are kept; marks outside the period are an error.
func (f BoardFile) Board() (*domain.Board, error) {
	return f.build(false)
}

func (f BoardFile) build(dropOutOfRange bool) (*domain.Board, error) {
	if len(f.Habits) == 0 {
		return nil, ErrNoHabits
	}

	length := f.PeriodLength
	if length == 0 {
		length = domain.DefaultPeriodLength
	}

	offset := domain.DefaultDayNameOffset
	if f.DayNameOffset != nil {
		offset = *f.DayNameOffset
	}

	period, err := domain.NewPeriod(length, offset)
	if err != nil {
		return nil, err
	}

	title := f.Title
	if title == "" {
		title = "Untitled"
	}

	board, err := domain.NewBoard(title, period, len(f.Habits))
	if err != nil {
		return nil, err
	}

	for i, h := range f.Habits {
		id := i + 1

		if board, err = board.RenameHabit(id, h.Name); err != nil {
			return nil, fmt.Errorf("habit %d: %w", id, err)
		}

		for _, day := range h.Done {
			if !period.Contains(day) {
				if dropOutOfRange {
					continue
				}
				return nil, fmt.Errorf("habit %d (%q) day %d: %w", id, h.Name, day, domain.ErrDayOutOfRange)
			}
			board.Matrix = board.Matrix.Set(id, day, true)
		}

		if h.Enabled != nil {
			if board, err = board.SetHabitEnabled(id, *h.Enabled); err != nil {
				return nil, fmt.Errorf("habit %d: %w", id, err)
			}
		}
	}

	return board, nil
}
