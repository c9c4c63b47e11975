package domain

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrHabitNotFound    = errors.New("habit not found")
	ErrHabitNameTooLong = errors.New("habit name is too long (max 100 chars)")
	ErrHabitInactive    = errors.New("habit has no name and cannot be tracked")
	ErrHabitDisabled    = errors.New("habit is disabled and cannot be marked")
	ErrInvalidCapacity  = errors.New("habit capacity must be between 1 and 50")
)

const (
	DefaultCapacity = 10
	MaxCapacity     = 50
	MaxNameLen      = 100
)

// Habit is one slot of the registry. The ID never changes once the slot exists.
type Habit struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// IsActive reports whether the habit takes part in statistics.
func (h Habit) IsActive() bool {
	return strings.TrimSpace(h.Name) != ""
}

func validateName(name string) error {
	if utf8.RuneCountInString(strings.TrimSpace(name)) > MaxNameLen {
		return ErrHabitNameTooLong
	}
	return nil
}

// ActiveHabits filters habits down to the ones with a non-blank name, keeping order.
func ActiveHabits(habits []Habit) []Habit {
	active := make([]Habit, 0, len(habits))
	for _, h := range habits {
		if h.IsActive() {
			active = append(active, h)
		}
	}
	return active
}
