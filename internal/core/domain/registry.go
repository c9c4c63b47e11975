package domain

import (
	"encoding/json"
	"fmt"
)

// Registry is the ordered, fixed-capacity list of habit slots.
//
// A Registry is a value: Rename and SetEnabled return a new Registry and leave
// the receiver untouched, so a snapshot handed to another component never
// changes under it.
type Registry struct {
	habits []Habit
}

// NewRegistry creates capacity empty, enabled slots with IDs 1..capacity.
func NewRegistry(capacity int) (Registry, error) {
	if capacity < 1 || capacity > MaxCapacity {
		return Registry{}, fmt.Errorf("%w: got %d (max %d)", ErrInvalidCapacity, capacity, MaxCapacity)
	}

	habits := make([]Habit, capacity)
	for i := range habits {
		habits[i] = Habit{ID: i + 1, Enabled: true}
	}
	return Registry{habits: habits}, nil
}

// RegistryFrom builds a registry from an existing list, copying it.
func RegistryFrom(habits []Habit) Registry {
	cp := make([]Habit, len(habits))
	copy(cp, habits)
	return Registry{habits: cp}
}

func (r Registry) Len() int {
	return len(r.habits)
}

// Habits returns a copy of every slot in order.
func (r Registry) Habits() []Habit {
	cp := make([]Habit, len(r.habits))
	copy(cp, r.habits)
	return cp
}

func (r Registry) Active() []Habit {
	return ActiveHabits(r.habits)
}

func (r Registry) IDs() []int {
	ids := make([]int, len(r.habits))
	for i, h := range r.habits {
		ids[i] = h.ID
	}
	return ids
}

func (r Registry) Get(id int) (Habit, error) {
	idx := r.indexOf(id)
	if idx < 0 {
		return Habit{}, ErrHabitNotFound
	}
	return r.habits[idx], nil
}

// Rename sets the display name of a slot. An empty or blank name deactivates
// the habit without removing the slot.
func (r Registry) Rename(id int, name string) (Registry, error) {
	if err := validateName(name); err != nil {
		return r, err
	}
	return r.with(id, func(h *Habit) { h.Name = name })
}

func (r Registry) SetEnabled(id int, enabled bool) (Registry, error) {
	return r.with(id, func(h *Habit) { h.Enabled = enabled })
}

func (r Registry) with(id int, edit func(h *Habit)) (Registry, error) {
	idx := r.indexOf(id)
	if idx < 0 {
		return r, ErrHabitNotFound
	}

	next := r.Habits()
	edit(&next[idx])
	return Registry{habits: next}, nil
}

func (r Registry) indexOf(id int) int {
	for i, h := range r.habits {
		if h.ID == id {
			return i
		}
	}
	return -1
}

func (r Registry) MarshalJSON() ([]byte, error) {
	if r.habits == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.habits)
}

func (r *Registry) UnmarshalJSON(data []byte) error {
	var habits []Habit
	if err := json.Unmarshal(data, &habits); err != nil {
		return err
	}
	r.habits = habits
	return nil
}
