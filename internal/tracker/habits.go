package tracker

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/nleeper/cadence/internal/logger"
	"github.com/nleeper/cadence/internal/models"
)

// HabitUpdate carries a partial-field habit mutation; nil fields are left
// untouched.
type HabitUpdate struct {
	Name        *string
	Description *string
	Priority    *models.Priority
	Color       *string
}

func (s *Service) Habits() ([]models.Habit, error) {
	return s.store.Habits()
}

// ActiveHabits returns the non-archived habits in display order.
func (s *Service) ActiveHabits() ([]models.Habit, error) {
	habits, err := s.store.Habits()
	if err != nil {
		return nil, err
	}

	active := make([]models.Habit, 0, len(habits))
	for _, h := range habits {
		if !h.Archived {
			active = append(active, h)
		}
	}
	return active, nil
}

func (s *Service) Habit(id string) (models.Habit, bool, error) {
	habits, err := s.store.Habits()
	if err != nil {
		return models.Habit{}, false, err
	}
	for _, h := range habits {
		if h.ID == id {
			return h, true, nil
		}
	}
	return models.Habit{}, false, nil
}

func (s *Service) AddHabit(name, description string, priority models.Priority, color string) (models.Habit, error) {
	if !priority.Valid() {
		return models.Habit{}, fmt.Errorf("invalid priority: %s", priority)
	}
	if color == "" {
		color = models.PriorityColors[priority]
	}

	habits, err := s.store.Habits()
	if err != nil {
		return models.Habit{}, err
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Priority:    priority,
		Color:       color,
		CreatedAt:   s.Today(),
		Order:       nextOrder(habits),
	}

	habits = append(habits, habit)
	if err := s.store.SaveHabits(habits); err != nil {
		return models.Habit{}, err
	}

	logger.Info("habit added", "id", habit.ID, "name", habit.Name, "priority", habit.Priority)
	return habit, nil
}

func nextOrder(habits []models.Habit) int {
	if len(habits) == 0 {
		return 0
	}
	max := habits[0].Order
	for _, h := range habits[1:] {
		if h.Order > max {
			max = h.Order
		}
	}
	return max + 1
}

func (s *Service) UpdateHabit(id string, upd HabitUpdate) error {
	habits, err := s.store.Habits()
	if err != nil {
		return err
	}

	for i := range habits {
		if habits[i].ID != id {
			continue
		}
		if upd.Name != nil {
			habits[i].Name = *upd.Name
		}
		if upd.Description != nil {
			habits[i].Description = *upd.Description
		}
		if upd.Priority != nil {
			if !upd.Priority.Valid() {
				return fmt.Errorf("invalid priority: %s", *upd.Priority)
			}
			habits[i].Priority = *upd.Priority
		}
		if upd.Color != nil {
			habits[i].Color = *upd.Color
		}
		return s.store.SaveHabits(habits)
	}

	return fmt.Errorf("habit not found: %s", id)
}

// SetArchived flips the soft-delete flag. Archived habits stop counting
// toward the day but keep their history.
func (s *Service) SetArchived(id string, archived bool) error {
	habits, err := s.store.Habits()
	if err != nil {
		return err
	}

	for i := range habits {
		if habits[i].ID != id {
			continue
		}
		habits[i].Archived = archived
		return s.store.SaveHabits(habits)
	}

	return fmt.Errorf("habit not found: %s", id)
}

// DeleteHabit hard-deletes a habit. Its entries are removed with it, and
// tasks that pointed at it become standalone rather than keeping a dangling
// reference.
func (s *Service) DeleteHabit(id string) error {
	habits, err := s.store.Habits()
	if err != nil {
		return err
	}

	found := false
	kept := make([]models.Habit, 0, len(habits))
	for _, h := range habits {
		if h.ID == id {
			found = true
			continue
		}
		kept = append(kept, h)
	}
	if !found {
		return fmt.Errorf("habit not found: %s", id)
	}

	if err := s.store.SaveHabits(kept); err != nil {
		return err
	}

	entries, err := s.store.Entries()
	if err != nil {
		return err
	}
	keptEntries := make([]models.HabitEntry, 0, len(entries))
	for _, e := range entries {
		if e.HabitID != id {
			keptEntries = append(keptEntries, e)
		}
	}
	if err := s.store.SaveEntries(keptEntries); err != nil {
		return err
	}

	tasks, err := s.store.PlannedTasks()
	if err != nil {
		return err
	}
	orphaned := 0
	for i := range tasks {
		if tasks[i].HabitID == id {
			tasks[i].HabitID = ""
			orphaned++
		}
	}
	if orphaned > 0 {
		if err := s.store.SavePlannedTasks(tasks); err != nil {
			return err
		}
	}

	logger.Info("habit deleted", "id", id, "entriesRemoved", len(entries)-len(keptEntries), "tasksUnlinked", orphaned)
	return nil
}

// ReorderHabits rewrites display order to match ids; habits missing from
// ids keep their relative order after the listed ones.
func (s *Service) ReorderHabits(ids []string) error {
	habits, err := s.store.Habits()
	if err != nil {
		return err
	}

	byID := make(map[string]models.Habit, len(habits))
	for _, h := range habits {
		byID[h.ID] = h
	}

	reordered := make([]models.Habit, 0, len(habits))
	listed := make(map[string]bool, len(ids))
	for i, id := range ids {
		h, ok := byID[id]
		if !ok {
			continue
		}
		h.Order = i
		reordered = append(reordered, h)
		listed[id] = true
	}

	next := len(ids)
	for _, h := range habits {
		if listed[h.ID] {
			continue
		}
		h.Order = next
		next++
		reordered = append(reordered, h)
	}

	return s.store.SaveHabits(reordered)
}
