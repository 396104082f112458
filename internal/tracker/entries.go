package tracker

import (
	"fmt"

	"github.com/nleeper/cadence/internal/logger"
	"github.com/nleeper/cadence/internal/models"
)

func (s *Service) Entries() ([]models.HabitEntry, error) {
	return s.store.Entries()
}

func (s *Service) EntriesForDate(date string) ([]models.HabitEntry, error) {
	entries, err := s.store.Entries()
	if err != nil {
		return nil, err
	}

	out := make([]models.HabitEntry, 0)
	for _, e := range entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *Service) EntriesForHabit(habitID string) ([]models.HabitEntry, error) {
	entries, err := s.store.Entries()
	if err != nil {
		return nil, err
	}

	out := make([]models.HabitEntry, 0)
	for _, e := range entries {
		if e.HabitID == habitID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Toggle flips the completed flag on the (habit, date) entry, creating the
// entry as completed when none exists. A nil note preserves the stored note.
// When the habit has linked tasks on that date, the task-derived completion
// percentage and task list are rewritten in the same save so a manual toggle
// never desyncs from task state.
func (s *Service) Toggle(habitID, date string, note *string) error {
	entries, err := s.store.Entries()
	if err != nil {
		return err
	}

	idx := -1
	for i, e := range entries {
		if e.HabitID == habitID && e.Date == date {
			idx = i
			break
		}
	}

	if idx != -1 {
		wasCompleted := entries[idx].Completed
		entries[idx].Completed = !wasCompleted
		if !wasCompleted {
			entries[idx].CompletedAt = s.timestamp()
		} else {
			entries[idx].CompletedAt = ""
		}
		if note != nil {
			entries[idx].Note = *note
		}
	} else {
		entry := models.HabitEntry{
			HabitID:     habitID,
			Date:        date,
			Completed:   true,
			CompletedAt: s.timestamp(),
		}
		if note != nil {
			entry.Note = *note
		}
		entries = append(entries, entry)
		idx = len(entries) - 1
	}

	tasks, err := s.tasksForHabitDate(habitID, date)
	if err != nil {
		return err
	}
	if len(tasks) > 0 {
		pct, _ := weightedCompletion(tasks)
		entries[idx].CompletionPercentage = &pct
		entries[idx].Tasks = taskIDs(tasks)
	}

	if err := s.store.SaveEntries(entries); err != nil {
		return err
	}

	logger.Debug("entry toggled", "habitId", habitID, "date", date, "completed", entries[idx].Completed)
	return nil
}

// UpdateEntryNote sets the note on an existing entry.
func (s *Service) UpdateEntryNote(habitID, date, note string) error {
	entries, err := s.store.Entries()
	if err != nil {
		return err
	}

	for i := range entries {
		if entries[i].HabitID == habitID && entries[i].Date == date {
			entries[i].Note = note
			return s.store.SaveEntries(entries)
		}
	}

	return fmt.Errorf("no entry for habit %s on %s", habitID, date)
}
