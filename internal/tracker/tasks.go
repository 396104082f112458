package tracker

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/nleeper/cadence/internal/logger"
	"github.com/nleeper/cadence/internal/models"
)

// TasksForDate returns the planned tasks for a date, first propagating
// recurring tasks forward from the prior day. A recurring task on the prior
// day is cloned onto the target date unless an equivalent task (same title,
// habit link, and recurring flag) already sits there, which keeps repeated
// reads from duplicating clones.
func (s *Service) TasksForDate(date string) ([]models.PlannedTask, error) {
	tasks, err := s.store.PlannedTasks()
	if err != nil {
		return nil, err
	}

	prior := models.AddDays(date, -1)
	changed := false
	for _, t := range tasks {
		if t.Date != prior || !t.Recurring {
			continue
		}
		if hasEquivalent(tasks, date, t) {
			continue
		}

		clone := t
		clone.ID = uuid.New().String()
		clone.Date = date
		clone.Completed = false
		clone.CompletedAt = ""
		clone.CreatedAt = s.timestamp()
		clone.Order = nextTaskOrder(tasks, date)
		tasks = append(tasks, clone)
		changed = true
		logger.Debug("recurring task propagated", "title", t.Title, "from", prior, "to", date)
	}

	if changed {
		if err := s.store.SavePlannedTasks(tasks); err != nil {
			return nil, err
		}
	}

	out := make([]models.PlannedTask, 0)
	for _, t := range tasks {
		if t.Date == date {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out, nil
}

func hasEquivalent(tasks []models.PlannedTask, date string, src models.PlannedTask) bool {
	for _, t := range tasks {
		if t.Date == date && t.Title == src.Title && t.HabitID == src.HabitID && t.Recurring == src.Recurring {
			return true
		}
	}
	return false
}

func nextTaskOrder(tasks []models.PlannedTask, date string) int {
	next := 0
	for _, t := range tasks {
		if t.Date == date && t.Order >= next {
			next = t.Order + 1
		}
	}
	return next
}

func (s *Service) AddTask(habitID, date, title, description string, priority models.Priority, recurring bool) (models.PlannedTask, error) {
	if !priority.Valid() {
		return models.PlannedTask{}, fmt.Errorf("invalid priority: %s", priority)
	}

	tasks, err := s.store.PlannedTasks()
	if err != nil {
		return models.PlannedTask{}, err
	}

	task := models.PlannedTask{
		ID:          uuid.New().String(),
		HabitID:     habitID,
		Date:        date,
		Title:       title,
		Description: description,
		Priority:    priority,
		CreatedAt:   s.timestamp(),
		Order:       nextTaskOrder(tasks, date),
		Recurring:   recurring,
	}

	tasks = append(tasks, task)
	if err := s.store.SavePlannedTasks(tasks); err != nil {
		return models.PlannedTask{}, err
	}

	if habitID != "" {
		if err := s.RecalculateHabitCompletion(habitID, date); err != nil {
			return models.PlannedTask{}, err
		}
	}

	return task, nil
}

func (s *Service) Task(id string) (models.PlannedTask, bool, error) {
	tasks, err := s.store.PlannedTasks()
	if err != nil {
		return models.PlannedTask{}, false, err
	}
	for _, t := range tasks {
		if t.ID == id {
			return t, true, nil
		}
	}
	return models.PlannedTask{}, false, nil
}

func (s *Service) ToggleTask(id string) error {
	tasks, err := s.store.PlannedTasks()
	if err != nil {
		return err
	}

	idx := -1
	for i := range tasks {
		if tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("task not found: %s", id)
	}

	tasks[idx].Completed = !tasks[idx].Completed
	if tasks[idx].Completed {
		tasks[idx].CompletedAt = s.timestamp()
	} else {
		tasks[idx].CompletedAt = ""
	}

	if err := s.store.SavePlannedTasks(tasks); err != nil {
		return err
	}

	if tasks[idx].HabitID != "" {
		return s.RecalculateHabitCompletion(tasks[idx].HabitID, tasks[idx].Date)
	}
	return nil
}

func (s *Service) DeleteTask(id string) error {
	tasks, err := s.store.PlannedTasks()
	if err != nil {
		return err
	}

	var deleted models.PlannedTask
	found := false
	kept := make([]models.PlannedTask, 0, len(tasks))
	for _, t := range tasks {
		if t.ID == id {
			deleted = t
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return fmt.Errorf("task not found: %s", id)
	}

	if err := s.store.SavePlannedTasks(kept); err != nil {
		return err
	}

	if deleted.HabitID != "" {
		return s.RecalculateHabitCompletion(deleted.HabitID, deleted.Date)
	}
	return nil
}

// ReorderTasks rewrites the display order of one date's tasks to match ids;
// unlisted tasks on that date follow in their prior order.
func (s *Service) ReorderTasks(date string, ids []string) error {
	tasks, err := s.store.PlannedTasks()
	if err != nil {
		return err
	}

	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}

	next := len(ids)
	for i := range tasks {
		if tasks[i].Date != date {
			continue
		}
		if p, ok := pos[tasks[i].ID]; ok {
			tasks[i].Order = p
		} else {
			tasks[i].Order = next
			next++
		}
	}

	return s.store.SavePlannedTasks(tasks)
}

// tasksForHabitDate reads the stored tasks linked to (habitID, date) without
// triggering recurrence propagation.
func (s *Service) tasksForHabitDate(habitID, date string) ([]models.PlannedTask, error) {
	tasks, err := s.store.PlannedTasks()
	if err != nil {
		return nil, err
	}

	out := make([]models.PlannedTask, 0)
	for _, t := range tasks {
		if t.HabitID == habitID && t.Date == date {
			out = append(out, t)
		}
	}
	return out, nil
}

// weightedCompletion returns the priority-weighted completion percentage of
// a task group and whether every task is completed. The percentage weights
// by task priority points, not a plain count ratio; the all-done flag is a
// plain AND regardless of weights.
func weightedCompletion(tasks []models.PlannedTask) (pct float64, allDone bool) {
	total := 0
	done := 0
	allDone = true
	for _, t := range tasks {
		points := t.Priority.Points()
		total += points
		if t.Completed {
			done += points
		} else {
			allDone = false
		}
	}
	if total == 0 {
		return 100, allDone
	}
	pct = math.Floor(float64(done)/float64(total)*1000+0.5) / 10
	return pct, allDone
}

func taskIDs(tasks []models.PlannedTask) []string {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

// RecalculateHabitCompletion recomputes the (habit, date) entry's completion
// state from its linked tasks, from scratch. It is the only writer of the
// entry's completion percentage and task list. With no linked tasks the
// entry reverts to plain binary completion (percentage nil, meaning 100).
func (s *Service) RecalculateHabitCompletion(habitID, date string) error {
	tasks, err := s.tasksForHabitDate(habitID, date)
	if err != nil {
		return err
	}

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

	if len(tasks) == 0 {
		if idx == -1 {
			return nil
		}
		entries[idx].CompletionPercentage = nil
		entries[idx].Tasks = nil
		return s.store.SaveEntries(entries)
	}

	pct, allDone := weightedCompletion(tasks)

	if idx == -1 {
		entry := models.HabitEntry{
			HabitID:              habitID,
			Date:                 date,
			Completed:            allDone,
			CompletionPercentage: &pct,
			Tasks:                taskIDs(tasks),
		}
		if allDone {
			entry.CompletedAt = s.timestamp()
		}
		entries = append(entries, entry)
		return s.store.SaveEntries(entries)
	}

	if allDone && !entries[idx].Completed {
		entries[idx].CompletedAt = s.timestamp()
	} else if !allDone && entries[idx].Completed {
		entries[idx].CompletedAt = ""
	}
	entries[idx].Completed = allDone
	entries[idx].CompletionPercentage = &pct
	entries[idx].Tasks = taskIDs(tasks)

	return s.store.SaveEntries(entries)
}
