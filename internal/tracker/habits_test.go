package tracker

import (
	"testing"

	"github.com/nleeper/cadence/internal/models"
)

func TestAddHabit_AssignsOrderAndDefaults(t *testing.T) {
	s := newTestService(t)

	first := mustAddHabit(t, s, "Exercise", models.PriorityHigh)
	second := mustAddHabit(t, s, "Read", models.PriorityLow)

	if first.Order != 0 || second.Order != 1 {
		t.Errorf("orders = %d, %d, want 0, 1", first.Order, second.Order)
	}
	if first.CreatedAt != "2024-06-10" {
		t.Errorf("createdAt = %s, want 2024-06-10", first.CreatedAt)
	}
	if first.Color != models.PriorityColors[models.PriorityHigh] {
		t.Errorf("color = %s, want the high-priority default", first.Color)
	}
}

func TestAddHabit_RejectsUnknownPriority(t *testing.T) {
	s := newTestService(t)
	if _, err := s.AddHabit("Bad", "", models.Priority("urgent"), ""); err == nil {
		t.Error("expected error for unknown priority")
	}
}

func TestUpdateHabit_PartialFields(t *testing.T) {
	s := newTestService(t)
	habit := mustAddHabit(t, s, "Exercise", models.PriorityHigh)

	name := "Morning exercise"
	if err := s.UpdateHabit(habit.ID, HabitUpdate{Name: &name}); err != nil {
		t.Fatalf("UpdateHabit failed: %v", err)
	}

	got, ok, err := s.Habit(habit.ID)
	if err != nil || !ok {
		t.Fatalf("Habit lookup failed: ok=%v err=%v", ok, err)
	}
	if got.Name != "Morning exercise" {
		t.Errorf("name = %s, want Morning exercise", got.Name)
	}
	if got.Priority != models.PriorityHigh {
		t.Errorf("priority changed unexpectedly: %s", got.Priority)
	}
}

func TestSetArchived_ExcludesFromActive(t *testing.T) {
	s := newTestService(t)
	habit := mustAddHabit(t, s, "Exercise", models.PriorityHigh)
	mustAddHabit(t, s, "Read", models.PriorityLow)

	if err := s.SetArchived(habit.ID, true); err != nil {
		t.Fatalf("SetArchived failed: %v", err)
	}

	active, err := s.ActiveHabits()
	if err != nil {
		t.Fatalf("ActiveHabits failed: %v", err)
	}
	if len(active) != 1 || active[0].Name != "Read" {
		t.Errorf("active habits = %v, want just Read", active)
	}

	all, err := s.Habits()
	if err != nil {
		t.Fatalf("Habits failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("archived habit dropped from the store: %d habits", len(all))
	}
}

func TestDeleteHabit_CascadesEntriesAndUnlinksTasks(t *testing.T) {
	s := newTestService(t)
	habit := mustAddHabit(t, s, "Exercise", models.PriorityHigh)
	other := mustAddHabit(t, s, "Read", models.PriorityLow)

	if err := s.Toggle(habit.ID, "2024-06-10", nil); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if err := s.Toggle(other.ID, "2024-06-10", nil); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	task, err := s.AddTask(habit.ID, "2024-06-10", "Stretch", "", models.PriorityLow, false)
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	if err := s.DeleteHabit(habit.ID); err != nil {
		t.Fatalf("DeleteHabit failed: %v", err)
	}

	if _, ok := findEntry(t, s, habit.ID, "2024-06-10"); ok {
		t.Error("deleted habit's entry still present")
	}
	if _, ok := findEntry(t, s, other.ID, "2024-06-10"); !ok {
		t.Error("other habit's entry was removed")
	}

	got, ok, err := s.Task(task.ID)
	if err != nil || !ok {
		t.Fatalf("Task lookup failed: ok=%v err=%v", ok, err)
	}
	if !got.Standalone() {
		t.Errorf("task still linked to deleted habit: %q", got.HabitID)
	}
}

func TestReorderHabits_AppendsMissing(t *testing.T) {
	s := newTestService(t)
	a := mustAddHabit(t, s, "A", models.PriorityLow)
	b := mustAddHabit(t, s, "B", models.PriorityLow)
	c := mustAddHabit(t, s, "C", models.PriorityLow)

	if err := s.ReorderHabits([]string{c.ID, a.ID}); err != nil {
		t.Fatalf("ReorderHabits failed: %v", err)
	}

	habits, err := s.Habits()
	if err != nil {
		t.Fatalf("Habits failed: %v", err)
	}

	order := make(map[string]int, len(habits))
	for _, h := range habits {
		order[h.ID] = h.Order
	}
	if order[c.ID] != 0 || order[a.ID] != 1 || order[b.ID] != 2 {
		t.Errorf("orders = c:%d a:%d b:%d, want 0 1 2", order[c.ID], order[a.ID], order[b.ID])
	}
}
