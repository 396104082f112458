package tracker

import (
	"testing"

	"github.com/nleeper/cadence/internal/models"
)

func TestToggle_CreatesCompletedEntry(t *testing.T) {
	s := newTestService(t)
	habit := mustAddHabit(t, s, "Exercise", models.PriorityHigh)

	if err := s.Toggle(habit.ID, "2024-06-10", nil); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	entry, ok := findEntry(t, s, habit.ID, "2024-06-10")
	if !ok {
		t.Fatal("entry not created")
	}
	if !entry.Completed {
		t.Error("new entry should default to completed")
	}
	if entry.CompletedAt == "" {
		t.Error("completedAt not stamped")
	}
}

func TestToggle_FlipClearsCompletedAt(t *testing.T) {
	s := newTestService(t)
	habit := mustAddHabit(t, s, "Exercise", models.PriorityHigh)

	if err := s.Toggle(habit.ID, "2024-06-10", nil); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if err := s.Toggle(habit.ID, "2024-06-10", nil); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	entry, ok := findEntry(t, s, habit.ID, "2024-06-10")
	if !ok {
		t.Fatal("entry missing after second toggle")
	}
	if entry.Completed {
		t.Error("entry should be incomplete after second toggle")
	}
	if entry.CompletedAt != "" {
		t.Errorf("completedAt should be cleared, got %s", entry.CompletedAt)
	}
}

func TestToggle_NilNotePreservesExisting(t *testing.T) {
	s := newTestService(t)
	habit := mustAddHabit(t, s, "Exercise", models.PriorityHigh)

	note := "felt great"
	if err := s.Toggle(habit.ID, "2024-06-10", &note); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if err := s.Toggle(habit.ID, "2024-06-10", nil); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	entry, _ := findEntry(t, s, habit.ID, "2024-06-10")
	if entry.Note != "felt great" {
		t.Errorf("note = %q, want preserved note", entry.Note)
	}
}

func TestToggle_SyncsTaskCompletionPercentage(t *testing.T) {
	s := newTestService(t)
	habit := mustAddHabit(t, s, "Study", models.PriorityMedium)

	done, err := s.AddTask(habit.ID, "2024-06-10", "Chapter 1", "", models.PriorityCritical, false)
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if _, err := s.AddTask(habit.ID, "2024-06-10", "Chapter 2", "", models.PriorityLow, false); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if err := s.ToggleTask(done.ID); err != nil {
		t.Fatalf("ToggleTask failed: %v", err)
	}

	// Manual toggle must carry the task-derived percentage along.
	if err := s.Toggle(habit.ID, "2024-06-10", nil); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	entry, ok := findEntry(t, s, habit.ID, "2024-06-10")
	if !ok {
		t.Fatal("entry missing")
	}
	if entry.Pct() != 83.3 {
		t.Errorf("pct = %v, want 83.3", entry.Pct())
	}
	if len(entry.Tasks) != 2 {
		t.Errorf("linked tasks = %d, want 2", len(entry.Tasks))
	}
}

func TestUpdateEntryNote(t *testing.T) {
	s := newTestService(t)
	habit := mustAddHabit(t, s, "Exercise", models.PriorityHigh)

	if err := s.UpdateEntryNote(habit.ID, "2024-06-10", "x"); err == nil {
		t.Error("expected error updating note on a missing entry")
	}

	if err := s.Toggle(habit.ID, "2024-06-10", nil); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if err := s.UpdateEntryNote(habit.ID, "2024-06-10", "solid session"); err != nil {
		t.Fatalf("UpdateEntryNote failed: %v", err)
	}

	entry, _ := findEntry(t, s, habit.ID, "2024-06-10")
	if entry.Note != "solid session" {
		t.Errorf("note = %q, want %q", entry.Note, "solid session")
	}
}

func TestEntryQueries_FilterByHabitAndDate(t *testing.T) {
	s := newTestService(t)
	a := mustAddHabit(t, s, "Exercise", models.PriorityHigh)
	b := mustAddHabit(t, s, "Read", models.PriorityLow)

	if err := s.Toggle(a.ID, "2024-06-09", nil); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if err := s.Toggle(a.ID, "2024-06-10", nil); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if err := s.Toggle(b.ID, "2024-06-10", nil); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	forHabit, err := s.EntriesForHabit(a.ID)
	if err != nil {
		t.Fatalf("EntriesForHabit failed: %v", err)
	}
	if len(forHabit) != 2 {
		t.Errorf("entries for habit = %d, want 2", len(forHabit))
	}

	forDate, err := s.EntriesForDate("2024-06-10")
	if err != nil {
		t.Fatalf("EntriesForDate failed: %v", err)
	}
	if len(forDate) != 2 {
		t.Errorf("entries for date = %d, want 2", len(forDate))
	}
}
