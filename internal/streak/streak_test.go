package streak

import (
	"testing"
	"time"

	"github.com/nleeper/cadence/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func completed(dates ...string) []models.HabitEntry {
	entries := make([]models.HabitEntry, 0, len(dates))
	for _, d := range dates {
		entries = append(entries, models.HabitEntry{HabitID: "h1", Date: d, Completed: true})
	}
	return entries
}

func TestCalculate_Empty(t *testing.T) {
	current, longest := Calculate(nil, day(2024, 6, 10))
	if current != 0 || longest != 0 {
		t.Errorf("got current=%d longest=%d, want 0 0", current, longest)
	}
}

func TestCalculate_IgnoresIncompleteEntries(t *testing.T) {
	entries := []models.HabitEntry{
		{HabitID: "h1", Date: "2024-06-10", Completed: false},
	}
	current, longest := Calculate(entries, day(2024, 6, 10))
	if current != 0 || longest != 0 {
		t.Errorf("got current=%d longest=%d, want 0 0", current, longest)
	}
}

func TestCalculate_GapResetsRun(t *testing.T) {
	// Completed on D, D-1, D-3: the D-2 gap must cut the current run at 2.
	entries := completed("2024-06-10", "2024-06-09", "2024-06-07")

	current, longest := Calculate(entries, day(2024, 6, 10))
	if current != 2 {
		t.Errorf("current = %d, want 2", current)
	}
	if longest != 2 {
		t.Errorf("longest = %d, want 2", longest)
	}
}

func TestCalculate_YesterdayStillAnchorsCurrent(t *testing.T) {
	entries := completed("2024-06-09", "2024-06-08", "2024-06-07")

	current, longest := Calculate(entries, day(2024, 6, 10))
	if current != 3 {
		t.Errorf("current = %d, want 3 (run ending yesterday counts)", current)
	}
	if longest != 3 {
		t.Errorf("longest = %d, want 3", longest)
	}
}

func TestCalculate_StaleRunIsNotCurrent(t *testing.T) {
	entries := completed("2024-06-05", "2024-06-04", "2024-06-03")

	current, longest := Calculate(entries, day(2024, 6, 10))
	if current != 0 {
		t.Errorf("current = %d, want 0 (run ended days ago)", current)
	}
	if longest != 3 {
		t.Errorf("longest = %d, want 3", longest)
	}
}

func TestCalculate_LongestSpansOldRuns(t *testing.T) {
	entries := completed(
		"2024-06-10",
		"2024-06-01", "2024-05-31", "2024-05-30", "2024-05-29",
	)

	current, longest := Calculate(entries, day(2024, 6, 10))
	if current != 1 {
		t.Errorf("current = %d, want 1", current)
	}
	if longest != 4 {
		t.Errorf("longest = %d, want 4", longest)
	}
}

func activeHabits(ids ...string) []models.Habit {
	habits := make([]models.Habit, 0, len(ids))
	for _, id := range ids {
		habits = append(habits, models.Habit{ID: id, Priority: models.PriorityMedium})
	}
	return habits
}

func TestAllKilled_ScenarioWithMissingDay(t *testing.T) {
	habits := activeHabits("a", "b", "c")
	var entries []models.HabitEntry
	for _, id := range []string{"a", "b", "c"} {
		for d := 1; d <= 3; d++ {
			entries = append(entries, models.HabitEntry{
				HabitID:   id,
				Date:      time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC).Format(models.DayFormat),
				Completed: true,
			})
		}
	}
	// Habits a and b also completed the 4th; c did not.
	entries = append(entries,
		models.HabitEntry{HabitID: "a", Date: "2024-01-04", Completed: true},
		models.HabitEntry{HabitID: "b", Date: "2024-01-04", Completed: true},
	)

	if got := AllKilled(habits, entries, day(2024, 1, 4)); got != 0 {
		t.Errorf("AllKilled from Jan 4 = %d, want 0 (the 4th itself incomplete)", got)
	}
	if got := AllKilled(habits, entries, day(2024, 1, 3)); got != 3 {
		t.Errorf("AllKilled from Jan 3 = %d, want 3", got)
	}
}

func TestAllKilled_ZeroActiveHabits(t *testing.T) {
	habits := []models.Habit{{ID: "a", Archived: true}}
	entries := completed("2024-06-10")

	if got := AllKilled(habits, entries, day(2024, 6, 10)); got != 0 {
		t.Errorf("AllKilled = %d, want 0 with no active habits", got)
	}
}

func TestAllKilled_IgnoresArchivedHabits(t *testing.T) {
	habits := []models.Habit{
		{ID: "a"},
		{ID: "z", Archived: true}, // never completed, must not break the streak
	}
	entries := []models.HabitEntry{
		{HabitID: "a", Date: "2024-06-10", Completed: true},
		{HabitID: "a", Date: "2024-06-09", Completed: true},
	}

	if got := AllKilled(habits, entries, day(2024, 6, 10)); got != 2 {
		t.Errorf("AllKilled = %d, want 2", got)
	}
}

func TestAtLeastOne_CountsNonzeroScoreDays(t *testing.T) {
	habits := activeHabits("a", "b")
	entries := []models.HabitEntry{
		{HabitID: "a", Date: "2024-06-10", Completed: true},
		{HabitID: "b", Date: "2024-06-09", Completed: true},
		// 2024-06-08 empty.
		{HabitID: "a", Date: "2024-06-07", Completed: true},
	}

	if got := AtLeastOne(habits, entries, day(2024, 6, 10)); got != 2 {
		t.Errorf("AtLeastOne = %d, want 2", got)
	}
}

func TestAllKilledNeverExceedsAtLeastOne(t *testing.T) {
	habits := activeHabits("a", "b", "c")
	entries := []models.HabitEntry{
		{HabitID: "a", Date: "2024-06-10", Completed: true},
		{HabitID: "b", Date: "2024-06-10", Completed: true},
		{HabitID: "c", Date: "2024-06-10", Completed: true},
		{HabitID: "a", Date: "2024-06-09", Completed: true},
		{HabitID: "b", Date: "2024-06-08", Completed: true},
	}

	for offset := 0; offset < 5; offset++ {
		today := day(2024, 6, 10-offset)
		all := AllKilled(habits, entries, today)
		one := AtLeastOne(habits, entries, today)
		if all > one {
			t.Errorf("offset %d: AllKilled %d > AtLeastOne %d", offset, all, one)
		}
	}
}

func TestStats_CompletionRateGuardsCreationDay(t *testing.T) {
	habit := models.Habit{ID: "h1", CreatedAt: "2024-06-10"}
	entries := completed("2024-06-10")

	stats := Stats(habit, entries, day(2024, 6, 10))
	if stats.CompletionRate != 100 {
		t.Errorf("completion rate = %d, want 100 on creation day", stats.CompletionRate)
	}
	if stats.TotalCompletions != 1 {
		t.Errorf("total completions = %d, want 1", stats.TotalCompletions)
	}
}

func TestStats_RateOverWindow(t *testing.T) {
	// Created 9 days before today: denominator is 10 days inclusive.
	habit := models.Habit{ID: "h1", CreatedAt: "2024-06-01"}
	entries := completed("2024-06-01", "2024-06-02", "2024-06-03", "2024-06-04", "2024-06-05")

	stats := Stats(habit, entries, day(2024, 6, 10))
	if stats.CompletionRate != 50 {
		t.Errorf("completion rate = %d, want 50", stats.CompletionRate)
	}
	if stats.LongestStreak != 5 {
		t.Errorf("longest streak = %d, want 5", stats.LongestStreak)
	}
	if stats.CurrentStreak != 0 {
		t.Errorf("current streak = %d, want 0", stats.CurrentStreak)
	}
}

func TestStats_FiltersOtherHabits(t *testing.T) {
	habit := models.Habit{ID: "h1", CreatedAt: "2024-06-09"}
	entries := []models.HabitEntry{
		{HabitID: "h1", Date: "2024-06-10", Completed: true},
		{HabitID: "other", Date: "2024-06-10", Completed: true},
		{HabitID: "other", Date: "2024-06-09", Completed: true},
	}

	stats := Stats(habit, entries, day(2024, 6, 10))
	if stats.TotalCompletions != 1 {
		t.Errorf("total completions = %d, want 1", stats.TotalCompletions)
	}
	if stats.CurrentStreak != 1 {
		t.Errorf("current streak = %d, want 1", stats.CurrentStreak)
	}
}
