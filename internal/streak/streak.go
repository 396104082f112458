// Package streak computes per-habit and cross-habit streaks from sparse
// entry series. Like score, it is pure; the caller supplies collections and
// the reference time.
package streak

import (
	"math"
	"sort"
	"time"

	"github.com/nleeper/cadence/internal/models"
	"github.com/nleeper/cadence/internal/score"
)

// MaxLookbackDays caps how far back the cross-habit walks go, so streak
// computation always terminates regardless of entry history.
const MaxLookbackDays = 365

// Calculate returns the current and longest streak for one habit's entries.
// Walking backward from today over completed entries, a run continues while
// successive completed dates are at most one day apart; a larger gap starts
// a new run of length 1. The current streak is the most recent run, and only
// counts when that run reaches today or yesterday. Entries for other habits
// must be filtered out by the caller.
func Calculate(entries []models.HabitEntry, today time.Time) (current, longest int) {
	completed := make([]models.HabitEntry, 0, len(entries))
	for _, e := range entries {
		if e.Completed {
			completed = append(completed, e)
		}
	}
	if len(completed) == 0 {
		return 0, 0
	}

	// Descending by date; lexical order is chronological for day strings.
	sort.Slice(completed, func(i, j int) bool {
		return completed[i].Date > completed[j].Date
	})

	prev := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	run := 0
	inCurrentRun := true
	first := true

	for _, e := range completed {
		day, err := models.ParseDay(e.Date)
		if err != nil {
			continue
		}
		gap := int(prev.Sub(day).Hours() / 24)

		switch {
		case first && gap <= 1:
			// The most recent entry is today or yesterday, so the run
			// is anchored to today.
			run = 1
		case first:
			run = 1
			inCurrentRun = false
		case gap == 0:
			// Duplicate date, run unchanged.
		case gap == 1:
			run++
		default:
			run = 1
			inCurrentRun = false
		}

		if inCurrentRun {
			current = run
		}
		if run > longest {
			longest = run
		}

		prev = day
		first = false
	}

	return current, longest
}

// AllKilled counts consecutive days, walking backward from today, on which
// every active (non-archived) habit has a completed entry. Zero active
// habits yields zero.
func AllKilled(habits []models.Habit, entries []models.HabitEntry, today time.Time) int {
	var active []models.Habit
	for _, h := range habits {
		if !h.Archived {
			active = append(active, h)
		}
	}
	if len(active) == 0 {
		return 0
	}

	done := make(map[string]map[string]bool)
	for _, e := range entries {
		if !e.Completed {
			continue
		}
		if done[e.HabitID] == nil {
			done[e.HabitID] = make(map[string]bool)
		}
		done[e.HabitID][e.Date] = true
	}

	streak := 0
	for i := 0; i < MaxLookbackDays; i++ {
		date := models.FormatDay(today.AddDate(0, 0, -i))
		allDone := true
		for _, h := range active {
			if !done[h.ID][date] {
				allDone = false
				break
			}
		}
		if !allDone {
			break
		}
		streak++
	}
	return streak
}

// AtLeastOne counts consecutive days, walking backward from today, with a
// nonzero daily score over the active habits.
func AtLeastOne(habits []models.Habit, entries []models.HabitEntry, today time.Time) int {
	var active []models.Habit
	for _, h := range habits {
		if !h.Archived {
			active = append(active, h)
		}
	}
	if len(active) == 0 {
		return 0
	}

	streak := 0
	for i := 0; i < MaxLookbackDays; i++ {
		date := models.FormatDay(today.AddDate(0, 0, -i))
		if score.Daily(active, entries, date) <= 0 {
			break
		}
		streak++
	}
	return streak
}

// Stats builds the per-habit summary: streaks, total completions, and the
// completion rate since creation (creation day inclusive, denominator never
// below one day).
func Stats(habit models.Habit, entries []models.HabitEntry, now time.Time) models.HabitStats {
	var habitEntries []models.HabitEntry
	completions := 0
	for _, e := range entries {
		if e.HabitID != habit.ID {
			continue
		}
		habitEntries = append(habitEntries, e)
		if e.Completed {
			completions++
		}
	}

	current, longest := Calculate(habitEntries, now)

	days := 1
	if created, err := models.ParseDay(habit.CreatedAt); err == nil {
		days = int(now.Sub(created).Hours()/24) + 1
		if days < 1 {
			days = 1
		}
	}

	return models.HabitStats{
		HabitID:          habit.ID,
		CurrentStreak:    current,
		LongestStreak:    longest,
		TotalCompletions: completions,
		CompletionRate:   int(math.Round(float64(completions) / float64(days) * 100)),
	}
}
