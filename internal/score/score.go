// Package score computes daily habit scores and the derived series built
// from them. Everything here is pure: callers load collections from storage
// and pass them in together with the date context.
package score

import (
	"math"
	"time"

	"github.com/nleeper/cadence/internal/models"
)

// Point is one dated value in a score series.
type Point struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
}

// YearPoint carries the extra calendar position a heatmap consumer needs.
type YearPoint struct {
	Date    string       `json:"date"`
	Score   float64      `json:"score"`
	Month   time.Month   `json:"month"`
	Weekday time.Weekday `json:"dayOfWeek"`
}

// CompletionCount is a per-habit completed-day count over a trailing window.
type CompletionCount struct {
	Name        string          `json:"name"`
	Completions int             `json:"completions"`
	Priority    models.Priority `json:"priority"`
	Color       string          `json:"color"`
}

// Daily returns the score for one calendar day: the sum over that day's
// entries of priority points weighted by completion percentage. An entry
// counts when it is completed, or when its linked tasks put it strictly
// between 0 and 100 percent. Entries referencing a habit id not present in
// habits are skipped. The result is rounded half-up at the tenths digit.
//
// This is the single source of truth; every series below iterates days and
// calls it rather than shortcutting.
func Daily(habits []models.Habit, entries []models.HabitEntry, date string) float64 {
	byID := make(map[string]models.Habit, len(habits))
	for _, h := range habits {
		byID[h.ID] = h
	}

	var score float64
	for _, e := range entries {
		if e.Date != date {
			continue
		}
		habit, ok := byID[e.HabitID]
		if !ok {
			continue
		}
		pct := e.Pct()
		if e.Completed || (pct > 0 && pct < 100) {
			score += float64(habit.Priority.Points()) * pct / 100
		}
	}

	return roundTenth(score)
}

// roundTenth rounds half-up at the tenths digit.
func roundTenth(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}

// DailySeries returns the last n calendar days ending today, one point per
// day.
func DailySeries(habits []models.Habit, entries []models.HabitEntry, today time.Time, n int) []Point {
	points := make([]Point, 0, n)
	for i := n - 1; i >= 0; i-- {
		date := models.FormatDay(today.AddDate(0, 0, -i))
		points = append(points, Point{Date: date, Score: Daily(habits, entries, date)})
	}
	return points
}

// WeeklySeries returns n trailing 7-day windows ending today. Each point is
// the sum of the daily scores in its window, dated by the window start.
func WeeklySeries(habits []models.Habit, entries []models.HabitEntry, today time.Time, n int) []Point {
	points := make([]Point, 0, n)
	for i := n - 1; i >= 0; i-- {
		end := today.AddDate(0, 0, -i*7)
		start := end.AddDate(0, 0, -6)

		var sum float64
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			sum += Daily(habits, entries, models.FormatDay(d))
		}

		points = append(points, Point{Date: models.FormatDay(start), Score: sum})
	}
	return points
}

// MonthlySeries returns n trailing calendar months ending with the current
// one. Days of the current month after today are excluded, not zero-filled.
func MonthlySeries(habits []models.Habit, entries []models.HabitEntry, today time.Time, n int) []Point {
	points := make([]Point, 0, n)
	for i := n - 1; i >= 0; i-- {
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()).AddDate(0, -i, 0)
		end := start.AddDate(0, 1, -1)
		if i == 0 {
			end = today
		}

		var sum float64
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			sum += Daily(habits, entries, models.FormatDay(d))
		}

		points = append(points, Point{Date: models.FormatDay(start), Score: sum})
	}
	return points
}

// YearSeries returns one point per calendar day of the given year. When year
// is the current year the series stops at today.
func YearSeries(habits []models.Habit, entries []models.HabitEntry, year int, today time.Time) []YearPoint {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, today.Location())
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, today.Location())
	if year == today.Year() {
		end = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	}

	var points []YearPoint
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := models.FormatDay(d)
		points = append(points, YearPoint{
			Date:    date,
			Score:   Daily(habits, entries, date),
			Month:   d.Month(),
			Weekday: d.Weekday(),
		})
	}
	return points
}

// CompletionCounts returns, per habit, how many of the trailing `days`
// calendar days ending today have a completed entry.
func CompletionCounts(habits []models.Habit, entries []models.HabitEntry, today time.Time, days int) []CompletionCount {
	completed := make(map[string]map[string]bool)
	for _, e := range entries {
		if !e.Completed {
			continue
		}
		if completed[e.HabitID] == nil {
			completed[e.HabitID] = make(map[string]bool)
		}
		completed[e.HabitID][e.Date] = true
	}

	counts := make([]CompletionCount, 0, len(habits))
	for _, h := range habits {
		n := 0
		for i := 0; i < days; i++ {
			if completed[h.ID][models.FormatDay(today.AddDate(0, 0, -i))] {
				n++
			}
		}
		counts = append(counts, CompletionCount{
			Name:        h.Name,
			Completions: n,
			Priority:    h.Priority,
			Color:       h.Color,
		})
	}
	return counts
}
