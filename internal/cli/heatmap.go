package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/nleeper/cadence/internal/models"
	"github.com/nleeper/cadence/internal/score"
)

// Shading levels for the year heatmap, empty to full.
var heatStyles = []lipgloss.Style{
	lipgloss.NewStyle().Background(lipgloss.Color("236")),
	lipgloss.NewStyle().Background(lipgloss.Color("22")),
	lipgloss.NewStyle().Background(lipgloss.Color("28")),
	lipgloss.NewStyle().Background(lipgloss.Color("34")),
	lipgloss.NewStyle().Background(lipgloss.Color("40")),
}

type HeatmapCmd struct {
	Year int `arg:"" optional:"" help:"Year to render; defaults to the current year."`
}

func (c *HeatmapCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	today := time.Now()
	year := c.Year
	if year == 0 {
		year = today.Year()
	}

	habits, entries, err := c.yearData(ctx, year, today.Year())
	if err != nil {
		return err
	}

	points := score.YearSeries(habits, entries, year, today)
	if len(points) == 0 {
		fmt.Printf("No data for %d\n", year)
		return nil
	}

	var max float64
	for _, p := range points {
		if p.Score > max {
			max = p.Score
		}
	}

	// One row per weekday, one column per week, GitHub style.
	byDay := make(map[string]float64, len(points))
	for _, p := range points {
		byDay[p.Date] = p.Score
	}

	first, _ := models.ParseDay(points[0].Date)
	last, _ := models.ParseDay(points[len(points)-1].Date)
	// Back up to the Sunday on or before Jan 1 so columns align.
	gridStart := first.AddDate(0, 0, -int(first.Weekday()))

	fmt.Printf("%d\n", year)
	for wd := 0; wd < 7; wd++ {
		row := ""
		for d := gridStart.AddDate(0, 0, wd); !d.After(last); d = d.AddDate(0, 0, 7) {
			s, ok := byDay[models.FormatDay(d)]
			if !ok {
				row += "  "
				continue
			}
			row += heatStyles[heatLevel(s, max)].Render("  ")
		}
		fmt.Println(row)
	}

	return nil
}

func heatLevel(s, max float64) int {
	if s <= 0 || max <= 0 {
		return 0
	}
	level := int(s/max*4) + 1
	if level > 4 {
		level = 4
	}
	return level
}

// yearData returns the habit and entry sets backing a year's heatmap: the
// live collections for the current year, the archived snapshot otherwise.
func (c *HeatmapCmd) yearData(ctx *Context, year, currentYear int) ([]models.Habit, []models.HabitEntry, error) {
	if year != currentYear {
		archived, ok, err := ctx.Archive.Archive(year)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			return archived.Habits, archived.Entries, nil
		}
	}

	habits, err := ctx.Tracker.Habits()
	if err != nil {
		return nil, nil, err
	}
	entries, err := ctx.Tracker.Entries()
	if err != nil {
		return nil, nil, err
	}
	return habits, entries, nil
}
