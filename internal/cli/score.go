package cli

import (
	"fmt"
	"time"

	"github.com/nleeper/cadence/internal/score"
)

type ScoreCmd struct {
	Date    string `short:"d" help:"Single day to score (YYYY-MM-DD or 'today')."`
	Daily   int    `help:"Show the last N days." default:"0"`
	Weekly  int    `help:"Show the last N 7-day windows." default:"0"`
	Monthly int    `help:"Show the last N calendar months." default:"0"`
}

func (c *ScoreCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	habits, err := ctx.Tracker.Habits()
	if err != nil {
		return err
	}
	entries, err := ctx.Tracker.Entries()
	if err != nil {
		return err
	}
	today := time.Now()

	switch {
	case c.Daily > 0:
		fmt.Printf("Daily scores (last %d days):\n", c.Daily)
		for _, p := range score.DailySeries(habits, entries, today, c.Daily) {
			fmt.Printf("  %s  %5.1f\n", p.Date, p.Score)
		}
	case c.Weekly > 0:
		fmt.Printf("Weekly scores (last %d weeks):\n", c.Weekly)
		for _, p := range score.WeeklySeries(habits, entries, today, c.Weekly) {
			fmt.Printf("  week of %s  %5.1f\n", p.Date, p.Score)
		}
	case c.Monthly > 0:
		fmt.Printf("Monthly scores (last %d months):\n", c.Monthly)
		for _, p := range score.MonthlySeries(habits, entries, today, c.Monthly) {
			fmt.Printf("  %s  %5.1f\n", p.Date[:7], p.Score)
		}
	default:
		date, err := ctx.resolveDay(c.Date)
		if err != nil {
			return err
		}
		fmt.Printf("Score for %s: %.1f\n", date, score.Daily(habits, entries, date))
	}

	return nil
}
