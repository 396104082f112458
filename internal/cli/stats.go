package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/nleeper/cadence/internal/score"
	"github.com/nleeper/cadence/internal/streak"
)

var statsHeaderStyle = lipgloss.NewStyle().Bold(true)

type StatsCmd struct {
	Habit string `arg:"" optional:"" help:"Habit id or name; omit for all habits."`
	Days  int    `help:"Window for the completion counts." default:"30"`
}

func (c *StatsCmd) Run(ctx *Context) error {
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
	now := time.Now()

	if c.Habit != "" {
		habit, err := ctx.findHabit(c.Habit)
		if err != nil {
			return err
		}
		habits = habits[:0]
		habits = append(habits, habit)
	}

	fmt.Println(statsHeaderStyle.Render("Habit stats"))
	for _, h := range habits {
		stats := streak.Stats(h, entries, now)
		fmt.Printf("  %-24s streak %d (best %d), %d completions, %d%% rate\n",
			h.Name, stats.CurrentStreak, stats.LongestStreak,
			stats.TotalCompletions, stats.CompletionRate)
	}

	fmt.Println(statsHeaderStyle.Render(fmt.Sprintf("Last %d days", c.Days)))
	for _, count := range score.CompletionCounts(habits, entries, now, c.Days) {
		fmt.Printf("  %-24s %d/%d days\n", count.Name, count.Completions, c.Days)
	}

	return nil
}

type StreaksCmd struct{}

func (c *StreaksCmd) Run(ctx *Context) error {
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
	now := time.Now()

	fmt.Println(statsHeaderStyle.Render("Cross-habit streaks"))
	fmt.Printf("  All habits done:   %d days\n", streak.AllKilled(habits, entries, now))
	fmt.Printf("  At least one done: %d days\n", streak.AtLeastOne(habits, entries, now))
	return nil
}
