package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nleeper/cadence/internal/streak"
)

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `short:"d" help:"Habit description."`
	Priority    string `short:"p" help:"Priority (low|medium|high|critical)." default:"medium"`
	Color       string `short:"c" help:"Display color (hex); defaults per priority."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	priority, err := parsePriority(c.Priority)
	if err != nil {
		return err
	}

	habit, err := ctx.Tracker.AddHabit(c.Name, c.Description, priority, c.Color)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (ID: %s)\n", habit.Name, habit.ID)
	return nil
}

type HabitListCmd struct {
	All bool `help:"Include archived habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
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

	shown := 0
	for _, h := range habits {
		if h.Archived && !c.All {
			continue
		}
		shown++

		status := "active"
		if h.Archived {
			status = "archived"
		}

		stats := streak.Stats(h, entries, time.Now())
		fmt.Printf("  [%s] %s (%s, %dpt) - streak %d, best %d, %d%% since %s\n",
			status, h.Name, h.Priority, h.Priority.Points(),
			stats.CurrentStreak, stats.LongestStreak, stats.CompletionRate, h.CreatedAt)
		fmt.Printf("      ID: %s\n", h.ID)
		if h.Description != "" {
			fmt.Printf("      %s\n", h.Description)
		}
	}

	if shown == 0 {
		fmt.Println("No habits found")
	}
	return nil
}

type HabitArchiveCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
}

func (c *HabitArchiveCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	habit, err := ctx.findHabit(c.Habit)
	if err != nil {
		return err
	}
	if err := ctx.Tracker.SetArchived(habit.ID, true); err != nil {
		return err
	}

	fmt.Printf("Archived habit: %s\n", habit.Name)
	return nil
}

type HabitUnarchiveCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
}

func (c *HabitUnarchiveCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	habit, err := ctx.findHabit(c.Habit)
	if err != nil {
		return err
	}
	if err := ctx.Tracker.SetArchived(habit.ID, false); err != nil {
		return err
	}

	fmt.Printf("Restored habit: %s\n", habit.Name)
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
	Yes   bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	habit, err := ctx.findHabit(c.Habit)
	if err != nil {
		return err
	}

	if !c.Yes {
		fmt.Printf("This permanently deletes %q and all of its entries.\n", habit.Name)
		fmt.Print("Continue? [y/N]: ")

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	if err := ctx.Tracker.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", habit.Name)
	return nil
}

type HabitReorderCmd struct {
	IDs []string `arg:"" help:"Habit ids in the desired order."`
}

func (c *HabitReorderCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	if err := ctx.Tracker.ReorderHabits(c.IDs); err != nil {
		return err
	}
	fmt.Println("Habits reordered.")
	return nil
}
