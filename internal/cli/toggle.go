package cli

import "fmt"

type ToggleCmd struct {
	Habit string  `arg:"" help:"Habit id or name."`
	Date  string  `short:"d" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
	Note  *string `short:"n" help:"Note for the entry; omit to keep the existing note."`
}

func (c *ToggleCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	habit, err := ctx.findHabit(c.Habit)
	if err != nil {
		return err
	}
	date, err := ctx.resolveDay(c.Date)
	if err != nil {
		return err
	}

	if err := ctx.Tracker.Toggle(habit.ID, date, c.Note); err != nil {
		return err
	}

	entries, err := ctx.Tracker.EntriesForDate(date)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.HabitID != habit.ID {
			continue
		}
		state := "not completed"
		if e.Completed {
			state = "completed"
		}
		fmt.Printf("%s on %s: %s (%.0f%%)\n", habit.Name, date, state, e.Pct())
		return nil
	}
	return nil
}
