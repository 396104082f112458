package cli

import "fmt"

type TaskAddCmd struct {
	Title       string `arg:"" help:"Task title."`
	Date        string `short:"d" help:"Target date (YYYY-MM-DD or 'today')." default:"today"`
	Habit       string `short:"H" help:"Habit id or name to link the task to."`
	Description string `help:"Task description."`
	Priority    string `short:"p" help:"Priority (low|medium|high|critical)." default:"medium"`
	Recurring   bool   `short:"r" help:"Copy the task to the next day when fetched there."`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	date, err := ctx.resolveDay(c.Date)
	if err != nil {
		return err
	}
	priority, err := parsePriority(c.Priority)
	if err != nil {
		return err
	}

	habitID := ""
	if c.Habit != "" {
		habit, err := ctx.findHabit(c.Habit)
		if err != nil {
			return err
		}
		habitID = habit.ID
	}

	task, err := ctx.Tracker.AddTask(habitID, date, c.Title, c.Description, priority, c.Recurring)
	if err != nil {
		return err
	}

	fmt.Printf("Added task: %s (ID: %s)\n", task.Title, task.ID)
	return nil
}

type TaskListCmd struct {
	Date string `arg:"" optional:"" help:"Date to list (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	date, err := ctx.resolveDay(c.Date)
	if err != nil {
		return err
	}

	tasks, err := ctx.Tracker.TasksForDate(date)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Printf("No tasks for %s\n", date)
		return nil
	}

	fmt.Printf("Tasks for %s:\n", date)
	for _, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}

		link := ""
		if t.HabitID != "" {
			if habit, ok, err := ctx.Tracker.Habit(t.HabitID); err == nil && ok {
				link = fmt.Sprintf(" -> %s", habit.Name)
			}
		}
		recurring := ""
		if t.Recurring {
			recurring = " (recurring)"
		}

		fmt.Printf("  [%s] %s (%s)%s%s\n", mark, t.Title, t.Priority, link, recurring)
		fmt.Printf("      ID: %s\n", t.ID)
	}
	return nil
}

type TaskToggleCmd struct {
	ID string `arg:"" help:"Task id."`
}

func (c *TaskToggleCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	if err := ctx.Tracker.ToggleTask(c.ID); err != nil {
		return err
	}

	task, ok, err := ctx.Tracker.Task(c.ID)
	if err != nil {
		return err
	}
	if ok {
		state := "not completed"
		if task.Completed {
			state = "completed"
		}
		fmt.Printf("%s: %s\n", task.Title, state)
	}
	return nil
}

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task id."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	if err := ctx.Tracker.DeleteTask(c.ID); err != nil {
		return err
	}
	fmt.Println("Task deleted.")
	return nil
}
