package cli

import (
	"fmt"
	"strings"

	"github.com/nleeper/cadence/internal/archive"
	"github.com/nleeper/cadence/internal/models"
	"github.com/nleeper/cadence/internal/storage"
	"github.com/nleeper/cadence/internal/tracker"
)

type Context struct {
	Store   *storage.Store
	Tracker *tracker.Service
	Archive *archive.Manager
}

// load opens the store and runs the once-per-session year rollover check.
// Every command except init goes through here.
func (ctx *Context) load() error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if _, err := ctx.Archive.CheckYearRollover(); err != nil {
		return fmt.Errorf("year rollover check failed: %w", err)
	}
	return nil
}

// resolveDay turns a date argument into a YYYY-MM-DD day string, accepting
// "today" as an alias.
func (ctx *Context) resolveDay(arg string) (string, error) {
	if arg == "" || arg == "today" {
		return ctx.Tracker.Today(), nil
	}
	if _, err := models.ParseDay(arg); err != nil {
		return "", fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return arg, nil
}

// findHabit resolves a habit reference by id or (case-insensitive) name.
func (ctx *Context) findHabit(ref string) (models.Habit, error) {
	habits, err := ctx.Tracker.Habits()
	if err != nil {
		return models.Habit{}, err
	}

	for _, h := range habits {
		if h.ID == ref {
			return h, nil
		}
	}
	for _, h := range habits {
		if strings.EqualFold(h.Name, ref) {
			return h, nil
		}
	}

	return models.Habit{}, fmt.Errorf("habit not found: %s", ref)
}

func parsePriority(s string) (models.Priority, error) {
	p := models.Priority(strings.ToLower(s))
	if !p.Valid() {
		return "", fmt.Errorf("invalid priority %q (low|medium|high|critical)", s)
	}
	return p, nil
}
