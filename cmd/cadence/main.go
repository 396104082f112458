package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/nleeper/cadence/internal/archive"
	"github.com/nleeper/cadence/internal/cli"
	"github.com/nleeper/cadence/internal/logger"
	"github.com/nleeper/cadence/internal/storage"
	"github.com/nleeper/cadence/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path." type:"path" default:"~/.config/cadence/cadence.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init  cli.InitCmd `cmd:"" help:"Initialize cadence storage."`
	Habit struct {
		Add       cli.HabitAddCmd       `cmd:"" help:"Add a habit."`
		List      cli.HabitListCmd      `cmd:"" help:"List habits with their stats."`
		Archive   cli.HabitArchiveCmd   `cmd:"" help:"Archive a habit (kept for history)."`
		Unarchive cli.HabitUnarchiveCmd `cmd:"" help:"Restore an archived habit."`
		Delete    cli.HabitDeleteCmd    `cmd:"" help:"Permanently delete a habit and its entries."`
		Reorder   cli.HabitReorderCmd   `cmd:"" help:"Reorder habits."`
	} `cmd:"" help:"Manage habits."`
	Toggle cli.ToggleCmd `cmd:"" help:"Toggle a habit's completion for a day."`
	Task   struct {
		Add    cli.TaskAddCmd    `cmd:"" help:"Add a planned task."`
		List   cli.TaskListCmd   `cmd:"" help:"List tasks for a day."`
		Toggle cli.TaskToggleCmd `cmd:"" help:"Toggle a task's completion."`
		Delete cli.TaskDeleteCmd `cmd:"" help:"Delete a task."`
	} `cmd:"" help:"Manage planned tasks."`
	Note struct {
		Set  cli.NoteSetCmd  `cmd:"" help:"Set or clear the note for a day."`
		Show cli.NoteShowCmd `cmd:"" help:"Show the note for a day."`
	} `cmd:"" help:"Manage day notes."`
	Stats   cli.StatsCmd   `cmd:"" help:"Show per-habit stats."`
	Streaks cli.StreaksCmd `cmd:"" help:"Show cross-habit streaks."`
	Score   cli.ScoreCmd   `cmd:"" help:"Show daily/weekly/monthly scores."`
	Heatmap cli.HeatmapCmd `cmd:"" help:"Render a year's score heatmap."`
	Years   struct {
		List cli.YearsListCmd `cmd:"" help:"List archived years."`
		Show cli.YearsShowCmd `cmd:"" help:"Summarize an archived year."`
	} `cmd:"" help:"Browse archived years."`
	Export    cli.ExportCmd    `cmd:"" help:"Export habits and entries."`
	Import    cli.ImportCmd    `cmd:"" help:"Import a backup and backfill year archives."`
	CheckYear cli.CheckYearCmd `cmd:"" help:"Run the year rollover check explicitly."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("cadence"),
		kong.Description("Habit tracking with weighted scores, streaks, and yearly archives"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Determine storage backend based on extension
	var kv storage.KV
	if strings.HasSuffix(CLI.Config, ".json") {
		kv = storage.NewJSONFileKV(CLI.Config)
	} else {
		kv = storage.NewSQLiteKV(CLI.Config)
	}

	store := storage.NewStore(kv)
	appCtx := &cli.Context{
		Store:   store,
		Tracker: tracker.New(store),
		Archive: archive.NewManager(store),
	}

	err := ctx.Run(appCtx)
	if cerr := store.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
