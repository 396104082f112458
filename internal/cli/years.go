package cli

import (
	"fmt"
	"time"

	"github.com/nleeper/cadence/internal/score"
)

type YearsListCmd struct{}

func (c *YearsListCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	years, err := ctx.Archive.ArchivedYears()
	if err != nil {
		return err
	}
	if len(years) == 0 {
		fmt.Println("No archived years.")
		return nil
	}

	fmt.Println("Archived years:")
	for _, y := range years {
		fmt.Printf("  %d\n", y)
	}
	return nil
}

type YearsShowCmd struct {
	Year int `arg:"" help:"Archived year to show."`
}

func (c *YearsShowCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	archive, ok, err := ctx.Archive.Archive(c.Year)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no archive for year %d", c.Year)
	}

	var total float64
	for _, p := range score.YearSeries(archive.Habits, archive.Entries, archive.Year, time.Now()) {
		total += p.Score
	}

	completions := 0
	for _, e := range archive.Entries {
		if e.Completed {
			completions++
		}
	}

	fmt.Printf("Year %d (archived %s):\n", archive.Year, archive.ArchivedAt)
	fmt.Printf("  %d habits, %d entries, %d completions, total score %.1f\n",
		len(archive.Habits), len(archive.Entries), completions, total)
	return nil
}
