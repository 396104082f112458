package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nleeper/cadence/internal/models"
)

type ExportCmd struct {
	File string `arg:"" optional:"" help:"Destination file; omit for stdout."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	backup, err := ctx.Tracker.Export()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize backup: %w", err)
	}

	if c.File == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(c.File, data, 0600); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	fmt.Printf("Exported %d habits and %d entries to %s\n", len(backup.Habits), len(backup.Entries), c.File)
	return nil
}

type ImportCmd struct {
	File string `arg:"" help:"Backup file to import."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	var backup models.Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return fmt.Errorf("invalid backup file: %w", err)
	}
	if backup.Habits == nil || backup.Entries == nil {
		return fmt.Errorf("invalid backup file: missing habits or entries")
	}

	if err := ctx.Archive.Import(backup); err != nil {
		return err
	}

	fmt.Printf("Imported %d habits and %d entries\n", len(backup.Habits), len(backup.Entries))
	return nil
}

type CheckYearCmd struct {
	Snapshot bool `help:"Also archive the current year's live data as-is."`
}

func (c *CheckYearCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	moved, err := ctx.Archive.CheckYearRollover()
	if err != nil {
		return err
	}
	if c.Snapshot {
		if err := ctx.Archive.ArchiveNow(); err != nil {
			return err
		}
		fmt.Println("Archived the current year's data.")
	}
	if moved {
		fmt.Println("Year check complete; marker updated.")
	} else {
		fmt.Println("Year already checked; nothing to do.")
	}
	return nil
}
