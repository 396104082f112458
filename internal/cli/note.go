package cli

import "fmt"

type NoteSetCmd struct {
	Note string `arg:"" help:"Note text; an empty string deletes the note."`
	Date string `short:"d" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *NoteSetCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	date, err := ctx.resolveDay(c.Date)
	if err != nil {
		return err
	}

	if err := ctx.Tracker.SaveNote(date, c.Note); err != nil {
		return err
	}

	if c.Note == "" {
		fmt.Printf("Deleted note for %s\n", date)
	} else {
		fmt.Printf("Saved note for %s\n", date)
	}
	return nil
}

type NoteShowCmd struct {
	Date string `arg:"" optional:"" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *NoteShowCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	date, err := ctx.resolveDay(c.Date)
	if err != nil {
		return err
	}

	note, ok, err := ctx.Tracker.NoteForDate(date)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Printf("No note for %s\n", date)
		return nil
	}

	fmt.Printf("%s:\n%s\n", date, note.Note)
	return nil
}
