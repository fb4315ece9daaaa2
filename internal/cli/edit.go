package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/jrn/internal/date"
)

// Edit replaces the entry for the date given as an argument, prompting for
// one if it is missing. The current text is shown first; entering nothing
// leaves it unchanged.
func (a *App) Edit(ctx context.Context, args []string) error {
	d, err := a.resolveDate(args)
	if err != nil {
		return err
	}
	return a.editEntry(d)
}

// EditToday replaces today's entry.
func (a *App) EditToday(ctx context.Context) error {
	return a.editEntry(date.Today())
}

func (a *App) editEntry(d date.Date) error {
	a.printEntry(d)

	text, err := GetMultiline(a.reader, fmt.Sprintf("Enter new text for %s (empty line to finish)", d.String()), os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	if text == "" {
		fmt.Println("Nothing entered, entry left unchanged.")
		return nil
	}

	if old, ok := a.state.Entry(d); !ok || old != text {
		a.state.SetEntry(d, text)
		a.dirty = true
	}
	return nil
}
