package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jrn/internal/date"
)

// View shows the entry for the date given as an argument, prompting for one
// if it is missing.
func (a *App) View(ctx context.Context, args []string) error {
	d, err := a.resolveDate(args)
	if err != nil {
		return err
	}
	a.printEntry(d)
	return nil
}

// ViewToday shows today's entry.
func (a *App) ViewToday(ctx context.Context) error {
	a.printEntry(date.Today())
	return nil
}

func (a *App) printEntry(d date.Date) {
	text, ok := a.state.Entry(d)
	if !ok {
		fmt.Printf("%s: <no entry>\n", d.String())
		return
	}
	fmt.Printf("%s:\n%s\n", d.String(), text)
}
