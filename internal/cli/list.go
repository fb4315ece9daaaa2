package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/jrn/internal/date"
)

// List prints the dates that currently have entries, oldest first.
func (a *App) List(ctx context.Context) error {
	dates := a.state.Dates()
	if len(dates) == 0 {
		fmt.Println("The journal is empty.")
		return nil
	}
	for _, d := range dates {
		fmt.Println("-", d.String())
	}
	return nil
}

// resolveDate turns the command arguments into a date. With no argument the
// user is prompted; the answer accepts the same absolute and relative forms
// as the argument.
func (a *App) resolveDate(args []string) (date.Date, error) {
	text := ""
	if len(args) > 0 {
		text = args[0]
	} else {
		var err error
		text, err = GetSimpleText(a.reader, "Enter date (YYYY-MM-DD or today-N)", os.Stdout)
		if err != nil {
			return date.Date{}, err
		}
	}

	d, err := date.Parse(text)
	if err != nil {
		fmt.Println(err.Error())
		return date.Date{}, err
	}
	return d, nil
}
