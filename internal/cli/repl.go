package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	View(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	ViewToday(ctx context.Context) error
	EditToday(ctx context.Context) error
	ChangePassword(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop over the journal.
//
// It reads a line from the provided reader, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on reader EOF or when the user types
// "exit" or "quit". When once is set it also exits after the first command
// that actually ran.
//
// Commands:
//
//   - help             — show available commands
//   - l | list         — list the dates that have entries
//   - view [date]      — show the entry for a date
//   - edit [date]      — replace the entry for a date
//   - today            — show today's entry
//   - edit-today       — replace today's entry
//   - passwd           — change the journal password
//   - exit | quit      — save and leave the program
//
// Dates are either absolute (2024-01-31) or relative (today, today-2).
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, once bool) {
	for {
		printlnFn("jrn> ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			if err != io.EOF {
				printlnFn("read error:", err)
			}
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: (l)ist, view [date], edit [date], today, edit-today, passwd, exit")

		case "l", "list":
			_ = a.List(ctx)

		case "view":
			_ = a.View(ctx, args)

		case "edit":
			_ = a.Edit(ctx, args)

		case "today":
			_ = a.ViewToday(ctx)

		case "edit-today":
			_ = a.EditToday(ctx)

		case "passwd":
			_ = a.ChangePassword(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
			continue
		}

		if once {
			return
		}
	}
}
