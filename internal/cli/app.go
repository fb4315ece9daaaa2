package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/jrn/internal/common"
	"github.com/dmitrijs2005/jrn/internal/config"
	"github.com/dmitrijs2005/jrn/internal/journal"
	"github.com/dmitrijs2005/jrn/internal/logging"
)

// getPassword is an indirection used to facilitate testing.
var getPassword = GetPassword

// App ties together the configuration, the journal state, and the
// interactive loop. A single App owns the journal file for the lifetime of
// the process; nothing else is expected to modify it meanwhile.
type App struct {
	config *config.Config
	enc    journal.Encryptor
	state  *journal.State
	log    logging.Logger
	reader *bufio.Reader

	// dirty is set when a command changed the state; the journal is
	// re-encrypted and written out on exit only if it is set.
	dirty bool
}

// NewApp builds an App around the given configuration and encryptor.
func NewApp(cfg *config.Config, enc journal.Encryptor, log logging.Logger) *App {
	return &App{
		config: cfg,
		enc:    enc,
		state:  journal.New(),
		log:    log,
		reader: bufio.NewReader(os.Stdin),
	}
}

// Run unlocks (or creates) the journal, runs the interactive loop, and
// saves on exit if anything changed. It returns an error only for failures
// that make the session impossible: a corrupt journal file, an unreadable
// password file, or a failed save.
func (a *App) Run(ctx context.Context) error {
	if err := a.unlock(ctx); err != nil {
		return err
	}

	runREPL(ctx, a, a.reader, a.config.DontLoop)

	if !a.dirty {
		return nil
	}
	if err := a.state.Save(a.config.JournalPath, a.enc); err != nil {
		return fmt.Errorf("save journal: %w", err)
	}
	a.log.Info(ctx, "journal saved", "path", a.config.JournalPath, "entries", len(a.state.Entries))
	return nil
}

// unlock resolves the password and loads the journal file, or initializes
// an empty journal when the file does not exist yet.
func (a *App) unlock(ctx context.Context) error {
	if _, err := os.Stat(a.config.JournalPath); os.IsNotExist(err) {
		a.log.Info(ctx, "journal file not found, starting a new journal", "path", a.config.JournalPath)
		password, err := a.newPassword()
		if err != nil {
			return err
		}
		a.state.ChangePassword(password)
		return nil
	}

	password, interactive, err := a.initialPassword()
	if err != nil {
		return err
	}

	for {
		err := a.state.Load(a.config.JournalPath, password, a.enc)
		if err == nil {
			a.log.Info(ctx, "journal loaded", "path", a.config.JournalPath, "entries", len(a.state.Entries))
			return nil
		}
		if !errors.Is(err, journal.ErrIncorrectPassword) {
			return fmt.Errorf("load journal: %w", err)
		}

		// wrong password: a failed attempt touches neither memory nor
		// disk, so just ask again
		if !interactive {
			fmt.Println("The configured password is incorrect.")
			interactive = true
		}
		pw, err := getPassword("Incorrect password, try again", os.Stdout)
		if err != nil {
			return err
		}
		password = string(pw)
		common.WipeByteArray(pw)
	}
}

// initialPassword resolves the journal password from, in order: the -p
// flag, the password file, or an interactive prompt. The second result
// reports whether the password came from the prompt.
func (a *App) initialPassword() (string, bool, error) {
	if a.config.Password != "" {
		return a.config.Password, false, nil
	}

	if a.config.PasswordFile != "" {
		data, err := os.ReadFile(a.config.PasswordFile)
		if err != nil {
			return "", false, fmt.Errorf("read password file: %w", err)
		}
		return strings.TrimSpace(string(data)), false, nil
	}

	pw, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return "", false, err
	}
	defer common.WipeByteArray(pw)
	return string(pw), true, nil
}

// newPassword prompts for a new password twice, repeating until both
// entries match.
func (a *App) newPassword() (string, error) {
	for {
		first, err := getPassword("New password", os.Stdout)
		if err != nil {
			return "", err
		}
		second, err := getPassword("Repeat password", os.Stdout)
		if err != nil {
			common.WipeByteArray(first)
			return "", err
		}

		match := string(first) == string(second)
		password := string(first)
		common.WipeByteArray(first)
		common.WipeByteArray(second)

		if match {
			return password, nil
		}
		fmt.Println("Passwords do not match, try again.")
	}
}
