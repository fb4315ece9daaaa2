package cli

import (
	"context"
	"fmt"
)

// ChangePassword asks for a new password and applies it to the journal.
// The file on disk is rewritten under the new password only when the
// session ends.
func (a *App) ChangePassword(ctx context.Context) error {
	password, err := a.newPassword()
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if password == a.state.Password {
		fmt.Println("The password is unchanged.")
		return nil
	}

	a.state.ChangePassword(password)
	a.dirty = true
	fmt.Println("Password changed.")
	return nil
}
