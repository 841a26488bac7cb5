package cli

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// stdinIsTerminal decides whether the password is read without echo. Piped
// input falls back to a plain line so the client can be scripted.
var stdinIsTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }

// Login prompts for credentials and exchanges them for a session token.
// The password is wiped by the auth service. Failures have already been
// reported to the operator when Login returns.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email (e.g. eve.holt@reqres.in)", a.out)
	if err != nil {
		return err
	}

	var password []byte
	if stdinIsTerminal() {
		password, err = getPassword(a.out)
	} else {
		var s string
		s, err = getSimpleText(a.reader, "Enter password", a.out)
		password = []byte(s)
	}
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, email, password); err != nil {
		a.logger.Debug(ctx, "login attempt rejected", "error", err)
		return err
	}
	return nil
}

// Logout forgets the session. The loaded page is dropped by the session
// subscription installed in newApp.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	return a.auth.Logout(ctx)
}
