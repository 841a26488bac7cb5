// Package cli provides the interactive EmployWise admin command-line client.
//
// It wires configuration, local storage, the REST API client, the session
// store and the user collection state into a REPL. Typical flow: restore a
// saved session (or log in), list a page of users, move between pages,
// search the loaded page, edit or delete users, log out.
//
// Commands that need a session (list, next, edit, ...) first send the
// operator through the login prompt when no token is held, and resume once
// the login succeeds.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
