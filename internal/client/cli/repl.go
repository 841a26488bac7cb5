package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Refresh(ctx context.Context) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Page(ctx context.Context, n int) error
	Search(ctx context.Context, term string) error
	Edit(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
	Status(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: login, status, help, exit"
	helpLoggedIn  = "Available commands: (l)ist, refresh, (n)ext, (p)rev, page <n>, search [term], edit <id>, delete <id>, status, logout, exit"
)

// protected lists the commands that need a session.
var protected = map[string]bool{
	"l": true, "list": true, "refresh": true,
	"n": true, "next": true, "p": true, "prev": true, "page": true,
	"search": true, "edit": true, "delete": true,
}

// runREPL starts a simple read–eval–print loop for the EmployWise CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF, on context
// cancellation or when the user types "exit" or "quit".
//
// Prompts issued by the commands read from the same reader, so a script
// piped to stdin can interleave commands with their answers.
//
// A protected command issued without a session sends the user through the
// login prompt first and runs the command only if the login succeeded.
//
// Any errors returned by command handlers are ignored here; handlers report
// their own failures. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("ew %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if protected[cmd] && !a.isLoggedIn() {
			printlnFn("Please log in first.")
			if err := a.Login(ctx); err != nil || !a.isLoggedIn() {
				continue
			}
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in; use logout first.")
				continue
			}
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "n", "next":
			_ = a.Next(ctx)

		case "p", "prev":
			_ = a.Prev(ctx)

		case "page":
			n, ok := intArg(args)
			if !ok {
				printlnFn("Usage: page <n>")
				continue
			}
			_ = a.Page(ctx, n)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "edit":
			id, ok := intArg(args)
			if !ok {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, id)

		case "delete":
			id, ok := intArg(args)
			if !ok {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, id)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func intArg(args []string) (int, bool) {
	if len(args) != 1 {
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, false
	}
	return n, true
}
