// Package notify turns the outcome of user actions into short, transient
// messages for the operator.
package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/employwise/internal/client/client"
	"github.com/dmitrijs2005/employwise/internal/logging"
)

type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

type Notification struct {
	Level   Level
	Message string
}

// Notifier delivers notifications. Implementations must not block for long.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Op names a user action that can succeed or fail.
type Op string

const (
	OpLogin  Op = "login"
	OpFetch  Op = "fetch"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
	OpLogout Op = "logout"
)

var successMessages = map[Op]string{
	OpLogin:  "Login successful!",
	OpUpdate: "User updated successfully",
	OpDelete: "User deleted successfully",
	OpLogout: "Logged out",
}

var failureMessages = map[Op]string{
	OpLogin:  "Invalid credentials. Please try again.",
	OpFetch:  "Failed to fetch users",
	OpUpdate: "Failed to update user",
	OpDelete: "Failed to delete user",
	OpLogout: "Failed to clear session",
}

// Success builds the success notification for op.
func Success(op Op) Notification {
	msg, ok := successMessages[op]
	if !ok {
		msg = string(op) + " done"
	}
	return Notification{Level: LevelSuccess, Message: msg}
}

// Failure builds the failure notification for op. A login that failed for
// lack of connectivity is not reported as bad credentials.
func Failure(op Op, err error) Notification {
	msg, ok := failureMessages[op]
	if !ok {
		msg = string(op) + " failed"
	}
	if op == OpLogin && errors.Is(err, client.ErrNetwork) {
		msg = "Login failed"
	}
	if errors.Is(err, client.ErrNetwork) {
		msg += " (server unreachable)"
	}
	return Notification{Level: LevelError, Message: msg}
}

// Printer writes notifications as single lines to w and mirrors them into
// the debug log.
type Printer struct {
	mu     sync.Mutex
	w      io.Writer
	logger logging.Logger
}

func NewPrinter(w io.Writer, logger logging.Logger) *Printer {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Printer{w: w, logger: logger}
}

func (p *Printer) Notify(ctx context.Context, n Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var prefix string
	switch n.Level {
	case LevelSuccess:
		prefix = "[ok] "
	case LevelError:
		prefix = "[!] "
	default:
		prefix = "[i] "
	}

	fmt.Fprintln(p.w, prefix+n.Message)
	p.logger.Debug(ctx, "notification", "level", n.Level.String(), "message", n.Message)
}

// Recorder keeps every notification; handy for tests and scripted runs.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Notify(ctx context.Context, n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.items...)
}

// Last returns the latest notification or the zero value.
func (r *Recorder) Last() Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}
	}
	return r.items[len(r.items)-1]
}
