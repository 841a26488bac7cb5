package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/dmitrijs2005/employwise/internal/client/client"
	"github.com/dmitrijs2005/employwise/internal/client/config"
	"github.com/dmitrijs2005/employwise/internal/client/models"
	"github.com/dmitrijs2005/employwise/internal/client/notify"
	"github.com/dmitrijs2005/employwise/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/employwise/internal/client/services"
	"github.com/dmitrijs2005/employwise/internal/client/session"
	"github.com/dmitrijs2005/employwise/internal/client/state"
	"github.com/dmitrijs2005/employwise/internal/filex"
	"github.com/dmitrijs2005/employwise/internal/logging"
)

// usersState is the part of state.UserCollection the App drives.
type usersState interface {
	FetchPage(ctx context.Context, page int) error
	CancelFetch()
	UpdateUser(ctx context.Context, id int, upd models.UserUpdate) error
	DeleteUser(ctx context.Context, id int) error
	Filter(term string) []models.User
	Lookup(id int) (models.User, bool)
	Snapshot() state.PageView
	Status() state.Status
	Reset()
}

type App struct {
	config   *config.Config
	db       *sql.DB
	session  *session.Store
	auth     services.AuthService
	users    usersState
	notifier notify.Notifier
	logger   logging.Logger

	reader *bufio.Reader
	out    io.Writer

	mu         sync.Mutex
	searchTerm string

	unsubscribe func()
	closeOnce   sync.Once
}

// NewApp opens the local database, restores a saved session and wires the
// API client, auth service and user collection.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if _, err := filex.EnsureParentDir(c.DBPath); err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DBPath, "error", err)
		return nil, err
	}

	store := session.NewStore(metadata.NewSQLiteRepository(db), logger)
	if err := store.Load(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	printer := notify.NewPrinter(os.Stdout, logger)
	api := client.NewHTTPClient(c.BaseURL, store, logger, c.RequestTimeout)

	a := newApp(
		store,
		services.NewAuthService(api, store, printer, logger),
		state.NewUserCollection(api, printer, logger),
		printer,
		logger,
		os.Stdin,
		os.Stdout,
	)
	a.config = c
	a.db = db
	return a, nil
}

func newApp(store *session.Store, auth services.AuthService, users usersState, notifier notify.Notifier, logger logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		session:  store,
		auth:     auth,
		users:    users,
		notifier: notifier,
		logger:   logger,
		reader:   bufio.NewReader(in),
		out:      out,
	}

	// logging out from anywhere drops the loaded page and the search term
	a.unsubscribe = store.Subscribe(func(authenticated bool) {
		if authenticated {
			return
		}
		a.users.Reset()
		a.mu.Lock()
		a.searchTerm = ""
		a.mu.Unlock()
	})
	return a
}

// Run starts the REPL and blocks until the operator exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to EmployWise admin (type 'help' for commands)")
	if a.isLoggedIn() {
		a.notifier.Notify(ctx, notify.Notification{Level: notify.LevelInfo, Message: "Session restored"})
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

// Interrupt aborts a page fetch that is still in flight.
func (a *App) Interrupt() {
	a.users.CancelFetch()
}

// Close releases the local database. It is safe to call more than once and
// from several goroutines.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		if a.unsubscribe != nil {
			a.unsubscribe()
		}
		if a.db != nil {
			if err := a.db.Close(); err != nil {
				a.logger.Warn(context.Background(), "closing database", "error", err)
			}
		}
	})
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsLoggedIn()
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return "(logged out)"
	}

	email := a.session.Email()
	a.mu.Lock()
	term := a.searchTerm
	a.mu.Unlock()

	s := ""
	if email != "" {
		s = email + " "
	}
	if a.users.Status() != state.StatusIdle {
		v := a.users.Snapshot()
		s += fmt.Sprintf("page %d/%d", v.PageNumber, v.TotalPages)
	}
	if term != "" {
		s += fmt.Sprintf(" search=%q", term)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return "(" + s + ")"
}
