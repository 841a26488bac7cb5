// Package state keeps the in-memory view of the user collection: the
// currently loaded page, its position in the remote pagination and the
// loading flag, together with the transitions driven by fetch, update and
// delete outcomes.
package state

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/employwise/internal/client/models"
	"github.com/dmitrijs2005/employwise/internal/client/notify"
	"github.com/dmitrijs2005/employwise/internal/common"
	"github.com/dmitrijs2005/employwise/internal/logging"
)

var (
	ErrInvalidPage    = errors.New("page must be >= 1")
	ErrSuperseded     = errors.New("fetch superseded by a newer request")
	ErrUserNotInPage  = errors.New("user is not on the current page")
	ErrNothingToApply = errors.New("no fields to update")
)

// API is the part of the remote client the collection drives.
type API interface {
	ListUsers(ctx context.Context, page int) (*models.Page, error)
	UpdateUser(ctx context.Context, id int, upd models.UserUpdate) (*models.UpdateConfirmation, error)
	DeleteUser(ctx context.Context, id int) error
}

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// PageView is a copy of the visible page.
type PageView struct {
	Items      []models.User
	PageNumber int
	TotalPages int
	IsLoading  bool
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, notify.Notification) {}

// UserCollection is safe for concurrent use. Fetches are ticketed: only the
// most recently started fetch may change the view, and starting a fetch
// cancels the one still in flight.
type UserCollection struct {
	api      API
	notifier notify.Notifier
	logger   logging.Logger

	mu         sync.Mutex
	view       PageView
	status     Status
	prevStatus Status
	seq        uint64
	cancel     context.CancelFunc
}

func NewUserCollection(api API, notifier notify.Notifier, logger logging.Logger) *UserCollection {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &UserCollection{
		api:      api,
		notifier: notifier,
		logger:   logger,
		view:     emptyView(),
	}
}

func emptyView() PageView {
	return PageView{PageNumber: 1, TotalPages: 1}
}

// FetchPage loads page from the API and replaces the view with it. A fetch
// overtaken by a newer one returns ErrSuperseded and leaves the view alone.
// On failure the previous items stay visible.
func (c *UserCollection) FetchPage(ctx context.Context, page int) error {
	if page < 1 {
		return ErrInvalidPage
	}

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.seq++
	ticket := c.seq
	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	if c.status != StatusLoading {
		c.prevStatus = c.status
	}
	c.status = StatusLoading
	c.view.IsLoading = true
	c.mu.Unlock()
	defer cancel()

	log := c.logger.With("page", page, "ticket", ticket)
	log.Debug(ctx, "fetching users")

	resp, err := c.api.ListUsers(fetchCtx, page)

	c.mu.Lock()
	if ticket != c.seq {
		c.mu.Unlock()
		log.Debug(ctx, "discarding superseded response")
		return ErrSuperseded
	}
	c.cancel = nil
	c.view.IsLoading = false

	if err != nil {
		if errors.Is(err, context.Canceled) {
			c.status = c.prevStatus
			c.mu.Unlock()
			log.Info(ctx, "fetch cancelled")
			return fmt.Errorf("fetch page %d: %w", page, err)
		}
		c.status = StatusFailed
		c.mu.Unlock()
		log.Error(ctx, "fetch failed", "error", err)
		c.notifier.Notify(ctx, notify.Failure(notify.OpFetch, err))
		return fmt.Errorf("fetch page %d: %w", page, err)
	}

	c.view = PageView{
		Items:      slices.Clone(resp.Data),
		PageNumber: page,
		TotalPages: max(1, resp.TotalPages),
	}
	c.status = StatusLoaded
	c.mu.Unlock()

	log.Debug(ctx, "users loaded", "count", len(resp.Data), "total_pages", resp.TotalPages)
	return nil
}

// CancelFetch aborts the in-flight fetch, if any.
func (c *UserCollection) CancelFetch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
	}
}

// UpdateUser sends upd for a user on the current page and, on success,
// replaces only the provided fields of the local entry.
func (c *UserCollection) UpdateUser(ctx context.Context, id int, upd models.UserUpdate) error {
	if upd.IsEmpty() {
		return ErrNothingToApply
	}
	if !c.contains(id) {
		return ErrUserNotInPage
	}

	if _, err := c.api.UpdateUser(ctx, id, upd); err != nil {
		c.logger.Error(ctx, "update failed", "id", id, "error", err)
		c.notifier.Notify(ctx, notify.Failure(notify.OpUpdate, err))
		return fmt.Errorf("update user %d: %w", id, err)
	}

	c.mu.Lock()
	if i := c.indexOf(id); i >= 0 {
		c.view.Items[i] = upd.Apply(c.view.Items[i])
	}
	c.mu.Unlock()

	c.notifier.Notify(ctx, notify.Success(notify.OpUpdate))
	return nil
}

// DeleteUser removes a user on the current page remotely and then locally.
// Page totals are left as they are until the next fetch.
func (c *UserCollection) DeleteUser(ctx context.Context, id int) error {
	if !c.contains(id) {
		return ErrUserNotInPage
	}

	if err := c.api.DeleteUser(ctx, id); err != nil {
		c.logger.Error(ctx, "delete failed", "id", id, "error", err)
		c.notifier.Notify(ctx, notify.Failure(notify.OpDelete, err))
		return fmt.Errorf("delete user %d: %w", id, err)
	}

	c.mu.Lock()
	c.view.Items = slices.DeleteFunc(c.view.Items, func(u models.User) bool { return u.ID == id })
	c.mu.Unlock()

	c.notifier.Notify(ctx, notify.Success(notify.OpDelete))
	return nil
}

// Filter returns the loaded users whose first name, last name or email
// contains term, ignoring case. An empty term returns every loaded user.
func (c *UserCollection) Filter(term string) []models.User {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.User, 0, len(c.view.Items))
	for _, u := range c.view.Items {
		if term == "" ||
			common.ContainsFold(u.FirstName, term) ||
			common.ContainsFold(u.LastName, term) ||
			common.ContainsFold(u.Email, term) {
			out = append(out, u)
		}
	}
	return out
}

// Lookup returns the loaded user with id.
func (c *UserCollection) Lookup(id int) (models.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(id); i >= 0 {
		return c.view.Items[i], true
	}
	return models.User{}, false
}

func (c *UserCollection) Snapshot() PageView {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := c.view
	v.Items = slices.Clone(c.view.Items)
	return v
}

func (c *UserCollection) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Reset drops the loaded page and discards any fetch still in flight.
func (c *UserCollection) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.seq++
	c.view = emptyView()
	c.status = StatusIdle
	c.prevStatus = StatusIdle
}

func (c *UserCollection) contains(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.indexOf(id) >= 0
}

// indexOf expects c.mu to be held.
func (c *UserCollection) indexOf(id int) int {
	return slices.IndexFunc(c.view.Items, func(u models.User) bool { return u.ID == id })
}

// ClampPage bounds a requested page to [1, totalPages].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	return min(max(page, 1), totalPages)
}
