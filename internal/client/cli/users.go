package cli

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/dmitrijs2005/employwise/internal/client/models"
	"github.com/dmitrijs2005/employwise/internal/client/state"
)

var errInvalidEmail = errors.New("invalid email address")

// List shows the loaded page, fetching the first page when nothing has been
// loaded yet.
func (a *App) List(ctx context.Context) error {
	if a.users.Status() == state.StatusIdle {
		return a.goToPage(ctx, 1)
	}
	a.show()
	return nil
}

// Refresh re-fetches the current page.
func (a *App) Refresh(ctx context.Context) error {
	return a.goToPage(ctx, a.users.Snapshot().PageNumber)
}

func (a *App) Next(ctx context.Context) error {
	v := a.users.Snapshot()
	target := state.ClampPage(v.PageNumber+1, v.TotalPages)
	if target == v.PageNumber && a.users.Status() != state.StatusIdle {
		fmt.Fprintln(a.out, "Already on the last page")
		return nil
	}
	return a.goToPage(ctx, target)
}

func (a *App) Prev(ctx context.Context) error {
	v := a.users.Snapshot()
	target := state.ClampPage(v.PageNumber-1, v.TotalPages)
	if target == v.PageNumber && a.users.Status() != state.StatusIdle {
		fmt.Fprintln(a.out, "Already on the first page")
		return nil
	}
	return a.goToPage(ctx, target)
}

// Page jumps to page n, clamped to the known page range. Nothing is known
// about the range before the first fetch, so page 1 is loaded first.
func (a *App) Page(ctx context.Context, n int) error {
	if a.users.Status() == state.StatusIdle {
		if err := a.goToPage(ctx, 1); err != nil {
			return err
		}
		if n == 1 {
			return nil
		}
	}

	total := a.users.Snapshot().TotalPages
	target := state.ClampPage(n, total)
	if target != n {
		fmt.Fprintf(a.out, "Page %d is out of range (1-%d), showing page %d\n", n, total, target)
	}
	return a.goToPage(ctx, target)
}

// Search narrows the displayed page to users matching term. An empty term
// clears the filter. The filter survives page changes.
func (a *App) Search(ctx context.Context, term string) error {
	a.mu.Lock()
	a.searchTerm = term
	a.mu.Unlock()

	if a.users.Status() == state.StatusIdle {
		return a.goToPage(ctx, 1)
	}
	a.show()
	return nil
}

// Edit prompts for each editable field of user id. Pressing Enter keeps the
// current value; only changed fields are sent.
func (a *App) Edit(ctx context.Context, id int) error {
	u, ok := a.users.Lookup(id)
	if !ok {
		fmt.Fprintf(a.out, "User %d is not on the current page\n", id)
		return state.ErrUserNotInPage
	}

	first, err := GetTextWithDefault(a.reader, "First name", u.FirstName, a.out)
	if err != nil {
		return err
	}
	last, err := GetTextWithDefault(a.reader, "Last name", u.LastName, a.out)
	if err != nil {
		return err
	}
	email, err := GetTextWithDefault(a.reader, "Email", u.Email, a.out)
	if err != nil {
		return err
	}

	upd, err := buildUpdate(u, first, last, email)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	if upd.IsEmpty() {
		fmt.Fprintln(a.out, "Nothing to update")
		return nil
	}

	if err := a.users.UpdateUser(ctx, id, upd); err != nil {
		return err
	}
	a.show()
	return nil
}

// Delete removes user id from the server and from the displayed page.
func (a *App) Delete(ctx context.Context, id int) error {
	if err := a.users.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, state.ErrUserNotInPage) {
			fmt.Fprintf(a.out, "User %d is not on the current page\n", id)
		}
		return err
	}
	a.show()
	return nil
}

// Status prints the session and collection state.
func (a *App) Status(ctx context.Context) error {
	v := a.users.Snapshot()

	email := a.session.Email()
	a.mu.Lock()
	term := a.searchTerm
	a.mu.Unlock()

	if a.isLoggedIn() {
		if email == "" {
			email = "restored session"
		}
		fmt.Fprintf(a.out, "Logged in: %s\n", email)
	} else {
		fmt.Fprintln(a.out, "Logged in: no")
	}
	fmt.Fprintf(a.out, "State: %s, page %d of %d, %d users loaded\n", a.users.Status(), v.PageNumber, v.TotalPages, len(v.Items))
	if term != "" {
		fmt.Fprintf(a.out, "Search: %q\n", term)
	}
	return nil
}

func (a *App) goToPage(ctx context.Context, page int) error {
	fmt.Fprintln(a.out, "Loading...")

	err := a.users.FetchPage(ctx, page)
	if errors.Is(err, state.ErrSuperseded) {
		return nil
	}
	if err != nil {
		return err
	}
	a.show()
	return nil
}

func (a *App) show() {
	a.mu.Lock()
	term := a.searchTerm
	a.mu.Unlock()

	a.renderPage(a.users.Filter(term), a.users.Snapshot(), term)
}

// buildUpdate keeps only the fields that differ from u.
func buildUpdate(u models.User, first, last, email string) (models.UserUpdate, error) {
	var upd models.UserUpdate

	if first != u.FirstName {
		upd.FirstName = models.Ptr(first)
	}
	if last != u.LastName {
		upd.LastName = models.Ptr(last)
	}
	if email != u.Email {
		addr, err := mail.ParseAddress(email)
		if err != nil || addr.Address != email {
			return upd, errInvalidEmail
		}
		upd.Email = models.Ptr(email)
	}
	return upd, nil
}
