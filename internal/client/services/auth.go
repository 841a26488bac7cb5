// Package services contains application services for the EmployWise admin
// client. This file defines the authentication service: login against the
// remote API, session persistence and logout.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/employwise/internal/client/notify"
	"github.com/dmitrijs2005/employwise/internal/common"
	"github.com/dmitrijs2005/employwise/internal/logging"
)

var ErrMissingCredentials = errors.New("email and password are required")

// Authenticator is the login half of the remote API.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// SessionStore is where a granted token is kept, along with the email it
// was granted for.
type SessionStore interface {
	SetSession(ctx context.Context, token, email string) error
	ClearToken(ctx context.Context) error
	HasToken() bool
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: exchange credentials for a token and store it; the session is
//     left untouched when the exchange fails.
//   - Logout: forget the token locally; nothing is sent to the server.
//   - IsLoggedIn: report whether a token is present.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) error
	Logout(ctx context.Context) error
	IsLoggedIn() bool
}

type authService struct {
	api      Authenticator
	session  SessionStore
	notifier notify.Notifier
	logger   logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API, session
// and notification sink.
func NewAuthService(api Authenticator, session SessionStore, notifier notify.Notifier, logger logging.Logger) AuthService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &authService{api: api, session: session, notifier: notifier, logger: logger}
}

// Login wipes password before returning.
func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	defer common.WipeByteArray(password)

	if email == "" || len(password) == 0 {
		return ErrMissingCredentials
	}

	token, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		a.logger.Warn(ctx, "login failed", "email", email, "error", err)
		a.notify(ctx, notify.Failure(notify.OpLogin, err))
		return fmt.Errorf("login error: %w", err)
	}

	if err := a.session.SetSession(ctx, token, email); err != nil {
		a.logger.Error(ctx, "session save failed", "error", err)
		a.notify(ctx, notify.Failure(notify.OpLogin, err))
		return fmt.Errorf("session saving error: %w", err)
	}

	a.logger.Info(ctx, "logged in", "email", email)
	a.notify(ctx, notify.Success(notify.OpLogin))
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.session.ClearToken(ctx); err != nil {
		a.logger.Error(ctx, "logout failed", "error", err)
		a.notify(ctx, notify.Failure(notify.OpLogout, err))
		return err
	}
	a.notify(ctx, notify.Success(notify.OpLogout))
	return nil
}

func (a *authService) IsLoggedIn() bool {
	return a.session.HasToken()
}

func (a *authService) notify(ctx context.Context, n notify.Notification) {
	if a.notifier != nil {
		a.notifier.Notify(ctx, n)
	}
}
