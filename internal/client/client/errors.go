package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAuth is returned by Login when the credentials are rejected.
	ErrAuth = errors.New("invalid credentials")
	// ErrNetwork means the request never produced an HTTP response.
	ErrNetwork = errors.New("network error")
	// ErrServer is any non-success response outside of login.
	ErrServer = errors.New("server error")
	// ErrUnauthorized additionally marks 401/403 responses.
	ErrUnauthorized = errors.New("unauthorized")
)

// StatusError describes a non-2xx response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string

	kinds []error
}

func newStatusError(method, path string, code int, message string, kind error) *StatusError {
	kinds := []error{kind}
	if kind != ErrAuth && (code == http.StatusUnauthorized || code == http.StatusForbidden) {
		kinds = append(kinds, ErrUnauthorized)
	}
	return &StatusError{Method: method, Path: path, StatusCode: code, Message: message, kinds: kinds}
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
}

func (e *StatusError) Unwrap() []error {
	return e.kinds
}
