// Package common contains shared constants and sentinel errors used by both
// the EmployWise admin client and the development API server.
package common

const (
	// AuthorizationHeader carries the bearer token on protected requests.
	AuthorizationHeader = "Authorization"
	// BearerPrefix precedes the token inside AuthorizationHeader.
	BearerPrefix = "Bearer "
	// RequestIDHeader correlates client and server log lines for one call.
	RequestIDHeader = "X-Request-ID"
	// TokenStorageKey is the fixed local storage key of the session token.
	TokenStorageKey = "token"
	// EmailStorageKey keeps the address the session was opened with.
	EmailStorageKey = "email"
)
