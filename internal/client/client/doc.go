// Package client contains the client-side building blocks for talking to the
// EmployWise user-management API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): Login,
//     ListUsers, UpdateUser and DeleteUser.
//  2. A concrete REST implementation (see HTTPClient) that attaches the
//     current session token as a bearer header on every call except login,
//     tags each request with an X-Request-ID and maps HTTP failures to
//     sentinel errors.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations) for
//     the CLI, wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Failures can be matched with errors.Is against ErrAuth, ErrNetwork,
// ErrServer and ErrUnauthorized. Non-2xx responses are reported as
// *StatusError, which carries the status code and the server message.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation; a cancelled call is reported as
// ErrNetwork wrapping the context error.
package client
