// Package models defines the user records exchanged with the remote
// user-management API and the page envelope they arrive in.
package models

import "strings"

// User is one remote user record. ID is assigned by the server and is
// never changed by the client.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar,omitempty"`
}

// FullName joins first and last name for display.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// UserUpdate is a partial edit. Nil fields are left out of the request body
// and untouched locally.
type UserUpdate struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil
}

// Apply returns a copy of user with the provided fields replaced.
func (u UserUpdate) Apply(user User) User {
	if u.FirstName != nil {
		user.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		user.LastName = *u.LastName
	}
	if u.Email != nil {
		user.Email = *u.Email
	}
	return user
}

// Page is the list envelope returned by GET /users.
type Page struct {
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
	Data       []User `json:"data"`
}

// UpdateConfirmation echoes the accepted fields of a PUT /users/{id}.
type UpdateConfirmation struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	UpdatedAt string `json:"updatedAt"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the login response body.
type TokenResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the body the API returns alongside a failing status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Ptr is a small helper for building UserUpdate literals.
func Ptr[T any](v T) *T {
	return &v
}
