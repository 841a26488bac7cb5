// Package users implements the user directory of the development API
// server: storage (in-memory and PostgreSQL), login and the paginated
// listing, update and delete operations.
package users

import (
	"context"
)

// Repository returns common.ErrorNotFound for unknown ids or emails and
// common.ErrorAlreadyExists for a duplicate email.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int) (*User, error)
	List(ctx context.Context, offset, limit int) ([]User, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, id int, patch Patch) (*User, error)
	Delete(ctx context.Context, id int) error
}
