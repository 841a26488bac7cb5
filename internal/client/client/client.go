package client

import (
	"context"

	"github.com/dmitrijs2005/employwise/internal/client/models"
)

// Client is the remote user-management API.
type Client interface {
	Login(ctx context.Context, email, password string) (string, error)
	ListUsers(ctx context.Context, page int) (*models.Page, error)
	UpdateUser(ctx context.Context, id int, upd models.UserUpdate) (*models.UpdateConfirmation, error)
	DeleteUser(ctx context.Context, id int) error
}

// TokenSource yields the bearer token to attach, or "" for none.
type TokenSource interface {
	Token() string
}
