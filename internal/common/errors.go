package common

import "errors"

var (
	// repository specific errors
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// service specific errors
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	ErrInvalidToken           = errors.New("invalid token")
	ErrorInvalidLoginPassword = errors.New("invalid login/password")
	ErrTokenExpired           = errors.New("token expired")
)
