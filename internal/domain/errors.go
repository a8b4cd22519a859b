package domain

import "errors"

var (
	// ErrNoCart indicates an operation that needs an existing remote cart was
	// attempted before one was created.
	ErrNoCart = errors.New("no cart")
	// ErrLineNotFound indicates the referenced cart line does not exist locally.
	ErrLineNotFound = errors.New("cart line not found")
)
