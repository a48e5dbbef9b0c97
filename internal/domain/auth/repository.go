package auth

import (
	"context"
)

// Repository persists user accounts.
type Repository interface {
	Create(ctx context.Context, u *User) error

	// FindByUsername returns the user with the exact username,
	// or a not-found error.
	FindByUsername(ctx context.Context, username string) (*User, error)
}
