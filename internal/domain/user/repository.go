package user

import (
	"context"
)

// UserRepository defines data access methods for portal users.
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*User, error)

	// UpdatePassword replaces the stored password hash
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
