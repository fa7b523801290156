package repositories

import (
	"context"

	"github.com/SscSPs/fintrack/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by their unique username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate if the username is taken.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's profile details.
	UpdateUser(ctx context.Context, user domain.User) error

	// DeleteUser removes a user together with everything the user owns.
	DeleteUser(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
