package services

import (
	"context"
	"time"

	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/SscSPs/fintrack/internal/dto"
)

// AuthSvc defines registration and credential exchange.
type AuthSvc interface {
	// Register creates a new user with a hashed password.
	Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// Login verifies credentials and returns a signed access token and its expiry.
	Login(ctx context.Context, req dto.LoginRequest) (string, time.Time, error)
}
