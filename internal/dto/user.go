package dto

import (
	"time"

	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterUserRequest defines the data needed to create a new user.
type RegisterUserRequest struct {
	Username       string           `json:"username" binding:"required,min=3,max=150"`
	Password       string           `json:"password" binding:"required,password"`
	Email          string           `json:"email" binding:"omitempty,email"`
	FirstName      string           `json:"firstName" binding:"max=150"`
	LastName       string           `json:"lastName" binding:"max=150"`
	DateOfBirth    *time.Time       `json:"dateOfBirth"`
	InitialBalance *decimal.Decimal `json:"initialBalance"`
}

// LoginRequest holds the credentials for a login attempt.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Email          *string          `json:"email" binding:"omitempty,email"`
	FirstName      *string          `json:"firstName" binding:"omitempty,max=150"`
	LastName       *string          `json:"lastName" binding:"omitempty,max=150"`
	DateOfBirth    *time.Time       `json:"dateOfBirth"`
	InitialBalance *decimal.Decimal `json:"initialBalance"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID         string     `json:"userID"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty"`
	InitialBalance string     `json:"initialBalance"`
	CreatedAt      time.Time  `json:"createdAt"`
	LastUpdatedAt  time.Time  `json:"lastUpdatedAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:         u.UserID,
		Username:       u.Username,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		DateOfBirth:    u.DateOfBirth,
		InitialBalance: u.InitialBalance.StringFixed(domain.UserBalancePrecision),
		CreatedAt:      u.CreatedAt,
		LastUpdatedAt:  u.LastUpdatedAt,
	}
}
