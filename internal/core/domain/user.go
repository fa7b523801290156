package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a user of the application in the domain.
type User struct {
	UserID       string     `json:"userID"` // Primary Key (e.g., UUID)
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty"`
	PasswordHash string     `json:"-"`
	// InitialBalance predates wallets. It is kept as profile data and is not
	// part of any balance computation; wallets carry their own starting balance.
	InitialBalance decimal.Decimal `json:"initialBalance"`
	AuditFields
}
