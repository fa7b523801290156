package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target. Goals are informational and never affect balances.
type Goal struct {
	GoalID      string          `json:"goalID"`
	UserID      string          `json:"userID"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	AuditFields
}

func (g Goal) Validate() error {
	if g.Title == "" {
		return fmt.Errorf("title is required")
	}
	if len(g.Title) > 255 {
		return fmt.Errorf("title must be at most 255 characters")
	}
	if !g.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}
	if !FitsPrecision(g.Amount, TransactionAmountPrecision) {
		return fmt.Errorf("amount must have at most %d fractional digits", TransactionAmountPrecision)
	}
	if g.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	return nil
}
