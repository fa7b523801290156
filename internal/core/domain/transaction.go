package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a categorized income or expense recorded against a wallet.
// Amount is always positive; the category type carries the sign.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (e.g., UUID)
	UserID        string          `json:"userID"`
	WalletID      string          `json:"walletID"`
	CategoryID    string          `json:"categoryID"`
	CategoryType  CategoryType    `json:"categoryType"` // resolved from the category
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	AuditFields
}

// Validate checks the write-time invariants of a transaction.
func (t Transaction) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("title is required")
	}
	if len(t.Title) > 100 {
		return fmt.Errorf("title must be at most 100 characters")
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}
	if !FitsPrecision(t.Amount, TransactionAmountPrecision) {
		return fmt.Errorf("amount must have at most %d fractional digits", TransactionAmountPrecision)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	return nil
}
