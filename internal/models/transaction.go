package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a ledger entry against one wallet, filed under one category.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	UserID        string          `db:"user_id"`
	WalletID      string          `db:"wallet_id"`
	CategoryID    string          `db:"category_id"`
	Title         string          `db:"title"`
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"` // always positive
	Date          time.Time       `db:"date"`
	AuditFields

	// Joined from categories; decides the sign of Amount.
	CategoryType string `db:"category_type"`
}
