package models

import "github.com/shopspring/decimal"

// Wallet is the row shape of the wallets table joined with its currency.
type Wallet struct {
	WalletID       string          `db:"wallet_id"`
	UserID         string          `db:"user_id"`
	Name           string          `db:"name"`
	CurrencyCode   string          `db:"currency_code"`
	InitialBalance decimal.Decimal `db:"initial_balance"`
	AuditFields

	// Joined from currencies
	Currency Currency `db:"-"`
}
