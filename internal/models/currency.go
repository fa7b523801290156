package models

import "github.com/shopspring/decimal"

// Currency represents a supported currency and its fixed USD rate.
type Currency struct {
	CurrencyCode string          `db:"currency_code"` // Primary Key (e.g., "USD")
	Symbol       string          `db:"symbol"`
	Name         string          `db:"name"`
	ValueInUSD   decimal.Decimal `db:"value_in_usd"`
	AuditFields
}
