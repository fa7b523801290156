package domain

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Currency is static reference data: 1 unit of the currency equals ValueInUSD US dollars.
// Rates are administered out of band and are never refreshed by the application.
type Currency struct {
	CurrencyCode string          `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol       string          `json:"symbol"`       // e.g., "$"
	Name         string          `json:"name"`         // e.g., "US Dollar"
	ValueInUSD   decimal.Decimal `json:"valueInUSD"`
	AuditFields
}

// IsValidCurrencyCode reports whether code is three uppercase ASCII letters.
func IsValidCurrencyCode(code string) bool {
	return currencyCodePattern.MatchString(code)
}

// Validate checks the invariants enforced at currency-admin time.
func (c Currency) Validate() error {
	if !IsValidCurrencyCode(c.CurrencyCode) {
		return fmt.Errorf("currency code %q must be 3 uppercase letters", c.CurrencyCode)
	}
	if !c.ValueInUSD.IsPositive() {
		return fmt.Errorf("value in USD must be positive")
	}
	if !FitsPrecision(c.ValueInUSD, RatePrecision) {
		return fmt.Errorf("value in USD must have at most %d fractional digits", RatePrecision)
	}
	return nil
}
