package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Wallet is a per-currency sub-account of a user. A user holds at most one
// wallet per currency.
type Wallet struct {
	WalletID       string          `json:"walletID"`
	UserID         string          `json:"userID"`
	Name           string          `json:"name"`
	CurrencyCode   string          `json:"currencyCode"`
	Currency       Currency        `json:"currency"` // resolved by the repository
	InitialBalance decimal.Decimal `json:"initialBalance"`
	AuditFields
}

// Validate checks the write-time invariants of a wallet.
func (w Wallet) Validate() error {
	if !IsValidCurrencyCode(w.CurrencyCode) {
		return fmt.Errorf("currency code %q must be 3 uppercase letters", w.CurrencyCode)
	}
	if !FitsPrecision(w.InitialBalance, WalletBalancePrecision) {
		return fmt.Errorf("initial balance must have at most %d fractional digits", WalletBalancePrecision)
	}
	return nil
}

// WalletBalance is the derived balance of one wallet.
type WalletBalance struct {
	WalletID     string          `json:"walletID"`
	CurrencyCode string          `json:"currencyCode"`
	ValueInUSD   decimal.Decimal `json:"valueInUSD"`
	TotalBalance decimal.Decimal `json:"totalBalance"` // native currency
	BalanceInUSD decimal.Decimal `json:"balanceInUSD"`
}

// AccountTotal is the USD-equivalent sum over all wallets of a user.
type AccountTotal struct {
	UserID   string          `json:"userID"`
	TotalUSD decimal.Decimal `json:"totalUSD"`
	Wallets  []WalletBalance `json:"wallets"`
}
