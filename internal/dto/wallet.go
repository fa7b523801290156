package dto

import (
	"time"

	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWalletRequest defines the data needed to open a wallet.
type CreateWalletRequest struct {
	Name           string           `json:"name" binding:"max=100"`
	CurrencyCode   string           `json:"currencyCode" binding:"required,currency_code"`
	InitialBalance *decimal.Decimal `json:"initialBalance"`
}

// UpdateWalletRequest defines the mutable fields of a wallet. The currency of a
// wallet cannot change.
type UpdateWalletRequest struct {
	Name           *string          `json:"name" binding:"omitempty,max=100"`
	InitialBalance *decimal.Decimal `json:"initialBalance"`
}

// WalletResponse defines the data returned for a wallet.
type WalletResponse struct {
	WalletID       string           `json:"walletID"`
	Name           string           `json:"name"`
	CurrencyCode   string           `json:"currencyCode"`
	Currency       CurrencyResponse `json:"currency"`
	InitialBalance string           `json:"initialBalance"`
	CreatedAt      time.Time        `json:"createdAt"`
	LastUpdatedAt  time.Time        `json:"lastUpdatedAt"`
}

// WalletBalanceResponse defines the derived balances of a wallet.
type WalletBalanceResponse struct {
	WalletID     string `json:"walletID"`
	CurrencyCode string `json:"currencyCode"`
	ValueInUSD   string `json:"valueInUSD"`
	TotalBalance string `json:"totalBalance"`
	BalanceInUSD string `json:"balanceInUSD"`
}

// AccountTotalResponse defines the USD total over all wallets of the caller.
type AccountTotalResponse struct {
	TotalUSD string                  `json:"totalUSD"`
	Wallets  []WalletBalanceResponse `json:"wallets"`
}

// ToWalletResponse converts a domain.Wallet to WalletResponse DTO
func ToWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		WalletID:       w.WalletID,
		Name:           w.Name,
		CurrencyCode:   w.CurrencyCode,
		Currency:       ToCurrencyResponse(&w.Currency),
		InitialBalance: w.InitialBalance.StringFixed(domain.WalletBalancePrecision),
		CreatedAt:      w.CreatedAt,
		LastUpdatedAt:  w.LastUpdatedAt,
	}
}

// ToListWalletResponse converts a slice of domain.Wallet to WalletResponse DTOs
func ToListWalletResponse(wallets []domain.Wallet) []WalletResponse {
	res := make([]WalletResponse, len(wallets))
	for i := range wallets {
		res[i] = ToWalletResponse(&wallets[i])
	}
	return res
}

// ToWalletBalanceResponse converts a domain.WalletBalance to its DTO.
func ToWalletBalanceResponse(b *domain.WalletBalance) WalletBalanceResponse {
	return WalletBalanceResponse{
		WalletID:     b.WalletID,
		CurrencyCode: b.CurrencyCode,
		ValueInUSD:   b.ValueInUSD.StringFixed(domain.RatePrecision),
		TotalBalance: b.TotalBalance.StringFixed(domain.WalletBalancePrecision),
		BalanceInUSD: b.BalanceInUSD.StringFixed(domain.USDBalancePrecision),
	}
}

// ToAccountTotalResponse converts a domain.AccountTotal to its DTO.
func ToAccountTotalResponse(t *domain.AccountTotal) AccountTotalResponse {
	wallets := make([]WalletBalanceResponse, len(t.Wallets))
	for i := range t.Wallets {
		wallets[i] = ToWalletBalanceResponse(&t.Wallets[i])
	}
	return AccountTotalResponse{
		TotalUSD: t.TotalUSD.StringFixed(domain.USDBalancePrecision),
		Wallets:  wallets,
	}
}
