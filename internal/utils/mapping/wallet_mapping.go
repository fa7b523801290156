package mapping

import (
	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/SscSPs/fintrack/internal/models"
)

// ToModelWallet converts a domain Wallet to a model Wallet
func ToModelWallet(d domain.Wallet) models.Wallet {
	return models.Wallet{
		WalletID:       d.WalletID,
		UserID:         d.UserID,
		Name:           d.Name,
		CurrencyCode:   d.CurrencyCode,
		InitialBalance: d.InitialBalance,
		AuditFields:    ToModelAuditFields(d.AuditFields),
		Currency:       ToModelCurrency(d.Currency),
	}
}

// ToDomainWallet converts a model Wallet to a domain Wallet with its currency resolved
func ToDomainWallet(m models.Wallet) domain.Wallet {
	return domain.Wallet{
		WalletID:       m.WalletID,
		UserID:         m.UserID,
		Name:           m.Name,
		CurrencyCode:   m.CurrencyCode,
		Currency:       ToDomainCurrency(m.Currency),
		InitialBalance: m.InitialBalance,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWalletSlice converts a slice of model Wallets to a slice of domain Wallets
func ToDomainWalletSlice(ms []models.Wallet) []domain.Wallet {
	ds := make([]domain.Wallet, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWallet(m)
	}
	return ds
}
