package services

import (
	"context"

	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/SscSPs/fintrack/internal/dto"
)

// WalletReaderSvc defines read operations for wallet data
type WalletReaderSvc interface {
	// GetWalletByID retrieves a wallet owned by userID.
	GetWalletByID(ctx context.Context, userID string, walletID string) (*domain.Wallet, error)

	// ListWallets retrieves all wallets owned by userID.
	ListWallets(ctx context.Context, userID string) ([]domain.Wallet, error)
}

// WalletWriterSvc defines write operations for wallet data
type WalletWriterSvc interface {
	CreateWallet(ctx context.Context, userID string, req dto.CreateWalletRequest) (*domain.Wallet, error)
	UpdateWallet(ctx context.Context, userID string, walletID string, req dto.UpdateWalletRequest) (*domain.Wallet, error)
	DeleteWallet(ctx context.Context, userID string, walletID string) error
}

// WalletCalculatorSvc defines balance calculations for a single wallet
type WalletCalculatorSvc interface {
	// GetWalletBalance computes the native and USD balances of a wallet from its ledger.
	GetWalletBalance(ctx context.Context, userID string, walletID string) (*domain.WalletBalance, error)
}

// WalletSvcFacade combines all wallet-related service interfaces
type WalletSvcFacade interface {
	WalletReaderSvc
	WalletWriterSvc
	WalletCalculatorSvc
}
