package repositories

import (
	"context"

	"github.com/SscSPs/fintrack/internal/core/domain"
)

// WalletReader defines read operations for wallet data.
// Returned wallets always carry their resolved Currency.
type WalletReader interface {
	// FindWalletByID retrieves a wallet by its ID.
	FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error)

	// FindWalletByUserAndCurrency retrieves the wallet a user holds in a currency.
	FindWalletByUserAndCurrency(ctx context.Context, userID, currencyCode string) (*domain.Wallet, error)

	// ListWalletsByUserID retrieves all wallets owned by a user.
	ListWalletsByUserID(ctx context.Context, userID string) ([]domain.Wallet, error)
}

// WalletWriter defines write operations for wallet data
type WalletWriter interface {
	// SaveWallet persists a new wallet. Returns apperrors.ErrDuplicate when the
	// user already has a wallet in that currency.
	SaveWallet(ctx context.Context, wallet domain.Wallet) error

	// UpdateWallet updates the name and initial balance of a wallet.
	UpdateWallet(ctx context.Context, wallet domain.Wallet) error

	// DeleteWallet removes a wallet and, by cascade, its transactions.
	DeleteWallet(ctx context.Context, walletID string) error
}

// WalletRepositoryFacade combines all wallet-related repository interfaces
type WalletRepositoryFacade interface {
	WalletReader
	WalletWriter
}
