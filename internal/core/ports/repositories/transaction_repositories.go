package repositories

import (
	"context"

	"github.com/SscSPs/fintrack/internal/core/domain"
)

// TransactionReader defines read operations for transaction data.
// Returned transactions always carry the type of their category.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its ID.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByWalletID retrieves every transaction recorded against a wallet.
	// This is the full ledger the balance engine folds over.
	ListTransactionsByWalletID(ctx context.Context, walletID string) ([]domain.Transaction, error)

	// ListTransactionsByUserID retrieves a page of a user's transactions, newest first,
	// using token-based pagination. It returns the transactions and a token for the next page.
	ListTransactionsByUserID(ctx context.Context, userID string, walletID *string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	SaveTransaction(ctx context.Context, transaction domain.Transaction) error
	UpdateTransaction(ctx context.Context, transaction domain.Transaction) error
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
