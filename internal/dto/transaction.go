package dto

import (
	"time"

	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Date must be RFC 3339 with an explicit offset, e.g. 2024-03-01T10:00:00-03:00.
type CreateTransactionRequest struct {
	WalletID    string           `json:"walletID" binding:"required"`
	CategoryID  string           `json:"categoryID" binding:"required"`
	Title       string           `json:"title" binding:"required,max=100"`
	Description string           `json:"description"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Date        string           `json:"date" binding:"required"`
}

// UpdateTransactionRequest defines the mutable fields of a transaction.
type UpdateTransactionRequest struct {
	WalletID    *string          `json:"walletID"`
	CategoryID  *string          `json:"categoryID"`
	Title       *string          `json:"title" binding:"omitempty,max=100"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *string          `json:"date"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	WalletID  string `form:"walletID"`
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string    `json:"transactionID"`
	WalletID      string    `json:"walletID"`
	CategoryID    string    `json:"categoryID"`
	CategoryType  string    `json:"categoryType"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Amount        string    `json:"amount"`
	Date          time.Time `json:"date"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		WalletID:      txn.WalletID,
		CategoryID:    txn.CategoryID,
		CategoryType:  string(txn.CategoryType),
		Title:         txn.Title,
		Description:   txn.Description,
		Amount:        txn.Amount.StringFixed(domain.TransactionAmountPrecision),
		Date:          txn.Date,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
