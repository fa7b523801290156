package mapping

import (
	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/SscSPs/fintrack/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		WalletID:      d.WalletID,
		CategoryID:    d.CategoryID,
		Title:         d.Title,
		Description:   d.Description,
		Amount:        d.Amount,
		Date:          d.Date,
		AuditFields:   ToModelAuditFields(d.AuditFields),
		CategoryType:  string(d.CategoryType),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		WalletID:      m.WalletID,
		CategoryID:    m.CategoryID,
		CategoryType:  domain.CategoryType(m.CategoryType),
		Title:         m.Title,
		Description:   m.Description,
		Amount:        m.Amount,
		Date:          m.Date,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
