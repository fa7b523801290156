package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/SscSPs/fintrack/internal/models"
	"github.com/SscSPs/fintrack/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToModelUser_OptionalFields(t *testing.T) {
	empty := mapping.ToModelUser(domain.User{UserID: "u1", Username: "ada"})
	assert.False(t, empty.Email.Valid)
	assert.False(t, empty.FirstName.Valid)
	assert.False(t, empty.DateOfBirth.Valid)

	dob := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	full := mapping.ToModelUser(domain.User{UserID: "u1", Email: "ada@example.com", DateOfBirth: &dob})
	assert.True(t, full.Email.Valid)
	assert.Equal(t, "ada@example.com", full.Email.String)
	assert.True(t, full.DateOfBirth.Valid)

	back := mapping.ToDomainUser(full)
	if assert.NotNil(t, back.DateOfBirth) {
		assert.True(t, dob.Equal(*back.DateOfBirth))
	}
	assert.Equal(t, "", back.FirstName)
}

func TestToDomainWallet_ResolvesCurrency(t *testing.T) {
	m := models.Wallet{
		WalletID:       "w1",
		CurrencyCode:   "EUR",
		InitialBalance: decimal.RequireFromString("12.5"),
		Currency: models.Currency{
			CurrencyCode: "EUR",
			ValueInUSD:   decimal.RequireFromString("1.085"),
		},
	}

	w := mapping.ToDomainWallet(m)

	assert.Equal(t, "EUR", w.Currency.CurrencyCode)
	assert.True(t, w.Currency.ValueInUSD.Equal(decimal.RequireFromString("1.085")))
	assert.True(t, w.InitialBalance.Equal(decimal.RequireFromString("12.5")))
}

func TestToDomainTransaction_CarriesCategoryType(t *testing.T) {
	txn := mapping.ToDomainTransaction(models.Transaction{TransactionID: "t1", CategoryType: "EXPENSE"})
	assert.Equal(t, domain.Expense, txn.CategoryType)
}
