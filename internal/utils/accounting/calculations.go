package accounting

import (
	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount returns the transaction amount with the sign given by its category type.
// INCOME adds to a balance, EXPENSE subtracts from it. Any other type contributes zero;
// such rows are rejected at write time and never reach the engine in practice.
func SignedAmount(txn domain.Transaction) decimal.Decimal {
	switch txn.CategoryType {
	case domain.Income:
		return txn.Amount
	case domain.Expense:
		return txn.Amount.Neg()
	default:
		return decimal.Zero
	}
}

// ComputeWalletBalance derives a wallet's native and USD-equivalent balances.
//
//	total_balance  = initial_balance + Σ income − Σ expense
//	balance_in_usd = total_balance × currency.value_in_usd
//
// Only transactions referencing the wallet are counted. The wallet's Currency must be
// resolved; the rate is read from it rather than from any table, so a refreshed rate
// only needs a different Currency value. Both figures use banker's rounding.
func ComputeWalletBalance(wallet domain.Wallet, transactions []domain.Transaction) domain.WalletBalance {
	income := decimal.Zero
	expense := decimal.Zero
	for _, txn := range transactions {
		if txn.WalletID != wallet.WalletID {
			continue
		}
		switch txn.CategoryType {
		case domain.Income:
			income = income.Add(txn.Amount)
		case domain.Expense:
			expense = expense.Add(txn.Amount)
		}
	}

	total := wallet.InitialBalance.Add(income).Sub(expense).RoundBank(domain.WalletBalancePrecision)
	rate := wallet.Currency.ValueInUSD

	return domain.WalletBalance{
		WalletID:     wallet.WalletID,
		CurrencyCode: wallet.CurrencyCode,
		ValueInUSD:   rate,
		TotalBalance: total,
		BalanceInUSD: total.Mul(rate).RoundBank(domain.USDBalancePrecision),
	}
}

// ComputeAccountTotalUSD sums the USD-equivalent balances of a user's wallets.
// A user without wallets totals zero.
func ComputeAccountTotalUSD(userID string, balances []domain.WalletBalance) domain.AccountTotal {
	total := decimal.Zero
	for _, b := range balances {
		total = total.Add(b.BalanceInUSD)
	}
	if balances == nil {
		balances = []domain.WalletBalance{}
	}
	return domain.AccountTotal{
		UserID:   userID,
		TotalUSD: total.RoundBank(domain.USDBalancePrecision),
		Wallets:  balances,
	}
}
