package services

import (
	"context"

	"github.com/SscSPs/fintrack/internal/core/domain"
)

// BalanceSvc aggregates balances across all wallets of a user.
type BalanceSvc interface {
	// GetAccountTotal recomputes every wallet balance of the user and sums the USD values.
	GetAccountTotal(ctx context.Context, userID string) (*domain.AccountTotal, error)
}
