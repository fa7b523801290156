package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fintrack/internal/core/domain"
	portsrepo "github.com/SscSPs/fintrack/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fintrack/internal/core/ports/services"
	"github.com/SscSPs/fintrack/internal/utils/accounting"
)

type balanceService struct {
	BaseService
	walletRepo      portsrepo.WalletReader
	transactionRepo portsrepo.TransactionReader
}

// NewBalanceService creates the account aggregator. Nothing is cached: every
// call reloads the wallets and their ledgers.
func NewBalanceService(walletRepo portsrepo.WalletReader, transactionRepo portsrepo.TransactionReader) portssvc.BalanceSvc {
	return &balanceService{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.BalanceSvc = (*balanceService)(nil)

func (s *balanceService) GetAccountTotal(ctx context.Context, userID string) (*domain.AccountTotal, error) {
	wallets, err := s.walletRepo.ListWalletsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list wallets for account total")
		return nil, fmt.Errorf("failed to list wallets for user %s: %w", userID, err)
	}

	balances := make([]domain.WalletBalance, 0, len(wallets))
	for _, wallet := range wallets {
		transactions, err := s.transactionRepo.ListTransactionsByWalletID(ctx, wallet.WalletID)
		if err != nil {
			s.LogError(ctx, err, "Failed to load wallet transactions", slog.String("wallet_id", wallet.WalletID))
			return nil, fmt.Errorf("failed to load transactions for wallet %s: %w", wallet.WalletID, err)
		}
		balances = append(balances, accounting.ComputeWalletBalance(wallet, transactions))
	}

	total := accounting.ComputeAccountTotalUSD(userID, balances)

	s.LogDebug(ctx, "Account total computed",
		slog.Int("wallets", len(balances)),
		slog.String("total_usd", total.TotalUSD.String()))
	return &total, nil
}
