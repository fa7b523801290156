package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/fintrack/internal/apperrors"
	"github.com/SscSPs/fintrack/internal/core/domain"
	portsrepo "github.com/SscSPs/fintrack/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fintrack/internal/core/ports/services"
	"github.com/SscSPs/fintrack/internal/dto"
	"github.com/SscSPs/fintrack/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type walletService struct {
	BaseService
	walletRepo      portsrepo.WalletRepositoryFacade
	currencyRepo    portsrepo.CurrencyReader
	transactionRepo portsrepo.TransactionReader
}

// NewWalletService creates the wallet service.
func NewWalletService(
	walletRepo portsrepo.WalletRepositoryFacade,
	currencyRepo portsrepo.CurrencyReader,
	transactionRepo portsrepo.TransactionReader,
) portssvc.WalletSvcFacade {
	return &walletService{
		walletRepo:      walletRepo,
		currencyRepo:    currencyRepo,
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.WalletSvcFacade = (*walletService)(nil)

func (s *walletService) CreateWallet(ctx context.Context, userID string, req dto.CreateWalletRequest) (*domain.Wallet, error) {
	currencyCode := strings.ToUpper(strings.TrimSpace(req.CurrencyCode))

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency %q is not supported", apperrors.ErrValidation, currencyCode)
		}
		s.LogError(ctx, err, "Failed to look up wallet currency", slog.String("currency_code", currencyCode))
		return nil, fmt.Errorf("failed to look up currency %s: %w", currencyCode, err)
	}

	// One wallet per currency per user. The unique index backs this check up
	// when two requests race.
	existing, err := s.walletRepo.FindWalletByUserAndCurrency(ctx, userID, currencyCode)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing wallet", slog.String("currency_code", currencyCode))
		return nil, fmt.Errorf("failed to check for existing wallet: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: a %s wallet already exists", apperrors.ErrDuplicate, currencyCode)
	}

	initialBalance := decimal.Zero
	if req.InitialBalance != nil {
		initialBalance = *req.InitialBalance
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = currency.Name
	}

	wallet := domain.Wallet{
		WalletID:       uuid.NewString(),
		UserID:         userID,
		Name:           name,
		CurrencyCode:   currencyCode,
		Currency:       *currency,
		InitialBalance: initialBalance,
		AuditFields:    newAuditFields(userID, time.Now()),
	}
	if err := wallet.Validate(); err != nil {
		return nil, validationError(err)
	}

	if err := s.walletRepo.SaveWallet(ctx, wallet); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save wallet", slog.String("wallet_id", wallet.WalletID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Wallet created successfully",
		slog.String("wallet_id", wallet.WalletID),
		slog.String("currency_code", currencyCode))
	return &wallet, nil
}

func (s *walletService) GetWalletByID(ctx context.Context, userID string, walletID string) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.FindWalletByID(ctx, walletID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find wallet by ID", slog.String("wallet_id", walletID))
		}
		return nil, err
	}

	// Return NotFound to obscure existence from other users
	if wallet.UserID != userID {
		s.LogDebug(ctx, "Wallet found but belongs to a different user", slog.String("wallet_id", walletID))
		return nil, apperrors.ErrNotFound
	}
	return wallet, nil
}

func (s *walletService) ListWallets(ctx context.Context, userID string) ([]domain.Wallet, error) {
	wallets, err := s.walletRepo.ListWalletsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list wallets")
		return nil, fmt.Errorf("failed to list wallets for user %s: %w", userID, err)
	}
	if wallets == nil {
		return []domain.Wallet{}, nil
	}
	return wallets, nil
}

func (s *walletService) UpdateWallet(ctx context.Context, userID string, walletID string, req dto.UpdateWalletRequest) (*domain.Wallet, error) {
	wallet, err := s.GetWalletByID(ctx, userID, walletID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		wallet.Name = strings.TrimSpace(*req.Name)
		updated = true
	}
	if req.InitialBalance != nil {
		wallet.InitialBalance = *req.InitialBalance
		updated = true
	}
	if !updated {
		return wallet, nil
	}
	if err := wallet.Validate(); err != nil {
		return nil, validationError(err)
	}

	wallet.LastUpdatedAt = time.Now()
	wallet.LastUpdatedBy = userID

	if err := s.walletRepo.UpdateWallet(ctx, *wallet); err != nil {
		s.LogError(ctx, err, "Failed to update wallet", slog.String("wallet_id", walletID))
		return nil, err
	}

	s.LogInfo(ctx, "Wallet updated successfully", slog.String("wallet_id", walletID))
	return wallet, nil
}

func (s *walletService) DeleteWallet(ctx context.Context, userID string, walletID string) error {
	if _, err := s.GetWalletByID(ctx, userID, walletID); err != nil {
		return err
	}

	if err := s.walletRepo.DeleteWallet(ctx, walletID); err != nil {
		s.LogError(ctx, err, "Failed to delete wallet", slog.String("wallet_id", walletID))
		return err
	}

	s.LogInfo(ctx, "Wallet deleted with its transactions", slog.String("wallet_id", walletID))
	return nil
}

func (s *walletService) GetWalletBalance(ctx context.Context, userID string, walletID string) (*domain.WalletBalance, error) {
	wallet, err := s.GetWalletByID(ctx, userID, walletID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.ListTransactionsByWalletID(ctx, walletID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load wallet transactions", slog.String("wallet_id", walletID))
		return nil, fmt.Errorf("failed to load transactions for wallet %s: %w", walletID, err)
	}

	balance := accounting.ComputeWalletBalance(*wallet, transactions)

	s.LogDebug(ctx, "Wallet balance computed",
		slog.String("wallet_id", walletID),
		slog.Int("transactions", len(transactions)),
		slog.String("total_balance", balance.TotalBalance.String()))
	return &balance, nil
}
