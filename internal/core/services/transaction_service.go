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
	"github.com/google/uuid"
)

const defaultTransactionPageSize = 20

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	walletRepo      portsrepo.WalletReader
	categoryRepo    portsrepo.CategoryReader
}

// NewTransactionService creates the ledger entry service.
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	walletRepo portsrepo.WalletReader,
	categoryRepo portsrepo.CategoryReader,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		walletRepo:      walletRepo,
		categoryRepo:    categoryRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// resolveWallet returns ErrValidation when the wallet is missing or owned by
// someone else: the caller referenced it, it is not the resource being fetched.
func (s *transactionService) resolveWallet(ctx context.Context, userID, walletID string) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.FindWalletByID(ctx, walletID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: wallet %s does not exist", apperrors.ErrValidation, walletID)
		}
		return nil, fmt.Errorf("failed to look up wallet %s: %w", walletID, err)
	}
	if wallet.UserID != userID {
		return nil, fmt.Errorf("%w: wallet %s does not exist", apperrors.ErrValidation, walletID)
	}
	return wallet, nil
}

func (s *transactionService) resolveCategory(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: category %s does not exist", apperrors.ErrValidation, categoryID)
		}
		return nil, fmt.Errorf("failed to look up category %s: %w", categoryID, err)
	}
	if category.UserID != userID {
		return nil, fmt.Errorf("%w: category %s does not exist", apperrors.ErrValidation, categoryID)
	}
	return category, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if req.Amount == nil {
		return nil, fmt.Errorf("%w: amount is required", apperrors.ErrValidation)
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	if _, err := s.resolveWallet(ctx, userID, req.WalletID); err != nil {
		return nil, err
	}
	category, err := s.resolveCategory(ctx, userID, req.CategoryID)
	if err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		WalletID:      req.WalletID,
		CategoryID:    category.CategoryID,
		CategoryType:  category.Type,
		Title:         strings.TrimSpace(req.Title),
		Description:   req.Description,
		Amount:        *req.Amount,
		Date:          date,
		AuditFields:   newAuditFields(userID, time.Now()),
	}
	if err := txn.Validate(); err != nil {
		return nil, validationError(err)
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to create transaction in service: %w", err)
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("wallet_id", txn.WalletID),
		slog.String("category_type", string(txn.CategoryType)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction by ID", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	if txn.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}

	var walletID *string
	if params.WalletID != "" {
		walletID = &params.WalletID
	}
	var nextToken *string
	if params.NextToken != "" {
		nextToken = &params.NextToken
	}

	txns, newNextToken, err := s.transactionRepo.ListTransactionsByUserID(ctx, userID, walletID, limit, nextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list transactions")
		}
		return nil, fmt.Errorf("failed to list transactions for user %s: %w", userID, err)
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    newNextToken,
	}, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.GetTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	if req.WalletID != nil && *req.WalletID != txn.WalletID {
		if _, err := s.resolveWallet(ctx, userID, *req.WalletID); err != nil {
			return nil, err
		}
		txn.WalletID = *req.WalletID
	}
	if req.CategoryID != nil && *req.CategoryID != txn.CategoryID {
		category, err := s.resolveCategory(ctx, userID, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		txn.CategoryID = category.CategoryID
		txn.CategoryType = category.Type
	}
	if req.Title != nil {
		txn.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		txn.Date = date
	}
	if err := txn.Validate(); err != nil {
		return nil, validationError(err)
	}

	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = userID

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	if _, err := s.GetTransactionByID(ctx, userID, transactionID); err != nil {
		return err
	}
	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
