package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/SscSPs/fintrack/internal/apperrors"
	"github.com/SscSPs/fintrack/internal/core/domain"
	portsrepo "github.com/SscSPs/fintrack/internal/core/ports/repositories"
	"github.com/SscSPs/fintrack/internal/models"
	"github.com/SscSPs/fintrack/internal/utils/mapping"
	"github.com/SscSPs/fintrack/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// The category type is joined in on every read: it decides the sign of the amount.
const transactionSelect = `
	SELECT t.transaction_id, t.user_id, t.wallet_id, t.category_id, t.title, t.description, t.amount, t.date,
	       t.created_at, t.created_by, t.last_updated_at, t.last_updated_by, c.type
	FROM transactions t
	JOIN categories c ON c.category_id = t.category_id
`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.TransactionID,
		&t.UserID,
		&t.WalletID,
		&t.CategoryID,
		&t.Title,
		&t.Description,
		&t.Amount,
		&t.Date,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
		&t.CategoryType,
	)
	return t, err
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	m, err := scanTransaction(r.Pool.QueryRow(ctx, transactionSelect+" WHERE t.transaction_id = $1;", transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListTransactionsByWalletID returns the full ledger of a wallet in no particular order.
func (r *PgxTransactionRepository) ListTransactionsByWalletID(ctx context.Context, walletID string) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, transactionSelect+" WHERE t.wallet_id = $1;", walletID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query transactions for wallet "+walletID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan transactions for wallet "+walletID, err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

// ListTransactionsByUserID retrieves a page of a user's transactions using token-based pagination.
func (r *PgxTransactionRepository) ListTransactionsByUserID(ctx context.Context, userID string, walletID *string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	query := transactionSelect + " WHERE t.user_id = $1"
	args := []any{userID}

	if walletID != nil && *walletID != "" {
		args = append(args, *walletID)
		query += " AND t.wallet_id = $" + strconv.Itoa(len(args))
	}

	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken",
				fmt.Errorf("%w: %v", apperrors.ErrValidation, decodeErr))
		}
		n := len(args)
		query += fmt.Sprintf(" AND (t.date, t.created_at, t.transaction_id) < ($%d, $%d, $%d)", n+1, n+2, n+3)
		args = append(args, cursor.Date, cursor.CreatedAt, cursor.ID)
	}

	// Ordering must be stable; created_at and id break ties between equal dates.
	args = append(args, fetchLimit)
	query += " ORDER BY t.date DESC, t.created_at DESC, t.transaction_id DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query transactions for user "+userID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan transactions for user "+userID, err)
	}

	var nextTokenVal *string
	if len(ms) > limit {
		ms = ms[:limit]
		// The token points at the last item of this page; the next page starts after it.
		last := ms[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{Date: last.Date, CreatedAt: last.CreatedAt, ID: last.TransactionID})
		nextTokenVal = &token
	}

	return mapping.ToDomainTransactionSlice(ms), nextTokenVal, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, transaction domain.Transaction) error {
	m := mapping.ToModelTransaction(transaction)
	query := `
		INSERT INTO transactions (transaction_id, user_id, wallet_id, category_id, title, description, amount, date,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID, m.UserID, m.WalletID, m.CategoryID, m.Title, m.Description, m.Amount, m.Date,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, transaction domain.Transaction) error {
	m := mapping.ToModelTransaction(transaction)
	query := `
		UPDATE transactions
		SET wallet_id = $1, category_id = $2, title = $3, description = $4, amount = $5, date = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE transaction_id = $9;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.WalletID, m.CategoryID, m.Title, m.Description, m.Amount, m.Date,
		m.LastUpdatedAt, m.LastUpdatedBy, m.TransactionID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
