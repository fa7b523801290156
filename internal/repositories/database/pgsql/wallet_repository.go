package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/fintrack/internal/apperrors"
	"github.com/SscSPs/fintrack/internal/core/domain"
	portsrepo "github.com/SscSPs/fintrack/internal/core/ports/repositories"
	"github.com/SscSPs/fintrack/internal/models"
	"github.com/SscSPs/fintrack/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWalletRepository struct {
	BaseRepository
}

func newPgxWalletRepository(pool *pgxpool.Pool) portsrepo.WalletRepositoryFacade {
	return &PgxWalletRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WalletRepositoryFacade = (*PgxWalletRepository)(nil)

// walletSelect always joins the currency so callers get the rate with the wallet.
const walletSelect = `
	SELECT w.wallet_id, w.user_id, w.name, w.currency_code, w.initial_balance,
	       w.created_at, w.created_by, w.last_updated_at, w.last_updated_by,
	       c.currency_code, c.symbol, c.name, c.value_in_usd,
	       c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
	FROM wallets w
	JOIN currencies c ON c.currency_code = w.currency_code
`

func scanWallet(row pgx.Row) (models.Wallet, error) {
	var w models.Wallet
	err := row.Scan(
		&w.WalletID,
		&w.UserID,
		&w.Name,
		&w.CurrencyCode,
		&w.InitialBalance,
		&w.CreatedAt,
		&w.CreatedBy,
		&w.LastUpdatedAt,
		&w.LastUpdatedBy,
		&w.Currency.CurrencyCode,
		&w.Currency.Symbol,
		&w.Currency.Name,
		&w.Currency.ValueInUSD,
		&w.Currency.CreatedAt,
		&w.Currency.CreatedBy,
		&w.Currency.LastUpdatedAt,
		&w.Currency.LastUpdatedBy,
	)
	return w, err
}

func (r *PgxWalletRepository) findOne(ctx context.Context, where string, args ...any) (*domain.Wallet, error) {
	modelWallet, err := scanWallet(r.Pool.QueryRow(ctx, walletSelect+" WHERE "+where+";", args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find wallet: %w", err)
	}
	domainWallet := mapping.ToDomainWallet(modelWallet)
	return &domainWallet, nil
}

func (r *PgxWalletRepository) FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	return r.findOne(ctx, "w.wallet_id = $1", walletID)
}

func (r *PgxWalletRepository) FindWalletByUserAndCurrency(ctx context.Context, userID, currencyCode string) (*domain.Wallet, error) {
	return r.findOne(ctx, "w.user_id = $1 AND w.currency_code = $2", userID, currencyCode)
}

func (r *PgxWalletRepository) ListWalletsByUserID(ctx context.Context, userID string) ([]domain.Wallet, error) {
	rows, err := r.Pool.Query(ctx, walletSelect+" WHERE w.user_id = $1 ORDER BY w.currency_code;", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query wallets for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelWallets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Wallet, error) {
		return scanWallet(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan wallets: %w", err)
	}
	return mapping.ToDomainWalletSlice(modelWallets), nil
}

func (r *PgxWalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	m := mapping.ToModelWallet(wallet)
	query := `
		INSERT INTO wallets (wallet_id, user_id, name, currency_code, initial_balance,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.WalletID,
		m.UserID,
		m.Name,
		m.CurrencyCode,
		m.InitialBalance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "wallets_user_id_currency_code_key") {
			return fmt.Errorf("%w: a %s wallet already exists", apperrors.ErrDuplicate, m.CurrencyCode)
		}
		return fmt.Errorf("failed to save wallet %s: %w", m.WalletID, err)
	}
	return nil
}

func (r *PgxWalletRepository) UpdateWallet(ctx context.Context, wallet domain.Wallet) error {
	m := mapping.ToModelWallet(wallet)
	query := `
		UPDATE wallets
		SET name = $1, initial_balance = $2, last_updated_at = $3, last_updated_by = $4
		WHERE wallet_id = $5;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.Name, m.InitialBalance, m.LastUpdatedAt, m.LastUpdatedBy, m.WalletID)
	if err != nil {
		return fmt.Errorf("failed to update wallet %s: %w", m.WalletID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteWallet removes the wallet; its transactions go with it via ON DELETE CASCADE.
func (r *PgxWalletRepository) DeleteWallet(ctx context.Context, walletID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM wallets WHERE wallet_id = $1;`, walletID)
	if err != nil {
		return fmt.Errorf("failed to delete wallet %s: %w", walletID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
