package pgsql

import (
	portsrepo "github.com/SscSPs/fintrack/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		CurrencyRepo:    newPgxCurrencyRepository(dbPool),
		WalletRepo:      newPgxWalletRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		GoalRepo:        newPgxGoalRepository(dbPool),
	}
}
