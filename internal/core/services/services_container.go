package services

import (
	portsrepo "github.com/SscSPs/fintrack/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fintrack/internal/core/ports/services"
	"github.com/SscSPs/fintrack/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:        NewAuthService(repos.UserRepo, cfg),
		User:        NewUserService(repos.UserRepo),
		Currency:    NewCurrencyService(repos.CurrencyRepo),
		Wallet:      NewWalletService(repos.WalletRepo, repos.CurrencyRepo, repos.TransactionRepo),
		Balance:     NewBalanceService(repos.WalletRepo, repos.TransactionRepo),
		Category:    NewCategoryService(repos.CategoryRepo),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.WalletRepo, repos.CategoryRepo),
		Goal:        NewGoalService(repos.GoalRepo),
	}
}
