package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/fintrack/internal/apperrors"
	"github.com/SscSPs/fintrack/internal/core/domain"
	portssvc "github.com/SscSPs/fintrack/internal/core/ports/services"
	"github.com/SscSPs/fintrack/internal/core/services"
	"github.com/SscSPs/fintrack/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTransactionRepo *MockTransactionRepository
	mockWalletRepo      *MockWalletRepository
	mockCategoryRepo    *MockCategoryRepository
	service             portssvc.TransactionSvcFacade

	userID   string
	wallet   *domain.Wallet
	category *domain.Category
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTransactionRepo = new(MockTransactionRepository)
	suite.mockWalletRepo = new(MockWalletRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewTransactionService(suite.mockTransactionRepo, suite.mockWalletRepo, suite.mockCategoryRepo)

	suite.userID = uuid.NewString()
	suite.wallet = &domain.Wallet{WalletID: uuid.NewString(), UserID: suite.userID, CurrencyCode: "USD"}
	suite.category = &domain.Category{CategoryID: uuid.NewString(), UserID: suite.userID, Name: "Groceries", Type: domain.Expense}
}

func (suite *TransactionServiceTestSuite) createRequest(amount string) dto.CreateTransactionRequest {
	a := decimal.RequireFromString(amount)
	return dto.CreateTransactionRequest{
		WalletID:    suite.wallet.WalletID,
		CategoryID:  suite.category.CategoryID,
		Title:       "Market",
		Description: "weekly run",
		Amount:      &a,
		Date:        "2024-03-01T10:00:00-03:00",
	}
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	req := suite.createRequest("42.10")

	suite.mockWalletRepo.On("FindWalletByID", ctx, suite.wallet.WalletID).Return(suite.wallet, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.category.CategoryID).Return(suite.category, nil).Once()
	suite.mockTransactionRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.UserID == suite.userID && t.CategoryType == domain.Expense && t.Amount.Equal(*req.Amount)
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(domain.Expense, txn.CategoryType)
	_, offset := txn.Date.Zone()
	suite.Equal(-3*60*60, offset)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InvalidAmounts() {
	ctx := context.Background()
	for _, amount := range []string{"0", "-5.00", "1.005"} {
		req := suite.createRequest(amount)
		suite.mockWalletRepo.On("FindWalletByID", ctx, suite.wallet.WalletID).Return(suite.wallet, nil).Once()
		suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.category.CategoryID).Return(suite.category, nil).Once()

		txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

		suite.Require().Error(err, amount)
		suite.Nil(txn)
		suite.ErrorIs(err, apperrors.ErrValidation, amount)
	}
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_DateWithoutOffset() {
	ctx := context.Background()
	req := suite.createRequest("10.00")
	req.Date = "2024-03-01T10:00:00"

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockWalletRepo.AssertNotCalled(suite.T(), "FindWalletByID", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_CategoryOfAnotherUser() {
	ctx := context.Background()
	req := suite.createRequest("10.00")
	foreign := *suite.category
	foreign.UserID = uuid.NewString()

	suite.mockWalletRepo.On("FindWalletByID", ctx, suite.wallet.WalletID).Return(suite.wallet, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.category.CategoryID).Return(&foreign, nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownWallet() {
	ctx := context.Background()
	req := suite.createRequest("10.00")

	suite.mockWalletRepo.On("FindWalletByID", ctx, suite.wallet.WalletID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_OtherUser() {
	ctx := context.Background()
	txn := &domain.Transaction{TransactionID: uuid.NewString(), UserID: uuid.NewString()}

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()

	found, err := suite.service.GetTransactionByID(ctx, suite.userID, txn.TransactionID)

	suite.Require().Error(err)
	suite.Nil(found)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_DefaultsAndToken() {
	ctx := context.Background()
	next := "next-page"
	txns := []domain.Transaction{
		{TransactionID: "t1", UserID: suite.userID, Amount: decimal.RequireFromString("1.5"), Date: time.Now()},
	}

	suite.mockTransactionRepo.On("ListTransactionsByUserID", ctx, suite.userID, (*string)(nil), 20, (*string)(nil)).
		Return(txns, &next, nil).Once()

	resp, err := suite.service.ListTransactions(ctx, suite.userID, dto.ListTransactionsParams{})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Transactions, 1)
	suite.Equal("1.50", resp.Transactions[0].Amount)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_FiltersByWallet() {
	ctx := context.Background()
	params := dto.ListTransactionsParams{WalletID: suite.wallet.WalletID, Limit: 5, NextToken: "abc"}

	suite.mockTransactionRepo.On("ListTransactionsByUserID", ctx, suite.userID,
		mock.MatchedBy(func(w *string) bool { return w != nil && *w == suite.wallet.WalletID }),
		5,
		mock.MatchedBy(func(t *string) bool { return t != nil && *t == "abc" }),
	).Return([]domain.Transaction{}, nil, nil).Once()

	resp, err := suite.service.ListTransactions(ctx, suite.userID, params)

	suite.Require().NoError(err)
	suite.Empty(resp.Transactions)
	suite.Nil(resp.NextToken)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_BadToken() {
	ctx := context.Background()
	params := dto.ListTransactionsParams{Limit: 10, NextToken: "!!"}

	suite.mockTransactionRepo.On("ListTransactionsByUserID", ctx, suite.userID, (*string)(nil), 10, mock.Anything).
		Return(nil, nil, apperrors.ErrValidation).Once()

	resp, err := suite.service.ListTransactions(ctx, suite.userID, params)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_ChangeCategoryFlipsType() {
	ctx := context.Background()
	txn := &domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        suite.userID,
		WalletID:      suite.wallet.WalletID,
		CategoryID:    suite.category.CategoryID,
		CategoryType:  domain.Expense,
		Title:         "Refund",
		Amount:        decimal.RequireFromString("9.99"),
		Date:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	salary := &domain.Category{CategoryID: uuid.NewString(), UserID: suite.userID, Name: "Salary", Type: domain.Income}

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, salary.CategoryID).Return(salary, nil).Once()
	suite.mockTransactionRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.CategoryID == salary.CategoryID && t.CategoryType == domain.Income && t.LastUpdatedBy == suite.userID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, suite.userID, txn.TransactionID, dto.UpdateTransactionRequest{CategoryID: &salary.CategoryID})

	suite.Require().NoError(err)
	suite.Equal(domain.Income, updated.CategoryType)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_RepoError() {
	ctx := context.Background()
	txn := &domain.Transaction{TransactionID: uuid.NewString(), UserID: suite.userID}

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()
	suite.mockTransactionRepo.On("DeleteTransaction", ctx, txn.TransactionID).Return(assert.AnError).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, txn.TransactionID)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
}

func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
