package handlers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/fintrack/internal/apperrors"
	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/SscSPs/fintrack/internal/dto"
	"github.com/SscSPs/fintrack/internal/handlers"
	"github.com/SscSPs/fintrack/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	router                 *gin.Engine
	mockTransactionService *MockTransactionService
	userID                 string
	token                  string
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(testJWTSecret))

	suite.mockTransactionService = new(MockTransactionService)
	suite.userID = uuid.NewString()
	suite.token = generateTestToken(suite.T(), suite.userID)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterTransactionRoutes(v1, suite.mockTransactionService)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	date := time.Date(2024, 3, 1, 10, 0, 0, 0, time.FixedZone("", -3*3600))
	txn := &domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        suite.userID,
		WalletID:      uuid.NewString(),
		CategoryID:    uuid.NewString(),
		CategoryType:  domain.Expense,
		Title:         "Groceries",
		Amount:        decimal.RequireFromString("1.5"),
		Date:          date,
	}
	suite.mockTransactionService.On("CreateTransaction", mock.Anything, suite.userID,
		mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
			return req.Title == "Groceries" && req.Date == "2024-03-01T10:00:00-03:00" && req.Amount.Equal(decimal.RequireFromString("1.5"))
		}),
	).Return(txn, nil).Once()

	body := fmt.Sprintf(`{"walletID":%q,"categoryID":%q,"title":"Groceries","amount":"1.5","date":"2024-03-01T10:00:00-03:00"}`, txn.WalletID, txn.CategoryID)
	w := performRequest(suite.router, http.MethodPost, "/api/v1/transactions", body, suite.token)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("1.50", resp.Amount)
	suite.Equal("EXPENSE", resp.CategoryType)
	suite.True(resp.Date.Equal(date))
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MissingAmount() {
	body := `{"walletID":"w","categoryID":"c","title":"x","date":"2024-03-01T10:00:00Z"}`
	w := performRequest(suite.router, http.MethodPost, "/api/v1/transactions", body, suite.token)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransactionService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ForeignWallet() {
	suite.mockTransactionService.On("CreateTransaction", mock.Anything, suite.userID, mock.Anything).
		Return(nil, fmt.Errorf("%w: wallet does not belong to user", apperrors.ErrValidation)).Once()

	body := `{"walletID":"w","categoryID":"c","title":"x","amount":"1","date":"2024-03-01T10:00:00Z"}`
	w := performRequest(suite.router, http.MethodPost, "/api/v1/transactions", body, suite.token)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_PassesQuery() {
	walletID := uuid.NewString()
	next := "abc"
	expected := &dto.ListTransactionsResponse{
		Transactions: []dto.TransactionResponse{{TransactionID: uuid.NewString(), Amount: "3.00"}},
		NextToken:    &next,
	}
	suite.mockTransactionService.On("ListTransactions", mock.Anything, suite.userID,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.Limit == 5 && p.WalletID == walletID && p.NextToken == "tok"
		}),
	).Return(expected, nil).Once()

	w := performRequest(suite.router, http.MethodGet, "/api/v1/transactions?limit=5&nextToken=tok&walletID="+walletID, "", suite.token)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Transactions, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("abc", *resp.NextToken)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_DefaultLimit() {
	suite.mockTransactionService.On("ListTransactions", mock.Anything, suite.userID,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool { return p.Limit == 20 }),
	).Return(&dto.ListTransactionsResponse{Transactions: []dto.TransactionResponse{}}, nil).Once()

	w := performRequest(suite.router, http.MethodGet, "/api/v1/transactions", "", suite.token)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTransactionService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_LimitOutOfRange() {
	w := performRequest(suite.router, http.MethodGet, "/api/v1/transactions?limit=1000", "", suite.token)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_InvalidToken() {
	appErr := apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", fmt.Errorf("%w: bad cursor", apperrors.ErrValidation))
	suite.mockTransactionService.On("ListTransactions", mock.Anything, suite.userID, mock.Anything).
		Return(nil, appErr).Once()

	w := performRequest(suite.router, http.MethodGet, "/api/v1/transactions?nextToken=%25%25", "", suite.token)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_AppErrorMessage() {
	appErr := apperrors.NewAppError(http.StatusUnprocessableEntity, "cannot page", errors.New("boom"))
	suite.mockTransactionService.On("ListTransactions", mock.Anything, suite.userID, mock.Anything).
		Return(nil, appErr).Once()

	w := performRequest(suite.router, http.MethodGet, "/api/v1/transactions", "", suite.token)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.JSONEq(`{"error":"cannot page"}`, w.Body.String())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_NotFound() {
	id := uuid.NewString()
	suite.mockTransactionService.On("DeleteTransaction", mock.Anything, suite.userID, id).Return(apperrors.ErrNotFound).Once()

	w := performRequest(suite.router, http.MethodDelete, "/api/v1/transactions/"+id, "", suite.token)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
