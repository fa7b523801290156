package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

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

type UserHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *MockUserService
	userID          string
	token           string
}

func (suite *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(testJWTSecret))
	suite.mockUserService = new(MockUserService)
	suite.userID = uuid.NewString()
	suite.token = generateTestToken(suite.T(), suite.userID)

	handlers.RegisterUserRoutes(suite.router.Group("/api/v1"), suite.mockUserService)
}

func (suite *UserHandlerTestSuite) TestGetMe_UsesTokenSubject() {
	user := &domain.User{UserID: suite.userID, Username: "alice", InitialBalance: decimal.RequireFromString("12.5")}
	suite.mockUserService.On("GetUserByID", mock.Anything, suite.userID).Return(user, nil).Once()

	w := performRequest(suite.router, http.MethodGet, "/api/v1/me", "", suite.token)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.UserResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("alice", resp.Username)
	suite.Equal("12.50", resp.InitialBalance)
}

func (suite *UserHandlerTestSuite) TestUpdateMe_InvalidEmail() {
	w := performRequest(suite.router, http.MethodPut, "/api/v1/me", `{"email":"not-an-email"}`, suite.token)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserHandlerTestSuite) TestUpdateMe_Success() {
	user := &domain.User{UserID: suite.userID, Username: "alice", FirstName: "Alice"}
	suite.mockUserService.On("UpdateUser", mock.Anything, suite.userID,
		mock.MatchedBy(func(req dto.UpdateUserRequest) bool {
			return req.FirstName != nil && *req.FirstName == "Alice" && req.Email == nil
		}),
	).Return(user, nil).Once()

	w := performRequest(suite.router, http.MethodPut, "/api/v1/me", `{"firstName":"Alice"}`, suite.token)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestDeleteMe() {
	suite.mockUserService.On("DeleteUser", mock.Anything, suite.userID).Return(nil).Once()

	w := performRequest(suite.router, http.MethodDelete, "/api/v1/me", "", suite.token)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *UserHandlerTestSuite) TestDeleteMe_AlreadyGone() {
	suite.mockUserService.On("DeleteUser", mock.Anything, suite.userID).Return(apperrors.ErrNotFound).Once()

	w := performRequest(suite.router, http.MethodDelete, "/api/v1/me", "", suite.token)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestUserHandler(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
