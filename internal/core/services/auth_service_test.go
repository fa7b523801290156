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
	"github.com/SscSPs/fintrack/internal/platform/config"
	"github.com/SscSPs/fintrack/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	cfg          *config.Config
	service      portssvc.AuthSvc
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "fintrack-test",
	}
	suite.service = services.NewAuthService(suite.mockUserRepo, suite.cfg)
}

func (suite *AuthServiceTestSuite) TestRegister_HashesPassword() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Username: "ada", Password: "Str0ng!pass", Email: "ada@example.com"}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "ada" && u.PasswordHash != "" && u.PasswordHash != req.Password
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.Equal(user.UserID, user.CreatedBy)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))
	suite.True(user.InitialBalance.IsZero())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_WeakPassword() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Username: "ada", Password: "password"}

	user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateUsername() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Username: "taken", Password: "Str0ng!pass"}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("Str0ng!pass")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: "user-42", Username: "ada", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ada").Return(stored, nil).Once()

	token, expiresAt, err := suite.service.Login(ctx, dto.LoginRequest{Username: "ada", Password: "Str0ng!pass"})

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.WithinDuration(time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal("user-42", claims.Subject)
	suite.Equal("fintrack-test", claims.Issuer)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("Str0ng!pass")
	suite.Require().NoError(err)

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ada").Return(&domain.User{UserID: "u", PasswordHash: hash}, nil).Once()

	token, _, err := suite.service.Login(ctx, dto.LoginRequest{Username: "ada", Password: "nope"})

	suite.Require().Error(err)
	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownUser() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.Login(ctx, dto.LoginRequest{Username: "ghost", Password: "whatever"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
