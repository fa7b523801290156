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
	"github.com/SscSPs/fintrack/internal/platform/config"
	"github.com/SscSPs/fintrack/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// authService handles registration and token issue.
type authService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, cfg *config.Config) portssvc.AuthSvc {
	return &authService{cfg: cfg, userRepo: userRepo}
}

var _ portssvc.AuthSvc = (*authService)(nil)

func (s *authService) Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	if err := utils.ValidatePasswordComplexity(req.Password); err != nil {
		return nil, validationError(err)
	}

	initialBalance := decimal.Zero
	if req.InitialBalance != nil {
		if !domain.FitsPrecision(*req.InitialBalance, domain.UserBalancePrecision) {
			return nil, fmt.Errorf("%w: initial balance must have at most %d fractional digits", apperrors.ErrValidation, domain.UserBalancePrecision)
		}
		initialBalance = *req.InitialBalance
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID := uuid.NewString()
	user := domain.User{
		UserID:         userID,
		Username:       strings.TrimSpace(req.Username),
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DateOfBirth:    req.DateOfBirth,
		PasswordHash:   hash,
		InitialBalance: initialBalance,
		AuditFields:    newAuditFields(userID, time.Now()),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: username %q is taken", apperrors.ErrDuplicate, user.Username)
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("username", user.Username))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (string, time.Time, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", time.Time{}, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return "", time.Time{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogDebug(ctx, "Password mismatch on login", slog.String("user_id", user.UserID))
		return "", time.Time{}, apperrors.ErrUnauthorized
	}

	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return token, expiresAt, nil
}
