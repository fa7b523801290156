package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fintrack/internal/apperrors"
	"github.com/SscSPs/fintrack/internal/core/domain"
	portsrepo "github.com/SscSPs/fintrack/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fintrack/internal/core/ports/services"
	"github.com/SscSPs/fintrack/internal/dto"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get user by ID", slog.String("user_id", userID))
		}
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Email != nil && *req.Email != user.Email {
		user.Email = *req.Email
		updated = true
	}
	if req.FirstName != nil && *req.FirstName != user.FirstName {
		user.FirstName = *req.FirstName
		updated = true
	}
	if req.LastName != nil && *req.LastName != user.LastName {
		user.LastName = *req.LastName
		updated = true
	}
	if req.DateOfBirth != nil && (user.DateOfBirth == nil || !req.DateOfBirth.Equal(*user.DateOfBirth)) {
		user.DateOfBirth = req.DateOfBirth
		updated = true
	}
	if req.InitialBalance != nil && !req.InitialBalance.Equal(user.InitialBalance) {
		if !domain.FitsPrecision(*req.InitialBalance, domain.UserBalancePrecision) {
			return nil, fmt.Errorf("%w: initial balance must have at most %d fractional digits", apperrors.ErrValidation, domain.UserBalancePrecision)
		}
		user.InitialBalance = *req.InitialBalance
		updated = true
	}

	if !updated {
		return user, nil
	}

	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = userID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update user in service: %w", err)
	}

	s.LogInfo(ctx, "User profile updated", slog.String("user_id", userID))
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if _, err := s.GetUserByID(ctx, userID); err != nil {
		return err
	}
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		return fmt.Errorf("failed to delete user in service: %w", err)
	}
	s.LogInfo(ctx, "User deleted with all owned data", slog.String("user_id", userID))
	return nil
}
