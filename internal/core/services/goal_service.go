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
	"github.com/google/uuid"
)

type goalService struct {
	BaseService
	goalRepo portsrepo.GoalRepositoryFacade
}

func NewGoalService(goalRepo portsrepo.GoalRepositoryFacade) portssvc.GoalSvcFacade {
	return &goalService{goalRepo: goalRepo}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func (s *goalService) CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error) {
	if req.Amount == nil {
		return nil, fmt.Errorf("%w: amount is required", apperrors.ErrValidation)
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	goal := domain.Goal{
		GoalID:      uuid.NewString(),
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Amount:      *req.Amount,
		Date:        date,
		AuditFields: newAuditFields(userID, time.Now()),
	}
	if err := goal.Validate(); err != nil {
		return nil, validationError(err)
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save goal", slog.String("goal_id", goal.GoalID))
		return nil, fmt.Errorf("failed to create goal in service: %w", err)
	}
	s.LogInfo(ctx, "Goal created", slog.String("goal_id", goal.GoalID))
	return &goal, nil
}

func (s *goalService) GetGoalByID(ctx context.Context, userID string, goalID string) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find goal by ID", slog.String("goal_id", goalID))
		}
		return nil, err
	}
	if goal.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	return goal, nil
}

func (s *goalService) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	goals, err := s.goalRepo.ListGoalsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goals")
		return nil, fmt.Errorf("failed to list goals for user %s: %w", userID, err)
	}
	if goals == nil {
		return []domain.Goal{}, nil
	}
	return goals, nil
}

func (s *goalService) UpdateGoal(ctx context.Context, userID string, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error) {
	goal, err := s.GetGoalByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		goal.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.Amount != nil {
		goal.Amount = *req.Amount
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		goal.Date = date
	}
	if err := goal.Validate(); err != nil {
		return nil, validationError(err)
	}

	goal.LastUpdatedAt = time.Now()
	goal.LastUpdatedBy = userID

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		s.LogError(ctx, err, "Failed to update goal", slog.String("goal_id", goalID))
		return nil, err
	}
	return goal, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, userID string, goalID string) error {
	if _, err := s.GetGoalByID(ctx, userID, goalID); err != nil {
		return err
	}
	if err := s.goalRepo.DeleteGoal(ctx, goalID); err != nil {
		s.LogError(ctx, err, "Failed to delete goal", slog.String("goal_id", goalID))
		return err
	}
	return nil
}
