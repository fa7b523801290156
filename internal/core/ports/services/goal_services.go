package services

import (
	"context"

	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/SscSPs/fintrack/internal/dto"
)

// GoalSvcFacade defines operations on a user's savings goals
type GoalSvcFacade interface {
	CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error)
	GetGoalByID(ctx context.Context, userID string, goalID string) (*domain.Goal, error)
	ListGoals(ctx context.Context, userID string) ([]domain.Goal, error)
	UpdateGoal(ctx context.Context, userID string, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, userID string, goalID string) error
}
