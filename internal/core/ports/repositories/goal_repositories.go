package repositories

import (
	"context"

	"github.com/SscSPs/fintrack/internal/core/domain"
)

// GoalRepositoryFacade defines persistence operations for savings goals.
type GoalRepositoryFacade interface {
	FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error)
	// ListGoalsByUserID returns a user's goals ordered by target date, newest first.
	ListGoalsByUserID(ctx context.Context, userID string) ([]domain.Goal, error)
	SaveGoal(ctx context.Context, goal domain.Goal) error
	UpdateGoal(ctx context.Context, goal domain.Goal) error
	DeleteGoal(ctx context.Context, goalID string) error
}
