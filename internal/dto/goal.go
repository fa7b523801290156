package dto

import (
	"time"

	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the data needed to create a savings goal.
type CreateGoalRequest struct {
	Title       string           `json:"title" binding:"required,max=255"`
	Description string           `json:"description"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Date        string           `json:"date" binding:"required"`
}

// UpdateGoalRequest defines the mutable fields of a goal.
type UpdateGoalRequest struct {
	Title       *string          `json:"title" binding:"omitempty,max=255"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *string          `json:"date"`
}

// GoalResponse defines the data returned for a goal.
type GoalResponse struct {
	GoalID        string    `json:"goalID"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Amount        string    `json:"amount"`
	Date          time.Time `json:"date"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToGoalResponse converts a domain.Goal to GoalResponse DTO.
func ToGoalResponse(g *domain.Goal) GoalResponse {
	return GoalResponse{
		GoalID:        g.GoalID,
		Title:         g.Title,
		Description:   g.Description,
		Amount:        g.Amount.StringFixed(domain.TransactionAmountPrecision),
		Date:          g.Date,
		CreatedAt:     g.CreatedAt,
		LastUpdatedAt: g.LastUpdatedAt,
	}
}

// ToListGoalResponse converts a slice of domain.Goal to GoalResponse DTOs.
func ToListGoalResponse(goals []domain.Goal) []GoalResponse {
	res := make([]GoalResponse, len(goals))
	for i := range goals {
		res[i] = ToGoalResponse(&goals[i])
	}
	return res
}
