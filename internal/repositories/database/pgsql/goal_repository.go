package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/fintrack/internal/apperrors"
	"github.com/SscSPs/fintrack/internal/core/domain"
	portsrepo "github.com/SscSPs/fintrack/internal/core/ports/repositories"
	"github.com/SscSPs/fintrack/internal/models"
	"github.com/SscSPs/fintrack/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxGoalRepository struct {
	BaseRepository
}

func newPgxGoalRepository(pool *pgxpool.Pool) portsrepo.GoalRepositoryFacade {
	return &PgxGoalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.GoalRepositoryFacade = (*PgxGoalRepository)(nil)

const goalColumns = `goal_id, user_id, title, description, amount, date, created_at, created_by, last_updated_at, last_updated_by`

func scanGoal(row pgx.Row) (models.Goal, error) {
	var g models.Goal
	err := row.Scan(
		&g.GoalID,
		&g.UserID,
		&g.Title,
		&g.Description,
		&g.Amount,
		&g.Date,
		&g.CreatedAt,
		&g.CreatedBy,
		&g.LastUpdatedAt,
		&g.LastUpdatedBy,
	)
	return g, err
}

func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	m, err := scanGoal(r.Pool.QueryRow(ctx, `SELECT `+goalColumns+` FROM goals WHERE goal_id = $1;`, goalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find goal %s: %w", goalID, err)
	}
	goal := mapping.ToDomainGoal(m)
	return &goal, nil
}

func (r *PgxGoalRepository) ListGoalsByUserID(ctx context.Context, userID string) ([]domain.Goal, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+goalColumns+` FROM goals WHERE user_id = $1 ORDER BY date DESC, created_at DESC;`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Goal, error) {
		return scanGoal(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan goals: %w", err)
	}
	return mapping.ToDomainGoalSlice(ms), nil
}

func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	m := mapping.ToModelGoal(goal)
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO goals (`+goalColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		m.GoalID, m.UserID, m.Title, m.Description, m.Amount, m.Date,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save goal: %w", err)
	}
	return nil
}

func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	m := mapping.ToModelGoal(goal)
	query := `
		UPDATE goals
		SET title = $1, description = $2, amount = $3, date = $4, last_updated_at = $5, last_updated_by = $6
		WHERE goal_id = $7;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.Title, m.Description, m.Amount, m.Date, m.LastUpdatedAt, m.LastUpdatedBy, m.GoalID)
	if err != nil {
		return fmt.Errorf("failed to update goal %s: %w", m.GoalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, goalID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM goals WHERE goal_id = $1;`, goalID)
	if err != nil {
		return fmt.Errorf("failed to delete goal %s: %w", goalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
