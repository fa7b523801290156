package mapping

import (
	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/SscSPs/fintrack/internal/models"
)

func ToModelGoal(d domain.Goal) models.Goal {
	return models.Goal{
		GoalID:      d.GoalID,
		UserID:      d.UserID,
		Title:       d.Title,
		Description: d.Description,
		Amount:      d.Amount,
		Date:        d.Date,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainGoal(m models.Goal) domain.Goal {
	return domain.Goal{
		GoalID:      m.GoalID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		Amount:      m.Amount,
		Date:        m.Date,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainGoalSlice(ms []models.Goal) []domain.Goal {
	ds := make([]domain.Goal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGoal(m)
	}
	return ds
}
