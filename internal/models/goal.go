package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Goal struct {
	GoalID      string          `db:"goal_id"`
	UserID      string          `db:"user_id"`
	Title       string          `db:"title"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Date        time.Time       `db:"date"`
	AuditFields
}
