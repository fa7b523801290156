package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// User is the row shape of the users table.
type User struct {
	UserID         string          `db:"user_id"`
	Username       string          `db:"username"`
	PasswordHash   string          `db:"password_hash"`
	Email          sql.NullString  `db:"email"`
	FirstName      sql.NullString  `db:"first_name"`
	LastName       sql.NullString  `db:"last_name"`
	DateOfBirth    sql.NullTime    `db:"date_of_birth"`
	InitialBalance decimal.Decimal `db:"initial_balance"`
	AuditFields
}
